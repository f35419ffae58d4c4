package booking

import (
	"testing"
	"time"

	"avira/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayRule(start, end string) models.AvailabilityRule {
	return models.AvailabilityRule{
		ConsultantID: "c1",
		DayOfWeek:    int(time.Monday),
		StartTime:    start,
		EndTime:      end,
	}
}

func TestSlotsForDate(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)

	t.Run("ThreeHourWindowYieldsThreeSlots", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "12:00")}

		slots, err := SlotsForDate(rules, monday, nil, earlyMorning)
		require.NoError(t, err)
		require.Len(t, slots, 3)

		assert.Equal(t, "09:00", slots[0].Time)
		assert.Equal(t, "10:00", slots[1].Time)
		assert.Equal(t, "11:00", slots[2].Time)
		for _, s := range slots {
			assert.True(t, s.Available, "slot %s should be available", s.Time)
		}
	})

	t.Run("ActiveBookingBlocksOnlyItsSlot", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "12:00")}
		active := []models.Booking{
			{
				ConsultantID: "c1",
				ScheduledAt:  time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
				Status:       models.BookingStatusPending,
			},
		}

		slots, err := SlotsForDate(rules, monday, active, earlyMorning)
		require.NoError(t, err)
		require.Len(t, slots, 3)

		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available, "10:00 is taken by a pending booking")
		assert.True(t, slots[2].Available)
	})

	t.Run("CancelledBookingFreesItsSlot", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "12:00")}
		cancelled := []models.Booking{
			{
				ConsultantID: "c1",
				ScheduledAt:  time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
				Status:       models.BookingStatusCancelled,
			},
		}

		slots, err := SlotsForDate(rules, monday, cancelled, earlyMorning)
		require.NoError(t, err)
		require.Len(t, slots, 3)

		for _, s := range slots {
			assert.True(t, s.Available, "cancelled booking must not block slot %s", s.Time)
		}
	})

	t.Run("PastSlotsUnavailable", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "12:00")}
		midMorning := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

		slots, err := SlotsForDate(rules, monday, nil, midMorning)
		require.NoError(t, err)
		require.Len(t, slots, 3)

		assert.False(t, slots[0].Available, "09:00 already started")
		assert.False(t, slots[1].Available, "10:00 is exactly now, not in the future")
		assert.True(t, slots[2].Available)
	})

	t.Run("NoRuleForWeekdayYieldsNoSlots", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "12:00")}
		// 2026-09-01 is a Tuesday.
		tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		slots, err := SlotsForDate(rules, tuesday, nil, earlyMorning)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("UnalignedBookingDoesNotBlockSlots", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "11:00")}
		active := []models.Booking{
			{
				ScheduledAt: time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
				Status:      models.BookingStatusPending,
			},
		}

		slots, err := SlotsForDate(rules, monday, active, earlyMorning)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("InvalidClockValue", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("9am", "12:00")}

		_, err := SlotsForDate(rules, monday, nil, earlyMorning)
		assert.Error(t, err)
	})
}

func TestDateSelectable(t *testing.T) {
	rules := []models.AvailabilityRule{mondayRule("09:00", "17:00")}
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC) // a Monday

	t.Run("TodayWithRule", func(t *testing.T) {
		assert.True(t, DateSelectable(rules, now, now))
	})

	t.Run("PastDate", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		assert.False(t, DateSelectable(rules, yesterday, now))
	})

	t.Run("HorizonBoundaryInclusive", func(t *testing.T) {
		lastMonday := now.AddDate(0, 0, 14) // still a Monday, day 14
		assert.True(t, DateSelectable(rules, lastMonday, now))

		beyond := now.AddDate(0, 0, 21)
		assert.False(t, DateSelectable(rules, beyond, now))
	})

	t.Run("WeekdayWithoutRule", func(t *testing.T) {
		tuesday := now.AddDate(0, 0, 1)
		assert.False(t, DateSelectable(rules, tuesday, now))
	})
}

func TestSelectableDates(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC) // a Monday

	t.Run("OnlyRuleWeekdaysWithinHorizon", func(t *testing.T) {
		rules := []models.AvailabilityRule{mondayRule("09:00", "17:00")}

		dates := SelectableDates(rules, now)
		// Mondays within [today, today+14]: Aug 31, Sep 7, Sep 14.
		assert.Equal(t, []string{"2026-08-31", "2026-09-07", "2026-09-14"}, dates)
	})

	t.Run("FullWeekRulesCoverWholeHorizon", func(t *testing.T) {
		var rules []models.AvailabilityRule
		for d := 0; d < 7; d++ {
			rules = append(rules, models.AvailabilityRule{
				ConsultantID: "c1", DayOfWeek: d, StartTime: "09:00", EndTime: "17:00",
			})
		}

		dates := SelectableDates(rules, now)
		assert.Len(t, dates, BookingHorizonDays+1)
		assert.Equal(t, "2026-08-31", dates[0])
		assert.Equal(t, "2026-09-14", dates[len(dates)-1])
	})

	t.Run("NoRulesNoDates", func(t *testing.T) {
		assert.Empty(t, SelectableDates(nil, now))
	})
}
