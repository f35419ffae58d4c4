package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "avira/database/repository/booking"
	"avira/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBookingRepo) FindActiveAt(ctx context.Context, consultantID string, at time.Time) (*models.Booking, error) {
	args := m.Called(ctx, consultantID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingRepo) ListActiveForDay(ctx context.Context, consultantID string, dayStart time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, consultantID, dayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingRepo) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	return m.Called(ctx, id, intentID).Error(0)
}

type mockConsultantRepo struct {
	mock.Mock
}

func (m *mockConsultantRepo) GetByID(id string) (*models.Consultant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultant), args.Error(1)
}
func (m *mockConsultantRepo) GetAllAvailable() ([]models.Consultant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Consultant), args.Error(1)
}
func (m *mockConsultantRepo) GetAvailabilityRules(consultantID string) ([]models.AvailabilityRule, error) {
	args := m.Called(consultantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailabilityRule), args.Error(1)
}

// stubNotification records the confirmation on a channel so tests can wait
// for the async send.
type stubNotification struct {
	err  error
	sent chan models.BookingConfirmation
}

func (s *stubNotification) SendBookingConfirmation(ctx context.Context, conf models.BookingConfirmation) error {
	if s.sent != nil {
		s.sent <- conf
	}
	return s.err
}

func availableConsultant() *models.Consultant {
	return &models.Consultant{
		ID:          "c1",
		AnonymousID: "Consultant #4821",
		Name:        "Dr. Amara Okafor",
		IsAvailable: true,
	}
}

func validRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ConsultantID:  "c1",
		ScheduledAt:   "2026-09-07T10:00:00Z",
		PaymentAmount: 80,
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	scheduledAt := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)
		notif := &stubNotification{sent: make(chan models.BookingConfirmation, 1)}

		consultants.On("GetByID", "c1").Return(availableConsultant(), nil)
		repo.On("FindActiveAt", ctx, "c1", scheduledAt).Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		svc := &DefaultBookingService{
			Repo:           repo,
			ConsultantRepo: consultants,
			Notification:   notif,
			Now:            fixedNow,
		}

		created, err := svc.CreateBooking(ctx, "u1", validRequest())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "u1", created.UserID)
		assert.Equal(t, models.BookingStatusPending, created.Status)
		assert.True(t, created.Active)
		assert.Equal(t, models.PaymentStatusUnpaid, created.PaymentStatus)
		assert.Equal(t, SlotMinutes, created.DurationMinutes)
		assert.Equal(t, scheduledAt, created.ScheduledAt)

		// Confirmation goes out asynchronously and carries the real name,
		// never the anonymous one.
		select {
		case conf := <-notif.sent:
			assert.Equal(t, created.ID, conf.BookingID)
			assert.Equal(t, "Dr. Amara Okafor", conf.ConsultantName)
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation was never sent")
		}

		repo.AssertExpectations(t)
		consultants.AssertExpectations(t)
	})

	t.Run("SlotConflictSkipsInsert", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)

		consultants.On("GetByID", "c1").Return(availableConsultant(), nil)
		repo.On("FindActiveAt", ctx, "c1", scheduledAt).Return(&models.Booking{ID: "existing"}, nil)

		svc := &DefaultBookingService{Repo: repo, ConsultantRepo: consultants, Now: fixedNow}

		_, err := svc.CreateBooking(ctx, "u1", validRequest())
		require.Error(t, err)

		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeSlotAlreadyBooked, be.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateInsertMapsToSlotAlreadyBooked", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)

		consultants.On("GetByID", "c1").Return(availableConsultant(), nil)
		repo.On("FindActiveAt", ctx, "c1", scheduledAt).Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(bookingRepo.ErrSlotTaken)

		svc := &DefaultBookingService{Repo: repo, ConsultantRepo: consultants, Now: fixedNow}

		_, err := svc.CreateBooking(ctx, "u1", validRequest())
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeSlotAlreadyBooked, be.Code)
	})

	t.Run("ConsultantUnavailable", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)

		offline := availableConsultant()
		offline.IsAvailable = false
		consultants.On("GetByID", "c1").Return(offline, nil)

		svc := &DefaultBookingService{Repo: repo, ConsultantRepo: consultants, Now: fixedNow}

		_, err := svc.CreateBooking(ctx, "u1", validRequest())
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeProviderUnavailable, be.Code)
	})

	t.Run("UnknownConsultant", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)
		consultants.On("GetByID", "c1").Return(nil, nil)

		svc := &DefaultBookingService{Repo: repo, ConsultantRepo: consultants, Now: fixedNow}

		_, err := svc.CreateBooking(ctx, "u1", validRequest())
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeProviderUnavailable, be.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := &DefaultBookingService{Now: fixedNow}

		for _, req := range []models.CreateBookingRequest{
			{ScheduledAt: "2026-09-07T10:00:00Z", PaymentAmount: 80},
			{ConsultantID: "c1", PaymentAmount: 80},
			{ConsultantID: "c1", ScheduledAt: "2026-09-07T10:00:00Z"},
		} {
			_, err := svc.CreateBooking(ctx, "u1", req)
			var be *BookingError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, CodeValidationError, be.Code)
		}
	})

	t.Run("MalformedTimestamp", func(t *testing.T) {
		svc := &DefaultBookingService{Now: fixedNow}

		req := validRequest()
		req.ScheduledAt = "next tuesday"
		_, err := svc.CreateBooking(ctx, "u1", req)

		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidationError, be.Code)
	})

	t.Run("NotificationFailureDoesNotFailBooking", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)
		notif := &stubNotification{
			err:  assert.AnError,
			sent: make(chan models.BookingConfirmation, 1),
		}

		consultants.On("GetByID", "c1").Return(availableConsultant(), nil)
		repo.On("FindActiveAt", ctx, "c1", scheduledAt).Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		svc := &DefaultBookingService{
			Repo:           repo,
			ConsultantRepo: consultants,
			Notification:   notif,
			Now:            fixedNow,
		}

		created, err := svc.CreateBooking(ctx, "u1", validRequest())
		require.NoError(t, err)
		require.NotNil(t, created)

		select {
		case <-notif.sent:
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation attempt never happened")
		}
	})
}

func TestGetSlots(t *testing.T) {
	ctx := context.Background()

	rules := []models.AvailabilityRule{
		{ConsultantID: "c1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "12:00"},
	}

	t.Run("ResolvesSlotView", func(t *testing.T) {
		repo := new(mockBookingRepo)
		consultants := new(mockConsultantRepo)

		consultants.On("GetAvailabilityRules", "c1").Return(rules, nil)
		repo.On("ListActiveForDay", ctx, "c1", mock.AnythingOfType("time.Time")).Return(nil, nil)

		svc := &DefaultBookingService{Repo: repo, ConsultantRepo: consultants, Now: fixedNow}

		view, err := svc.GetSlots(ctx, "c1", "2026-09-07")
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, "c1", view.ConsultantID)
		assert.Equal(t, "2026-09-07", view.Date)
		assert.Len(t, view.Slots, 3)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		svc := &DefaultBookingService{Now: fixedNow}

		_, err := svc.GetSlots(ctx, "c1", "07/09/2026")
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidationError, be.Code)
	})
}

func TestGetSelectableDates(t *testing.T) {
	consultants := new(mockConsultantRepo)
	consultants.On("GetAvailabilityRules", "c1").Return([]models.AvailabilityRule{
		{ConsultantID: "c1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "12:00"},
	}, nil)

	svc := &DefaultBookingService{ConsultantRepo: consultants, Now: fixedNow}

	dates, err := svc.GetSelectableDates(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-31", "2026-09-07", "2026-09-14"}, dates)
}
