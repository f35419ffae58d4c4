package wellness

import (
	"testing"

	"avira/models"

	"github.com/stretchr/testify/assert"
)

func TestContainsCrisisKeyword(t *testing.T) {
	assert.True(t, ContainsCrisisKeyword("I want to end my life"))
	assert.True(t, ContainsCrisisKeyword("I've been thinking about SUICIDE"))
	assert.True(t, ContainsCrisisKeyword("sometimes i just want to hurt myself"))
	assert.False(t, ContainsCrisisKeyword("my exam is killing my free time"))
	assert.False(t, ContainsCrisisKeyword("I feel a bit down today"))
}

func TestFallbackResponse(t *testing.T) {
	t.Run("CrisisOverridesEverything", func(t *testing.T) {
		calm := &models.BiometricSnapshot{StressLevel: 10, HeartRate: 65}
		got := FallbackResponse("I don't want to live anymore", calm)

		assert.Contains(t, got, "988")
		assert.Contains(t, got, "741741")
		assert.Contains(t, got, "911")
	})

	t.Run("HighStressBeatsMessageKeywords", func(t *testing.T) {
		stressed := &models.BiometricSnapshot{StressLevel: 85}
		got := FallbackResponse("I'm okay, just checking in", stressed)

		assert.Contains(t, got, "4-7-8 breathing")
	})

	t.Run("ElevatedHeartRate", func(t *testing.T) {
		racing := &models.BiometricSnapshot{HeartRate: 120}
		got := FallbackResponse("hello", racing)

		assert.Contains(t, got, "5-4-3-2-1")
	})

	t.Run("PoorSleep", func(t *testing.T) {
		tired := &models.BiometricSnapshot{SleepQuality: 35}
		got := FallbackResponse("hello", tired)

		assert.Contains(t, got, "sleep")
	})

	t.Run("LowActivity", func(t *testing.T) {
		sedentary := &models.BiometricSnapshot{Steps: 500, SleepQuality: 80}
		got := FallbackResponse("hello", sedentary)

		assert.Contains(t, got, "10-minute walk")
	})

	t.Run("ZeroValueSnapshotDoesNotTrigger", func(t *testing.T) {
		// A snapshot with no sleep or step data must not read as poor
		// sleep or zero activity.
		empty := &models.BiometricSnapshot{HeartRate: 70}
		got := FallbackResponse("I'm feeling anxious about everything", empty)

		assert.Contains(t, got, "box breathing")
	})

	t.Run("KeywordResponders", func(t *testing.T) {
		cases := []struct {
			message string
			want    string
		}{
			{"I've been having panic attacks", "box breathing"},
			{"everything feels hopeless", "988"},
			{"I'm completely burned out", "brain dump"},
			{"my finals are next week", "25-minute blocks"},
		}
		for _, tc := range cases {
			got := FallbackResponse(tc.message, nil)
			assert.Contains(t, got, tc.want, "message: %s", tc.message)
		}
	})

	t.Run("GenericReplyIsNeverEmpty", func(t *testing.T) {
		got := FallbackResponse("zzz", nil)
		assert.NotEmpty(t, got)
		assert.Contains(t, genericResponses, got)
	})
}
