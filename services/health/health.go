package health

import (
	"math"
	"math/rand"
	"time"

	"avira/models"
)

// HealthService produces the simulated wellness data backing the dashboard
// charts and smartwatch views. All values are synthetic, bounded random
// walks; there is no device integration in this codebase.
type HealthService interface {
	TrendSeries(days int) []models.TrendPoint
	Snapshot() models.BiometricSnapshot
	Recommendation(snapshot models.BiometricSnapshot) models.VitalsRecommendation
}

type SimulatedHealthService struct {
	rng *rand.Rand
}

func NewSimulatedHealthService() *SimulatedHealthService {
	return &SimulatedHealthService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// TrendSeries generates one point per day ending today, oldest first.
func (s *SimulatedHealthService) TrendSeries(days int) []models.TrendPoint {
	if days <= 0 {
		days = 30
	}

	points := make([]models.TrendPoint, 0, days)
	today := time.Now()

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		fi := float64(i)

		points = append(points, models.TrendPoint{
			Date:            day.Format("Jan 2"),
			Mood:            clamp(5+math.Sin(fi*0.3)*2+s.rng.Float64()*1.5, 1, 10),
			Anxiety:         clamp(4+math.Cos(fi*0.2)*2+s.rng.Float64()*1.2, 1, 10),
			SleepHours:      clamp(7.5+math.Sin(fi*0.1)*1.5+s.rng.Float64()*0.8, 4, 12),
			ExerciseMinutes: clamp(30+math.Sin(fi*0.15)*20+s.rng.Float64()*15, 0, 120),
			TherapySession:  s.rng.Float64() > 0.7,
			TookMedication:  s.rng.Float64() > 0.3,
		})
	}
	return points
}

// Snapshot produces a synthetic smartwatch reading within physiological bounds.
func (s *SimulatedHealthService) Snapshot() models.BiometricSnapshot {
	return models.BiometricSnapshot{
		HeartRate:    60 + s.rng.Intn(50),          // 60-109 BPM
		OxygenLevel:  94 + s.rng.Intn(6),           // 94-99 %
		StressLevel:  20 + s.rng.Intn(70),          // 20-89
		SleepQuality: 40 + s.rng.Intn(60),          // 40-99
		Steps:        1000 + s.rng.Intn(11000),     // 1000-11999
		Temperature:  97.0 + s.rng.Float64()*2.5,   // 97.0-99.5 °F
		Timestamp:    time.Now(),
	}
}

// Recommendation maps a snapshot to a threshold-driven nudge.
func (s *SimulatedHealthService) Recommendation(snapshot models.BiometricSnapshot) models.VitalsRecommendation {
	if snapshot.StressLevel > 70 {
		return models.VitalsRecommendation{
			Type:    "warning",
			Message: "High stress detected. Consider taking a 5-minute breathing break.",
			Action:  "Start breathing exercise",
		}
	}
	if snapshot.HeartRate > 100 {
		return models.VitalsRecommendation{
			Type:    "info",
			Message: "Elevated heart rate. Take a moment to relax and hydrate.",
			Action:  "View relaxation techniques",
		}
	}
	if snapshot.OxygenLevel < 96 {
		return models.VitalsRecommendation{
			Type:    "warning",
			Message: "Lower oxygen levels detected. Consider some gentle movement or fresh air.",
			Action:  "View wellness tips",
		}
	}
	return models.VitalsRecommendation{
		Type:    "success",
		Message: "Your vitals look good! Keep up the great self-care.",
		Action:  "Continue monitoring",
	}
}
