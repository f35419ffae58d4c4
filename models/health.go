package models

// TrendPoint is one day of simulated wellness metrics for the dashboard
// charts. Values are bounded random walks, not real measurements.
type TrendPoint struct {
	Date            string  `json:"date"`    // "Jan 2" style label
	Mood            float64 `json:"mood"`    // 1-10
	Anxiety         float64 `json:"anxiety"` // 1-10
	SleepHours      float64 `json:"sleep"`   // 4-12
	ExerciseMinutes float64 `json:"exercise"`
	TherapySession  bool    `json:"therapy"`
	TookMedication  bool    `json:"medication"`
}

// VitalsRecommendation is a threshold-driven nudge derived from a
// biometric snapshot.
type VitalsRecommendation struct {
	Type    string `json:"type"` // "warning", "info" or "success"
	Message string `json:"message"`
	Action  string `json:"action"`
}
