package models

import "time"

// Chat roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a wellness-chat conversation. History lives
// client-side; the server never persists it.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BiometricSnapshot is a point-in-time bundle of smartwatch readings
// passed into the chat prompt for personalization.
type BiometricSnapshot struct {
	HeartRate    int       `json:"heartRate"`    // BPM
	OxygenLevel  int       `json:"oxygenLevel"`  // SpO2 %
	StressLevel  int       `json:"stressLevel"`  // 0-100
	SleepQuality int       `json:"sleepQuality"` // 0-100
	Steps        int       `json:"steps"`
	Temperature  float64   `json:"temperature"` // °F
	Timestamp    time.Time `json:"timestamp"`
}

// ChatRequest is the payload for the wellness chat endpoint.
type ChatRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []ChatMessage      `json:"conversationHistory"`
	BiometricData       *BiometricSnapshot `json:"biometricData,omitempty"`
}

// ChatResponse always carries a non-empty response; provider failures
// degrade to the fallback responder rather than an error status.
type ChatResponse struct {
	Response       string    `json:"response"`
	ConversationID string    `json:"conversationId"`
	Timestamp      time.Time `json:"timestamp"`
}
