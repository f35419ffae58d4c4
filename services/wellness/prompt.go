package wellness

import (
	"fmt"
	"strings"

	"avira/models"
)

// historyWindow bounds how many prior turns are replayed into the prompt.
const historyWindow = 10

const systemPrompt = `You are Avira AI, a compassionate wellness assistant specifically designed for university students' mental health support. Your role is to:

1. Analyze smartwatch/biometric data for signs of stress, anxiety, or fatigue
2. Suggest safe, non-medical interventions like breathing exercises, meditation, movement, hydration, sleep hygiene
3. Provide emotional support in a friendly, non-judgmental way
4. Encourage professional help if data or responses suggest severe distress or crisis
5. NEVER prescribe medicines - only suggest lifestyle and wellness practices

If responses suggest severe mental health crisis, suicidal ideation, or serious health risks, immediately encourage seeking professional help, crisis hotlines, or emergency services.

Be warm, empathetic and non-judgmental. Use university student-friendly language, provide practical advice, and acknowledge the unique stressors of student life (exams, deadlines, social pressures). You provide supportive guidance but are NOT a replacement for professional mental health care.`

// BuildPrompt assembles the model prompt: system instruction, the trailing
// window of prior turns, and the new user message annotated with biometric
// readings when supplied.
func BuildPrompt(message string, history []models.ChatMessage, bio *models.BiometricSnapshot) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		switch turn.Role {
		case models.ChatRoleAssistant:
			fmt.Fprintf(&b, "Assistant: %s\n", turn.Content)
		default:
			fmt.Fprintf(&b, "Student: %s\n", turn.Content)
		}
	}

	fmt.Fprintf(&b, "Student: %s\n", annotateWithBiometrics(message, bio))
	b.WriteString("Assistant:")

	return b.String()
}

func annotateWithBiometrics(message string, bio *models.BiometricSnapshot) string {
	if bio == nil {
		return message
	}
	return fmt.Sprintf(`%s

[BIOMETRIC DATA FROM SMARTWATCH]:
- Heart Rate: %d BPM
- Blood Oxygen: %d%%
- Stress Level: %d%%
- Sleep Quality: %d%%
- Steps Today: %d
- Body Temperature: %.1f°F

Please analyze this biometric data and provide personalized wellness recommendations.`,
		message, bio.HeartRate, bio.OxygenLevel, bio.StressLevel, bio.SleepQuality, bio.Steps, bio.Temperature)
}
