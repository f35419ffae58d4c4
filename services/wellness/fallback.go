package wellness

import (
	"math/rand"
	"strings"

	"avira/models"
)

// Fallback thresholds mirroring the smartwatch recommendation rules.
const (
	highStressThreshold   = 70
	highHeartRateBPM      = 100
	lowSleepQualityScore  = 60
	lowDailyStepThreshold = 2000
)

var crisisKeywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"end it all",
	"self harm",
	"self-harm",
	"hurt myself",
	"don't want to live",
	"want to die",
}

const crisisResponse = `I'm really concerned about what you've shared, and I want you to know that you don't have to face this alone. What you're feeling right now is serious, and there are people ready to help you immediately.

Please reach out right now:
• National Suicide Prevention Lifeline: call or text 988
• Crisis Text Line: text HOME to 741741
• Emergency Services: 911
• Your university's counseling center also has urgent walk-in support.

Your life matters. These feelings, as overwhelming as they are right now, can change with the right support. Please contact one of these resources — they're available 24/7 and the people there genuinely want to help you through this moment.`

const highStressResponse = `I notice from your smartwatch data that your stress levels are quite elevated right now. This is your body's way of telling you it needs some care.

Let's try a simple 4-7-8 breathing exercise together: breathe in through your nose for 4 counts, hold for 7, and exhale slowly through your mouth for 8. Repeat this four times. This pattern helps activate your body's relaxation response and can lower your stress within a few minutes.

If the pressure you're feeling keeps building, consider stepping away from whatever you're working on for ten minutes — a short walk or even standing up and stretching can reset your nervous system. Would you like to tell me what's been weighing on you?`

const highHeartRateResponse = `Your heart rate seems elevated based on your smartwatch data. This could be related to stress, caffeine, or physical activity.

Let's try a grounding technique to bring your nervous system back to a calmer state. It's called 5-4-3-2-1: name 5 things you can see around you, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. Take your time with each one.

Also, if you've had coffee or an energy drink recently, a glass of water and a few slow breaths can help. How are you feeling otherwise?`

const poorSleepResponse = `I see from your sleep data that you haven't been getting the best quality rest lately. Poor sleep can really impact our mood, focus, and stress levels — it's often the first thing to slip during a busy term.

A few things that tend to make a real difference: keeping a consistent sleep and wake time (even on weekends), putting devices away an hour before bed, and keeping your room cool and dark. If racing thoughts keep you up, try writing them down in a notebook before lying down — it helps your brain let go of them.

Have you noticed any patterns in what's been disrupting your sleep?`

const lowActivityResponse = `Your step count has been on the low side today. That's completely understandable during busy stretches, but even a little movement can genuinely lift your mood and energy.

Could you take a 10-minute walk sometime in the next hour — maybe between classes or before your next study block? Gentle movement releases tension, improves circulation, and gives your mind a break from whatever you've been focused on.

If getting outside isn't practical, even stretching at your desk or walking a few flights of stairs counts. What does the rest of your day look like?`

// keywordResponder pairs a set of trigger terms with a canned reply.
// Responders are evaluated in order; the first match wins.
type keywordResponder struct {
	keywords []string
	response string
}

var keywordResponders = []keywordResponder{
	{
		keywords: []string{"anxious", "anxiety", "panic", "panicking"},
		response: `It sounds like anxiety is really making itself felt right now, and I want you to know that what you're experiencing is both real and manageable. Anxiety is incredibly common among university students — you're far from alone in this.

Right now, try box breathing: inhale for 4 counts, hold for 4, exhale for 4, hold for 4. Even two minutes of this can take the edge off. Grounding helps too — press your feet firmly into the floor and notice the sensation.

Longer term, it's worth noticing when the anxiety tends to show up: before deadlines, in social situations, at night? Spotting the pattern is the first step to loosening its grip. And if it's interfering with your daily life, your university counseling service is a great resource. What tends to trigger it for you?`,
	},
	{
		keywords: []string{"depressed", "depression", "hopeless", "empty", "numb"},
		response: `Thank you for trusting me with this — saying it out loud takes courage. Feeling this low is heavy, and you deserve support, not judgment.

Depression often tells us to withdraw and do less, but tiny actions can slowly push back: opening the curtains, a shower, a short walk, texting one friend. Not to fix everything — just to give the day one small foothold. Be as kind to yourself as you would be to a friend feeling this way.

Please consider talking to a counselor at your university's mental health service; these feelings are very treatable with support. And if things ever feel like too much to bear, the 988 lifeline is there around the clock. What has the last week looked like for you?`,
	},
	{
		keywords: []string{"stress", "stressed", "overwhelmed", "pressure", "burnout", "burned out"},
		response: `Feeling overwhelmed is your mind's signal that the load has outgrown your current capacity — it doesn't mean you're failing, it means you're carrying a lot.

First, let's lower the physical stress response: take a slow breath in for 4 counts and out for 6, five times. Lengthening the exhale tells your nervous system it's safe to downshift.

Then try a brain dump: write every task and worry onto one page, pick the single most important thing, and give yourself permission to ignore the rest for the next hour. Breaking the mountain into one next step is often the difference between paralysis and progress. What's the biggest thing on your plate right now?`,
	},
	{
		keywords: []string{"exam", "test", "deadline", "assignment", "finals", "midterm"},
		response: `Exam and deadline pressure is one of the most universal stressors in student life — your brain is treating this as a threat, which is why it feels so intense.

A few things that genuinely help: study in focused 25-minute blocks with 5-minute breaks (your retention will thank you), get real sleep the night before rather than an all-nighter (memory consolidation happens during sleep), and before the exam itself, try a minute of slow breathing to clear the stress fog.

Also, keep perspective: one exam is a data point, not a verdict on your worth or your future. You've prepared as well as you could with the time and energy you had. When is the exam, and how have you been preparing so far?`,
	},
}

var genericResponses = []string{
	"I understand you're reaching out, and I'm here to support you. It's completely normal to have ups and downs, especially as a university student. Can you tell me more about what's been on your mind lately?",

	"Thank you for sharing that with me. It sounds like you're dealing with some challenging feelings right now. Remember that seeking support is a sign of strength, not weakness. Have you tried any relaxation techniques recently?",

	"I hear you, and your feelings are completely valid. University life can be overwhelming with academic pressures, social expectations, and personal growth all happening at once. Let's focus on some practical steps you can take right now.",

	"It's great that you're being mindful of your mental health. Based on what you've shared, I'd like to suggest a few gentle techniques that might help. Would you be interested in trying a brief breathing exercise together?",

	"I appreciate you opening up about this. Many students experience similar challenges, and you're not alone in feeling this way. Let's explore some coping strategies that might work well for your situation.",
}

// ContainsCrisisKeyword reports whether the message contains crisis
// language. Crisis matches take precedence over all other responders.
func ContainsCrisisKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FallbackResponse selects a deterministic reply when the model is
// unavailable. Priority order: crisis language, biometric thresholds,
// message keywords, then a generic supportive reply.
func FallbackResponse(message string, bio *models.BiometricSnapshot) string {
	if ContainsCrisisKeyword(message) {
		return crisisResponse
	}

	if bio != nil {
		switch {
		case bio.StressLevel > highStressThreshold:
			return highStressResponse
		case bio.HeartRate > highHeartRateBPM:
			return highHeartRateResponse
		case bio.SleepQuality > 0 && bio.SleepQuality < lowSleepQualityScore:
			return poorSleepResponse
		case bio.Steps > 0 && bio.Steps < lowDailyStepThreshold:
			return lowActivityResponse
		}
	}

	lower := strings.ToLower(message)
	for _, r := range keywordResponders {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}

	return genericResponses[rand.Intn(len(genericResponses))]
}
