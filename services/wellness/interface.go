package wellness

import (
	"context"
	"time"

	"avira/models"
	"avira/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WellnessService answers wellness-chat messages. Respond never fails:
// provider errors degrade to the deterministic fallback responder.
type WellnessService interface {
	Respond(ctx context.Context, req models.ChatRequest) models.ChatResponse
}

// generativeClient abstracts the language-model backend.
type generativeClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultWellnessService is the production implementation.
type DefaultWellnessService struct {
	llm generativeClient
}

// NewDefaultWellnessService builds the service. With an empty API key the
// model is never called and every reply comes from the fallback responder.
func NewDefaultWellnessService(geminiAPIKey, geminiModel string) *DefaultWellnessService {
	svc := &DefaultWellnessService{}
	if geminiAPIKey != "" {
		svc.llm = NewGeminiClient(geminiAPIKey, geminiModel)
	}
	return svc
}

func (s *DefaultWellnessService) Respond(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	return models.ChatResponse{
		Response:       s.generate(ctx, req),
		ConversationID: uuid.New().String(),
		Timestamp:      time.Now(),
	}
}

func (s *DefaultWellnessService) generate(ctx context.Context, req models.ChatRequest) string {
	logger := utils.GetLogger()

	// Crisis language short-circuits everything, including the model:
	// hotline numbers must always surface.
	if ContainsCrisisKeyword(req.Message) {
		return crisisResponse
	}

	if s.llm != nil {
		prompt := BuildPrompt(req.Message, req.ConversationHistory, req.BiometricData)
		text, err := s.llm.GenerateContent(ctx, prompt)
		if err == nil && text != "" {
			return text
		}
		logger.Warn("model call failed, using fallback responder", zap.Error(err))
	}

	return FallbackResponse(req.Message, req.BiometricData)
}
