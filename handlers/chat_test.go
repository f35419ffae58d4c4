package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avira/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWellness struct {
	reply string
}

func (s *stubWellness) Respond(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	return models.ChatResponse{
		Response:       s.reply,
		ConversationID: "conv-1",
		Timestamp:      time.Now(),
	}
}

func chatRouter(reply string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(&stubWellness{reply: reply})
	r.POST("/api/chat", h.ChatHandler)
	return r
}

func TestChatHandler(t *testing.T) {
	t.Run("AlwaysRespondsOK", func(t *testing.T) {
		r := chatRouter("You're doing better than you think.")

		body, _ := json.Marshal(models.ChatRequest{Message: "rough week"})
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "You're doing better than you think.", resp.Response)
		assert.Equal(t, "conv-1", resp.ConversationID)
	})

	t.Run("EmptyMessageRejected", func(t *testing.T) {
		r := chatRouter("unused")

		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{"message":""}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedJSONRejected", func(t *testing.T) {
		r := chatRouter("unused")

		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
