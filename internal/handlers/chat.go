package handlers

import (
	"context"
	"errors"
	"net/http"

	"advanced-ai/internal/logging"
	"advanced-ai/internal/middleware"
	"advanced-ai/internal/models"
)

var log = logging.NewLogger("handlers")

type chatReplier interface {
	Reply(ctx context.Context, req models.ChatRequest) (string, error)
}

type ChatHandler struct {
	chatService chatReplier
}

func NewChatHandler(chatService chatReplier) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat relays the posted conversation to the completion provider.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		var berr *bodyError
		if errors.As(err, &berr) && len(berr.Fields) > 0 {
			writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", berr.Message, berr.Fields, r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	reply, err := h.chatService.Reply(r.Context(), req)
	if err != nil {
		log.WithError(err).WithField("request_id", middleware.GetRequestID(r.Context())).Error("Chat relay failed")
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
