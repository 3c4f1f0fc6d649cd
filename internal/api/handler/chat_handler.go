package handler

import (
	"encoding/json"
	"net/http"

	"smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common"

	"github.com/go-chi/chi/v5"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(cs *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: cs}
}

func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.reply) // POST /api/chat
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) reply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	reply, err := h.chatService.Reply(r.Context(), userID, req.Message)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
