package handler

import (
	"encoding/json"
	"net/http"

	"smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common"

	"github.com/go-chi/chi/v5"
)

type NoticeHandler struct {
	noticeService *service.NoticeService
}

func NewNoticeHandler(ns *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: ns}
}

func (h *NoticeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listNotices) // GET /api/notices

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createNotice)             // POST /api/notices
		adminRouter.Delete("/{noticeID}", h.deleteNotice) // DELETE /api/notices/{id}
	})
}

func (h *NoticeHandler) listNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.noticeService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, notices)
}

func (h *NoticeHandler) createNotice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	notice, err := h.noticeService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, notice)
}

func (h *NoticeHandler) deleteNotice(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "noticeID")
	if err := h.noticeService.Delete(r.Context(), noticeID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
