package handler

import (
	"encoding/json"
	"net/http"

	"smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common"

	"github.com/go-chi/chi/v5"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(cs *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: cs}
}

func (h *ComplaintHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listComplaints) // GET /api/complaints

	r.Group(func(residentRouter chi.Router) {
		residentRouter.Use(middleware.ResidentOnly)
		residentRouter.Post("/", h.createComplaint) // POST /api/complaints
	})

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Put("/{complaintID}", h.updateComplaint) // PUT /api/complaints/{id}
	})
}

func (h *ComplaintHandler) createComplaint(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	complaint, err := h.complaintService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) listComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaintService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) updateComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "complaintID")

	var req service.UpdateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	complaint, err := h.complaintService.UpdateStatus(r.Context(), complaintID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, complaint)
}
