package handler

import (
	"encoding/json"
	"net/http"

	"smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common"

	"github.com/go-chi/chi/v5"
)

type ResidentHandler struct {
	residentService *service.ResidentService
	authService     *service.AuthService
}

func NewResidentHandler(rs *service.ResidentService, as *service.AuthService) *ResidentHandler {
	return &ResidentHandler{residentService: rs, authService: as}
}

// RegisterCollectionRoutes serves the /api/residents collection.
func (h *ResidentHandler) RegisterCollectionRoutes(r chi.Router) {
	r.Get("/", h.listResidents) // GET /api/residents

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.addResident) // POST /api/residents (admin onboarding)
	})
}

// RegisterUserRoutes serves the single-record /api/user/{id} surface.
func (h *ResidentHandler) RegisterUserRoutes(r chi.Router) {
	r.Put("/{userID}", h.updateUser) // PUT /api/user/{id}

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Delete("/{userID}", h.deleteUser) // DELETE /api/user/{id}
	})
}

func (h *ResidentHandler) listResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := h.residentService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, residents)
}

func (h *ResidentHandler) addResident(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	// Admin onboarding runs through the same path as self-registration.
	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *ResidentHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	actorRole, _ := middleware.GetUserRoleFromContext(r.Context())

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.residentService.Update(r.Context(), actorID, actorRole, userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *ResidentHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.residentService.Delete(r.Context(), userID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
