package handler

import (
	"encoding/json"
	"net/http"

	"smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type MenuHandler struct {
	menuService *service.MenuService
}

func NewMenuHandler(ms *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getMenu) // GET /api/menu

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.replaceMenu) // POST /api/menu
	})
}

func (h *MenuHandler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menuService.Get(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) replaceMenu(w http.ResponseWriter, r *http.Request) {
	var menu model.WeeklyMenu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	stored, err := h.menuService.Replace(r.Context(), menu)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stored)
}
