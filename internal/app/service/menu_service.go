package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
	"smartpg/internal/domain/repository"
)

type MenuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// Get returns the weekly menu with all seven weekday keys guaranteed. An
// empty or incomplete stored menu is healed from the built-in default and
// written back, so the next reader sees a complete one too.
func (s *MenuService) Get(ctx context.Context) (model.WeeklyMenu, error) {
	menu, err := s.menuRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
		menu = nil
	}
	if menu.Complete() {
		return menu, nil
	}

	healed := menu.Normalize()
	if err := s.menuRepo.Replace(ctx, healed); err != nil {
		// Serve the healed menu anyway; persistence catches up on the next save.
		log.Printf("WARN: failed to persist healed menu: %v", err)
	}
	return healed, nil
}

// Replace overwrites the whole weekly menu. Partial payloads are filled out
// from the default menu rather than rejected.
func (s *MenuService) Replace(ctx context.Context, menu model.WeeklyMenu) (model.WeeklyMenu, error) {
	if len(menu) == 0 {
		return nil, common.Errorf("menu payload is empty: %w", common.ErrBadRequest)
	}
	normalized := menu.Normalize()
	if err := s.menuRepo.Replace(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to replace menu: %w", err)
	}
	return normalized, nil
}
