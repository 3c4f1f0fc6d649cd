package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
)

type MenuRepository interface {
	Get(ctx context.Context) (model.WeeklyMenu, error)
	// Replace swaps the whole menu in one transaction; the weekly menu has
	// no partial-merge semantics.
	Replace(ctx context.Context, menu model.WeeklyMenu) error
}

type pgMenuRepository struct {
	db *sql.DB
}

func NewPgMenuRepository(db *sql.DB) MenuRepository {
	return &pgMenuRepository{db: db}
}

func (r *pgMenuRepository) Get(ctx context.Context) (model.WeeklyMenu, error) {
	query := `SELECT day, breakfast_menu, breakfast_time, lunch_menu, lunch_time, dinner_menu, dinner_time
	          FROM menu_days`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgMenuRepository.Get: %w", err)
	}
	defer rows.Close()

	menu := model.WeeklyMenu{}
	for rows.Next() {
		var day string
		var dm model.DayMenu
		if err := rows.Scan(&day,
			&dm.Breakfast.Menu, &dm.Breakfast.Time,
			&dm.Lunch.Menu, &dm.Lunch.Time,
			&dm.Dinner.Menu, &dm.Dinner.Time,
		); err != nil {
			return nil, fmt.Errorf("pgMenuRepository.Get: %w", err)
		}
		menu[day] = dm
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgMenuRepository.Get: %w", err)
	}
	if len(menu) == 0 {
		return nil, common.ErrNotFound
	}
	return menu, nil
}

func (r *pgMenuRepository) Replace(ctx context.Context, menu model.WeeklyMenu) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgMenuRepository.Replace: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_days`); err != nil {
		return fmt.Errorf("pgMenuRepository.Replace: %w", err)
	}
	query := `INSERT INTO menu_days (day, breakfast_menu, breakfast_time, lunch_menu, lunch_time, dinner_menu, dinner_time)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, day := range model.Weekdays {
		dm := menu[day]
		if _, err := tx.ExecContext(ctx, query, day,
			dm.Breakfast.Menu, dm.Breakfast.Time,
			dm.Lunch.Menu, dm.Lunch.Time,
			dm.Dinner.Menu, dm.Dinner.Time,
		); err != nil {
			return fmt.Errorf("pgMenuRepository.Replace: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("pgMenuRepository.Replace: commit: %w", err)
	}
	return nil
}
