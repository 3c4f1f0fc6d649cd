package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
)

type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	FindByID(ctx context.Context, id string) (*model.Notice, error)
	List(ctx context.Context) ([]model.Notice, error)
	Delete(ctx context.Context, id string) error
}

type pgNoticeRepository struct {
	db *sql.DB
}

func NewPgNoticeRepository(db *sql.DB) NoticeRepository {
	return &pgNoticeRepository{db: db}
}

func (r *pgNoticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	query := `INSERT INTO notices (id, title, slug, content, author, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		notice.ID, notice.Title, notice.Slug, notice.Content, notice.Author, notice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgNoticeRepository.Create: %w", err)
	}
	return nil
}

func (r *pgNoticeRepository) FindByID(ctx context.Context, id string) (*model.Notice, error) {
	query := `SELECT id, title, slug, content, author, created_at FROM notices WHERE id = $1`
	n := &model.Notice{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Title, &n.Slug, &n.Content, &n.Author, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgNoticeRepository.FindByID: %w", err)
	}
	return n, nil
}

func (r *pgNoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	query := `SELECT id, title, slug, content, author, created_at FROM notices ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgNoticeRepository.List: %w", err)
	}
	defer rows.Close()

	notices := []model.Notice{}
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.Content, &n.Author, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgNoticeRepository.List: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *pgNoticeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgNoticeRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgNoticeRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
