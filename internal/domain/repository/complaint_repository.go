package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, id string) (*model.Complaint, error)
	List(ctx context.Context) ([]model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) error
}

type pgComplaintRepository struct {
	db *sql.DB
}

func NewPgComplaintRepository(db *sql.DB) ComplaintRepository {
	return &pgComplaintRepository{db: db}
}

func (r *pgComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	query := `INSERT INTO complaints (id, resident_id, resident_name, type, description, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		complaint.ID, complaint.ResidentID, complaint.ResidentName,
		complaint.Type, complaint.Description, complaint.Status, complaint.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgComplaintRepository.Create: %w", err)
	}
	return nil
}

func (r *pgComplaintRepository) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	query := `SELECT id, resident_id, resident_name, type, description, status, created_at
	          FROM complaints WHERE id = $1`
	c := &model.Complaint{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ResidentID, &c.ResidentName, &c.Type, &c.Description, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgComplaintRepository.FindByID: %w", err)
	}
	return c, nil
}

func (r *pgComplaintRepository) List(ctx context.Context) ([]model.Complaint, error) {
	query := `SELECT id, resident_id, resident_name, type, description, status, created_at
	          FROM complaints ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgComplaintRepository.List: %w", err)
	}
	defer rows.Close()

	complaints := []model.Complaint{}
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.ResidentID, &c.ResidentName, &c.Type, &c.Description, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgComplaintRepository.List: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

func (r *pgComplaintRepository) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE complaints SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("pgComplaintRepository.UpdateStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgComplaintRepository.UpdateStatus: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
