package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, name, email, hashed_password, role, room_number, phone_number,
	entry_date, exit_date, is_rent_paid, paid_months, created_at, updated_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	paidMonths, err := json.Marshal(user.PaidMonths)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Create: marshal paid_months: %w", err)
	}
	query := `INSERT INTO users (id, name, email, hashed_password, role, room_number, phone_number,
	              entry_date, exit_date, is_rent_paid, paid_months)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.HashedPassword, user.Role,
		user.RoomNumber, user.PhoneNumber, user.EntryDate, user.ExitDate,
		user.IsRentPaid, paidMonths,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("pgUserRepository.List: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *pgUserRepository) Update(ctx context.Context, user *model.User) error {
	paidMonths, err := json.Marshal(user.PaidMonths)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: marshal paid_months: %w", err)
	}
	query := `UPDATE users
	          SET name = $2, email = $3, hashed_password = $4, room_number = $5, phone_number = $6,
	              entry_date = $7, exit_date = $8, is_rent_paid = $9, paid_months = $10, updated_at = now()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.HashedPassword,
		user.RoomNumber, user.PhoneNumber, user.EntryDate, user.ExitDate,
		user.IsRentPaid, paidMonths,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var paidMonths []byte
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role,
		&user.RoomNumber, &user.PhoneNumber, &user.EntryDate, &user.ExitDate,
		&user.IsRentPaid, &paidMonths, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(paidMonths) > 0 {
		if err := json.Unmarshal(paidMonths, &user.PaidMonths); err != nil {
			return nil, fmt.Errorf("unmarshal paid_months: %w", err)
		}
	}
	return user, nil
}
