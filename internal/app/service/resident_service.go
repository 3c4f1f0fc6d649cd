package service

import (
	"context"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/common/security"
	"smartpg/internal/domain/model"
	"smartpg/internal/domain/repository"
)

type ResidentService struct {
	userRepo repository.UserRepository
}

func NewResidentService(userRepo repository.UserRepository) *ResidentService {
	return &ResidentService{userRepo: userRepo}
}

// UpdateUserRequest is a partial update; only non-nil fields are applied.
type UpdateUserRequest struct {
	Name        *string   `json:"name,omitempty"`
	Password    *string   `json:"password,omitempty"`
	RoomNumber  *string   `json:"roomNumber,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	EntryDate   *string   `json:"entryDate,omitempty"`
	ExitDate    *string   `json:"exitDate,omitempty"`
	IsRentPaid  *bool     `json:"isRentPaid,omitempty"`
	PaidMonths  *[]string `json:"paidMonths,omitempty"`
}

func (req UpdateUserRequest) touchesBilling() bool {
	return req.IsRentPaid != nil || req.PaidMonths != nil
}

func (s *ResidentService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	return users, nil
}

// Update applies a partial profile edit. Residents may edit only their own
// record and never the billing fields; admins may edit anyone.
func (s *ResidentService) Update(ctx context.Context, actorID, actorRole, targetID string, req UpdateUserRequest) (*model.User, error) {
	if actorRole != model.RoleAdmin {
		if actorID != targetID {
			return nil, common.Errorf("cannot edit another resident's profile: %w", common.ErrForbidden)
		}
		if req.touchesBilling() {
			return nil, common.Errorf("rent fields are managed by the admin: %w", common.ErrForbidden)
		}
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}
	if req.RoomNumber != nil {
		user.RoomNumber = *req.RoomNumber
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.EntryDate != nil {
		user.EntryDate = req.EntryDate
	}
	if req.ExitDate != nil {
		user.ExitDate = req.ExitDate
	}
	if req.IsRentPaid != nil {
		user.IsRentPaid = *req.IsRentPaid
	}
	if req.PaidMonths != nil {
		user.PaidMonths = *req.PaidMonths
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	user.HashedPassword = ""
	return user, nil
}

// Delete removes a single resident by id. The bulk collection-replace
// variant some clients used is intentionally unsupported: replacing the
// whole residents array can silently clobber a concurrent admin's edit.
func (s *ResidentService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role == model.RoleAdmin {
		return common.Errorf("cannot delete an admin account: %w", common.ErrForbidden)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
