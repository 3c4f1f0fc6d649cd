package service

import (
	"context"
	"errors"
	"fmt"

	"smartpg/internal/common"
	"smartpg/internal/common/security"
	"smartpg/internal/domain/model"
	"smartpg/internal/domain/repository"
	"smartpg/internal/platform/config"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	RoomNumber  string `json:"roomNumber"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a resident account. Registration never auto-logins; the
// caller is expected to go through Login afterwards.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RoomNumber == "" || req.PhoneNumber == "" {
		return nil, common.Errorf("name, email, password, roomNumber and phoneNumber are required: %w", common.ErrBadRequest)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             "res-" + uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           model.RoleResident,
		RoomNumber:     req.RoomNumber,
		PhoneNumber:    req.PhoneNumber,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = ""
	return user, nil
}

// Login authenticates against the role the caller selected on the login
// screen. A valid account presented under the wrong panel is rejected, not
// silently logged in with its real role.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("email and password are required: %w", common.ErrBadRequest)
	}
	if !model.ValidRole(req.Role) {
		return nil, common.Errorf("unknown role %q: %w", req.Role, common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, invalidCredentials(req.Role)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, invalidCredentials(req.Role)
	}

	if user.Role != req.Role {
		if req.Role == model.RoleResident {
			return nil, common.Errorf("account not authorized for resident login: %w", common.ErrForbidden)
		}
		return nil, invalidCredentials(req.Role)
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = ""
	return &AuthResponse{User: user, Token: token}, nil
}

// EnsureAdmin bootstraps the facility-owner account from configuration so a
// fresh database always has exactly one way in for the admin.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindByEmail(ctx, config.AppConfig.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hashedPassword, err := security.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &model.User{
		ID:             "admin-" + uuid.NewString(),
		Name:           config.AppConfig.AdminName,
		Email:          config.AppConfig.AdminEmail,
		HashedPassword: hashedPassword,
		Role:           model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	return nil
}

func invalidCredentials(role string) error {
	if role == model.RoleAdmin {
		return common.Errorf("invalid owner credentials: %w", common.ErrUnauthorized)
	}
	return common.Errorf("invalid resident credentials: %w", common.ErrUnauthorized)
}
