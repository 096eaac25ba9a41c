package usecase

import (
	"context"
	"fmt"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"
	"eventhub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService covers admin-side user administration. Self-service profile
// operations live in AuthService.
type UserService interface {
	GetUsers(ctx context.Context, role, sort string) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	SetRole(ctx context.Context, userID string, role entity.UserRole) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, role, sort string) ([]response.UserResponse, error) {
	users, err := s.users.FindAll(ctx, role, sort)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) SetRole(ctx context.Context, userID string, role entity.UserRole) (*response.UserResponse, error) {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to set user role",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("set user role: %w", err)
	}

	s.log.Info("User role changed",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
