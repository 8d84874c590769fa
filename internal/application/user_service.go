package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Eenot/shareit/internal/domain"
	userDomain "github.com/Eenot/shareit/internal/domain/user"
)

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest holds a partial user update; absent fields stay untouched.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserService is the application service for user registration and lookup.
type UserService struct {
	users  userDomain.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser registers a new user. Email addresses are unique.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByEmail(ctx, u.Email(), uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflictError("email " + u.Email() + " is already registered")
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	result := toUserDTO(u)
	return &result, nil
}

// UpdateUser applies a partial update to the user.
func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != u.Email() {
		taken, err := s.users.ExistsByEmail(ctx, req.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError("email " + req.Email + " is already registered")
		}
	}

	u.Rename(req.Name)
	u.ChangeEmail(req.Email)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	result := toUserDTO(u)
	return &result, nil
}

// GetUser returns a single user by id.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := toUserDTO(u)
	return &result, nil
}

// ListUsers returns all registered users.
func (s *UserService) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

func (s *UserService) findUser(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user id is required")
	}
	return s.users.FindByID(ctx, id)
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}
