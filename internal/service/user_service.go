package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/credit-score-service/internal/auth"
	"github.com/spec-kit/credit-score-service/internal/domain"
	"github.com/spec-kit/credit-score-service/internal/repository"
	apperrors "github.com/spec-kit/credit-score-service/pkg/util"
)

// UserCreateInput carries the fields for a new user.
type UserCreateInput struct {
	Name     string
	Age      int
	Salary   float64
	Username string
	Password string
}

// UserUpdateInput carries a partial update. Nil fields are left untouched;
// the password is re-hashed only when the field is present, so an omitted
// password never clobbers the stored hash.
type UserUpdateInput struct {
	Name     *string
	Age      *int
	Salary   *float64
	Username *string
	Password *string
}

// UserService implements user CRUD and the credit-score lookup.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUser hashes the password and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Name:         input.Name,
		Age:          input.Age,
		Salary:       input.Salary,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// GetUser fetches a single user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Salary != nil {
		user.Salary = *input.Salary
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

// DeleteUser removes a user and returns the deleted record for the response
// echo.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

// CreditScore resolves the user and evaluates the decision table. A missing
// user is a not-found failure; the table is never consulted for it.
func (s *UserService) CreditScore(ctx context.Context, id string) (int, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return 0, mapUserError(err)
	}
	return domain.CreditScore(user.Age, user.Salary), nil
}

func mapUserError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("user")
	}
	return apperrors.NewInternalError(err)
}
