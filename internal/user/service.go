package user

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a request field that failed validation before any
// store call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, user User) (User, error) {
	if err := s.validateFields(user.Name, user.Email); err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, user)
}

func (s *Service) Update(ctx context.Context, id int, update User) (User, error) {
	if err := s.validateFields(update.Name, update.Email); err != nil {
		return User{}, err
	}

	return s.repo.Update(ctx, id, update)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) validateFields(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return &ValidationError{Field: "email", Reason: "must be a well-formed email address"}
	}
	return nil
}
