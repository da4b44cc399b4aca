package service

import (
	"context"
	"errors"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
	"newsroom/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	hashCost int
}

// RegisterInput carries the raw sign-up form. Age is kept as submitted so
// non-numeric input can be reported against the field.
type RegisterInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
	Age       string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo, hashCost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost, e.g. bcrypt.MinCost in tests.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// DeleteUser removes the user along with their articles and comments.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

// Register validates every field, reporting all problems at once, and creates the user.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	fields := models.FieldErrors{}
	if in.Username == "" {
		fields.Add("username", validation.ErrRequired.Error())
	} else if err := validation.ValidateUsername(in.Username); err != nil {
		fields.Add("username", err.Error())
	}
	if in.Email == "" {
		fields.Add("email", validation.ErrRequired.Error())
	} else if err := validation.ValidateEmail(in.Email); err != nil {
		fields.Add("email", err.Error())
	}
	if in.Password1 == "" {
		fields.Add("password1", validation.ErrRequired.Error())
	} else if err := validation.ValidatePassword(in.Password1); err != nil {
		fields.Add("password1", err.Error())
	}
	if in.Password2 == "" {
		fields.Add("password2", validation.ErrRequired.Error())
	} else if err := validation.PasswordsMatch(in.Password1, in.Password2); err != nil {
		fields.Add("password2", err.Error())
	}
	age, err := validation.ParseAge(in.Age)
	if err != nil {
		fields.Add("age", err.Error())
	}

	if _, ok := fields["username"]; !ok {
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			fields.Add("username", "A user with that username already exists.")
		}
	}
	if _, ok := fields["email"]; !ok {
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			fields.Add("email", "A user with that email already exists.")
		}
	}

	if len(fields) > 0 {
		observability.AuthEvents.WithLabelValues("signup", "invalid").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password1), s.hashCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Account: models.Account{
			Username: in.Username,
			Email:    in.Email,
			Password: string(hash),
		},
		Profile: models.Profile{Age: age},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		observability.AuthEvents.WithLabelValues("signup", "invalid").Inc()
		return nil, err
	}

	observability.AuthEvents.WithLabelValues("signup", "success").Inc()
	return user, nil
}

// ErrInvalidCredentials is returned by Authenticate for an unknown user or wrong password.
var ErrInvalidCredentials = models.NewUnauthorizedError("Please enter a correct username and password.")

// Authenticate verifies username and password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.AuthEvents.WithLabelValues("login", "failure").Inc()
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		observability.AuthEvents.WithLabelValues("login", "failure").Inc()
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, models.NewInternalError(err)
	}

	observability.AuthEvents.WithLabelValues("login", "success").Inc()
	return user, nil
}
