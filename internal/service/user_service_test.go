package service

import (
	"context"
	"testing"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password1: "SecurePass12!",
		Password2: "SecurePass12!",
		Age:       "13",
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("thirteen is accepted and password is hashed", func(t *testing.T) {
		t.Parallel()
		var saved *models.User
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			saved = u
			return nil
		}
		svc := NewUserService(repo).WithHashCost(bcrypt.MinCost)

		user, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		require.NotNil(t, saved)
		assert.Equal(t, 13, saved.Age)
		assert.NotEqual(t, "SecurePass12!", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("SecurePass12!")))
	})

	t.Run("twelve is rejected without a write", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, _ *models.User) error {
			t.Fatal("create must not be called")
			return nil
		}
		svc := NewUserService(repo).WithHashCost(bcrypt.MinCost)

		in := validRegistration()
		in.Age = "12"
		_, err := svc.Register(ctx, in)
		appErr := assertValidationError(t, err)
		assert.Equal(t, []string{"You must be 13+ years old"}, appErr.Fields["age"])
	})

	t.Run("missing and malformed age", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo()).WithHashCost(bcrypt.MinCost)

		for _, age := range []string{"", "abc", "0"} {
			in := validRegistration()
			in.Age = age
			_, err := svc.Register(ctx, in)
			appErr := assertValidationError(t, err)
			assert.Contains(t, appErr.Fields, "age", "age %q", age)
		}
	})

	t.Run("all field errors are reported together", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo()).WithHashCost(bcrypt.MinCost)

		_, err := svc.Register(ctx, RegisterInput{Username: "a", Email: "nope", Password1: "short", Password2: "other", Age: "5"})
		appErr := assertValidationError(t, err)
		for _, field := range []string{"username", "email", "password1", "password2", "age"} {
			assert.Contains(t, appErr.Fields, field)
		}
	})

	t.Run("duplicate username and email", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) { return &models.User{ID: 1}, nil }
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) { return &models.User{ID: 1}, nil }
		svc := NewUserService(repo).WithHashCost(bcrypt.MinCost)

		_, err := svc.Register(ctx, validRegistration())
		appErr := assertValidationError(t, err)
		assert.Equal(t, []string{"A user with that username already exists."}, appErr.Fields["username"])
		assert.Equal(t, []string{"A user with that email already exists."}, appErr.Fields["email"])
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username != "alice" {
			return nil, nil
		}
		return &models.User{ID: 1, Account: models.Account{Username: "alice", Password: string(hash)}}, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "alice", "SecurePass12!")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assertErrorCode(t, err, models.CodeUnauthorized)

	_, err = svc.Authenticate(ctx, "ghost", "SecurePass12!")
	assertErrorCode(t, err, models.CodeUnauthorized)
}
