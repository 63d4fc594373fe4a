package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// fakeUserRepo enforces the unique email constraint in memory.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrDuplicateKey
	}
	user.ID = fmt.Sprintf("user-%d", len(r.byID)+1)
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	existing, ok := r.byID[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	*existing = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func newAuthServiceForTest() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4, // keep hashing cheap in tests
	}}
	return NewAuthService(cfg, repo), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "pass1234", domain.RoleEmployee, "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pass1234", user.PasswordHash)

	loggedIn, token, _, err := svc.Login(ctx, "alice@example.com", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pass1234", domain.RoleEmployee, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Alice", "alice@example.com", "pass5678", domain.RoleEmployee, "")
	require.Error(t, err)
	derr := apperrors.ToDomainError(err)
	assert.Equal(t, "EMAIL_TAKEN", derr.Code)
	assert.Equal(t, http.StatusConflict, derr.HTTPStatus)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "alice@example.com", "pass1234", domain.RoleEmployee, "")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "Alice", "not-an-email", "pass1234", domain.RoleEmployee, "")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "Alice", "alice@example.com", "pass1234", domain.Role("superuser"), "")
	assert.Error(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pass1234", domain.RoleEmployee, "")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "pass1234", domain.RoleEmployee, "")
	require.NoError(t, err)

	// Wrong current password.
	err = svc.ChangePassword(ctx, user.ID, "wrong", "newpass123")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)

	// Too short.
	err = svc.ChangePassword(ctx, user.ID, "pass1234", "abc")
	assert.Error(t, err)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "pass1234", "newpass123"))

	_, _, _, err = svc.Login(ctx, "alice@example.com", "pass1234")
	assert.Error(t, err)
	_, _, _, err = svc.Login(ctx, "alice@example.com", "newpass123")
	assert.NoError(t, err)
}
