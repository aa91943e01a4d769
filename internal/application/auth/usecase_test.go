package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panol-api/internal/application/auth"
	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/testutil/memstore"
	"github.com/jhoicas/panol-api/pkg/jwt"
	"github.com/jhoicas/panol-api/pkg/logger"
)

const secret = "test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memstore.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{
		ID: "u-1", Username: "ezequiel", PasswordHash: string(hash), Role: entity.RoleKeyUser,
	}))
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "panol-test"}, "Morning", logger.Nop())
}

func TestLogin_IssuesTokenWithRoleAndShift(t *testing.T) {
	uc := newAuth(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ezequiel", Password: "demo123", Shift: "Noche"})
	require.NoError(t, err)
	assert.Equal(t, "Noche", out.Shift)

	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, entity.RoleKeyUser, id.Role)
	assert.Equal(t, "Noche", id.Shift)
}

func TestLogin_DefaultShift(t *testing.T) {
	out, err := newAuth(t).Login(context.Background(), dto.LoginRequest{Username: "ezequiel", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, "Morning", out.Shift)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ezequiel", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "demo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangeShift_ReissuesToken(t *testing.T) {
	uc := newAuth(t)

	out, err := uc.ChangeShift(context.Background(), jwt.Identity{UserID: "u-1"}, "Tarde")
	require.NoError(t, err)
	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Tarde", id.Shift)
	assert.Equal(t, "ezequiel", id.Username)

	_, err = uc.ChangeShift(context.Background(), jwt.Identity{UserID: "fantasma"}, "Tarde")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
