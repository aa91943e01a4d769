package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/usecase"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/testutil/memstore"
)

func TestUserUseCase_CreateDefaults(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewUserUseCase(store.Users())
	ctx := context.Background()

	out, err := uc.Create(ctx, keyUser, dto.CreateUserRequest{Username: "juan"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, out.Role)

	u, err := store.Users().GetByUsername(ctx, "juan")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(usecase.DefaultPassword)))
}

func TestUserUseCase_CreateRules(t *testing.T) {
	uc := usecase.NewUserUseCase(memstore.New().Users())
	ctx := context.Background()

	_, err := uc.Create(ctx, operador, dto.CreateUserRequest{Username: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, keyUser, dto.CreateUserRequest{Username: "x", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, keyUser, dto.CreateUserRequest{Username: "x", Role: entity.RoleKeyUser, Password: "secreto"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, keyUser, dto.CreateUserRequest{Username: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	_, err = uc.List(ctx, operador)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	list, err := uc.List(ctx, keyUser)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
