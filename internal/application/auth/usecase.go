package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
	"github.com/jhoicas/panol-api/pkg/jwt"
	"github.com/jhoicas/panol-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y cambio de turno.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	jwtCfg       JWTConfig
	defaultShift string
	log          *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, defaultShift string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, defaultShift: defaultShift, log: log}
}

// Login verifica username/password y genera un JWT con rol y turno.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	shift := uc.shiftOrDefault(in.Shift)
	token, err := uc.sign(jwt.Identity{UserID: user.ID, Username: user.Username, Role: user.Role, Shift: shift})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user", user.Username).Str("shift", shift).Msg("login")
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
		Shift: shift,
	}, nil
}

// ChangeShift re-emite el token del usuario autenticado con el turno indicado.
func (uc *AuthUseCase) ChangeShift(ctx context.Context, id jwt.Identity, shift string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	shift = uc.shiftOrDefault(shift)
	token, err := uc.sign(jwt.Identity{UserID: user.ID, Username: user.Username, Role: user.Role, Shift: shift})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user), Shift: shift}, nil
}

func (uc *AuthUseCase) sign(id jwt.Identity) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, id)
}

func (uc *AuthUseCase) shiftOrDefault(shift string) string {
	if s := strings.TrimSpace(shift); s != "" {
		return s
	}
	return uc.defaultShift
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
