package auth

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
	"github.com/jhoicas/arriendo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol GUEST: valida campos, hashea el password
// con bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if ve := validateRegister(in); ve.HasErrors() {
		return nil, ve
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		HomeAddress:  strings.TrimSpace(in.HomeAddress),
		PasswordHash: string(hash),
		Role:         entity.RoleGuest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo error, para no
// permitir enumerar cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// CurrentUser resuelve el usuario del subject del token (GET /api/auth/me).
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

func validateRegister(in dto.RegisterRequest) *domain.ValidationError {
	ve := domain.NewValidationError()
	if len(strings.TrimSpace(in.Name)) < 3 {
		ve.Add("name", "el nombre debe tener al menos 3 caracteres")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		ve.Add("email", "email inválido")
	}
	if len(strings.TrimSpace(in.Phone)) < 10 {
		ve.Add("phone", "el teléfono debe tener al menos 10 caracteres")
	}
	if len(strings.TrimSpace(in.HomeAddress)) < 5 {
		ve.Add("home_address", "la dirección debe tener al menos 5 caracteres")
	}
	if len(in.Password) < 6 {
		ve.Add("password", "el password debe tener al menos 6 caracteres")
	}
	return ve
}

// ToUserResponse convierte la entidad a su DTO (sin password hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		HomeAddress:  u.HomeAddress,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		BusinessType: u.BusinessType,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
