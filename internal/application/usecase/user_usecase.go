package usecase

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/arriendo-api/internal/application/auth"
	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios: perfil propio, rotación
// de contraseña, cambio de rol y listado (estos dos últimos solo ADMIN; el
// handler aplica el RBAC, aquí se asume caller autorizado).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// UpdateProfile actualización parcial del perfil del usuario de la sesión.
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	ve := domain.NewValidationError()
	if in.Name != nil && len(strings.TrimSpace(*in.Name)) < 2 {
		ve.Add("name", "el nombre debe tener al menos 2 caracteres")
	}
	if in.AvatarURL != nil && !validURL(*in.AvatarURL) {
		ve.Add("avatar_url", "URL inválida")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.BusinessName != nil {
		user.BusinessName = strings.TrimSpace(*in.BusinessName)
	}
	if in.BusinessType != nil {
		user.BusinessType = strings.TrimSpace(*in.BusinessType)
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ChangePassword rota la contraseña del usuario de la sesión. Verifica la
// contraseña actual antes de aceptar la nueva.
func (uc *UserUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		ve := domain.NewValidationError()
		ve.Add("new_password", "la nueva contraseña debe tener al menos 8 caracteres")
		return ve
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// SetRole cambia el rol de un usuario (operación de ADMIN).
func (uc *UserUseCase) SetRole(targetUserID, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con filtros de rol y búsqueda libre (operación de ADMIN).
func (uc *UserUseCase) List(filters repository.UserFilters, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	if filters.Role != "" && !entity.ValidRole(filters.Role) {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.repo.List(filters, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// validURL acepta solo URLs http(s) absolutas.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
