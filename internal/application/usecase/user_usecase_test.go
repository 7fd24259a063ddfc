package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/usecase"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

func seedUser(repo *fakeUserRepo, id, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	repo.users[id] = &entity.User{
		ID:           id,
		Name:         "Usuario " + id,
		Email:        id + "@test.com",
		PasswordHash: string(hash),
		Role:         entity.RoleGuest,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_Parcial(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	businessName := "Florería Ana"
	out, err := uc.UpdateProfile("user-1", dto.UpdateProfileRequest{BusinessName: &businessName})
	require.NoError(t, err)

	assert.Equal(t, "Florería Ana", out.BusinessName)
	assert.Equal(t, "Usuario user-1", out.Name, "los campos no enviados se conservan")
}

func TestUpdateProfile_AvatarInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	bad := "javascript:alert(1)"
	_, err := uc.UpdateProfile("user-1", dto.UpdateProfileRequest{AvatarURL: &bad})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "avatar_url")
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_VerificaLaActual(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva-muy-larga",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: "secreta-123",
		NewPassword:     "nueva-muy-larga",
	})
	require.NoError(t, err)

	// La nueva contraseña queda activa y la anterior deja de servir.
	stored, _ := repo.GetByID("user-1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-muy-larga")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta-123")))
}

func TestChangePassword_NuevaMuyCorta(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: "secreta-123",
		NewPassword:     "corta",
	})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "new_password")
}

// ──────────────────────────────────────────────────────────────────────────────
// SetRole / List
// ──────────────────────────────────────────────────────────────────────────────

func TestSetRole_ValidaRol(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.SetRole("user-1", entity.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTenant, out.Role)

	_, err = uc.SetRole("user-1", "SUPERADMIN")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetRole("no-existe", entity.RoleTenant)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsers_FiltroDeRolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-1", "secreta-123")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.List(repository.UserFilters{Role: "WIZARD"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.List(repository.UserFilters{Role: entity.RoleGuest}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
