package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/arriendo-api/internal/application/auth"
	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ repository.UserFilters, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "arriendo-api-test",
	})
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:        "María Pérez",
		Email:       "Maria.Perez@Test.com",
		Phone:       "+56 9 1234 5678",
		HomeAddress: "Av. Siempre Viva 742",
		Password:    "secreta-123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaGuestConEmailNormalizado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	user, err := uc.Register(validRegister())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleGuest, user.Role, "todo registro entra como GUEST")
	assert.Equal(t, "maria.perez@test.com", user.Email, "el email se guarda en minúsculas")
	assert.NotEmpty(t, user.ID)

	// El hash persiste, nunca el password plano.
	stored, err := repo.GetByEmail("maria.perez@test.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta-123")))
}

func TestRegister_ValidacionCampoACampo(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	in := dto.RegisterRequest{
		Name:        "Al",          // < 3
		Email:       "no-es-email", // sin formato de email
		Phone:       "12345",       // < 10
		HomeAddress: "x",           // < 5
		Password:    "corta",       // < 6
	}
	_, err := uc.Register(in)
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "debe reportar todos los campos a la vez")
	assert.Len(t, ve.Fields, 5)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "home_address")
	assert.Contains(t, ve.Fields, "password")
}

func TestRegister_EmailDuplicado_EsConflicto(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	// Mismo email con distinta capitalización: sigue siendo duplicado.
	in := validRegister()
	in.Email = "MARIA.PEREZ@test.com"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_RetornaTokenYUsuario(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	registered, err := uc.Register(validRegister())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria.perez@test.com", Password: "secreta-123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)
	assert.Equal(t, entity.RoleGuest, out.User.Role)
}

// Email desconocido y password incorrecto deben ser indistinguibles para el
// cliente: mismo error en ambos casos.
func TestLogin_ErrorUniformeAnteCredencialesInvalidas(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "secreta-123"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "maria.perez@test.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPass)
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_Inexistente_Retorna404(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.CurrentUser("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
