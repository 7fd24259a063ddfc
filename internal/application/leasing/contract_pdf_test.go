package leasing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
)

// fakePDFGenerator registra la llamada y devuelve bytes fijos.
type fakePDFGenerator struct {
	calls int
}

func (g *fakePDFGenerator) GenerateLeasePDF(_ context.Context, _ *entity.Application, _ *entity.Room, _ *entity.User) ([]byte, error) {
	g.calls++
	return []byte("%PDF-fake"), nil
}

// contractFixture: una solicitud aprobada lista para descargar su contrato.
func contractFixture(t *testing.T) (*leasing.ContractPDFUseCase, *fakePDFGenerator, string) {
	t.Helper()
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	app, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)
	_, err = f.uc.Review(context.Background(), app.ID, dto.DecisionApprove)
	require.NoError(t, err)

	gen := &fakePDFGenerator{}
	uc := leasing.NewContractPDFUseCase(f.appRepo, f.roomRepo, f.userRepo, gen)
	return uc, gen, app.ID
}

func TestContractPDF_AplicantePuedeDescargar(t *testing.T) {
	uc, gen, appID := contractFixture(t)

	bytes, err := uc.Generate(context.Background(), "guest-1", entity.RoleTenant, appID)
	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
	assert.Equal(t, 1, gen.calls)
}

func TestContractPDF_AdminPuedeDescargar(t *testing.T) {
	uc, _, appID := contractFixture(t)

	_, err := uc.Generate(context.Background(), "admin-1", entity.RoleAdmin, appID)
	assert.NoError(t, err)
}

func TestContractPDF_TerceroBloqueado(t *testing.T) {
	uc, gen, appID := contractFixture(t)

	_, err := uc.Generate(context.Background(), "otro-usuario", entity.RoleTenant, appID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, gen.calls, "el generador no debe invocarse si el caller no tiene acceso")
}

func TestContractPDF_SolicitudNoAprobada_EsConflicto(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)
	app, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	uc := leasing.NewContractPDFUseCase(f.appRepo, f.roomRepo, f.userRepo, &fakePDFGenerator{})
	_, err = uc.Generate(context.Background(), "guest-1", entity.RoleGuest, app.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestContractPDF_SolicitudInexistente_Retorna404(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Generate(context.Background(), "guest-1", entity.RoleTenant, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
