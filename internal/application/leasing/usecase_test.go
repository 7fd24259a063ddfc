package leasing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Implementan los puertos de repositorio sobre maps. El fakeTxRunner pasa los
// mismos fakes como repos transaccionales: no hay rollback real, pero alcanza
// para verificar la cascada de la revisión.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ repository.UserFilters, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[string]*entity.Room{}}
}

func (r *fakeRoomRepo) Create(room *entity.Room) error {
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) GetByID(id string) (*entity.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) Update(room *entity.Room) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) List(_ repository.RoomFilters, _, _ int) ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		cp := *room
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRoomRepo) Delete(id string) error {
	if _, ok := r.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

type fakeAppRepo struct {
	apps map[string]*entity.Application
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[string]*entity.Application{}}
}

func (r *fakeAppRepo) Create(app *entity.Application) error {
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeAppRepo) GetByID(id string) (*entity.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (r *fakeAppRepo) Update(app *entity.Application) error {
	if _, ok := r.apps[app.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeAppRepo) List(filters repository.ApplicationFilters, _, _ int) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, app := range r.apps {
		if filters.Status != "" && app.Status != filters.Status {
			continue
		}
		if filters.RoomID != "" && app.RoomID != filters.RoomID {
			continue
		}
		if filters.ApplicantID != "" && app.ApplicantID != filters.ApplicantID {
			continue
		}
		cp := *app
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAppRepo) CountActiveByRoom(roomID string) (int, error) {
	count := 0
	for _, app := range r.apps {
		if app.RoomID == roomID && (app.Status == entity.ApplicationPending || app.Status == entity.ApplicationApproved) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppRepo) HasPendingByApplicantAndRoom(applicantID, roomID string) (bool, error) {
	for _, app := range r.apps {
		if app.ApplicantID == applicantID && app.RoomID == roomID && app.Status == entity.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppRepo) ListPendingApplicants(roomID string) ([]repository.PendingApplicantResult, error) {
	var out []repository.PendingApplicantResult
	for _, app := range r.apps {
		if app.RoomID == roomID && app.Status == entity.ApplicationPending {
			out = append(out, repository.PendingApplicantResult{ApplicationID: app.ID})
		}
	}
	return out, nil
}

func (r *fakeAppRepo) RejectPendingByRoom(roomID, exceptID string, reviewedAt time.Time) error {
	for _, app := range r.apps {
		if app.RoomID == roomID && app.ID != exceptID && app.Status == entity.ApplicationPending {
			app.Status = entity.ApplicationRejected
			at := reviewedAt
			app.ReviewedAt = &at
		}
	}
	return nil
}

type fakeDocRepo struct {
	docs []*entity.LegalDocument
}

func (r *fakeDocRepo) Create(doc *entity.LegalDocument) error {
	cp := *doc
	r.docs = append(r.docs, &cp)
	return nil
}

func (r *fakeDocRepo) ListByTenant(tenantID string) ([]*entity.LegalDocument, error) {
	var out []*entity.LegalDocument
	for _, d := range r.docs {
		if d.TenantID == tenantID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events []*entity.LogisticsEvent
}

func (r *fakeEventRepo) Create(ev *entity.LogisticsEvent) error {
	cp := *ev
	r.events = append(r.events, &cp)
	return nil
}

func (r *fakeEventRepo) ListUpcomingByTenant(tenantID string, from time.Time, _ int) ([]*entity.LogisticsEvent, error) {
	var out []*entity.LogisticsEvent
	for _, ev := range r.events {
		if ev.TenantID == tenantID && !ev.ScheduledAt.Before(from) {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	repos leasing.TxRepos
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(leasing.TxRepos) error) error {
	return fn(tx.repos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type leasingFixture struct {
	uc        *leasing.LeasingUseCase
	userRepo  *fakeUserRepo
	roomRepo  *fakeRoomRepo
	appRepo   *fakeAppRepo
	docRepo   *fakeDocRepo
	eventRepo *fakeEventRepo
}

func newLeasingFixture() *leasingFixture {
	userRepo := newFakeUserRepo()
	roomRepo := newFakeRoomRepo()
	appRepo := newFakeAppRepo()
	docRepo := &fakeDocRepo{}
	eventRepo := &fakeEventRepo{}
	tx := &fakeTxRunner{repos: leasing.TxRepos{
		Rooms:        roomRepo,
		Applications: appRepo,
		Users:        userRepo,
		Documents:    docRepo,
		Events:       eventRepo,
	}}
	return &leasingFixture{
		uc:        leasing.NewLeasingUseCase(roomRepo, appRepo, userRepo, tx),
		userRepo:  userRepo,
		roomRepo:  roomRepo,
		appRepo:   appRepo,
		docRepo:   docRepo,
		eventRepo: eventRepo,
	}
}

func (f *leasingFixture) addGuest(id string) {
	f.userRepo.users[id] = &entity.User{
		ID: id, Name: "Guest " + id, Email: id + "@test.com", Role: entity.RoleGuest,
	}
}

func (f *leasingFixture) addRoom(id, status string) {
	f.roomRepo.rooms[id] = &entity.Room{
		ID: id, Name: "Sala " + id, Status: status,
		MonthlyRent: decimal.NewFromInt(8000), Deposit: decimal.NewFromInt(8000),
		SizeSqFt: 84,
	}
}

func validSubmit(roomID string) dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		RoomID:         roomID,
		BusinessName:   "Cafetería La Esquina",
		BusinessType:   "Gastronomía",
		BusinessPlan:   strings.Repeat("plan de negocio detallado ", 5),
		ExpectedMoveIn: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		SupportingDocs: []string{"https://docs.test/rut.pdf"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_CreaSolicitudPendiente(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	resp, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationPending, resp.Status)
	assert.Equal(t, "guest-1", resp.ApplicantID)
	assert.Equal(t, "room-1", resp.RoomID)
	assert.Equal(t, "Sala room-1", resp.RoomName)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.ReviewedAt)
}

// Postular a una sala no disponible es conflicto aunque el payload venga roto:
// el estado de la sala se chequea antes que los campos.
func TestSubmit_SalaNoDisponible_EsConflictoAunPayloadInvalido(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomOccupied)

	in := validSubmit("room-1")
	in.BusinessPlan = "corto" // inválido, pero no debe importar

	_, err := f.uc.Submit("guest-1", in)
	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)
}

func TestSubmit_SalaInexistente_Retorna404(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")

	_, err := f.uc.Submit("guest-1", validSubmit("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_ValidacionCampoACampo(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	in := validSubmit("room-1")
	in.BusinessName = "X"                     // < 2
	in.BusinessPlan = "demasiado corto"       // < 100
	in.ExpectedMoveIn = "2020-01-01"          // pasado
	in.SupportingDocs = []string{"not-a-url"} // URL inválida

	_, err := f.uc.Submit("guest-1", in)
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "debe ser un error de validación con detalle por campo")
	assert.Contains(t, ve.Fields, "business_name")
	assert.Contains(t, ve.Fields, "business_plan")
	assert.Contains(t, ve.Fields, "expected_move_in")
	assert.Contains(t, ve.Fields, "supporting_docs")
}

func TestSubmit_DuplicadaPendiente_EsConflicto(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	_, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	_, err = f.uc.Submit("guest-1", validSubmit("room-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Dos aplicantes distintos sí pueden tener PENDING sobre la misma sala.
func TestSubmit_AplicantesDistintosMismaSala_OK(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addGuest("guest-2")
	f.addRoom("room-1", entity.RoomAvailable)

	_, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)
	_, err = f.uc.Submit("guest-2", validSubmit("room-1"))
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Review — cascada de aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestReview_Approve_EjecutaCascadaCompleta(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addGuest("guest-2")
	f.addRoom("room-1", entity.RoomAvailable)

	winner, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)
	loser, err := f.uc.Submit("guest-2", validSubmit("room-1"))
	require.NoError(t, err)

	resp, err := f.uc.Review(context.Background(), winner.ID, dto.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationApproved, resp.Status)
	require.NotNil(t, resp.ReviewedAt)

	// La sala queda PENDING (reservada) con el aplicante como tenant actual.
	room, _ := f.roomRepo.GetByID("room-1")
	assert.Equal(t, entity.RoomPending, room.Status)
	require.NotNil(t, room.CurrentTenantID)
	assert.Equal(t, "guest-1", *room.CurrentTenantID)

	// El aplicante GUEST fue promovido a TENANT.
	applicant, _ := f.userRepo.GetByID("guest-1")
	assert.Equal(t, entity.RoleTenant, applicant.Role)

	// La solicitud hermana quedó rechazada automáticamente.
	sibling, _ := f.appRepo.GetByID(loser.ID)
	assert.Equal(t, entity.ApplicationRejected, sibling.Status)

	// Se generó el contrato como documento legal del tenant.
	docs, _ := f.docRepo.ListByTenant("guest-1")
	require.Len(t, docs, 1)
	assert.Equal(t, leasing.LeaseContractType, docs[0].Type)
	assert.Contains(t, docs[0].PDFURL, winner.ID)

	// Y la mudanza quedó agendada en la fecha comprometida.
	require.Len(t, f.eventRepo.events, 1)
	event := f.eventRepo.events[0]
	assert.Equal(t, entity.EventMoveIn, event.EventType)
	assert.Equal(t, "guest-1", event.TenantID)
	require.NotNil(t, event.ApplicationID)
	assert.Equal(t, winner.ID, *event.ApplicationID)
	assert.Equal(t, winner.ExpectedMoveIn, event.ScheduledAt)
	assert.Equal(t, "Mudanza a Sala room-1", event.Title)
}

func TestReview_Approve_NoDegradaRolTenant(t *testing.T) {
	f := newLeasingFixture()
	f.addRoom("room-1", entity.RoomAvailable)
	f.userRepo.users["tenant-1"] = &entity.User{
		ID: "tenant-1", Name: "Tenant", Email: "t@test.com", Role: entity.RoleTenant,
	}

	app, err := f.uc.Submit("tenant-1", validSubmit("room-1"))
	require.NoError(t, err)

	_, err = f.uc.Review(context.Background(), app.ID, dto.DecisionApprove)
	require.NoError(t, err)

	applicant, _ := f.userRepo.GetByID("tenant-1")
	assert.Equal(t, entity.RoleTenant, applicant.Role, "un TENANT aprobado sigue siendo TENANT")
}

func TestReview_Reject_NoTocaSalaNiRol(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	app, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	resp, err := f.uc.Review(context.Background(), app.ID, dto.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationRejected, resp.Status)

	room, _ := f.roomRepo.GetByID("room-1")
	assert.Equal(t, entity.RoomAvailable, room.Status)
	assert.Nil(t, room.CurrentTenantID)

	applicant, _ := f.userRepo.GetByID("guest-1")
	assert.Equal(t, entity.RoleGuest, applicant.Role)

	docs, _ := f.docRepo.ListByTenant("guest-1")
	assert.Empty(t, docs, "un rechazo no genera contrato")
	assert.Empty(t, f.eventRepo.events, "un rechazo no agenda eventos")
}

func TestReview_SolicitudYaRevisada_EsConflicto(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	app, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	_, err = f.uc.Review(context.Background(), app.ID, dto.DecisionReject)
	require.NoError(t, err)

	_, err = f.uc.Review(context.Background(), app.ID, dto.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

// Si la sala salió de AVAILABLE entre el submit y la revisión (otro admin
// aprobó otra solicitud o la sala entró a mantención), aprobar es conflicto.
func TestReview_SalaYaNoDisponible_EsConflicto(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addRoom("room-1", entity.RoomAvailable)

	app, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)

	room, _ := f.roomRepo.GetByID("room-1")
	room.Status = entity.RoomMaintenance
	require.NoError(t, f.roomRepo.Update(room))

	_, err = f.uc.Review(context.Background(), app.ID, dto.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)
}

func TestReview_DecisionInvalida(t *testing.T) {
	f := newLeasingFixture()
	_, err := f.uc.Review(context.Background(), "cualquiera", "MAYBE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestList_NoAdminSoloVeLasPropias(t *testing.T) {
	f := newLeasingFixture()
	f.addGuest("guest-1")
	f.addGuest("guest-2")
	f.addRoom("room-1", entity.RoomAvailable)
	f.addRoom("room-2", entity.RoomAvailable)

	_, err := f.uc.Submit("guest-1", validSubmit("room-1"))
	require.NoError(t, err)
	_, err = f.uc.Submit("guest-2", validSubmit("room-2"))
	require.NoError(t, err)

	// guest-1 pide "todas" pero el filtro se fuerza a su propio id.
	page := dto.PageRequest{}
	page.DefaultPage()
	apps, err := f.uc.List("guest-1", entity.RoleGuest, repository.ApplicationFilters{}, page)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "guest-1", apps[0].ApplicantID)

	// Un admin sí ve ambas.
	apps, err = f.uc.List("admin-1", entity.RoleAdmin, repository.ApplicationFilters{}, page)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}
