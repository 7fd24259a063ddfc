// Package leasing contiene el workflow de solicitudes de arriendo:
// envío por parte de un GUEST/TENANT, revisión por parte del ADMIN y la
// cascada de aprobación (sala, rol del aplicante, rechazo de hermanas,
// registro del contrato y agenda de la mudanza), todo dentro de una
// transacción.
package leasing

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// LeaseContractType tipo del documento legal que registra la aprobación.
const LeaseContractType = "LEASE_CONTRACT"

// LeasingUseCase workflow de solicitudes. La máquina de estados por
// solicitud es PENDING -> {APPROVED, REJECTED}; ambos terminales.
type LeasingUseCase struct {
	roomRepo repository.RoomRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	tx       TxRunner
}

// NewLeasingUseCase construye el caso de uso.
func NewLeasingUseCase(
	roomRepo repository.RoomRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
) *LeasingUseCase {
	return &LeasingUseCase{roomRepo: roomRepo, appRepo: appRepo, userRepo: userRepo, tx: tx}
}

// Submit crea una solicitud PENDING para una sala AVAILABLE.
// El estado de la sala se chequea antes que los campos: postular a una sala
// no disponible es conflicto aunque el payload venga perfecto o roto.
func (uc *LeasingUseCase) Submit(applicantID string, in dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	if strings.TrimSpace(in.RoomID) == "" {
		ve := domain.NewValidationError()
		ve.Add("room_id", "la sala es requerida")
		return nil, ve
	}
	room, err := uc.roomRepo.GetByID(in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if room.Status != entity.RoomAvailable {
		return nil, domain.ErrRoomNotAvailable
	}

	moveIn, ve := validateSubmit(in)
	if ve.HasErrors() {
		return nil, ve
	}

	pending, err := uc.appRepo.HasPendingByApplicantAndRoom(applicantID, in.RoomID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrDuplicate
	}

	app := &entity.Application{
		ID:             uuid.New().String(),
		ApplicantID:    applicantID,
		RoomID:         in.RoomID,
		BusinessName:   strings.TrimSpace(in.BusinessName),
		BusinessType:   strings.TrimSpace(in.BusinessType),
		BusinessPlan:   in.BusinessPlan,
		ExpectedMoveIn: moveIn,
		SupportingDocs: in.SupportingDocs,
		Status:         entity.ApplicationPending,
		SubmittedAt:    time.Now(),
	}
	if err := uc.appRepo.Create(app); err != nil {
		return nil, err
	}
	resp := toApplicationResponse(app)
	resp.RoomName = room.Name
	return resp, nil
}

// Review decide una solicitud PENDING. Toda la cascada de APPROVE corre en
// una transacción: si dos admins aprueban a la vez solicitudes distintas de
// la misma sala, la segunda encuentra la sala fuera de AVAILABLE (o su
// solicitud ya rechazada) y falla con conflicto.
func (uc *LeasingUseCase) Review(ctx context.Context, applicationID, decision string) (*dto.ApplicationResponse, error) {
	if decision != dto.DecisionApprove && decision != dto.DecisionReject {
		return nil, domain.ErrInvalidInput
	}

	var reviewed *entity.Application
	var roomName string
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		app, err := repos.Applications.GetByID(applicationID)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrNotFound
		}
		if app.Terminal() {
			return domain.ErrNotPending
		}
		now := time.Now()
		app.ReviewedAt = &now

		if decision == dto.DecisionReject {
			app.Status = entity.ApplicationRejected
			if err := repos.Applications.Update(app); err != nil {
				return err
			}
			reviewed = app
			return nil
		}

		room, err := repos.Rooms.GetByID(app.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if room.Status != entity.RoomAvailable {
			return domain.ErrRoomNotAvailable
		}

		app.Status = entity.ApplicationApproved
		if err := repos.Applications.Update(app); err != nil {
			return err
		}

		// PENDING y no OCCUPIED: la sala queda reservada esperando pago/mudanza.
		room.Status = entity.RoomPending
		room.CurrentTenantID = &app.ApplicantID
		room.UpdatedAt = now
		if err := repos.Rooms.Update(room); err != nil {
			return err
		}
		roomName = room.Name

		applicant, err := repos.Users.GetByID(app.ApplicantID)
		if err != nil {
			return err
		}
		if applicant == nil {
			return domain.ErrUserNotFound
		}
		if applicant.Role == entity.RoleGuest {
			applicant.Role = entity.RoleTenant
			applicant.UpdatedAt = now
			if err := repos.Users.Update(applicant); err != nil {
				return err
			}
		}

		// Una sola aprobación por sala: las hermanas PENDING quedan rechazadas.
		if err := repos.Applications.RejectPendingByRoom(app.RoomID, app.ID, now); err != nil {
			return err
		}

		doc := &entity.LegalDocument{
			ID:        uuid.New().String(),
			TenantID:  app.ApplicantID,
			Type:      LeaseContractType,
			PDFURL:    "/api/applications/" + app.ID + "/contract.pdf",
			CreatedAt: now,
		}
		if err := repos.Documents.Create(doc); err != nil {
			return err
		}

		// La mudanza queda agendada en la fecha comprometida de la solicitud,
		// para que aparezca en el portal del tenant.
		event := &entity.LogisticsEvent{
			ID:            uuid.New().String(),
			TenantID:      app.ApplicantID,
			ApplicationID: &app.ID,
			Title:         "Mudanza a " + room.Name,
			EventType:     entity.EventMoveIn,
			ScheduledAt:   app.ExpectedMoveIn,
			CreatedAt:     now,
		}
		if err := repos.Events.Create(event); err != nil {
			return err
		}

		reviewed = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toApplicationResponse(reviewed)
	resp.RoomName = roomName
	return resp, nil
}

// List lista solicitudes. Un ADMIN ve todas con los filtros pedidos; a
// cualquier otro caller se le fuerza applicant_id = su propio id, venga lo
// que venga en el query.
func (uc *LeasingUseCase) List(callerID, callerRole string, filters repository.ApplicationFilters, page dto.PageRequest) ([]*dto.ApplicationResponse, error) {
	page.DefaultPage()
	if callerRole != entity.RoleAdmin {
		filters.ApplicantID = callerID
	}
	if filters.Status != "" &&
		filters.Status != entity.ApplicationPending &&
		filters.Status != entity.ApplicationApproved &&
		filters.Status != entity.ApplicationRejected {
		return nil, domain.ErrInvalidInput
	}
	apps, err := uc.appRepo.List(filters, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	// Nombre de sala por respuesta; cache por si varias solicitudes comparten sala.
	roomNames := map[string]string{}
	out := make([]*dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp := toApplicationResponse(app)
		name, ok := roomNames[app.RoomID]
		if !ok {
			room, err := uc.roomRepo.GetByID(app.RoomID)
			if err != nil {
				return nil, err
			}
			if room != nil {
				name = room.Name
			}
			roomNames[app.RoomID] = name
		}
		resp.RoomName = name
		out = append(out, resp)
	}
	return out, nil
}

func validateSubmit(in dto.SubmitApplicationRequest) (time.Time, *domain.ValidationError) {
	ve := domain.NewValidationError()
	if len(strings.TrimSpace(in.BusinessName)) < 2 {
		ve.Add("business_name", "el nombre del negocio debe tener al menos 2 caracteres")
	}
	if len(strings.TrimSpace(in.BusinessType)) < 2 {
		ve.Add("business_type", "el tipo de negocio debe tener al menos 2 caracteres")
	}
	if len(in.BusinessPlan) < 100 {
		ve.Add("business_plan", "el plan de negocio debe tener al menos 100 caracteres")
	}
	moveIn, err := parseMoveInDate(in.ExpectedMoveIn)
	if err != nil {
		ve.Add("expected_move_in", "fecha inválida")
	} else if moveIn.Before(startOfToday()) {
		ve.Add("expected_move_in", "la fecha de mudanza no puede estar en el pasado")
	}
	if len(in.SupportingDocs) == 0 {
		ve.Add("supporting_docs", "se requiere al menos un documento de soporte")
	}
	for _, doc := range in.SupportingDocs {
		if !validDocURL(doc) {
			ve.Add("supporting_docs", "URL inválida: "+doc)
			break
		}
	}
	return moveIn, ve
}

// parseMoveInDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseMoveInDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func validDocURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func toApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}
	docs := a.SupportingDocs
	if docs == nil {
		docs = []string{}
	}
	return &dto.ApplicationResponse{
		ID:             a.ID,
		ApplicantID:    a.ApplicantID,
		RoomID:         a.RoomID,
		BusinessName:   a.BusinessName,
		BusinessType:   a.BusinessType,
		BusinessPlan:   a.BusinessPlan,
		ExpectedMoveIn: a.ExpectedMoveIn,
		SupportingDocs: docs,
		Status:         a.Status,
		SubmittedAt:    a.SubmittedAt,
		ReviewedAt:     a.ReviewedAt,
	}
}
