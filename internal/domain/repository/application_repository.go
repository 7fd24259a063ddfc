package repository

import (
	"time"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
)

// ApplicationFilters filtros opcionales para listar solicitudes.
type ApplicationFilters struct {
	Status      string // exacto; vacío = todos
	RoomID      string
	ApplicantID string
}

// PendingApplicantResult fila cruda del join solicitud-solicitante para el
// detalle público de una sala: solo id de la solicitud y nombre del aplicante.
type PendingApplicantResult struct {
	ApplicationID string
	ApplicantName string
}

// ApplicationRepository define el puerto de persistencia para Application (DIP).
type ApplicationRepository interface {
	Create(app *entity.Application) error
	GetByID(id string) (*entity.Application, error)
	// Update persiste status y reviewed_at (los demás campos son inmutables tras el envío).
	Update(app *entity.Application) error
	// List devuelve las solicitudes que cumplen los filtros, ordenadas por submitted_at descendente.
	List(filters ApplicationFilters, limit, offset int) ([]*entity.Application, error)
	// CountActiveByRoom cuenta solicitudes PENDING o APPROVED de una sala (guard de deleteRoom).
	CountActiveByRoom(roomID string) (int, error)
	// HasPendingByApplicantAndRoom indica si el aplicante ya tiene una solicitud PENDING para la sala.
	HasPendingByApplicantAndRoom(applicantID, roomID string) (bool, error)
	// ListPendingApplicants devuelve los aplicantes de las solicitudes PENDING de una sala.
	ListPendingApplicants(roomID string) ([]PendingApplicantResult, error)
	// RejectPendingByRoom marca REJECTED toda solicitud PENDING de la sala distinta de exceptID.
	RejectPendingByRoom(roomID, exceptID string, reviewedAt time.Time) error
}
