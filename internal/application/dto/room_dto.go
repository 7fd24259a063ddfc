package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRoomRequest entrada para crear una sala.
type CreateRoomRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"required,min=10"`
	SizeSqFt    int             `json:"size_sq_ft" validate:"required,gt=0"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" validate:"required"`
	Deposit     decimal.Decimal `json:"deposit" validate:"required"`
	Status      string          `json:"status" validate:"omitempty,oneof=AVAILABLE PENDING OCCUPIED MAINTENANCE"`
	Photos      []string        `json:"photos" validate:"omitempty,dive,url"`
}

// UpdateRoomRequest actualización parcial de una sala (mismas reglas que create).
type UpdateRoomRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2"`
	Description *string          `json:"description" validate:"omitempty,min=10"`
	SizeSqFt    *int             `json:"size_sq_ft" validate:"omitempty,gt=0"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent"`
	Deposit     *decimal.Decimal `json:"deposit"`
	Status      *string          `json:"status" validate:"omitempty,oneof=AVAILABLE PENDING OCCUPIED MAINTENANCE"`
	Photos      []string         `json:"photos" validate:"omitempty,dive,url"`
}

// UpdateRoomStatusRequest transición directa de estado (solo ADMIN, sin guards).
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE PENDING OCCUPIED MAINTENANCE"`
}

// AddPhotosRequest agrega URLs a la lista ordenada de fotos.
type AddPhotosRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}

// RemovePhotoRequest quita una URL de la lista de fotos.
type RemovePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ListRoomsRequest filtros del listado público de salas.
type ListRoomsRequest struct {
	Status  string `query:"status"`
	MinRent string `query:"min_rent"`
	MaxRent string `query:"max_rent"`
	MinSize int    `query:"min_size"`
}

// TenantSummary resumen mínimo del tenant actual para respuestas de sala.
type TenantSummary struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name,omitempty"`
}

// PendingApplicant aplicante de una solicitud PENDING en el detalle de sala.
type PendingApplicant struct {
	ApplicationID string `json:"application_id"`
	ApplicantName string `json:"applicant_name"`
}

// RoomResponse salida de una sala.
type RoomResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SizeSqFt      int             `json:"size_sq_ft"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	Deposit       decimal.Decimal `json:"deposit"`
	Status        string          `json:"status"`
	Photos        []string        `json:"photos"`
	CurrentTenant *TenantSummary  `json:"current_tenant,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RoomDetailResponse detalle de sala con los aplicantes pendientes.
type RoomDetailResponse struct {
	RoomResponse
	PendingApplicants []PendingApplicant `json:"pending_applicants"`
}
