package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Room.
const (
	RoomAvailable   = "AVAILABLE"   // acepta solicitudes
	RoomPending     = "PENDING"     // solicitud aprobada, esperando pago/mudanza
	RoomOccupied    = "OCCUPIED"    // arrendada actualmente
	RoomMaintenance = "MAINTENANCE" // fuera de servicio temporalmente
)

// ValidRoomStatus indica si el estado es uno de los cuatro conocidos.
func ValidRoomStatus(status string) bool {
	switch status {
	case RoomAvailable, RoomPending, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room representa un local arrendable. CurrentTenantID es una referencia débil
// al usuario que lo ocupa (o la ocupará tras la aprobación); nil si está libre.
type Room struct {
	ID              string
	Name            string
	Description     string
	SizeSqFt        int
	MonthlyRent     decimal.Decimal
	Deposit         decimal.Decimal
	Status          string // AVAILABLE, PENDING, OCCUPIED, MAINTENANCE
	Photos          []string
	CurrentTenantID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
