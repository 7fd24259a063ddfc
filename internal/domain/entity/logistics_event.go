package entity

import "time"

// Tipos de evento logístico.
const (
	EventMoveIn      = "MOVE_IN"
	EventInspection  = "INSPECTION"
	EventKeyHandover = "KEY_HANDOVER"
)

// LogisticsEvent es un hito operativo agendado para un tenant (mudanza,
// inspección, entrega de llaves). ApplicationID enlaza el evento a la
// solicitud que lo originó, si aplica.
type LogisticsEvent struct {
	ID            string
	TenantID      string
	ApplicationID *string
	Title         string
	EventType     string
	ScheduledAt   time.Time
	CreatedAt     time.Time
}
