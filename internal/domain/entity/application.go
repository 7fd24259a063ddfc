package entity

import "time"

// Estados válidos para Application. PENDING es el único no terminal.
const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

// Application es la solicitud formal de un usuario para arrendar una sala.
// Solo transiciona PENDING -> APPROVED | REJECTED, vía revisión de un ADMIN.
type Application struct {
	ID             string
	ApplicantID    string
	RoomID         string
	BusinessName   string
	BusinessType   string
	BusinessPlan   string
	ExpectedMoveIn time.Time
	SupportingDocs []string
	Status         string // PENDING, APPROVED, REJECTED
	SubmittedAt    time.Time
	ReviewedAt     *time.Time
}

// Terminal indica si la solicitud ya no admite transiciones.
func (a *Application) Terminal() bool {
	return a.Status == ApplicationApproved || a.Status == ApplicationRejected
}
