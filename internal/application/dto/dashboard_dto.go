package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminSummaryDTO respuesta de GET /api/dashboard/admin.
// KPIs de ocupación más la cola de solicitudes recientes.
type AdminSummaryDTO struct {
	TotalRooms          int             `json:"total_rooms"`
	AvailableRooms      int             `json:"available_rooms"`
	OccupiedRooms       int             `json:"occupied_rooms"`
	PendingApplications int             `json:"pending_applications"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"` // suma de facturas PAID

	RecentApplications []RecentApplicationDTO `json:"recent_applications"`
}

// RecentApplicationDTO fila de la tabla de solicitudes recientes del admin.
type RecentApplicationDTO struct {
	ApplicationID string    `json:"application_id"`
	ApplicantName string    `json:"applicant_name"`
	RoomName      string    `json:"room_name"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// TenantSummaryDTO respuesta de GET /api/dashboard/tenant.
// Todo read-only: solicitudes propias, últimas facturas, próximos eventos y contratos.
type TenantSummaryDTO struct {
	Applications   []ApplicationResponse `json:"applications"`
	Invoices       []InvoiceDTO          `json:"invoices"`
	UpcomingEvents []LogisticsEventDTO   `json:"upcoming_events"`
	Contracts      []LegalDocumentDTO    `json:"contracts"`
}

// InvoiceDTO factura de arriendo en el portal del tenant.
type InvoiceDTO struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"`
	Status    string          `json:"status"` // PENDING, PAID, OVERDUE
	CreatedAt time.Time       `json:"created_at"`
}

// LogisticsEventDTO evento agendado (mudanza, inspección, entrega de llaves).
type LogisticsEventDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	EventType   string    `json:"event_type"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// LegalDocumentDTO documento legal del tenant con su estado de firmas.
type LegalDocumentDTO struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	PDFURL           string     `json:"pdf_url"`
	SignedByTenantAt *time.Time `json:"signed_by_tenant_at,omitempty"`
	SignedByAdminAt  *time.Time `json:"signed_by_admin_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
