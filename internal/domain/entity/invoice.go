package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice.
const (
	InvoicePending = "PENDING"
	InvoicePaid    = "PAID"
	InvoiceOverdue = "OVERDUE"
)

// Invoice es un cobro de arriendo emitido a un tenant. Los dashboards lo
// consumen en modo lectura; el ciclo de cobro vive fuera de este servicio.
type Invoice struct {
	ID        string
	TenantID  string
	Amount    decimal.Decimal
	DueDate   time.Time
	Status    string // PENDING, PAID, OVERDUE
	CreatedAt time.Time
}
