package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RoomCountsResult totales de salas por estado para el resumen del admin.
type RoomCountsResult struct {
	Total     int
	Available int
	Occupied  int
}

// RecentApplicationResult fila cruda del join solicitud-aplicante-sala
// para la tabla de solicitudes recientes del dashboard.
type RecentApplicationResult struct {
	ApplicationID string
	ApplicantName string
	RoomName      string
	Status        string
	SubmittedAt   time.Time
}

// DashboardRepository define las consultas de lectura de los dashboards.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// GetRoomCounts devuelve total de salas y cuántas están AVAILABLE y OCCUPIED.
	GetRoomCounts(ctx context.Context) (RoomCountsResult, error)

	// CountPendingApplications cuenta las solicitudes en estado PENDING.
	CountPendingApplications(ctx context.Context) (int, error)

	// SumPaidInvoices devuelve la suma de los montos de facturas PAID.
	// Usa COALESCE para devolver cero si no hay facturas pagadas.
	SumPaidInvoices(ctx context.Context) (decimal.Decimal, error)

	// ListRecentApplications devuelve las últimas `limit` solicitudes con
	// nombre del aplicante y de la sala, más recientes primero.
	ListRecentApplications(ctx context.Context, limit int) ([]RecentApplicationResult, error)
}
