package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de los dashboards sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de lectura para dashboards.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetRoomCounts devuelve total de salas y cuántas están AVAILABLE y OCCUPIED.
func (r *DashboardRepo) GetRoomCounts(ctx context.Context) (repository.RoomCountsResult, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2)
		FROM rooms`
	var res repository.RoomCountsResult
	err := r.q.QueryRow(ctx, query, entity.RoomAvailable, entity.RoomOccupied).
		Scan(&res.Total, &res.Available, &res.Occupied)
	if err != nil {
		return repository.RoomCountsResult{}, fmt.Errorf("room counts: %w", err)
	}
	return res, nil
}

// CountPendingApplications cuenta las solicitudes en estado PENDING.
func (r *DashboardRepo) CountPendingApplications(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE status = $1`,
		entity.ApplicationPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending applications: %w", err)
	}
	return n, nil
}

// SumPaidInvoices devuelve la suma de los montos de facturas PAID.
// COALESCE para devolver cero si no hay facturas pagadas.
func (r *DashboardRepo) SumPaidInvoices(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`,
		entity.InvoicePaid,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum paid invoices: %w", err)
	}
	return sum, nil
}

// ListRecentApplications devuelve las últimas `limit` solicitudes con nombre
// del aplicante y de la sala, más recientes primero.
func (r *DashboardRepo) ListRecentApplications(ctx context.Context, limit int) ([]repository.RecentApplicationResult, error) {
	query := `
		SELECT a.id, u.name, rm.name, a.status, a.submitted_at
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		JOIN rooms rm ON rm.id = a.room_id
		ORDER BY a.submitted_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent applications: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentApplicationResult
	for rows.Next() {
		var row repository.RecentApplicationResult
		if err := rows.Scan(&row.ApplicationID, &row.ApplicantName, &row.RoomName, &row.Status, &row.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan recent application: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
