package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.LogisticsEventRepository = (*LogisticsEventRepo)(nil)

// LogisticsEventRepo implementación de LogisticsEventRepository (usable con pool o tx).
type LogisticsEventRepo struct {
	q Querier
}

// NewLogisticsEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLogisticsEventRepository(q Querier) *LogisticsEventRepo {
	return &LogisticsEventRepo{q: q}
}

// Create persiste un evento logístico.
func (r *LogisticsEventRepo) Create(event *entity.LogisticsEvent) error {
	query := `
		INSERT INTO logistics_events (id, tenant_id, application_id, title, event_type, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.TenantID, event.ApplicationID, event.Title, event.EventType,
		event.ScheduledAt, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert logistics event: %w", err)
	}
	return nil
}

// ListUpcomingByTenant devuelve los eventos del tenant (directos o vía sus
// solicitudes) con scheduled_at >= from, del más próximo al más lejano.
func (r *LogisticsEventRepo) ListUpcomingByTenant(tenantID string, from time.Time, limit int) ([]*entity.LogisticsEvent, error) {
	query := `
		SELECT e.id, e.tenant_id, e.application_id, e.title, e.event_type, e.scheduled_at, e.created_at
		FROM logistics_events e
		LEFT JOIN applications a ON a.id = e.application_id
		WHERE (e.tenant_id = $1 OR a.applicant_id = $1) AND e.scheduled_at >= $2
		ORDER BY e.scheduled_at ASC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, from, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogisticsEvent
	for rows.Next() {
		var ev entity.LogisticsEvent
		if err := rows.Scan(&ev.ID, &ev.TenantID, &ev.ApplicationID, &ev.Title, &ev.EventType, &ev.ScheduledAt, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan logistics event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
