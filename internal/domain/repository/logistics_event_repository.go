package repository

import (
	"time"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
)

// LogisticsEventRepository define el puerto de persistencia para LogisticsEvent.
type LogisticsEventRepository interface {
	Create(event *entity.LogisticsEvent) error
	// ListUpcomingByTenant devuelve los eventos del tenant (directos o vía sus
	// solicitudes) con scheduled_at >= from, del más próximo al más lejano.
	ListUpcomingByTenant(tenantID string, from time.Time, limit int) ([]*entity.LogisticsEvent, error)
}
