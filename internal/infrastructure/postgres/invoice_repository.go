package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Solo lectura: las facturas las escribe el sistema de cobranza.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// ListByTenant devuelve las facturas del tenant, más recientes primero.
func (r *InvoiceRepo) ListByTenant(tenantID string, limit int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, tenant_id, amount, due_date, status, created_at
		FROM invoices WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.TenantID, &inv.Amount, &inv.DueDate, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
