package repository

import "github.com/jhoicas/arriendo-api/internal/domain/entity"

// InvoiceRepository define el puerto de lectura para Invoice.
// El portal del tenant solo lee; la emisión de cobros vive en otro sistema
// que escribe directo en la tabla.
type InvoiceRepository interface {
	// ListByTenant devuelve las facturas del tenant, más recientes primero.
	ListByTenant(tenantID string, limit int) ([]*entity.Invoice, error)
}
