package repository

import "github.com/jhoicas/arriendo-api/internal/domain/entity"

// LegalDocumentRepository define el puerto de persistencia para LegalDocument.
type LegalDocumentRepository interface {
	Create(doc *entity.LegalDocument) error
	// ListByTenant devuelve los documentos del tenant, más recientes primero.
	ListByTenant(tenantID string) ([]*entity.LegalDocument, error)
}
