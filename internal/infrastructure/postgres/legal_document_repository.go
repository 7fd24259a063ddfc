package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.LegalDocumentRepository = (*LegalDocumentRepo)(nil)

// LegalDocumentRepo implementación de LegalDocumentRepository (usable con pool o tx).
type LegalDocumentRepo struct {
	q Querier
}

// NewLegalDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLegalDocumentRepository(q Querier) *LegalDocumentRepo {
	return &LegalDocumentRepo{q: q}
}

// Create persiste un documento legal (ej. el contrato que registra una aprobación).
func (r *LegalDocumentRepo) Create(doc *entity.LegalDocument) error {
	query := `
		INSERT INTO legal_documents (id, tenant_id, type, pdf_url, signed_by_tenant_at, signed_by_admin_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.TenantID, doc.Type, doc.PDFURL, doc.SignedByTenantAt, doc.SignedByAdminAt, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert legal document: %w", err)
	}
	return nil
}

// ListByTenant devuelve los documentos del tenant, más recientes primero.
func (r *LegalDocumentRepo) ListByTenant(tenantID string) ([]*entity.LegalDocument, error) {
	query := `
		SELECT id, tenant_id, type, pdf_url, signed_by_tenant_at, signed_by_admin_at, created_at
		FROM legal_documents WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list legal documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.LegalDocument
	for rows.Next() {
		var doc entity.LegalDocument
		if err := rows.Scan(&doc.ID, &doc.TenantID, &doc.Type, &doc.PDFURL, &doc.SignedByTenantAt, &doc.SignedByAdminAt, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan legal document: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
