package entity

import "time"

// LegalDocument es un documento legal asociado a un tenant (contrato de
// arriendo, anexo). Se considera firmado cuando ambas partes registran fecha.
type LegalDocument struct {
	ID               string
	TenantID         string
	Type             string // LEASE_CONTRACT, ADDENDUM, ...
	PDFURL           string
	SignedByTenantAt *time.Time
	SignedByAdminAt  *time.Time
	CreatedAt        time.Time
}
