// Package analytics contiene los casos de uso read-only de los dashboards:
// el resumen de ocupación/ingresos del admin y el portal del tenant.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

const (
	dashboardRecentApplications = 10 // solicitudes en la tabla del admin
	portalRecentInvoices        = 5  // facturas en el portal del tenant
	portalUpcomingEvents        = 5  // eventos próximos en el portal
)

// DashboardUseCase construye los resúmenes de ambos dashboards.
//
// No muta nada: todas las fuentes son repositorios de lectura; el único
// error posible es de infraestructura.
type DashboardUseCase struct {
	dashRepo    repository.DashboardRepository
	invoiceRepo repository.InvoiceRepository
	eventRepo   repository.LogisticsEventRepository
	docRepo     repository.LegalDocumentRepository
	leasingUC   *leasing.LeasingUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashRepo repository.DashboardRepository,
	invoiceRepo repository.InvoiceRepository,
	eventRepo repository.LogisticsEventRepository,
	docRepo repository.LegalDocumentRepository,
	leasingUC *leasing.LeasingUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashRepo:    dashRepo,
		invoiceRepo: invoiceRepo,
		eventRepo:   eventRepo,
		docRepo:     docRepo,
		leasingUC:   leasingUC,
	}
}

// GetAdminSummary arma el AdminSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetRoomCounts            → TotalRooms + AvailableRooms + OccupiedRooms
//  2. CountPendingApplications → PendingApplications
//  3. SumPaidInvoices          → TotalRevenue
//  4. ListRecentApplications   → RecentApplications
func (uc *DashboardUseCase) GetAdminSummary(ctx context.Context) (*dto.AdminSummaryDTO, error) {
	type roomsResult struct {
		counts repository.RoomCountsResult
		err    error
	}
	type countResult struct {
		n   int
		err error
	}
	type revenueResult struct {
		sum decimal.Decimal
		err error
	}
	type recentResult struct {
		rows []repository.RecentApplicationResult
		err  error
	}

	roomsCh := make(chan roomsResult, 1)
	pendingCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		counts, err := uc.dashRepo.GetRoomCounts(ctx)
		roomsCh <- roomsResult{counts, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountPendingApplications(ctx)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		sum, err := uc.dashRepo.SumPaidInvoices(ctx)
		revenueCh <- revenueResult{sum, err}
	}()
	go func() {
		rows, err := uc.dashRepo.ListRecentApplications(ctx, dashboardRecentApplications)
		recentCh <- recentResult{rows, err}
	}()

	rooms := <-roomsCh
	pending := <-pendingCh
	revenue := <-revenueCh
	recent := <-recentCh

	if rooms.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de salas: %w", rooms.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes pendientes: %w", pending.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes recientes: %w", recent.err)
	}

	recentDTOs := make([]dto.RecentApplicationDTO, 0, len(recent.rows))
	for _, row := range recent.rows {
		recentDTOs = append(recentDTOs, dto.RecentApplicationDTO{
			ApplicationID: row.ApplicationID,
			ApplicantName: row.ApplicantName,
			RoomName:      row.RoomName,
			Status:        row.Status,
			SubmittedAt:   row.SubmittedAt,
		})
	}

	return &dto.AdminSummaryDTO{
		TotalRooms:          rooms.counts.Total,
		AvailableRooms:      rooms.counts.Available,
		OccupiedRooms:       rooms.counts.Occupied,
		PendingApplications: pending.n,
		TotalRevenue:        revenue.sum.Round(2),
		RecentApplications:  recentDTOs,
	}, nil
}

// GetTenantSummary arma el portal del tenant: sus solicitudes (con nombre de
// sala), últimas facturas, próximos eventos logísticos y contratos.
func (uc *DashboardUseCase) GetTenantSummary(ctx context.Context, userID, userRole string) (*dto.TenantSummaryDTO, error) {
	now := time.Now()

	appsCh := make(chan struct {
		apps []*dto.ApplicationResponse
		err  error
	}, 1)
	invoicesCh := make(chan struct {
		invoices []dto.InvoiceDTO
		err      error
	}, 1)
	eventsCh := make(chan struct {
		events []dto.LogisticsEventDTO
		err    error
	}, 1)
	docsCh := make(chan struct {
		docs []dto.LegalDocumentDTO
		err  error
	}, 1)

	go func() {
		// El listado del workflow ya fuerza applicant_id = userID para no-admins;
		// aquí se pasa el filtro explícito para que el portal de un admin también
		// muestre solo lo suyo.
		apps, err := uc.leasingUC.List(userID, userRole, repository.ApplicationFilters{ApplicantID: userID}, dto.PageRequest{Limit: 50})
		appsCh <- struct {
			apps []*dto.ApplicationResponse
			err  error
		}{apps, err}
	}()
	go func() {
		rows, err := uc.invoiceRepo.ListByTenant(userID, portalRecentInvoices)
		out := make([]dto.InvoiceDTO, 0, len(rows))
		for _, inv := range rows {
			out = append(out, dto.InvoiceDTO{
				ID:        inv.ID,
				Amount:    inv.Amount,
				DueDate:   inv.DueDate,
				Status:    inv.Status,
				CreatedAt: inv.CreatedAt,
			})
		}
		invoicesCh <- struct {
			invoices []dto.InvoiceDTO
			err      error
		}{out, err}
	}()
	go func() {
		rows, err := uc.eventRepo.ListUpcomingByTenant(userID, now, portalUpcomingEvents)
		out := make([]dto.LogisticsEventDTO, 0, len(rows))
		for _, ev := range rows {
			out = append(out, dto.LogisticsEventDTO{
				ID:          ev.ID,
				Title:       ev.Title,
				EventType:   ev.EventType,
				ScheduledAt: ev.ScheduledAt,
			})
		}
		eventsCh <- struct {
			events []dto.LogisticsEventDTO
			err    error
		}{out, err}
	}()
	go func() {
		rows, err := uc.docRepo.ListByTenant(userID)
		out := make([]dto.LegalDocumentDTO, 0, len(rows))
		for _, doc := range rows {
			out = append(out, dto.LegalDocumentDTO{
				ID:               doc.ID,
				Type:             doc.Type,
				PDFURL:           doc.PDFURL,
				SignedByTenantAt: doc.SignedByTenantAt,
				SignedByAdminAt:  doc.SignedByAdminAt,
				CreatedAt:        doc.CreatedAt,
			})
		}
		docsCh <- struct {
			docs []dto.LegalDocumentDTO
			err  error
		}{out, err}
	}()

	apps := <-appsCh
	invoices := <-invoicesCh
	events := <-eventsCh
	docs := <-docsCh

	if apps.err != nil {
		return nil, fmt.Errorf("portal: solicitudes: %w", apps.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("portal: facturas: %w", invoices.err)
	}
	if events.err != nil {
		return nil, fmt.Errorf("portal: eventos: %w", events.err)
	}
	if docs.err != nil {
		return nil, fmt.Errorf("portal: documentos: %w", docs.err)
	}

	applications := make([]dto.ApplicationResponse, 0, len(apps.apps))
	for _, a := range apps.apps {
		applications = append(applications, *a)
	}

	return &dto.TenantSummaryDTO{
		Applications:   applications,
		Invoices:       invoices.invoices,
		UpcomingEvents: events.events,
		Contracts:      docs.docs,
	}, nil
}
