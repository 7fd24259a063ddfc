package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/arriendo-api/internal/application/analytics"
	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetAdminSummary devuelve el resumen operativo del administrador.
// GET /api/dashboard/admin
//
// Respuesta: AdminSummaryDTO (conteo de salas por estado, tasa de ocupación,
// solicitudes pendientes, ingreso acumulado y solicitudes recientes).
// No requiere parámetros; todo se calcula en el servidor.
func (h *DashboardHandler) GetAdminSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetAdminSummary(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetTenantSummary devuelve el portal del tenant de la sesión.
// GET /api/dashboard/tenant
//
// Respuesta: TenantSummaryDTO (sus solicitudes, últimas facturas, próximos
// eventos de logística y documentos legales).
func (h *DashboardHandler) GetTenantSummary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token",
		})
	}

	summary, err := h.uc.GetTenantSummary(c.Context(), userID, GetRole(c))
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(summary)
}
