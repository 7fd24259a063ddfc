package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// ApplicationHandler maneja las solicitudes de arriendo y su contrato PDF.
type ApplicationHandler struct {
	uc    *leasing.LeasingUseCase
	pdfUC *leasing.ContractPDFUseCase
	log   *logger.Logger
}

// NewApplicationHandler construye el handler de solicitudes.
func NewApplicationHandler(uc *leasing.LeasingUseCase, pdfUC *leasing.ContractPDFUseCase, log *logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// Submit godoc
// @Summary      Postular a una sala
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitApplicationRequest  true  "postulación completa"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	app, err := h.uc.Submit(GetUserID(c), in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// Review godoc
// @Summary      Aprobar o rechazar una solicitud (admin)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "application id"
// @Param        body  body  dto.ReviewApplicationRequest   true  "APPROVE | REJECT"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/review [post]
func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	var in dto.ReviewApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Decision != dto.DecisionApprove && in.Decision != dto.DecisionReject {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "decision debe ser APPROVE o REJECT"})
	}
	app, err := h.uc.Review(c.UserContext(), c.Params("id"), in.Decision)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(app)
}

// List godoc
// @Summary      Listar solicitudes (admin ve todas, el resto solo las propias)
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        status   query  string  false  "PENDING | APPROVED | REJECTED"
// @Param        room_id  query  string  false  "filtrar por sala"
// @Success      200      {array}  dto.ApplicationResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filters := repository.ApplicationFilters{
		Status: c.Query("status"),
		RoomID: c.Query("room_id"),
	}
	apps, err := h.uc.List(GetUserID(c), GetRole(c), filters, page)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(apps)
}

// ContractPDF godoc
// @Summary      Descargar contrato PDF de una solicitud aprobada
// @Tags         applications
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "application id"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/contract.pdf [get]
func (h *ApplicationHandler) ContractPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.Generate(c.UserContext(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return domainError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="contrato-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
