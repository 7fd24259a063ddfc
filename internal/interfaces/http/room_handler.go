package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/usecase"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// RoomHandler maneja el catálogo de salas: listado público y CRUD de admin.
type RoomHandler struct {
	uc  *usecase.RoomUseCase
	log *logger.Logger
}

// NewRoomHandler construye el handler de salas.
func NewRoomHandler(uc *usecase.RoomUseCase, log *logger.Logger) *RoomHandler {
	return &RoomHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar salas (público)
// @Tags         rooms
// @Produce      json
// @Param        status    query  string  false  "AVAILABLE | PENDING | OCCUPIED | MAINTENANCE"
// @Param        min_rent  query  string  false  "renta mensual mínima"
// @Param        max_rent  query  string  false  "renta mensual máxima"
// @Param        min_size  query  int     false  "superficie mínima en sqft"
// @Success      200       {array}  dto.RoomResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	minRent, err := usecase.ParseRentFilter(c.Query("min_rent"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_rent debe ser numérico"})
	}
	maxRent, err := usecase.ParseRentFilter(c.Query("max_rent"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_rent debe ser numérico"})
	}
	filters := repository.RoomFilters{
		Status:  c.Query("status"),
		MinRent: minRent,
		MaxRent: maxRent,
	}
	if minSize := c.QueryInt("min_size"); minSize > 0 {
		filters.MinSize = &minSize
	}

	rooms, err := h.uc.List(filters, page)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(rooms)
}

// GetByID godoc
// @Summary      Detalle de una sala (público)
// @Tags         rooms
// @Produce      json
// @Param        id  path  string  true  "room id"
// @Success      200  {object}  dto.RoomDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	room, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(room)
}

// Create godoc
// @Summary      Crear sala (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRoomRequest  true  "datos de la sala"
// @Success      201   {object}  dto.RoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	room, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// Update godoc
// @Summary      Actualizar sala (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "room id"
// @Param        body  body  dto.UpdateRoomRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RoomResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	room, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(room)
}

// Delete godoc
// @Summary      Eliminar sala (admin)
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "room id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sala eliminada"})
}

// SetStatus godoc
// @Summary      Cambiar estado de una sala (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "room id"
// @Param        body  body  dto.UpdateRoomStatusRequest  true  "status"
// @Success      200   {object}  dto.RoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rooms/{id}/status [patch]
func (h *RoomHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateRoomStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	room, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(room)
}

// AddPhotos godoc
// @Summary      Agregar fotos a una sala (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "room id"
// @Param        body  body  dto.AddPhotosRequest  true  "urls"
// @Success      200   {object}  dto.RoomResponse
// @Router       /api/rooms/{id}/photos [post]
func (h *RoomHandler) AddPhotos(c *fiber.Ctx) error {
	var in dto.AddPhotosRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	room, err := h.uc.AddPhotos(c.Params("id"), in.URLs)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(room)
}

// RemovePhoto godoc
// @Summary      Quitar una foto de una sala (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "room id"
// @Param        body  body  dto.RemovePhotoRequest  true  "url"
// @Success      200   {object}  dto.RoomResponse
// @Router       /api/rooms/{id}/photos [delete]
func (h *RoomHandler) RemovePhoto(c *fiber.Ctx) error {
	var in dto.RemovePhotoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	room, err := h.uc.RemovePhoto(c.Params("id"), in.URL)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(room)
}
