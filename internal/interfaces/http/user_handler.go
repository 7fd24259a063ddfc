package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/usecase"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// UserHandler maneja perfil propio y administración de usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// UpdateProfile godoc
// @Summary      Actualizar perfil propio
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/me [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(user)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña propia
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "current_password, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users/me/password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ChangePassword(GetUserID(c), in); err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// SetRole godoc
// @Summary      Cambiar rol de un usuario (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "user id"
// @Param        body  body  dto.UpdateRoleRequest  true  "role"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.SetRole(c.Params("id"), in.Role)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(user)
}

// List godoc
// @Summary      Listar usuarios (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query  string  false  "ADMIN | TENANT | GUEST"
// @Param        search  query  string  false  "busca en nombre y email"
// @Success      200     {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filters := repository.UserFilters{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}
	users, err := h.uc.List(filters, page)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(users)
}
