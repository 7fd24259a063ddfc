package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arriendo-api/internal/application/auth"
	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, phone, home_address, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// El token es stateless: el cliente lo descarta. El endpoint existe para
	// que el frontend tenga un punto único de cierre de sesión.
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(GetUserID(c))
	if err != nil {
		// Token válido pero el usuario ya no existe: la sesión quedó huérfana
		// (cuenta eliminada después de emitir el token) y debe reautenticarse.
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "la sesión ya no es válida"})
		}
		return domainError(c, h.log, err)
	}
	return c.JSON(user)
}
