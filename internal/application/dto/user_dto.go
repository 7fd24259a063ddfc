package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	HomeAddress string `json:"home_address" validate:"required,min=5"`
	Password    string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest actualización parcial del perfil propio.
// Los punteros distinguen "no enviado" de "enviado vacío".
type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"business_name"`
	BusinessType *string `json:"business_type"`
	AvatarURL    *string `json:"avatar_url" validate:"omitempty,url"`
}

// ChangePasswordRequest rotación de contraseña del usuario de la sesión.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateRoleRequest cambio de rol de un usuario (solo ADMIN).
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN TENANT GUEST"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	HomeAddress  string    `json:"home_address"`
	Role         string    `json:"role"`
	BusinessName string    `json:"business_name,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
