package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrRoomNotAvailable   = errors.New("la sala no está disponible")
	ErrRoomOccupied       = errors.New("la sala está ocupada")
	ErrActiveApplications = errors.New("la sala tiene solicitudes activas")
	ErrNotPending         = errors.New("la solicitud ya fue revisada")
)

// ValidationError agrupa los errores de validación campo a campo, para que
// el cliente pueda pintar cada mensaje junto a su input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un ValidationError vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra el mensaje para un campo. Conserva el primer mensaje por campo.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors indica si se acumuló al menos un error de campo.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var sb strings.Builder
	sb.WriteString("validación fallida: ")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f + ": " + e.Fields[f])
	}
	return sb.String()
}

// AsValidationError devuelve el *ValidationError si err lo es (directo o envuelto).
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
