package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
)

// RoomFilters filtros opcionales para listar salas. Se aplican en conjunción.
type RoomFilters struct {
	Status  string // exacto; vacío = todos
	MinRent *decimal.Decimal
	MaxRent *decimal.Decimal
	MinSize *int
}

// RoomRepository define el puerto de persistencia para Room (DIP).
type RoomRepository interface {
	Create(room *entity.Room) error
	GetByID(id string) (*entity.Room, error)
	Update(room *entity.Room) error
	// List devuelve las salas que cumplen todos los filtros, ordenadas por nombre ascendente.
	List(filters RoomFilters, limit, offset int) ([]*entity.Room, error)
	Delete(id string) error
}
