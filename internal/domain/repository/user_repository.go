package repository

import "github.com/jhoicas/arriendo-api/internal/domain/entity"

// UserFilters filtros opcionales para listar usuarios.
type UserFilters struct {
	Role   string // exacto; vacío = todos
	Search string // match case-insensitive sobre name, email o business_name
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(filters UserFilters, limit, offset int) ([]*entity.User, error)
}
