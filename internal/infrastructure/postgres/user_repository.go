package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, phone, home_address, password_hash, role, business_name, business_type, avatar_url, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, home_address, password_hash, role, business_name, business_type, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.HomeAddress, user.PasswordHash,
		user.Role, nullIfEmpty(user.BusinessName), nullIfEmpty(user.BusinessType), nullIfEmpty(user.AvatarURL),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := r.scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email. Devuelve nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := r.scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, phone = $4, home_address = $5, password_hash = $6,
			role = $7, business_name = $8, business_type = $9, avatar_url = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.HomeAddress, user.PasswordHash,
		user.Role, nullIfEmpty(user.BusinessName), nullIfEmpty(user.BusinessType), nullIfEmpty(user.AvatarURL),
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con filtros opcionales de rol y búsqueda libre
// (name, email o business_name, case-insensitive), más recientes primero.
func (r *UserRepo) List(filters repository.UserFilters, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	idx := 1
	if filters.Role != "" {
		query += fmt.Sprintf(" AND role = $%d", idx)
		args = append(args, filters.Role)
		idx++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR business_name ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+filters.Search+"%")
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var businessName, businessType, avatarURL *string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.HomeAddress, &u.PasswordHash,
		&u.Role, &businessName, &businessType, &avatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.BusinessName = derefOrEmpty(businessName)
	u.BusinessType = derefOrEmpty(businessType)
	u.AvatarURL = derefOrEmpty(avatarURL)
	return &u, nil
}
