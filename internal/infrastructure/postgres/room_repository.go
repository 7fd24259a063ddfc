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

var _ repository.RoomRepository = (*RoomRepo)(nil)

const roomColumns = `id, name, description, size_sq_ft, monthly_rent, deposit, status, photos, current_tenant_id, created_at, updated_at`

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL (usable con pool o tx).
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador de persistencia para salas. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persiste una nueva sala.
func (r *RoomRepo) Create(room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, description, size_sq_ft, monthly_rent, deposit, status, photos, current_tenant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Name, room.Description, room.SizeSqFt, room.MonthlyRent, room.Deposit,
		room.Status, room.Photos, room.CurrentTenantID, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene una sala por ID. Devuelve nil si no existe.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	room, err := scanRoom(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	return room, nil
}

// Update actualiza una sala completa (incluye fotos y tenant actual).
func (r *RoomRepo) Update(room *entity.Room) error {
	query := `
		UPDATE rooms SET name = $2, description = $3, size_sq_ft = $4, monthly_rent = $5,
			deposit = $6, status = $7, photos = $8, current_tenant_id = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		room.ID, room.Name, room.Description, room.SizeSqFt, room.MonthlyRent, room.Deposit,
		room.Status, room.Photos, room.CurrentTenantID, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las salas que cumplen todos los filtros, ordenadas por nombre ascendente.
func (r *RoomRepo) List(filters repository.RoomFilters, limit, offset int) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []any{}
	idx := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filters.Status)
		idx++
	}
	if filters.MinRent != nil {
		query += fmt.Sprintf(" AND monthly_rent >= $%d", idx)
		args = append(args, *filters.MinRent)
		idx++
	}
	if filters.MaxRent != nil {
		query += fmt.Sprintf(" AND monthly_rent <= $%d", idx)
		args = append(args, *filters.MaxRent)
		idx++
	}
	if filters.MinSize != nil {
		query += fmt.Sprintf(" AND size_sq_ft >= $%d", idx)
		args = append(args, *filters.MinSize)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, room)
	}
	return list, rows.Err()
}

// Delete elimina una sala por ID. Los guards de negocio (OCCUPIED, solicitudes
// activas) corren en el use case dentro de la misma transacción.
func (r *RoomRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID, &room.Name, &room.Description, &room.SizeSqFt, &room.MonthlyRent,
		&room.Deposit, &room.Status, &room.Photos, &room.CurrentTenantID,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}
