package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, applicant_id, room_id, business_name, business_type, business_plan, expected_move_in, supporting_docs, status, submitted_at, reviewed_at`

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL (usable con pool o tx).
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para solicitudes. Pasar pool o tx (Querier).
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una nueva solicitud.
func (r *ApplicationRepo) Create(app *entity.Application) error {
	query := `
		INSERT INTO applications (id, applicant_id, room_id, business_name, business_type, business_plan, expected_move_in, supporting_docs, status, submitted_at, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.ApplicantID, app.RoomID, app.BusinessName, app.BusinessType,
		app.BusinessPlan, app.ExpectedMoveIn, app.SupportingDocs, app.Status,
		app.SubmittedAt, app.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve nil si no existe.
func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get application by id: %w", err)
	}
	return app, nil
}

// Update persiste status y reviewed_at (los demás campos son inmutables tras el envío).
func (r *ApplicationRepo) Update(app *entity.Application) error {
	query := `UPDATE applications SET status = $2, reviewed_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, app.ID, app.Status, app.ReviewedAt)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}

// List devuelve las solicitudes que cumplen los filtros, ordenadas por submitted_at descendente.
func (r *ApplicationRepo) List(filters repository.ApplicationFilters, limit, offset int) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	args := []any{}
	idx := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filters.Status)
		idx++
	}
	if filters.RoomID != "" {
		query += fmt.Sprintf(" AND room_id = $%d", idx)
		args = append(args, filters.RoomID)
		idx++
	}
	if filters.ApplicantID != "" {
		query += fmt.Sprintf(" AND applicant_id = $%d", idx)
		args = append(args, filters.ApplicantID)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, app)
	}
	return list, rows.Err()
}

// CountActiveByRoom cuenta solicitudes PENDING o APPROVED de una sala (guard de deleteRoom).
func (r *ApplicationRepo) CountActiveByRoom(roomID string) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE room_id = $1 AND status IN ($2, $3)`
	var n int
	err := r.q.QueryRow(context.Background(), query,
		roomID, entity.ApplicationPending, entity.ApplicationApproved,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active applications: %w", err)
	}
	return n, nil
}

// HasPendingByApplicantAndRoom indica si el aplicante ya tiene una solicitud PENDING para la sala.
func (r *ApplicationRepo) HasPendingByApplicantAndRoom(applicantID, roomID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE applicant_id = $1 AND room_id = $2 AND status = $3)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, applicantID, roomID, entity.ApplicationPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pending application: %w", err)
	}
	return exists, nil
}

// ListPendingApplicants devuelve los aplicantes de las solicitudes PENDING de una sala.
func (r *ApplicationRepo) ListPendingApplicants(roomID string) ([]repository.PendingApplicantResult, error) {
	query := `
		SELECT a.id, u.name
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.room_id = $1 AND a.status = $2
		ORDER BY a.submitted_at ASC`
	rows, err := r.q.Query(context.Background(), query, roomID, entity.ApplicationPending)
	if err != nil {
		return nil, fmt.Errorf("list pending applicants: %w", err)
	}
	defer rows.Close()
	var list []repository.PendingApplicantResult
	for rows.Next() {
		var row repository.PendingApplicantResult
		if err := rows.Scan(&row.ApplicationID, &row.ApplicantName); err != nil {
			return nil, fmt.Errorf("scan pending applicant: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RejectPendingByRoom marca REJECTED toda solicitud PENDING de la sala distinta de exceptID.
func (r *ApplicationRepo) RejectPendingByRoom(roomID, exceptID string, reviewedAt time.Time) error {
	query := `
		UPDATE applications SET status = $3, reviewed_at = $4
		WHERE room_id = $1 AND id <> $2 AND status = $5`
	_, err := r.q.Exec(context.Background(), query,
		roomID, exceptID, entity.ApplicationRejected, reviewedAt, entity.ApplicationPending,
	)
	if err != nil {
		return fmt.Errorf("reject sibling applications: %w", err)
	}
	return nil
}

func scanApplication(row pgx.Row) (*entity.Application, error) {
	var app entity.Application
	err := row.Scan(
		&app.ID, &app.ApplicantID, &app.RoomID, &app.BusinessName, &app.BusinessType,
		&app.BusinessPlan, &app.ExpectedMoveIn, &app.SupportingDocs, &app.Status,
		&app.SubmittedAt, &app.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}
