package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// RoomUseCase casos de uso CRUD para salas. Las mutaciones son de ADMIN
// (el handler aplica el RBAC); listado y detalle son públicos.
type RoomUseCase struct {
	roomRepo repository.RoomRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	tx       leasing.TxRunner
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(
	roomRepo repository.RoomRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	tx leasing.TxRunner,
) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo, appRepo: appRepo, userRepo: userRepo, tx: tx}
}

// Create crea una sala. Status por defecto AVAILABLE.
func (uc *RoomUseCase) Create(in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	ve := domain.NewValidationError()
	validateRoomName(ve, in.Name)
	validateRoomDescription(ve, in.Description)
	if in.SizeSqFt <= 0 {
		ve.Add("size_sq_ft", "el tamaño debe ser un entero positivo")
	}
	if !in.MonthlyRent.IsPositive() {
		ve.Add("monthly_rent", "el arriendo mensual debe ser positivo")
	}
	if !in.Deposit.IsPositive() {
		ve.Add("deposit", "el depósito debe ser positivo")
	}
	validatePhotoURLs(ve, "photos", in.Photos)
	if in.Status != "" && !entity.ValidRoomStatus(in.Status) {
		ve.Add("status", "estado desconocido")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	status := in.Status
	if status == "" {
		status = entity.RoomAvailable
	}
	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}
	now := time.Now()
	room := &entity.Room{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		SizeSqFt:    in.SizeSqFt,
		MonthlyRent: in.MonthlyRent,
		Deposit:     in.Deposit,
		Status:      status,
		Photos:      photos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return uc.toRoomResponse(room)
}

// Update actualización parcial de una sala; las reglas por campo son las de Create.
func (uc *RoomUseCase) Update(id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	ve := domain.NewValidationError()
	if in.Name != nil {
		validateRoomName(ve, *in.Name)
	}
	if in.Description != nil {
		validateRoomDescription(ve, *in.Description)
	}
	if in.SizeSqFt != nil && *in.SizeSqFt <= 0 {
		ve.Add("size_sq_ft", "el tamaño debe ser un entero positivo")
	}
	if in.MonthlyRent != nil && !in.MonthlyRent.IsPositive() {
		ve.Add("monthly_rent", "el arriendo mensual debe ser positivo")
	}
	if in.Deposit != nil && !in.Deposit.IsPositive() {
		ve.Add("deposit", "el depósito debe ser positivo")
	}
	if in.Photos != nil {
		validatePhotoURLs(ve, "photos", in.Photos)
	}
	if in.Status != nil && !entity.ValidRoomStatus(*in.Status) {
		ve.Add("status", "estado desconocido")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		room.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		room.Description = strings.TrimSpace(*in.Description)
	}
	if in.SizeSqFt != nil {
		room.SizeSqFt = *in.SizeSqFt
	}
	if in.MonthlyRent != nil {
		room.MonthlyRent = *in.MonthlyRent
	}
	if in.Deposit != nil {
		room.Deposit = *in.Deposit
	}
	if in.Photos != nil {
		room.Photos = in.Photos
	}
	if in.Status != nil {
		room.Status = *in.Status
	}
	room.UpdatedAt = time.Now()
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return uc.toRoomResponse(room)
}

// Delete elimina una sala. Rechaza si está OCCUPIED o tiene solicitudes
// PENDING/APPROVED. Chequeo y borrado corren en la misma transacción para
// que un submit concurrente no se cuele entre ambos.
func (uc *RoomUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(repos leasing.TxRepos) error {
		room, err := repos.Rooms.GetByID(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if room.Status == entity.RoomOccupied {
			return domain.ErrRoomOccupied
		}
		active, err := repos.Applications.CountActiveByRoom(id)
		if err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrActiveApplications
		}
		return repos.Rooms.Delete(id)
	})
}

// SetStatus transición directa de estado, sin guards (cualquier estado a cualquier otro).
func (uc *RoomUseCase) SetStatus(id, status string) (*dto.RoomResponse, error) {
	if !entity.ValidRoomStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	room.Status = status
	room.UpdatedAt = time.Now()
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return uc.toRoomResponse(room)
}

// List listado público con filtros conjuntivos, ordenado por nombre ascendente.
func (uc *RoomUseCase) List(filters repository.RoomFilters, page dto.PageRequest) ([]*dto.RoomResponse, error) {
	page.DefaultPage()
	if filters.Status != "" && !entity.ValidRoomStatus(filters.Status) {
		return nil, domain.ErrInvalidInput
	}
	rooms, err := uc.roomRepo.List(filters, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp, err := uc.toRoomResponse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetDetail detalle público: sala + resumen del tenant + aplicantes PENDING.
func (uc *RoomUseCase) GetDetail(id string) (*dto.RoomDetailResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	base, err := uc.toRoomResponse(room)
	if err != nil {
		return nil, err
	}
	rows, err := uc.appRepo.ListPendingApplicants(id)
	if err != nil {
		return nil, err
	}
	pending := make([]dto.PendingApplicant, 0, len(rows))
	for _, row := range rows {
		pending = append(pending, dto.PendingApplicant{
			ApplicationID: row.ApplicationID,
			ApplicantName: row.ApplicantName,
		})
	}
	return &dto.RoomDetailResponse{RoomResponse: *base, PendingApplicants: pending}, nil
}

// AddPhotos agrega URLs al final de la lista ordenada de fotos.
func (uc *RoomUseCase) AddPhotos(id string, urls []string) (*dto.RoomResponse, error) {
	ve := domain.NewValidationError()
	if len(urls) == 0 {
		ve.Add("urls", "se requiere al menos una URL")
	}
	validatePhotoURLs(ve, "urls", urls)
	if ve.HasErrors() {
		return nil, ve
	}
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	room.Photos = append(room.Photos, urls...)
	room.UpdatedAt = time.Now()
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return uc.toRoomResponse(room)
}

// RemovePhoto quita una URL de la lista de fotos. Quitar una URL ausente no es error.
func (uc *RoomUseCase) RemovePhoto(id, photoURL string) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	kept := make([]string, 0, len(room.Photos))
	for _, p := range room.Photos {
		if p != photoURL {
			kept = append(kept, p)
		}
	}
	room.Photos = kept
	room.UpdatedAt = time.Now()
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return uc.toRoomResponse(room)
}

// ParseRentFilter convierte el query param de renta a decimal; vacío = sin filtro.
func ParseRentFilter(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

func (uc *RoomUseCase) toRoomResponse(room *entity.Room) (*dto.RoomResponse, error) {
	resp := &dto.RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		SizeSqFt:    room.SizeSqFt,
		MonthlyRent: room.MonthlyRent,
		Deposit:     room.Deposit,
		Status:      room.Status,
		Photos:      room.Photos,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}
	if room.CurrentTenantID != nil {
		tenant, err := uc.userRepo.GetByID(*room.CurrentTenantID)
		if err != nil {
			return nil, err
		}
		if tenant != nil {
			resp.CurrentTenant = &dto.TenantSummary{
				Name:         tenant.Name,
				BusinessName: tenant.BusinessName,
			}
		}
	}
	return resp, nil
}

func validateRoomName(ve *domain.ValidationError, name string) {
	if len(strings.TrimSpace(name)) < 2 {
		ve.Add("name", "el nombre debe tener al menos 2 caracteres")
	}
}

func validateRoomDescription(ve *domain.ValidationError, desc string) {
	if len(strings.TrimSpace(desc)) < 10 {
		ve.Add("description", "la descripción debe tener al menos 10 caracteres")
	}
}

func validatePhotoURLs(ve *domain.ValidationError, field string, urls []string) {
	for _, u := range urls {
		if !validURL(u) {
			ve.Add(field, "URL inválida: "+u)
			return
		}
	}
}
