package leasing

import (
	"context"

	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// ContractPDFUseCase genera el PDF del contrato de arriendo de una solicitud
// aprobada. Solo el ADMIN o el propio aplicante pueden descargarlo.
type ContractPDFUseCase struct {
	appRepo   repository.ApplicationRepository
	roomRepo  repository.RoomRepository
	userRepo  repository.UserRepository
	generator ContractPDFGenerator
}

// NewContractPDFUseCase construye el caso de uso.
func NewContractPDFUseCase(
	appRepo repository.ApplicationRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	generator ContractPDFGenerator,
) *ContractPDFUseCase {
	return &ContractPDFUseCase{appRepo: appRepo, roomRepo: roomRepo, userRepo: userRepo, generator: generator}
}

// Generate devuelve los bytes del PDF del contrato.
func (uc *ContractPDFUseCase) Generate(ctx context.Context, callerID, callerRole, applicationID string) ([]byte, error) {
	app, err := uc.appRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && app.ApplicantID != callerID {
		return nil, domain.ErrForbidden
	}
	if app.Status != entity.ApplicationApproved {
		return nil, domain.ErrConflict
	}
	room, err := uc.roomRepo.GetByID(app.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	tenant, err := uc.userRepo.GetByID(app.ApplicantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.generator.GenerateLeasePDF(ctx, app, room, tenant)
}
