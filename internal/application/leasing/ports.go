package leasing

import (
	"context"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Rooms        repository.RoomRepository
	Applications repository.ApplicationRepository
	Users        repository.UserRepository
	Documents    repository.LegalDocumentRepository
	Events       repository.LogisticsEventRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la revisión de
// solicitudes (solicitud + sala + rol + contrato + agenda) y el borrado de
// salas (guard de solicitudes activas + delete).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// ContractPDFGenerator genera la representación PDF del contrato de arriendo
// de una solicitud aprobada. Lo implementa infrastructure/pdf con Maroto.
type ContractPDFGenerator interface {
	GenerateLeasePDF(
		ctx context.Context,
		app *entity.Application,
		room *entity.Room,
		tenant *entity.User,
	) ([]byte, error)
}
