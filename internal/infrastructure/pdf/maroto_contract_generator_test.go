package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/infrastructure/pdf"
)

func TestGenerateLeasePDF_ProduceDocumentoValido(t *testing.T) {
	g := pdf.NewMarotoContractGenerator()

	reviewedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	app := &entity.Application{
		ID:             "app-1",
		ApplicantID:    "tenant-1",
		RoomID:         "room-1",
		BusinessName:   "Cafetería La Esquina",
		BusinessType:   "Gastronomía",
		ExpectedMoveIn: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:         entity.ApplicationApproved,
		SubmittedAt:    reviewedAt.AddDate(0, 0, -7),
		ReviewedAt:     &reviewedAt,
	}
	room := &entity.Room{
		ID:          "room-1",
		Name:        "Corner Shop",
		Description: "Local esquinero con doble vitrina a la calle.",
		SizeSqFt:    144,
		MonthlyRent: decimal.NewFromInt(12000),
		Deposit:     decimal.NewFromInt(12000),
	}
	tenant := &entity.User{
		ID:    "tenant-1",
		Name:  "María Pérez",
		Email: "maria@test.com",
		Phone: "+56 9 1234 5678",
	}

	bytes, err := g.GenerateLeasePDF(context.Background(), app, room, tenant)
	require.NoError(t, err)
	require.NotEmpty(t, bytes)

	// Cabecera mágica del formato PDF.
	assert.Equal(t, "%PDF", string(bytes[:4]))
}
