// Package pdf implementa la representación PDF del contrato de arriendo que
// respalda una solicitud aprobada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Contrato de Arriendo  │  N° solicitud + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ARRENDATARIO: Nombre / Negocio / Contacto                  │
//	│  LOCAL: Nombre + descripción                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Superficie | Arriendo mensual | Depósito | Mudanza  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Arrendador / Arrendatario                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ leasing.ContractPDFGenerator = (*MarotoContractGenerator)(nil)

// MarotoContractGenerator implementa leasing.ContractPDFGenerator usando Maroto v2.
type MarotoContractGenerator struct{}

// NewMarotoContractGenerator construye el generador.
func NewMarotoContractGenerator() *MarotoContractGenerator { return &MarotoContractGenerator{} }

// GenerateLeasePDF genera el PDF del contrato y devuelve sus bytes.
func (g *MarotoContractGenerator) GenerateLeasePDF(
	_ context.Context,
	app *entity.Application,
	room *entity.Room,
	tenant *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contrato de Arriendo", true).
		WithAuthor("arriendo-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(app, room))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tenantRow(tenant, app))
	m.AddRows(roomRow(room))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(termsHeaderRow())
	m.AddRows(termsRow(app, room))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número de solicitud + fecha de revisión (der).
func headerRow(app *entity.Application, room *entity.Room) core.Row {
	fecha := app.SubmittedAt.Format("02/01/2006")
	if app.ReviewedAt != nil {
		fecha = app.ReviewedAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CONTRATO DE ARRIENDO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(room.Name, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SOLICITUD APROBADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(app.ID, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tenantRow: datos del arrendatario y su negocio.
func tenantRow(tenant *entity.User, app *entity.Application) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ARRENDATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Negocio: %s (%s)   |   Email: %s   |   Tel: %s",
				nonEmpty(app.BusinessName, "—"),
				nonEmpty(app.BusinessType, "—"),
				tenant.Email,
				nonEmpty(tenant.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// roomRow: identificación del local arrendado.
func roomRow(room *entity.Room) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("LOCAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(room.Name+" — "+room.Description, props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// termsHeaderRow: cabecera de la tabla de condiciones.
func termsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Superficie", 3, align.Left),
		h("Arriendo mensual", 3, align.Right),
		h("Depósito", 3, align.Right),
		h("Mudanza esperada", 3, align.Right),
	)
}

// termsRow: valores de las condiciones pactadas.
func termsRow(app *entity.Application, room *entity.Room) core.Row {
	v := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 9, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		v(fmt.Sprintf("%d sqft", room.SizeSqFt), 3, align.Left),
		v("$ "+room.MonthlyRent.StringFixed(2), 3, align.Right),
		v("$ "+room.Deposit.StringFixed(2), 3, align.Right),
		v(app.ExpectedMoveIn.Format("02/01/2006"), 3, align.Right),
	)
}

// signatureRow: líneas de firma de ambas partes.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		)
	}
	return row.New(14).Add(
		sig("Arrendador"),
		sig("Arrendatario"),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
