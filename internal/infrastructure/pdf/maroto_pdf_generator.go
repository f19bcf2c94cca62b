// Package pdf implementa la exportación de facturas a PDF con Maroto v2.
//
// Dos documentos:
//
//	Listado A4: título + tabla (N° | Contraparte | Emisión | Vencimiento |
//	            Monto | Penalización | Monto Final | Estado), una fila por
//	            factura de la vista filtrada.
//	Factura individual: cabecera con número y estado, datos de la
//	            contraparte y bloque de montos con la penalización desglosada.
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// Los montos se imprimen en soles con separador de miles es-PE.
var moneyPrinter = message.NewPrinter(language.MustParse("es-PE"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateListingPDF genera el PDF del listado filtrado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateListingPDF(_ context.Context, title string, rows []dto.InvoiceResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateInvoicePDF genera el PDF de una factura individual.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, r dto.InvoiceResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Factura %d", r.NumeroFactura), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(invoiceHeaderRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(counterpartRow(r))
	m.AddRows(datesRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(amountsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del listado ─────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Contraparte", 3, align.Left),
		h("Emisión", 1, align.Center),
		h("Vencimiento", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Penalización", 1, align.Right),
		h("Monto Final", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

func tableDetailRow(r dto.InvoiceResponse) core.Row {
	estadoColor := colorGray
	if r.Estado == entity.StatusVencida {
		estadoColor = colorRed
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", r.NumeroFactura),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			counterpartName(r),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			r.FechaEmision,
			props.Text{Size: 7, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			r.FechaVencimiento,
			props.Text{Size: 7, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			formatMoney(r.MontoTotal),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			formatMoney(r.Penalizacion),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			formatMoney(r.MontoFinal),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			r.Estado,
			props.Text{Size: 7, Align: align.Center, Top: 1, Color: estadoColor},
		)),
	)
}

// summaryRow: totales del listado (suma de montos finales).
func summaryRow(rows []dto.InvoiceResponse) core.Row {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.MontoFinal)
	}
	return row.New(10).Add(
		col.New(8).Add(text.New(
			fmt.Sprintf("%d facturas", len(rows)),
			props.Text{Size: 8, Color: colorGray, Top: 2},
		)),
		col.New(4).Add(text.New(
			"Total: "+formatMoney(total),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1},
		)),
	)
}

// ── Secciones de la factura individual ────────────────────────────────────────

func invoiceHeaderRow(r dto.InvoiceResponse) core.Row {
	estadoColor := colorPrimary
	if r.Estado == entity.StatusVencida {
		estadoColor = colorRed
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", r.NumeroFactura), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New(r.Estado, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: estadoColor, Top: 7,
			}),
		),
	)
}

func counterpartRow(r dto.InvoiceResponse) core.Row {
	label := "CLIENTE"
	if r.ProveedorNombre != "" {
		label = "PROVEEDOR"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(counterpartName(r), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
		),
	)
}

func datesRow(r dto.InvoiceResponse) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Fecha de emisión", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(r.FechaEmision, props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("Fecha de vencimiento", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(r.FechaVencimiento, props.Text{Size: 10, Top: 6}),
		),
	)
}

// amountsRow: monto original, penalización acumulada y total a pagar.
func amountsRow(r dto.InvoiceResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	return row.New(28).Add(
		col.New(4),
		col.New(4).Add(
			label("Monto total:"),
			label("Penalización:"),
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(4).Add(
			value(formatMoney(r.MontoTotal), nil),
			value(formatMoney(r.Penalizacion), colorRed),
			text.New(formatMoney(r.MontoFinal), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func counterpartName(r dto.InvoiceResponse) string {
	if r.ProveedorNombre != "" {
		return r.ProveedorNombre
	}
	return r.ClienteNombre
}

// formatMoney imprime un monto en soles con separador de miles es-PE.
// Ej: 25000 → "S/ 25,000.00"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("S/ %.2f", f)
}
