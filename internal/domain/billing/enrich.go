package billing

import (
	"fmt"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EnrichedInvoice es la proyección lista para mostrar de una factura: la
// factura original más los campos derivados. Los campos de entrada no se
// mutan; el enriquecimiento se recalcula en cada lectura porque depende de
// la fecha de referencia.
type EnrichedInvoice struct {
	entity.Invoice
	Penalty         decimal.Decimal
	FinalAmount     decimal.Decimal
	EffectiveStatus string
}

// Enrich transforma la lista cruda de facturas en la lista enriquecida,
// preservando el orden de entrada. Las facturas sin contraparte (registros
// huérfanos del almacenamiento) se descartan y no llegan a mostrarse.
//
// La entrada malformada (monto negativo, fecha en cero) se rechaza de
// inmediato con un error descriptivo en lugar de propagar valores absurdos.
func Enrich(invoices []*entity.Invoice, today time.Time) ([]EnrichedInvoice, error) {
	out := make([]EnrichedInvoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.CounterpartName == "" {
			continue
		}
		if inv.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("%w: factura %d con monto negativo %s", domain.ErrInvalidInput, inv.Number, inv.TotalAmount)
		}
		if inv.IssueDate.IsZero() || inv.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: factura %d sin fecha de emisión o vencimiento", domain.ErrInvalidInput, inv.Number)
		}
		penalty, final := ComputePenalty(inv.TotalAmount, inv.DueDate, today)
		out = append(out, EnrichedInvoice{
			Invoice:         *inv,
			Penalty:         penalty,
			FinalAmount:     final,
			EffectiveStatus: DeriveStatus(inv.Status, inv.DueDate, today),
		})
	}
	return out, nil
}

// NextInvoiceNumber devuelve el número autoincrementado para la próxima
// factura: máximo de los números existentes más uno, o 1 si no hay facturas.
func NextInvoiceNumber(invoices []EnrichedInvoice) int {
	max := 0
	for _, inv := range invoices {
		if inv.Number > max {
			max = inv.Number
		}
	}
	return max + 1
}
