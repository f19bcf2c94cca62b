// Package billing contiene la lógica de dominio de facturación: penalización
// por mora, derivación del estado efectivo, enriquecimiento de listados,
// filtrado y paginación. Todo es puro: la fecha de referencia ("hoy") y las
// listas entran siempre como parámetros, nunca como estado ambiente.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPenaltyRate tasa de mora por día vencido: 1% del monto total.
var DailyPenaltyRate = decimal.New(1, -2)

// ComputePenalty calcula la penalización por retraso y el monto final de una
// factura. Si la fecha de vencimiento aún no pasó la penalización es cero.
//
// Los días de retraso se calculan como floor de la diferencia entre instantes
// dividida en bloques de 24h (no por día calendario): un día parcial solo
// cuenta cuando se completan las 24 horas.
func ComputePenalty(totalAmount decimal.Decimal, dueDate, today time.Time) (penalty, finalAmount decimal.Decimal) {
	if !dueDate.Before(today) {
		return decimal.Zero, totalAmount
	}
	daysLate := int64(today.Sub(dueDate) / (24 * time.Hour))
	penalty = decimal.NewFromInt(daysLate).Mul(DailyPenaltyRate).Mul(totalAmount)
	return penalty, totalAmount.Add(penalty)
}
