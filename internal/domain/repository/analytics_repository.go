package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPaidResult total de facturas pagadas en un mes (serie del dashboard).
type MonthlyPaidResult struct {
	Year  int
	Month int
	Count int
	Total decimal.Decimal
}

// OverdueByCounterpartResult facturas vencidas agrupadas por contraparte.
type OverdueByCounterpartResult struct {
	CounterpartName string
	CounterpartKind string // cliente | proveedor
	Count           int
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard
// financiero y las notificaciones. La condición de "vencida" se evalúa contra
// la fecha de referencia, no contra el estado persistido (que puede estar
// stale), con Pagada siempre excluida.
type AnalyticsRepository interface {
	// CountOverdue cuenta facturas no pagadas con vencimiento anterior a now.
	CountOverdue(ctx context.Context, now time.Time) (int, error)
	// CountPaidByKind cuenta facturas pagadas del tipo de contraparte dado.
	CountPaidByKind(ctx context.Context, kind string) (int, error)
	// SumPaidByKind suma los montos pagados del tipo de contraparte dado
	// (cobros para clientes, pagos para proveedores).
	SumPaidByKind(ctx context.Context, kind string) (decimal.Decimal, error)
	// PaidByMonth serie mensual de facturas pagadas del año indicado.
	PaidByMonth(ctx context.Context, year int) ([]MonthlyPaidResult, error)
	// OverdueByCounterpart agrupa las vencidas por contraparte, para las
	// notificaciones del contador.
	OverdueByCounterpart(ctx context.Context, now time.Time) ([]OverdueByCounterpartResult, error)
}
