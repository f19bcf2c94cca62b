package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y las
// notificaciones. La condición de vencida se evalúa contra la fecha de
// referencia recibida, no contra el estado persistido, que puede estar stale.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountOverdue cuenta facturas no pagadas cuyo vencimiento ya pasó.
// Una factura huérfana no cuenta (no aparece en ninguna vista).
func (r *AnalyticsRepo) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM invoices i
	JOIN counterparts c ON c.id = i.counterpart_id
	WHERE i.status <> $1
	  AND i.due_date < $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, entity.StatusPagada, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountOverdue: %w", err)
	}
	return count, nil
}

// CountPaidByKind cuenta facturas pagadas del tipo de contraparte dado.
func (r *AnalyticsRepo) CountPaidByKind(ctx context.Context, kind string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM invoices i
	JOIN counterparts c ON c.id = i.counterpart_id
	WHERE i.status = $1 AND c.kind = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, entity.StatusPagada, kind).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountPaidByKind: %w", err)
	}
	return count, nil
}

// SumPaidByKind suma los montos de las facturas pagadas del tipo dado.
// COALESCE devuelve cero si no hay filas.
func (r *AnalyticsRepo) SumPaidByKind(ctx context.Context, kind string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(i.total_amount), 0)
	FROM invoices i
	JOIN counterparts c ON c.id = i.counterpart_id
	WHERE i.status = $1 AND c.kind = $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, entity.StatusPagada, kind).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumPaidByKind: %w", err)
	}
	return total, nil
}

// PaidByMonth serie mensual de facturas pagadas del año indicado, ordenada
// por mes. Los meses sin pagos no aparecen.
func (r *AnalyticsRepo) PaidByMonth(ctx context.Context, year int) ([]repository.MonthlyPaidResult, error) {
	const query = `
	SELECT EXTRACT(YEAR  FROM i.issue_date)::INT AS year,
	       EXTRACT(MONTH FROM i.issue_date)::INT AS month,
	       COUNT(*)                              AS count,
	       SUM(i.total_amount)                   AS total
	FROM invoices i
	WHERE i.status = $1
	  AND EXTRACT(YEAR FROM i.issue_date) = $2
	GROUP BY year, month
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query, entity.StatusPagada, year)
	if err != nil {
		return nil, fmt.Errorf("analytics.PaidByMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyPaidResult
	for rows.Next() {
		var row repository.MonthlyPaidResult
		if err := rows.Scan(&row.Year, &row.Month, &row.Count, &row.Total); err != nil {
			return nil, fmt.Errorf("analytics.PaidByMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OverdueByCounterpart agrupa las facturas vencidas por contraparte, las de
// más facturas primero.
func (r *AnalyticsRepo) OverdueByCounterpart(ctx context.Context, now time.Time) ([]repository.OverdueByCounterpartResult, error) {
	const query = `
	SELECT c.name, c.kind, COUNT(*) AS count
	FROM invoices i
	JOIN counterparts c ON c.id = i.counterpart_id
	WHERE i.status <> $1
	  AND i.due_date < $2
	GROUP BY c.name, c.kind
	ORDER BY count DESC, c.name`

	rows, err := r.pool.Query(ctx, query, entity.StatusPagada, now)
	if err != nil {
		return nil, fmt.Errorf("analytics.OverdueByCounterpart: %w", err)
	}
	defer rows.Close()

	var results []repository.OverdueByCounterpartResult
	for rows.Next() {
		var row repository.OverdueByCounterpartResult
		if err := rows.Scan(&row.CounterpartName, &row.CounterpartKind, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.OverdueByCounterpart scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
