// Package analytics contiene los casos de uso del dashboard financiero del
// Gerente y de las notificaciones de facturas vencidas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen financiero del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only agregadas).
// No recorre facturas en memoria; la condición de vencida se evalúa en SQL
// contra la fecha de referencia, con Pagada siempre excluida.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{repo: repo, now: now}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. CountOverdue            → facturas_vencidas
//  2. Count/SumPaid(cliente)  → facturas_pagadas_clientes + cobros
//  3. Count/SumPaid(proveedor)→ facturas_pagadas_proveedores + pagos
//  4. PaidByMonth(año actual) → serie mensual
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	nowT := uc.now()

	type paidResult struct {
		count int
		total decimal.Decimal
		err   error
	}
	type overdueResult struct {
		count int
		err   error
	}
	type monthlyResult struct {
		months []repository.MonthlyPaidResult
		err    error
	}

	overdueCh := make(chan overdueResult, 1)
	clientesCh := make(chan paidResult, 1)
	proveedoresCh := make(chan paidResult, 1)
	monthlyCh := make(chan monthlyResult, 1)

	go func() {
		count, err := uc.repo.CountOverdue(ctx, nowT)
		overdueCh <- overdueResult{count, err}
	}()
	paidByKind := func(kind string, ch chan<- paidResult) {
		count, err := uc.repo.CountPaidByKind(ctx, kind)
		if err != nil {
			ch <- paidResult{err: err}
			return
		}
		total, err := uc.repo.SumPaidByKind(ctx, kind)
		ch <- paidResult{count: count, total: total, err: err}
	}
	go paidByKind(entity.KindCliente, clientesCh)
	go paidByKind(entity.KindProveedor, proveedoresCh)
	go func() {
		months, err := uc.repo.PaidByMonth(ctx, nowT.Year())
		monthlyCh <- monthlyResult{months, err}
	}()

	overdue := <-overdueCh
	clientes := <-clientesCh
	proveedores := <-proveedoresCh
	monthly := <-monthlyCh

	if overdue.err != nil {
		return nil, fmt.Errorf("dashboard: facturas vencidas: %w", overdue.err)
	}
	if clientes.err != nil {
		return nil, fmt.Errorf("dashboard: pagadas de clientes: %w", clientes.err)
	}
	if proveedores.err != nil {
		return nil, fmt.Errorf("dashboard: pagadas de proveedores: %w", proveedores.err)
	}
	if monthly.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", monthly.err)
	}

	out := &dto.DashboardStatsDTO{
		FacturasVencidas:           overdue.count,
		FacturasPagadasClientes:    clientes.count,
		FacturasPagadasProveedores: proveedores.count,
		ComparacionPagos: dto.ComparacionPagosDTO{
			Cobros: clientes.total,
			Pagos:  proveedores.total,
		},
		FacturasPagadas: make([]dto.FacturasPagadasMesDTO, 0, len(monthly.months)),
	}
	for _, m := range monthly.months {
		out.FacturasPagadas = append(out.FacturasPagadas, dto.FacturasPagadasMesDTO{
			Mes:      m.Month,
			Cantidad: m.Count,
			Total:    m.Total,
		})
	}
	return out, nil
}

// GetNotifications devuelve las contrapartes con facturas vencidas y cuántas
// acumula cada una.
func (uc *DashboardUseCase) GetNotifications(ctx context.Context) ([]dto.NotificacionDTO, error) {
	grouped, err := uc.repo.OverdueByCounterpart(ctx, uc.now())
	if err != nil {
		return nil, fmt.Errorf("notificaciones: vencidas por contraparte: %w", err)
	}
	out := make([]dto.NotificacionDTO, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, dto.NotificacionDTO{
			Nombre:   g.CounterpartName,
			Tipo:     g.CounterpartKind,
			Cantidad: g.Count,
		})
	}
	return out, nil
}
