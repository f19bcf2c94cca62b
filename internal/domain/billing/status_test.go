package billing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/billing"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

// ── DeriveStatus ──────────────────────────────────────────────────────────────

// TestDeriveStatus_PagadaEsPegajosa: una factura Pagada nunca cambia de estado
// por fecha, ni siquiera muy vencida.
func TestDeriveStatus_PagadaEsPegajosa(t *testing.T) {
	muyVencida := hoy.AddDate(-1, 0, 0)
	got := billing.DeriveStatus(entity.StatusPagada, muyVencida, hoy)
	assert.Equal(t, entity.StatusPagada, got, "Pagada no debe sobreescribirse por fecha")
}

func TestDeriveStatus_VencidaPorFecha(t *testing.T) {
	ayer := hoy.Add(-24 * time.Hour)
	got := billing.DeriveStatus(entity.StatusPendiente, ayer, hoy)
	assert.Equal(t, entity.StatusVencida, got)
}

func TestDeriveStatus_PendientePorFecha(t *testing.T) {
	manana := hoy.Add(24 * time.Hour)
	// Aunque el almacenamiento diga Vencida, la fecha manda si no es Pagada.
	got := billing.DeriveStatus(entity.StatusVencida, manana, hoy)
	assert.Equal(t, entity.StatusPendiente, got, "estado stale Vencida debe corregirse a Pendiente")
}

func TestDeriveStatus_VencimientoExacto(t *testing.T) {
	got := billing.DeriveStatus(entity.StatusPendiente, hoy, hoy)
	assert.Equal(t, entity.StatusPendiente, got, "dueDate == today aún no está vencida")
}

// ── ValidateTransition ────────────────────────────────────────────────────────

// Vectores de la especificación de negocio: marcar Vencida el 2025-01-05 con
// vencimiento 2025-01-10 se rechaza; el 2025-01-15 se acepta.
func TestValidateTransition_VencidaAntesDelVencimiento(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	err := billing.ValidateTransition(entity.StatusVencida, due, today)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyViolation), "debe señalarse como violación de política")
	assert.Contains(t, err.Error(), "antes de la fecha de vencimiento")
}

func TestValidateTransition_VencidaDespuesDelVencimiento(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, billing.ValidateTransition(entity.StatusVencida, due, today))
}

func TestValidateTransition_PendienteDespuesDelVencimiento(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	err := billing.ValidateTransition(entity.StatusPendiente, due, today)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyViolation))
	assert.Contains(t, err.Error(), "después de la fecha de vencimiento")
}

func TestValidateTransition_PendienteAntesDelVencimiento(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, billing.ValidateTransition(entity.StatusPendiente, due, today))
}

// Pagada se acepta siempre, sin importar la relación de fechas.
func TestValidateTransition_PagadaSiempreAceptada(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, today := range []time.Time{due.AddDate(0, 0, -5), due, due.AddDate(0, 0, 5)} {
		assert.NoError(t, billing.ValidateTransition(entity.StatusPagada, due, today))
	}
}

// El día exacto del vencimiento ambas transiciones manuales son válidas
// (las reglas usan comparaciones estrictas).
func TestValidateTransition_DiaExactoDelVencimiento(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, billing.ValidateTransition(entity.StatusVencida, due, due))
	assert.NoError(t, billing.ValidateTransition(entity.StatusPendiente, due, due))
}

func TestValidateTransition_EstadoDesconocido(t *testing.T) {
	err := billing.ValidateTransition("Anulada", hoy, hoy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
