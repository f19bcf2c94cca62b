package billing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/billing"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

// facturaDe construye una factura válida de prueba.
func facturaDe(numero int, contraparte string, monto int64, due time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:              "inv-" + contraparte,
		Number:          numero,
		CounterpartName: contraparte,
		CounterpartKind: entity.KindCliente,
		IssueDate:       due.AddDate(0, -1, 0),
		DueDate:         due,
		TotalAmount:     decimal.NewFromInt(monto),
		Status:          entity.StatusPendiente,
	}
}

// TestEnrich_DescartaHuerfanas: las facturas sin contraparte no llegan al
// listado enriquecido.
func TestEnrich_DescartaHuerfanas(t *testing.T) {
	huerfana := facturaDe(2, "", 100, hoy.AddDate(0, 0, 5))
	entrada := []*entity.Invoice{
		facturaDe(1, "Acme SA", 100, hoy.AddDate(0, 0, 5)),
		huerfana,
		facturaDe(3, "Globex", 200, hoy.AddDate(0, 0, 5)),
	}

	out, err := billing.Enrich(entrada, hoy)
	require.NoError(t, err)

	require.Len(t, out, 2, "la huérfana debe descartarse")
	assert.Equal(t, 1, out[0].Number)
	assert.Equal(t, 3, out[1].Number, "el orden de entrada debe preservarse")
}

// TestEnrich_CamposDerivados verifica el escenario completo: factura de 1000
// vencida hace 10 días queda Vencida con penalización 100 y final 1100.
func TestEnrich_CamposDerivados(t *testing.T) {
	inv := facturaDe(7, "Acme SA", 1000, hoy.Add(-10*24*time.Hour))

	out, err := billing.Enrich([]*entity.Invoice{inv}, hoy)
	require.NoError(t, err)
	require.Len(t, out, 1)

	e := out[0]
	assert.Equal(t, entity.StatusVencida, e.EffectiveStatus)
	assert.True(t, e.Penalty.Equal(decimal.NewFromInt(100)), "penalización esperada 100, obtenida %s", e.Penalty)
	assert.True(t, e.FinalAmount.Equal(decimal.NewFromInt(1100)), "monto final esperado 1100, obtenido %s", e.FinalAmount)
	// No destructivo: la factura original no se muta.
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, entity.StatusPendiente, inv.Status)
}

// TestEnrich_EsIdempotente: enriquecer dos veces con el mismo "hoy" produce
// exactamente lo mismo.
func TestEnrich_EsIdempotente(t *testing.T) {
	entrada := []*entity.Invoice{
		facturaDe(1, "Acme SA", 350, hoy.Add(-3*24*time.Hour)),
		facturaDe(2, "Globex", 900, hoy.AddDate(0, 0, 9)),
	}

	a, err := billing.Enrich(entrada, hoy)
	require.NoError(t, err)
	b, err := billing.Enrich(entrada, hoy)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEnrich_MontoNegativoFallaRapido(t *testing.T) {
	inv := facturaDe(1, "Acme SA", 100, hoy)
	inv.TotalAmount = decimal.NewFromInt(-5)

	_, err := billing.Enrich([]*entity.Invoice{inv}, hoy)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestEnrich_FechaEnCeroFallaRapido(t *testing.T) {
	inv := facturaDe(1, "Acme SA", 100, hoy)
	inv.DueDate = time.Time{}

	_, err := billing.Enrich([]*entity.Invoice{inv}, hoy)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ── NextInvoiceNumber ─────────────────────────────────────────────────────────

func TestNextInvoiceNumber_ListaVacia(t *testing.T) {
	assert.Equal(t, 1, billing.NextInvoiceNumber(nil), "sin facturas el siguiente número es 1")
}

func TestNextInvoiceNumber_MaximoMasUno(t *testing.T) {
	entrada := []*entity.Invoice{
		facturaDe(3, "Acme SA", 100, hoy.AddDate(0, 0, 5)),
		facturaDe(7, "Globex", 100, hoy.AddDate(0, 0, 5)),
		facturaDe(5, "Initech", 100, hoy.AddDate(0, 0, 5)),
	}
	out, err := billing.Enrich(entrada, hoy)
	require.NoError(t, err)

	assert.Equal(t, 8, billing.NextInvoiceNumber(out))
}
