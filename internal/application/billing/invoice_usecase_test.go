package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

// Fecha de referencia fija para que los estados derivados sean deterministas.
var referencia = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ahora() time.Time { return referencia }

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	statuses map[string]string // id → último estado persistido vía UpdateStatus
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: invoices, statuses: map[string]string{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) ListByKind(kind string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CounterpartKind == kind || inv.CounterpartName == "" {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	r.statuses[id] = status
	return nil
}

func (r *fakeInvoiceRepo) MaxNumberByKind(kind string) (int, error) {
	max := 0
	for _, inv := range r.invoices {
		if inv.CounterpartKind == kind && inv.Number > max {
			max = inv.Number
		}
	}
	return max, nil
}

type fakeCounterpartRepo struct {
	counterparts []*entity.Counterpart
}

func (r *fakeCounterpartRepo) Create(c *entity.Counterpart) error {
	r.counterparts = append(r.counterparts, c)
	return nil
}

func (r *fakeCounterpartRepo) GetByID(id string) (*entity.Counterpart, error) {
	for _, c := range r.counterparts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCounterpartRepo) GetByKindAndName(kind, name string) (*entity.Counterpart, error) {
	for _, c := range r.counterparts {
		if c.Kind == kind && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCounterpartRepo) ListByKind(kind string, limit, offset int) ([]*entity.Counterpart, error) {
	var out []*entity.Counterpart
	for _, c := range r.counterparts {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

// facturaCliente factura de cliente con los campos del JOIN ya cargados.
func facturaCliente(id string, numero int, nombre string, monto int64, due time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:              id,
		CounterpartID:   "cp-" + nombre,
		Number:          numero,
		IssueDate:       due.AddDate(0, -1, 0),
		DueDate:         due,
		TotalAmount:     decimal.NewFromInt(monto),
		Status:          entity.StatusPendiente,
		CounterpartName: nombre,
		CounterpartKind: entity.KindCliente,
	}
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestList_EnriqueceFiltraYPagina(t *testing.T) {
	repo := newFakeInvoiceRepo(
		facturaCliente("a", 1, "Acme SA", 1000, referencia.Add(-10*24*time.Hour)), // vencida
		facturaCliente("b", 2, "Globex", 500, referencia.AddDate(0, 0, 5)),
		facturaCliente("c", 3, "", 200, referencia.AddDate(0, 0, 5)), // huérfana
	)
	uc := appbilling.NewInvoiceUseCase(repo, &fakeCounterpartRepo{}, ahora)

	out, err := uc.List(context.Background(), entity.KindCliente, dto.ListInvoicesRequest{})
	require.NoError(t, err)

	require.Len(t, out.Facturas, 2, "la huérfana no debe listarse")
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 4, out.SiguienteNumero, "siguiente número = máximo + 1")

	vencida := out.Facturas[0]
	assert.Equal(t, entity.StatusVencida, vencida.Estado)
	assert.True(t, vencida.Penalizacion.Equal(decimal.NewFromInt(100)),
		"10 días de mora al 1%% sobre 1000 = 100, obtenido %s", vencida.Penalizacion)
	assert.True(t, vencida.MontoFinal.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, "Acme SA", vencida.ClienteNombre)
	assert.Empty(t, vencida.ProveedorNombre)
}

func TestList_PaginaFueraDeRangoVuelveALaPrimera(t *testing.T) {
	repo := newFakeInvoiceRepo()
	for i := 1; i <= 12; i++ {
		repo.invoices = append(repo.invoices,
			facturaCliente(string(rune('a'+i)), i, "Acme SA", 100, referencia.AddDate(0, 0, 5)))
	}
	uc := appbilling.NewInvoiceUseCase(repo, &fakeCounterpartRepo{}, ahora)

	// Tras refiltrar, una página stale fuera de rango no debe mostrar una
	// tabla vacía: se vuelve a la página 1.
	out, err := uc.List(context.Background(), entity.KindCliente, dto.ListInvoicesRequest{Page: 9, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Pagina)
	assert.Len(t, out.Facturas, 10)
	assert.Equal(t, 2, out.TotalPaginas)
}

func TestList_FiltroPorEstadoYContraparte(t *testing.T) {
	repo := newFakeInvoiceRepo(
		facturaCliente("a", 1, "Acme SA", 100, referencia.Add(-2*24*time.Hour)),
		facturaCliente("b", 2, "Acme Norte", 100, referencia.AddDate(0, 0, 2)),
		facturaCliente("c", 3, "Globex", 100, referencia.Add(-2*24*time.Hour)),
	)
	uc := appbilling.NewInvoiceUseCase(repo, &fakeCounterpartRepo{}, ahora)

	out, err := uc.List(context.Background(), entity.KindCliente, dto.ListInvoicesRequest{
		Contraparte: "acme",
		Estado:      entity.StatusVencida,
	})
	require.NoError(t, err)

	require.Len(t, out.Facturas, 1)
	assert.Equal(t, 1, out.Facturas[0].NumeroFactura)
}

func TestList_FechaInvalidaRechazada(t *testing.T) {
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), &fakeCounterpartRepo{}, ahora)

	_, err := uc.List(context.Background(), entity.KindCliente, dto.ListInvoicesRequest{FechaInicio: "10/01/2025"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_AsignaSiguienteNumero(t *testing.T) {
	repo := newFakeInvoiceRepo(
		facturaCliente("a", 7, "Acme SA", 100, referencia.AddDate(0, 0, 5)),
	)
	counterparts := &fakeCounterpartRepo{counterparts: []*entity.Counterpart{
		{ID: "cp-1", Kind: entity.KindCliente, Name: "Globex"},
	}}
	uc := appbilling.NewInvoiceUseCase(repo, counterparts, ahora)

	out, err := uc.Create(context.Background(), entity.KindCliente, dto.CreateInvoiceRequest{
		ContraparteID:    "cp-1",
		FechaEmision:     "2025-03-01",
		FechaVencimiento: "2025-04-01",
		MontoTotal:       decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	assert.Equal(t, 8, out.NumeroFactura, "sin número explícito se asigna máximo + 1")
	assert.Equal(t, entity.StatusPendiente, out.Estado)
	assert.Equal(t, "Globex", out.ClienteNombre)
	assert.True(t, out.Penalizacion.IsZero(), "recién creada y sin vencer: sin penalización")
}

func TestCreate_ContraparteInexistente(t *testing.T) {
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), &fakeCounterpartRepo{}, ahora)

	_, err := uc.Create(context.Background(), entity.KindCliente, dto.CreateInvoiceRequest{
		ContraparteID:    "no-existe",
		FechaEmision:     "2025-03-01",
		FechaVencimiento: "2025-04-01",
		MontoTotal:       decimal.NewFromInt(250),
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreate_VencimientoAnteriorAEmision(t *testing.T) {
	counterparts := &fakeCounterpartRepo{counterparts: []*entity.Counterpart{
		{ID: "cp-1", Kind: entity.KindCliente, Name: "Globex"},
	}}
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), counterparts, ahora)

	_, err := uc.Create(context.Background(), entity.KindCliente, dto.CreateInvoiceRequest{
		ContraparteID:    "cp-1",
		FechaEmision:     "2025-04-01",
		FechaVencimiento: "2025-03-01",
		MontoTotal:       decimal.NewFromInt(250),
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ── UpdateStatus ──────────────────────────────────────────────────────────────

func TestUpdateStatus_GuardaRechazaVencidaAnticipada(t *testing.T) {
	inv := facturaCliente("a", 1, "Acme SA", 100, referencia.AddDate(0, 0, 10))
	repo := newFakeInvoiceRepo(inv)
	uc := appbilling.NewInvoiceUseCase(repo, &fakeCounterpartRepo{}, ahora)

	err := uc.UpdateStatus(context.Background(), "a", entity.StatusVencida)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyViolation))
	assert.Empty(t, repo.statuses, "un rechazo de la guarda no debe persistir nada")
}

func TestUpdateStatus_PagadaSiemprePersiste(t *testing.T) {
	inv := facturaCliente("a", 1, "Acme SA", 100, referencia.AddDate(0, 0, 10))
	repo := newFakeInvoiceRepo(inv)
	uc := appbilling.NewInvoiceUseCase(repo, &fakeCounterpartRepo{}, ahora)

	require.NoError(t, uc.UpdateStatus(context.Background(), "a", entity.StatusPagada))
	assert.Equal(t, entity.StatusPagada, repo.statuses["a"])
}

func TestUpdateStatus_FacturaInexistente(t *testing.T) {
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), &fakeCounterpartRepo{}, ahora)
	err := uc.UpdateStatus(context.Background(), "nada", entity.StatusPagada)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc := appbilling.NewInvoiceUseCase(newFakeInvoiceRepo(), &fakeCounterpartRepo{}, ahora)
	err := uc.UpdateStatus(context.Background(), "a", "Anulada")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
