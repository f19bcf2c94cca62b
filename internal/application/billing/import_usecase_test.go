package billing_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin
// transacción real); registra si se invocó.
type fakeTxRunner struct {
	counterparts *fakeCounterpartRepo
	invoices     *fakeInvoiceRepo
	invoked      bool
}

func (r *fakeTxRunner) RunImport(ctx context.Context, fn func(
	counterpartRepo repository.CounterpartRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	r.invoked = true
	return fn(r.counterparts, r.invoices)
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{counterparts: &fakeCounterpartRepo{}, invoices: newFakeInvoiceRepo()}
}

const csvValido = `numero_factura,proveedor,fecha_emision,fecha_vencimiento,monto_total,estado
1001,Distribuidora Norte,2025-01-05,2025-02-05,1500.50,Pendiente
1002,Distribuidora Norte,2025-01-10,2025-02-10,300,
1003,Suministros Lima,2025-01-12,2025-02-12,99.99,Pagada
`

func TestImport_CSVValido(t *testing.T) {
	tx := newFakeTxRunner()
	uc := appbilling.NewImportUseCase(tx, ahora)

	out, err := uc.ImportSupplierInvoices(context.Background(), strings.NewReader(csvValido))
	require.NoError(t, err)

	assert.True(t, tx.invoked, "las filas válidas deben insertarse dentro de la transacción")
	assert.Equal(t, 3, out.Importadas)
	assert.Equal(t, 0, out.Omitidas)
	assert.Empty(t, out.Errores)

	// El proveedor repetido se crea una sola vez.
	require.Len(t, tx.counterparts.counterparts, 2)
	assert.Equal(t, entity.KindProveedor, tx.counterparts.counterparts[0].Kind)
	assert.Equal(t, "Distribuidora Norte", tx.counterparts.counterparts[0].Name)

	require.Len(t, tx.invoices.invoices, 3)
	primera := tx.invoices.invoices[0]
	assert.Equal(t, 1001, primera.Number)
	assert.True(t, primera.TotalAmount.Equal(decimal.NewFromFloat(1500.50)))
	assert.Equal(t, entity.StatusPendiente, primera.Status)
	// Estado vacío cae al default Pendiente; el explícito se respeta.
	assert.Equal(t, entity.StatusPendiente, tx.invoices.invoices[1].Status)
	assert.Equal(t, entity.StatusPagada, tx.invoices.invoices[2].Status)
}

func TestImport_FilasSinProveedorSeOmiten(t *testing.T) {
	csv := `numero_factura,proveedor,fecha_emision,fecha_vencimiento,monto_total
2001,Proveedor Uno,2025-01-05,2025-02-05,100
2002,,2025-01-06,2025-02-06,200
`
	tx := newFakeTxRunner()
	uc := appbilling.NewImportUseCase(tx, ahora)

	out, err := uc.ImportSupplierInvoices(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Importadas)
	assert.Equal(t, 1, out.Omitidas)
}

func TestImport_FilasMalformadasSeReportanSinAbortar(t *testing.T) {
	csv := `numero_factura,proveedor,fecha_emision,fecha_vencimiento,monto_total
abc,Proveedor Uno,2025-01-05,2025-02-05,100
3001,Proveedor Uno,05/01/2025,2025-02-05,100
3002,Proveedor Uno,2025-01-05,2025-02-05,-4
3003,Proveedor Uno,2025-01-05,2025-02-05,100
`
	tx := newFakeTxRunner()
	uc := appbilling.NewImportUseCase(tx, ahora)

	out, err := uc.ImportSupplierInvoices(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Importadas, "solo la última fila es válida")
	require.Len(t, out.Errores, 3)
	assert.Contains(t, out.Errores[0], "numero_factura inválido")
	assert.Contains(t, out.Errores[1], "fecha_emision inválida")
	assert.Contains(t, out.Errores[2], "monto_total inválido")
}

func TestImport_EncabezadoIncompleto(t *testing.T) {
	csv := `numero_factura,proveedor,monto_total
1,Proveedor Uno,100
`
	uc := appbilling.NewImportUseCase(newFakeTxRunner(), ahora)

	_, err := uc.ImportSupplierInvoices(context.Background(), strings.NewReader(csv))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "fecha_emision")
}

func TestImport_ArchivoNil(t *testing.T) {
	uc := appbilling.NewImportUseCase(newFakeTxRunner(), ahora)
	_, err := uc.ImportSupplierInvoices(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
