package billing

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Columnas requeridas del CSV de facturas de proveedores.
var importRequiredColumns = []string{
	"numero_factura", "proveedor", "fecha_emision", "fecha_vencimiento", "monto_total",
}

// parsedImportRow fila del CSV ya validada y tipada, lista para insertar.
type parsedImportRow struct {
	number       int
	supplierName string
	issueDate    time.Time
	dueDate      time.Time
	totalAmount  decimal.Decimal
	status       string
}

// ImportUseCase importa facturas de proveedores desde un archivo CSV.
type ImportUseCase struct {
	tx  ImportTxRunner
	now func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx ImportTxRunner, now func() time.Time) *ImportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ImportUseCase{tx: tx, now: now}
}

// ImportSupplierInvoices parsea el CSV completo y, si hay al menos una fila
// válida, inserta todas las facturas en una sola transacción: el proveedor se
// resuelve por nombre y se crea si no existe. Las filas con proveedor vacío se
// omiten; las filas malformadas se reportan por número de línea sin abortar
// el resto del archivo.
//
// Encabezado esperado: numero_factura, proveedor, fecha_emision,
// fecha_vencimiento, monto_total y opcionalmente estado (default Pendiente).
func (uc *ImportUseCase) ImportSupplierInvoices(ctx context.Context, file io.Reader) (*dto.ImportResultResponse, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: archivo CSV requerido", domain.ErrInvalidInput)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo leer el encabezado del CSV", domain.ErrInvalidInput)
	}
	colIndex := map[string]int{}
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importRequiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: el CSV debe incluir la columna %q", domain.ErrInvalidInput, col)
		}
	}
	statusIdx, hasStatus := colIndex["estado"]

	var rows []parsedImportRow
	var errores []string
	skipped := 0
	line := 1 // el encabezado fue la línea 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errores = append(errores, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}

		field := func(name string) string {
			idx := colIndex[name]
			if idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		supplierName := field("proveedor")
		if supplierName == "" {
			skipped++
			continue
		}

		row := parsedImportRow{supplierName: supplierName, status: entity.StatusPendiente}
		if row.number, err = strconv.Atoi(field("numero_factura")); err != nil || row.number <= 0 {
			errores = append(errores, fmt.Sprintf("línea %d: numero_factura inválido %q", line, field("numero_factura")))
			continue
		}
		if row.issueDate, err = time.Parse(dto.DateLayout, field("fecha_emision")); err != nil {
			errores = append(errores, fmt.Sprintf("línea %d: fecha_emision inválida %q", line, field("fecha_emision")))
			continue
		}
		if row.dueDate, err = time.Parse(dto.DateLayout, field("fecha_vencimiento")); err != nil {
			errores = append(errores, fmt.Sprintf("línea %d: fecha_vencimiento inválida %q", line, field("fecha_vencimiento")))
			continue
		}
		if row.totalAmount, err = decimal.NewFromString(field("monto_total")); err != nil || row.totalAmount.IsNegative() {
			errores = append(errores, fmt.Sprintf("línea %d: monto_total inválido %q", line, field("monto_total")))
			continue
		}
		if hasStatus && statusIdx < len(rec) {
			if s := strings.TrimSpace(rec[statusIdx]); s != "" {
				if !entity.ValidStatus(s) {
					errores = append(errores, fmt.Sprintf("línea %d: estado desconocido %q", line, s))
					continue
				}
				row.status = s
			}
		}
		rows = append(rows, row)
	}

	imported := 0
	if len(rows) > 0 {
		err = uc.tx.RunImport(ctx, func(
			counterpartRepo repository.CounterpartRepository,
			invoiceRepo repository.InvoiceRepository,
		) error {
			nowT := uc.now()
			// Cache de proveedores resueltos en esta misma importación.
			suppliers := map[string]string{}
			for _, row := range rows {
				supplierID, ok := suppliers[row.supplierName]
				if !ok {
					existing, err := counterpartRepo.GetByKindAndName(entity.KindProveedor, row.supplierName)
					if err != nil {
						return err
					}
					if existing != nil {
						supplierID = existing.ID
					} else {
						supplier := &entity.Counterpart{
							ID:        uuid.New().String(),
							Kind:      entity.KindProveedor,
							Name:      row.supplierName,
							CreatedAt: nowT,
							UpdatedAt: nowT,
						}
						if err := counterpartRepo.Create(supplier); err != nil {
							return err
						}
						supplierID = supplier.ID
					}
					suppliers[row.supplierName] = supplierID
				}
				inv := &entity.Invoice{
					ID:            uuid.New().String(),
					CounterpartID: supplierID,
					Number:        row.number,
					IssueDate:     row.issueDate,
					DueDate:       row.dueDate,
					TotalAmount:   row.totalAmount,
					Status:        row.status,
					CreatedAt:     nowT,
					UpdatedAt:     nowT,
				}
				if err := invoiceRepo.Create(inv); err != nil {
					return fmt.Errorf("factura %d de %s: %w", row.number, row.supplierName, err)
				}
				imported++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.ImportResultResponse{
		Mensaje:    fmt.Sprintf("%d facturas importadas correctamente", imported),
		Importadas: imported,
		Omitidas:   skipped,
		Errores:    errores,
	}, nil
}
