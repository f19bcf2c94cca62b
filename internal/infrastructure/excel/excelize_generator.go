// Package excel implementa la exportación del listado de facturas a XLSX
// con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appbilling "github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
)

var _ appbilling.InvoiceXLSXGenerator = (*ExcelizeGenerator)(nil)

const sheetName = "Facturas"

// ExcelizeGenerator implementa billing.InvoiceXLSXGenerator.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GenerateListingXLSX escribe una hoja con una fila por factura de la vista
// filtrada. Los montos van como número con dos decimales para que Excel
// pueda sumarlos.
func (g *ExcelizeGenerator) GenerateListingXLSX(_ context.Context, rows []dto.InvoiceResponse) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	xl.SetSheetName(xl.GetSheetName(0), sheetName)

	header := []string{
		"numero_factura", "contraparte", "fecha_emision", "fecha_vencimiento",
		"monto_total", "penalizacion", "monto_final", "estado",
	}
	if err := xl.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: escribir encabezado: %w", err)
	}

	for i, r := range rows {
		name := r.ClienteNombre
		if r.ProveedorNombre != "" {
			name = r.ProveedorNombre
		}
		monto, _ := r.MontoTotal.Round(2).Float64()
		penalizacion, _ := r.Penalizacion.Round(2).Float64()
		montoFinal, _ := r.MontoFinal.Round(2).Float64()
		record := []interface{}{
			r.NumeroFactura,
			name,
			r.FechaEmision,
			r.FechaVencimiento,
			monto,
			penalizacion,
			montoFinal,
			r.Estado,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de la fila %d: %w", i+2, err)
		}
		if err := xl.SetSheetRow(sheetName, cellRef, &record); err != nil {
			return nil, fmt.Errorf("xlsx: escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
