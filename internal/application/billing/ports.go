package billing

import (
	"context"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

// ImportTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios que participan en una importación de facturas: si algo
// falla a mitad del archivo, no queda ninguna fila a medias.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		counterpartRepo repository.CounterpartRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator renderiza facturas a PDF. Es un colaborador externo:
// el caso de uso solo le entrega los datos enriquecidos/filtrados que debe
// mostrar, nunca conoce el layout.
type InvoicePDFGenerator interface {
	// GenerateListingPDF renderiza la vista filtrada como tabla.
	GenerateListingPDF(ctx context.Context, title string, rows []dto.InvoiceResponse) ([]byte, error)
	// GenerateInvoicePDF renderiza una factura individual.
	GenerateInvoicePDF(ctx context.Context, row dto.InvoiceResponse) ([]byte, error)
}

// InvoiceXLSXGenerator renderiza la vista filtrada como hoja de cálculo.
type InvoiceXLSXGenerator interface {
	GenerateListingXLSX(ctx context.Context, rows []dto.InvoiceResponse) ([]byte, error)
}
