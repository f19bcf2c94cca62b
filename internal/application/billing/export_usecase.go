package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	domainbilling "github.com/felipe798/gestion-facturas-api/internal/domain/billing"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

// ExportUseCase exporta la vista filtrada de facturas a PDF o XLSX y genera
// el PDF de una factura individual. La generación del documento es un
// colaborador externo (puertos InvoicePDFGenerator / InvoiceXLSXGenerator);
// aquí solo se decide qué datos mostrar.
type ExportUseCase struct {
	invoices *InvoiceUseCase
	repo     repository.InvoiceRepository
	pdf      InvoicePDFGenerator
	xlsx     InvoiceXLSXGenerator
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	invoices *InvoiceUseCase,
	repo repository.InvoiceRepository,
	pdf InvoicePDFGenerator,
	xlsx InvoiceXLSXGenerator,
	now func() time.Time,
) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{invoices: invoices, repo: repo, pdf: pdf, xlsx: xlsx, now: now}
}

// ExportListingPDF renderiza como PDF la vista filtrada completa (sin
// paginar) del tipo de contraparte indicado.
func (uc *ExportUseCase) ExportListingPDF(ctx context.Context, kind string, in dto.ListInvoicesRequest) (pdfBytes []byte, filename string, err error) {
	rows, err := uc.filteredRows(ctx, kind, in)
	if err != nil {
		return nil, "", err
	}
	title := "Facturas de Clientes"
	filename = "facturas-clientes.pdf"
	if kind == entity.KindProveedor {
		title = "Facturas de Proveedores"
		filename = "facturas-proveedores.pdf"
	}
	pdfBytes, err = uc.pdf.GenerateListingPDF(ctx, title, rows)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación de PDF fallida: %w", err)
	}
	return pdfBytes, filename, nil
}

// ExportListingXLSX renderiza la misma vista filtrada como hoja de cálculo.
func (uc *ExportUseCase) ExportListingXLSX(ctx context.Context, kind string, in dto.ListInvoicesRequest) (xlsxBytes []byte, filename string, err error) {
	rows, err := uc.filteredRows(ctx, kind, in)
	if err != nil {
		return nil, "", err
	}
	filename = "facturas-clientes.xlsx"
	if kind == entity.KindProveedor {
		filename = "facturas-proveedores.xlsx"
	}
	xlsxBytes, err = uc.xlsx.GenerateListingXLSX(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación de XLSX fallida: %w", err)
	}
	return xlsxBytes, filename, nil
}

// DownloadInvoicePDF genera el PDF de una factura individual.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	enriched, err := domainbilling.Enrich([]*entity.Invoice{inv}, uc.now())
	if err != nil {
		return nil, "", err
	}
	if len(enriched) == 0 {
		// Sin contraparte: registro huérfano, no se muestra.
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err = uc.pdf.GenerateInvoicePDF(ctx, toInvoiceResponse(enriched[0]))
	if err != nil {
		return nil, "", fmt.Errorf("export: generación de PDF fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("Factura-%d.pdf", inv.Number), nil
}

func (uc *ExportUseCase) filteredRows(ctx context.Context, kind string, in dto.ListInvoicesRequest) ([]dto.InvoiceResponse, error) {
	enriched, err := uc.invoices.filteredView(ctx, kind, in)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.InvoiceResponse, 0, len(enriched))
	for _, e := range enriched {
		rows = append(rows, toInvoiceResponse(e))
	}
	return rows, nil
}
