package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas. Los mismos métodos
// sirven para clientes y proveedores: el tipo de contraparte llega fijado
// desde el router.
type InvoiceHandler struct {
	uc     *billing.InvoiceUseCase
	export *billing.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, export *billing.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, export: export}
}

// List devuelve el listado enriquecido, filtrado y paginado.
// GET /api/facturas      GET /api/facturas/proveedores
func (h *InvoiceHandler) List(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ListInvoicesRequest
		if err := c.QueryParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
		}
		out, err := h.uc.List(c.Context(), kind, in)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	}
}

// Create registra una factura nueva, siempre Pendiente.
// POST /api/facturas      POST /api/facturas/proveedores
func (h *InvoiceHandler) Create(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateInvoiceRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.Create(c.Context(), kind, in)
		if err != nil {
			return handleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// UpdateStatus cambia el estado de una factura, sujeto a la guarda de
// transiciones (422 si la regla la rechaza).
// PATCH /api/facturas/:id
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), id, in.Estado); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "estado actualizado"})
}

// ExportPDF descarga la vista filtrada completa como PDF.
// GET /api/facturas/exportar/pdf      GET /api/facturas/proveedores/exportar/pdf
func (h *InvoiceHandler) ExportPDF(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ListInvoicesRequest
		if err := c.QueryParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
		}
		pdfBytes, filename, err := h.export.ExportListingPDF(c.Context(), kind, in)
		if err != nil {
			return handleError(c, err)
		}
		return sendAttachment(c, pdfBytes, filename, "application/pdf")
	}
}

// ExportXLSX descarga la misma vista como hoja de cálculo.
// GET /api/facturas/exportar/xlsx      GET /api/facturas/proveedores/exportar/xlsx
func (h *InvoiceHandler) ExportXLSX(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ListInvoicesRequest
		if err := c.QueryParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
		}
		xlsxBytes, filename, err := h.export.ExportListingXLSX(c.Context(), kind, in)
		if err != nil {
			return handleError(c, err)
		}
		return sendAttachment(c, xlsxBytes, filename,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
}

// DownloadPDF descarga el PDF de una factura individual.
// GET /api/facturas/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, filename, err := h.export.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return sendAttachment(c, pdfBytes, filename, "application/pdf")
}

func sendAttachment(c *fiber.Ctx, body []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
