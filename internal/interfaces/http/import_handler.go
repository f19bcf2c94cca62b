package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
)

// ImportHandler recibe el CSV de facturas de proveedores.
type ImportHandler struct {
	uc *billing.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *billing.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import procesa el archivo multipart "archivo" y responde con el resumen de
// la importación (importadas, omitidas y errores por línea).
// POST /api/facturas/proveedores/importar
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere el archivo CSV en el campo 'archivo'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	out, err := h.uc.ImportSupplierInvoices(c.Context(), file)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
