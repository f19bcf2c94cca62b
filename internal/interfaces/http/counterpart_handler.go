package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
)

// CounterpartHandler maneja clientes y proveedores; el tipo llega fijado
// desde el router.
type CounterpartHandler struct {
	uc *billing.CounterpartUseCase
}

// NewCounterpartHandler construye el handler.
func NewCounterpartHandler(uc *billing.CounterpartUseCase) *CounterpartHandler {
	return &CounterpartHandler{uc: uc}
}

// Create da de alta un cliente o proveedor.
// POST /api/clientes      POST /api/proveedores
func (h *CounterpartHandler) Create(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateCounterpartRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.Create(kind, in)
		if err != nil {
			return handleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// List lista clientes o proveedores.
// GET /api/clientes      GET /api/proveedores
func (h *CounterpartHandler) List(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 20)
		offset := c.QueryInt("offset", 0)
		out, err := h.uc.List(kind, limit, offset)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	}
}
