package dto

import "github.com/shopspring/decimal"

// InvoiceResponse factura enriquecida en respuestas. El nombre de la
// contraparte sale como cliente_nombre o proveedor_nombre según el tipo,
// igual que en el contrato original del front.
type InvoiceResponse struct {
	ID               string          `json:"id"`
	NumeroFactura    int             `json:"numero_factura"`
	ClienteNombre    string          `json:"cliente_nombre,omitempty"`
	ProveedorNombre  string          `json:"proveedor_nombre,omitempty"`
	FechaEmision     string          `json:"fecha_emision"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	Penalizacion     decimal.Decimal `json:"penalizacion"`
	MontoFinal       decimal.Decimal `json:"monto_final"`
	Estado           string          `json:"estado"` // estado efectivo (derivado)
}

// ListInvoicesRequest filtros y paginación del listado de facturas.
// Todos los campos son opcionales; vacío significa sin restricción.
type ListInvoicesRequest struct {
	NumeroFactura string `query:"numero_factura"`
	Contraparte   string `query:"contraparte"`
	Estado        string `query:"estado"`
	FechaInicio   string `query:"fecha_inicio"` // YYYY-MM-DD, inclusive
	FechaFin      string `query:"fecha_fin"`    // YYYY-MM-DD, inclusive
	Page          int    `query:"page"`
	PageSize      int    `query:"page_size"`
}

// ListInvoicesResponse página del listado más los metadatos que el front
// necesita para la navegación y el formulario de alta.
type ListInvoicesResponse struct {
	Facturas        []InvoiceResponse `json:"facturas"`
	Pagina          int               `json:"pagina"`
	TotalPaginas    int               `json:"total_paginas"`
	Total           int               `json:"total"`
	SiguienteNumero int               `json:"siguiente_numero"`
}

// CreateInvoiceRequest body para POST /api/facturas.
// NumeroFactura en cero significa "asignar el siguiente automáticamente".
type CreateInvoiceRequest struct {
	NumeroFactura    int             `json:"numero_factura,omitempty"`
	ContraparteID    string          `json:"contraparte_id"`
	FechaEmision     string          `json:"fecha_emision"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/facturas/:id.
type UpdateInvoiceStatusRequest struct {
	Estado string `json:"estado"`
}

// CreateCounterpartRequest body para alta de cliente o proveedor.
type CreateCounterpartRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// CounterpartResponse cliente o proveedor en respuestas.
type CounterpartResponse struct {
	ID     string `json:"id"`
	Tipo   string `json:"tipo"` // cliente | proveedor
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// ImportResultResponse resumen de una importación CSV de facturas de
// proveedores.
type ImportResultResponse struct {
	Mensaje    string   `json:"mensaje"`
	Importadas int      `json:"importadas"`
	Omitidas   int      `json:"omitidas"`
	Errores    []string `json:"errores,omitempty"`
}
