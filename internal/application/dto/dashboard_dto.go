package dto

import "github.com/shopspring/decimal"

// ComparacionPagosDTO totales cobrados a clientes vs pagados a proveedores.
type ComparacionPagosDTO struct {
	Cobros decimal.Decimal `json:"cobros"`
	Pagos  decimal.Decimal `json:"pagos"`
}

// FacturasPagadasMesDTO punto de la serie mensual de facturas pagadas.
type FacturasPagadasMesDTO struct {
	Mes      int             `json:"mes"` // 1-12
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/estadisticas, con la
// misma forma que consumía el dashboard financiero original.
type DashboardStatsDTO struct {
	FacturasVencidas           int                     `json:"facturas_vencidas"`
	FacturasPagadasClientes    int                     `json:"facturas_pagadas_clientes"`
	FacturasPagadasProveedores int                     `json:"facturas_pagadas_proveedores"`
	ComparacionPagos           ComparacionPagosDTO     `json:"comparacion_pagos"`
	FacturasPagadas            []FacturasPagadasMesDTO `json:"facturas_pagadas"`
}

// NotificacionDTO contraparte con facturas vencidas acumuladas.
type NotificacionDTO struct {
	Nombre   string `json:"nombre"`
	Tipo     string `json:"tipo"` // cliente | proveedor
	Cantidad int    `json:"cantidad"`
}
