package entity

import "time"

// Tipos de contraparte de una factura.
const (
	KindCliente   = "cliente"   // factura por cobrar
	KindProveedor = "proveedor" // factura por pagar
)

// Counterpart representa un cliente o proveedor asociado a facturas.
type Counterpart struct {
	ID        string
	Kind      string // cliente | proveedor
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
