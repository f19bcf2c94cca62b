package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados persistidos de una factura. El estado que se muestra al usuario
// (estado efectivo) se deriva en domain/billing a partir del persistido y la
// fecha de vencimiento; Pagada nunca se sobreescribe por fecha.
const (
	StatusPendiente = "Pendiente"
	StatusPagada    = "Pagada"
	StatusVencida   = "Vencida"
)

// ValidStatus indica si s es uno de los tres estados conocidos.
func ValidStatus(s string) bool {
	return s == StatusPendiente || s == StatusPagada || s == StatusVencida
}

// Invoice representa una factura por cobrar (cliente) o por pagar (proveedor).
// Number es único dentro del conjunto de facturas de cada tipo de contraparte
// y sirve para autoincrementar el número de la siguiente factura.
type Invoice struct {
	ID            string
	CounterpartID string
	Number        int
	IssueDate     time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal
	Status        string // Pendiente | Pagada | Vencida (puede quedar desactualizado respecto a DueDate)
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// CounterpartName y CounterpartKind se cargan con JOIN al listar.
	// Name vacío significa contraparte eliminada (registro huérfano).
	CounterpartName string
	CounterpartKind string // cliente | proveedor
}
