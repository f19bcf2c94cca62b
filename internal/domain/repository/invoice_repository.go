package repository

import "github.com/felipe798/gestion-facturas-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia de facturas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// ListByKind devuelve las facturas cuyo contraparte es del tipo indicado
	// (cliente o proveedor), con el nombre de la contraparte cargado por JOIN.
	// Las facturas huérfanas se devuelven con nombre vacío; el dominio decide
	// qué hacer con ellas.
	ListByKind(kind string) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	// MaxNumberByKind devuelve el número de factura más alto del tipo
	// indicado, 0 si no hay facturas.
	MaxNumberByKind(kind string) (int, error)
}
