package repository

import "github.com/felipe798/gestion-facturas-api/internal/domain/entity"

// CounterpartRepository puerto de persistencia de clientes y proveedores.
type CounterpartRepository interface {
	Create(counterpart *entity.Counterpart) error
	GetByID(id string) (*entity.Counterpart, error)
	GetByKindAndName(kind, name string) (*entity.Counterpart, error)
	ListByKind(kind string, limit, offset int) ([]*entity.Counterpart, error)
}
