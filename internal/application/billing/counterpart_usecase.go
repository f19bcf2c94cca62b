package billing

import (
	"fmt"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
	"github.com/google/uuid"
)

// CounterpartUseCase casos de uso para clientes y proveedores.
type CounterpartUseCase struct {
	repo repository.CounterpartRepository
}

// NewCounterpartUseCase construye el caso de uso.
func NewCounterpartUseCase(repo repository.CounterpartRepository) *CounterpartUseCase {
	return &CounterpartUseCase{repo: repo}
}

// Create crea un cliente o proveedor según kind.
func (uc *CounterpartUseCase) Create(kind string, in dto.CreateCounterpartRequest) (*dto.CounterpartResponse, error) {
	if kind != entity.KindCliente && kind != entity.KindProveedor {
		return nil, fmt.Errorf("%w: tipo de contraparte desconocido %q", domain.ErrInvalidInput, kind)
	}
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByKindAndName(kind, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	counterpart := &entity.Counterpart{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      in.Nombre,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(counterpart); err != nil {
		return nil, err
	}
	return toCounterpartResponse(counterpart), nil
}

// List lista las contrapartes del tipo indicado.
func (uc *CounterpartUseCase) List(kind string, limit, offset int) ([]*dto.CounterpartResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByKind(kind, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CounterpartResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCounterpartResponse(c))
	}
	return out, nil
}

func toCounterpartResponse(c *entity.Counterpart) *dto.CounterpartResponse {
	return &dto.CounterpartResponse{
		ID:     c.ID,
		Tipo:   c.Kind,
		Nombre: c.Name,
		Email:  c.Email,
	}
}
