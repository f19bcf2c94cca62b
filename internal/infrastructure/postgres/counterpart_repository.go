package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

var _ repository.CounterpartRepository = (*CounterpartRepo)(nil)

// CounterpartRepo implementación de CounterpartRepository (usable con pool o tx).
type CounterpartRepo struct {
	q Querier
}

// NewCounterpartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterpartRepository(q Querier) *CounterpartRepo {
	return &CounterpartRepo{q: q}
}

// Create persiste un cliente o proveedor.
func (r *CounterpartRepo) Create(counterpart *entity.Counterpart) error {
	if counterpart.ID == "" {
		counterpart.ID = uuid.New().String()
	}
	query := `
		INSERT INTO counterparts (id, kind, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		counterpart.ID, counterpart.Kind, counterpart.Name, counterpart.Email,
		counterpart.CreatedAt, counterpart.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe %s con ese nombre", domain.ErrDuplicate, counterpart.Kind)
		}
		return fmt.Errorf("insert counterpart: %w", err)
	}
	return nil
}

// GetByID obtiene una contraparte por ID.
func (r *CounterpartRepo) GetByID(id string) (*entity.Counterpart, error) {
	query := `
		SELECT id, kind, name, COALESCE(email, ''), created_at, updated_at
		FROM counterparts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByKindAndName busca una contraparte por tipo y nombre exacto.
func (r *CounterpartRepo) GetByKindAndName(kind, name string) (*entity.Counterpart, error) {
	query := `
		SELECT id, kind, name, COALESCE(email, ''), created_at, updated_at
		FROM counterparts WHERE kind = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, kind, name))
}

// ListByKind lista contrapartes del tipo indicado, ordenadas por nombre.
func (r *CounterpartRepo) ListByKind(kind string, limit, offset int) ([]*entity.Counterpart, error) {
	query := `
		SELECT id, kind, name, COALESCE(email, ''), created_at, updated_at
		FROM counterparts
		WHERE kind = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list counterparts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Counterpart
	for rows.Next() {
		var c entity.Counterpart
		if err := rows.Scan(&c.ID, &c.Kind, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan counterpart: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CounterpartRepo) scanOne(row pgx.Row) (*entity.Counterpart, error) {
	var c entity.Counterpart
	err := row.Scan(&c.ID, &c.Kind, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get counterpart: %w", err)
	}
	return &c, nil
}
