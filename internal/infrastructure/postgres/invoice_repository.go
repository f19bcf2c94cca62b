package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, counterpart_id, number, issue_date, due_date, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CounterpartID, invoice.Number,
		invoice.IssueDate, invoice.DueDate, invoice.TotalAmount, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el número de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura con los datos de su contraparte cargados.
// El LEFT JOIN conserva las facturas huérfanas (nombre vacío).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.counterpart_id, i.number, i.issue_date, i.due_date,
		       i.total_amount, i.status, i.created_at, i.updated_at,
		       COALESCE(c.name, ''), COALESCE(c.kind, '')
		FROM invoices i
		LEFT JOIN counterparts c ON c.id = i.counterpart_id
		WHERE i.id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CounterpartID, &inv.Number, &inv.IssueDate, &inv.DueDate,
		&inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.CounterpartName, &inv.CounterpartKind,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByKind devuelve las facturas del tipo de contraparte indicado, más las
// huérfanas (contraparte borrada), ordenadas por número.
func (r *InvoiceRepo) ListByKind(kind string) ([]*entity.Invoice, error) {
	query := `
		SELECT i.id, i.counterpart_id, i.number, i.issue_date, i.due_date,
		       i.total_amount, i.status, i.created_at, i.updated_at,
		       COALESCE(c.name, ''), COALESCE(c.kind, '')
		FROM invoices i
		LEFT JOIN counterparts c ON c.id = i.counterpart_id
		WHERE c.kind = $1 OR c.id IS NULL
		ORDER BY i.number`
	rows, err := r.q.Query(context.Background(), query, kind)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CounterpartID, &inv.Number, &inv.IssueDate, &inv.DueDate,
			&inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.CounterpartName, &inv.CounterpartKind,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// UpdateStatus persiste el nuevo estado de una factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	query := `UPDATE invoices SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice status: factura %s no encontrada", id)
	}
	return nil
}

// MaxNumberByKind devuelve el número de factura más alto del tipo indicado,
// 0 si no hay facturas.
func (r *InvoiceRepo) MaxNumberByKind(kind string) (int, error) {
	query := `
		SELECT COALESCE(MAX(i.number), 0)
		FROM invoices i
		JOIN counterparts c ON c.id = i.counterpart_id
		WHERE c.kind = $1`
	var max int
	if err := r.q.QueryRow(context.Background(), query, kind).Scan(&max); err != nil {
		return 0, fmt.Errorf("max invoice number: %w", err)
	}
	return max, nil
}
