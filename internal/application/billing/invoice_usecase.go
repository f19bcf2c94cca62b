// Package billing contiene los casos de uso de facturación: listado
// enriquecido con filtros y paginación, alta de facturas, cambio manual de
// estado, importación CSV y exportación. La lógica de derivación vive en
// domain/billing; aquí solo se orquesta.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	domainbilling "github.com/felipe798/gestion-facturas-api/internal/domain/billing"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
	"github.com/google/uuid"
)

// DefaultPageSize tamaño de página del listado cuando el cliente no lo envía.
const DefaultPageSize = 10

// InvoiceUseCase casos de uso sobre facturas de clientes y proveedores.
type InvoiceUseCase struct {
	invoices     repository.InvoiceRepository
	counterparts repository.CounterpartRepository
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. now inyecta la fecha de
// referencia (time.Now en producción); todos los cálculos derivados dependen
// de ella y se recalculan en cada lectura.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	counterparts repository.CounterpartRepository,
	now func() time.Time,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{invoices: invoices, counterparts: counterparts, now: now}
}

// List devuelve la página pedida del listado enriquecido y filtrado de
// facturas del tipo de contraparte indicado (cliente o proveedor).
//
// Flujo: lista cruda → enriquecer (penalización, monto final, estado
// efectivo, descartar huérfanas) → filtrar → paginar. Si la página pedida
// quedó fuera de rango tras refiltrar, se vuelve a la página 1 en lugar de
// responder una tabla vacía con resultados existentes.
func (uc *InvoiceUseCase) List(ctx context.Context, kind string, in dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error) {
	enriched, err := uc.filteredView(ctx, kind, in)
	if err != nil {
		return nil, err
	}

	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	totalPages := domainbilling.PageCount(len(enriched), pageSize)
	if totalPages > 0 && page > totalPages {
		page = 1
	}

	pageItems := domainbilling.Paginate(enriched, pageSize, page)
	out := &dto.ListInvoicesResponse{
		Facturas:        make([]dto.InvoiceResponse, 0, len(pageItems)),
		Pagina:          page,
		TotalPaginas:    totalPages,
		Total:           len(enriched),
		SiguienteNumero: domainbilling.NextInvoiceNumber(enriched),
	}
	for _, e := range pageItems {
		out.Facturas = append(out.Facturas, toInvoiceResponse(e))
	}
	return out, nil
}

// Create registra una nueva factura. Con NumeroFactura en cero se asigna el
// siguiente número del consecutivo del tipo de contraparte. El estado inicial
// es siempre Pendiente; el efectivo se deriva en cada lectura.
func (uc *InvoiceUseCase) Create(ctx context.Context, kind string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ContraparteID == "" {
		return nil, fmt.Errorf("%w: contraparte_id es requerido", domain.ErrInvalidInput)
	}
	if in.MontoTotal.IsNegative() {
		return nil, fmt.Errorf("%w: monto_total no puede ser negativo", domain.ErrInvalidInput)
	}
	issue, err := parseDate(in.FechaEmision)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_emision inválida: %q", domain.ErrInvalidInput, in.FechaEmision)
	}
	due, err := parseDate(in.FechaVencimiento)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_vencimiento inválida: %q", domain.ErrInvalidInput, in.FechaVencimiento)
	}
	if due.Before(issue) {
		return nil, fmt.Errorf("%w: la fecha de vencimiento no puede ser anterior a la de emisión", domain.ErrInvalidInput)
	}

	counterpart, err := uc.counterparts.GetByID(in.ContraparteID)
	if err != nil {
		return nil, err
	}
	if counterpart == nil || counterpart.Kind != kind {
		return nil, domain.ErrNotFound
	}

	number := in.NumeroFactura
	if number <= 0 {
		max, err := uc.invoices.MaxNumberByKind(kind)
		if err != nil {
			return nil, err
		}
		number = max + 1
	}

	nowT := uc.now()
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		CounterpartID:   counterpart.ID,
		Number:          number,
		IssueDate:       issue,
		DueDate:         due,
		TotalAmount:     in.MontoTotal,
		Status:          entity.StatusPendiente,
		CreatedAt:       nowT,
		UpdatedAt:       nowT,
		CounterpartName: counterpart.Name,
		CounterpartKind: counterpart.Kind,
	}
	if err := uc.invoices.Create(inv); err != nil {
		return nil, err
	}

	enriched, err := domainbilling.Enrich([]*entity.Invoice{inv}, nowT)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(enriched[0])
	return &resp, nil
}

// UpdateStatus cambia manualmente el estado de una factura. El cambio pasa
// primero por la guarda de transición: si es incoherente con la fecha de
// vencimiento se rechaza con domain.ErrPolicyViolation y no se persiste nada.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id, estado string) error {
	if !entity.ValidStatus(estado) {
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, estado)
	}
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := domainbilling.ValidateTransition(estado, inv.DueDate, uc.now()); err != nil {
		return err
	}
	return uc.invoices.UpdateStatus(id, estado)
}

// filteredView materializa la vista enriquecida y filtrada completa (sin
// paginar). La comparte el listado y la exportación.
func (uc *InvoiceUseCase) filteredView(ctx context.Context, kind string, in dto.ListInvoicesRequest) ([]domainbilling.EnrichedInvoice, error) {
	criteria, err := buildCriteria(in)
	if err != nil {
		return nil, err
	}
	raw, err := uc.invoices.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	enriched, err := domainbilling.Enrich(raw, uc.now())
	if err != nil {
		return nil, err
	}
	return domainbilling.Filter(enriched, criteria), nil
}

// buildCriteria traduce los query params al criterio de dominio.
func buildCriteria(in dto.ListInvoicesRequest) (domainbilling.Criteria, error) {
	c := domainbilling.Criteria{
		Number:      in.NumeroFactura,
		Counterpart: in.Contraparte,
		Status:      in.Estado,
	}
	if in.Estado != "" && !entity.ValidStatus(in.Estado) {
		return c, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Estado)
	}
	if in.FechaInicio != "" {
		t, err := parseDate(in.FechaInicio)
		if err != nil {
			return c, fmt.Errorf("%w: fecha_inicio inválida: %q", domain.ErrInvalidInput, in.FechaInicio)
		}
		c.StartDate = t
	}
	if in.FechaFin != "" {
		t, err := parseDate(in.FechaFin)
		if err != nil {
			return c, fmt.Errorf("%w: fecha_fin inválida: %q", domain.ErrInvalidInput, in.FechaFin)
		}
		c.EndDate = t
	}
	return c, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

// toInvoiceResponse proyecta la factura enriquecida al DTO del contrato: el
// nombre de la contraparte sale por el campo que corresponde a su tipo.
func toInvoiceResponse(e domainbilling.EnrichedInvoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:               e.ID,
		NumeroFactura:    e.Number,
		FechaEmision:     e.IssueDate.Format(dto.DateLayout),
		FechaVencimiento: e.DueDate.Format(dto.DateLayout),
		MontoTotal:       e.TotalAmount,
		Penalizacion:     e.Penalty,
		MontoFinal:       e.FinalAmount,
		Estado:           e.EffectiveStatus,
	}
	if e.CounterpartKind == entity.KindProveedor {
		resp.ProveedorNombre = e.CounterpartName
	} else {
		resp.ClienteNombre = e.CounterpartName
	}
	return resp
}
