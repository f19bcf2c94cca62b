package billing

import (
	"strconv"
	"strings"
	"time"
)

// Criteria son los filtros de búsqueda del listado de facturas. Un campo en
// su valor cero significa "sin restricción"; una factura pasa solo si cumple
// todos los criterios activos a la vez.
type Criteria struct {
	Number      string    // subcadena sobre el número de factura en texto
	Counterpart string    // subcadena del nombre de la contraparte, sin distinguir mayúsculas
	Status      string    // igualdad exacta con el estado efectivo
	StartDate   time.Time // fecha de emisión >= StartDate (inclusive)
	EndDate     time.Time // fecha de emisión <= EndDate (inclusive)
}

// IsEmpty indica si ningún criterio está activo.
func (c Criteria) IsEmpty() bool {
	return c.Number == "" && c.Counterpart == "" && c.Status == "" &&
		c.StartDate.IsZero() && c.EndDate.IsZero()
}

// Filter aplica los criterios sobre la lista enriquecida preservando el orden
// relativo. Con criterios vacíos devuelve la entrada sin cambios. Una factura
// sin nombre de contraparte nunca coincide con un filtro de nombre activo (se
// trata como cadena vacía, no se lanza nada).
func Filter(invoices []EnrichedInvoice, c Criteria) []EnrichedInvoice {
	if c.IsEmpty() {
		return invoices
	}
	out := make([]EnrichedInvoice, 0, len(invoices))
	for _, inv := range invoices {
		if c.Number != "" && !strings.Contains(strconv.Itoa(inv.Number), c.Number) {
			continue
		}
		if c.Counterpart != "" &&
			!strings.Contains(strings.ToLower(inv.CounterpartName), strings.ToLower(c.Counterpart)) {
			continue
		}
		if c.Status != "" && inv.EffectiveStatus != c.Status {
			continue
		}
		if !c.StartDate.IsZero() && inv.IssueDate.Before(c.StartDate) {
			continue
		}
		if !c.EndDate.IsZero() && inv.IssueDate.After(c.EndDate) {
			continue
		}
		out = append(out, inv)
	}
	return out
}
