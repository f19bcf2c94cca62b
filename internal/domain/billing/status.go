package billing

import (
	"fmt"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

// DeriveStatus determina el estado efectivo (el que se muestra) a partir del
// estado persistido y la fecha de vencimiento. Pagada es pegajosa: nunca se
// sobreescribe por fecha. En los demás casos manda la fecha: Vencida si ya
// pasó el vencimiento, Pendiente si no.
func DeriveStatus(storedStatus string, dueDate, today time.Time) string {
	if storedStatus == entity.StatusPagada {
		return entity.StatusPagada
	}
	if dueDate.Before(today) {
		return entity.StatusVencida
	}
	return entity.StatusPendiente
}

// ValidateTransition decide si un cambio manual de estado es coherente con la
// fecha de vencimiento. Complementa a DeriveStatus sin solaparse: aquí se
// valida lo que el usuario pide, allá se deriva lo que se muestra.
//
// Reglas:
//   - Vencida antes del vencimiento: rechazado.
//   - Pendiente después del vencimiento: rechazado.
//   - Pagada: siempre aceptado.
//
// Un rechazo retorna domain.ErrPolicyViolation envuelto con la razón legible;
// el caller no debe enviar la actualización al almacenamiento.
func ValidateTransition(newStatus string, dueDate, today time.Time) error {
	switch newStatus {
	case entity.StatusPagada:
		return nil
	case entity.StatusVencida:
		if today.Before(dueDate) {
			return fmt.Errorf("%w: no se puede marcar Vencida antes de la fecha de vencimiento", domain.ErrPolicyViolation)
		}
		return nil
	case entity.StatusPendiente:
		if today.After(dueDate) {
			return fmt.Errorf("%w: no se puede marcar Pendiente después de la fecha de vencimiento", domain.ErrPolicyViolation)
		}
		return nil
	default:
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, newStatus)
	}
}
