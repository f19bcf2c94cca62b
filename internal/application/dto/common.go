package dto

// DateLayout formato de fecha del contrato HTTP (fechas sin hora).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje legible.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}
