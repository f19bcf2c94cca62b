package entity

import "time"

// Roles de la aplicación. El rol viaja en el claim "rol" del JWT emitido por
// el servicio de identidad; esta API solo lo valida.
const (
	RolAdministrador = "Administrador"
	RolContador      = "Contador"
	RolGerente       = "Gerente"
)

// ValidRole indica si rol es uno de los roles conocidos.
func ValidRole(rol string) bool {
	return rol == RolAdministrador || rol == RolContador || rol == RolGerente
}

// User representa un usuario administrado desde el panel de Administrador.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
