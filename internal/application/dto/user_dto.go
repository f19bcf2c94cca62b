package dto

// CreateUserRequest body para alta de usuario (solo Administrador).
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"` // Administrador | Contador | Gerente
}

// UpdateUserRequest body para edición de usuario. Password vacío conserva
// la contraseña actual.
type UpdateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}
