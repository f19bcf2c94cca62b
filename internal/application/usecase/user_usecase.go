// Package usecase contiene los casos de uso administrativos que no pertenecen
// al dominio de facturación.
package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipe798/gestion-facturas-api/internal/application/dto"
	"github.com/felipe798/gestion-facturas-api/internal/domain"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
	"github.com/felipe798/gestion-facturas-api/internal/domain/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestiona el alta, edición y baja de usuarios del panel.
// Reservado al rol Administrador; la autorización la aplica el middleware.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, now func() time.Time) *UserUseCase {
	if now == nil {
		now = time.Now
	}
	return &UserUseCase{repo: repo, now: now}
}

// List devuelve los usuarios registrados, paginados.
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUserResponse(user), nil
}

// Create da de alta un usuario con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: nombre y email son requeridos", domain.ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Rol)
	}

	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con el email %s", domain.ErrDuplicate, in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	nowT := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Rol,
		CreatedAt:    nowT,
		UpdatedAt:    nowT,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Update edita nombre, email y rol; con password vacío conserva la actual.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: nombre y email son requeridos", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Rol)
	}
	if in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: ya existe un usuario con el email %s", domain.ErrDuplicate, in.Email)
		}
	}

	user.Name = in.Nombre
	user.Email = in.Email
	user.Role = in.Rol
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = uc.now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Nombre: u.Name,
		Email:  u.Email,
		Rol:    u.Role,
	}
}
