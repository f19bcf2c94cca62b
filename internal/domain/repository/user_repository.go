package repository

import "github.com/felipe798/gestion-facturas-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios del panel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
