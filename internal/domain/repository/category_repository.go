package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	GetByID(id string) (*entity.Category, error)
	ListActive() ([]*entity.Category, error)
}
