package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductFilter filtros del listado público de catálogo.
// SortBy solo admite las columnas de la allow-list (name, price, created_at);
// cualquier otro valor cae al orden por defecto.
type ProductFilter struct {
	CategoryID   string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	FeaturedOnly bool
	SortBy       string // name | price | created_at
	SortOrder    string // asc | desc
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// El motor de carrito lo usa solo como directorio de lectura: precio,
// is_active y stock_quantity siempre frescos, sin caché delante.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, int, error)
	ListFeatured(limit int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, int, error)
}
