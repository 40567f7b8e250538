package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price y StockQuantity son propiedad del catálogo: el motor de carrito
// solo los lee (el stock es un techo, nunca se descuenta al agregar al carrito).
type Product struct {
	ID               string
	CategoryID       string // vacío si no tiene categoría
	SKU              string
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            decimal.Decimal
	ComparePrice     *decimal.Decimal // precio tachado; nil si no aplica
	StockQuantity    int
	Images           []string
	IsActive         bool
	IsFeatured       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
