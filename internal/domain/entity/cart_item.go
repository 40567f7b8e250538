package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito: a lo sumo una fila por par
// (user_id, product_id). Quantity siempre es > 0; una línea con cantidad
// cero no existe como fila (eliminar = borrar la fila).
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine es una línea del carrito unida con los datos vigentes del producto.
// Se materializa solo en lectura: el resumen del carrito nunca se persiste.
type CartLine struct {
	Item CartItem

	ProductName   string
	ProductSlug   string
	Price         decimal.Decimal
	Images        []string
	StockQuantity int
	ProductActive bool // false = el producto fue desactivado después de agregarse
}

// Total devuelve quantity * precio vigente del producto.
func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Item.Quantity)))
}
