package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest entrada para agregar un producto al carrito (aditivo:
// si la línea ya existe, la cantidad se suma a la existente).
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest entrada para fijar la cantidad de una línea existente
// (absoluto, no aditivo).
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse una línea del carrito tal como la ve el cliente.
type CartItemResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLineResponse línea del carrito unida con el producto vigente (vista del resumen).
type CartLineResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Slug          string          `json:"slug"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	ItemTotal     decimal.Decimal `json:"item_total"`
	Images        []string        `json:"images"`
	StockQuantity int             `json:"stock_quantity"`
	ProductActive bool            `json:"product_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CartSummaryResponse resumen del carrito. ItemCount es el número de líneas
// (no la suma de cantidades) y Subtotal se recalcula en cada lectura con los
// precios vigentes: nunca se persiste, así que no puede quedar obsoleto.
type CartSummaryResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
}
