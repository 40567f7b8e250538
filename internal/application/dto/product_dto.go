package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListProductsRequest filtros del listado público de productos.
type ListProductsRequest struct {
	Category  string `query:"category"`
	MinPrice  string `query:"min_price"`
	MaxPrice  string `query:"max_price"`
	Featured  bool   `query:"featured"`
	SortBy    string `query:"sort_by"`    // name | price | created_at
	SortOrder string `query:"sort_order"` // asc | desc
	PageRequest
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID               string           `json:"id"`
	CategoryID       string           `json:"category_id,omitempty"`
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description,omitempty"`
	ShortDescription string           `json:"short_description,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	ComparePrice     *decimal.Decimal `json:"compare_price,omitempty"`
	StockQuantity    int              `json:"stock_quantity"`
	Images           []string         `json:"images"`
	IsActive         bool             `json:"is_active"`
	IsFeatured       bool             `json:"is_featured"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
