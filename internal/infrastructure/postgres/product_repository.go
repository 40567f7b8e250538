package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Para el motor de carrito es el directorio de
// productos: siempre lee precio, stock e is_active frescos de la tabla.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, COALESCE(category_id::text, '') AS category_id, sku, name, slug, description, short_description,
		price, compare_price, stock_quantity, images, is_active, is_featured, created_at, updated_at`

// GetByID obtiene un producto por ID (activo o no; el caller decide).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySlug obtiene un producto por slug.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.scanOne(query, slug)
}

// Columnas de ordenamiento permitidas para el listado (allow-list fija:
// nada del request se interpola en el SQL).
var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

// List lista productos activos con filtros y devuelve también el total sin paginar.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var (
		conds = []string{"is_active = true"}
		args  []any
	)
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "is_featured = true")
	}
	where := "WHERE " + strings.Join(conds, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM products ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where, sortCol, order, len(args)-1, len(args))

	list, err := r.scanMany(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListFeatured devuelve los productos destacados activos más recientes.
func (r *ProductRepo) ListFeatured(limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true AND is_featured = true
		ORDER BY created_at DESC LIMIT $1`
	return r.scanMany(query, limit)
}

// ListByCategory lista productos activos de una categoría con paginación y total.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE is_active = true AND category_id = $1`,
		categoryID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products by category: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true AND category_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	list, err := r.scanMany(query, categoryID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.ComparePrice, &p.StockQuantity, &p.Images, &p.IsActive, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
			&p.Price, &p.ComparePrice, &p.StockQuantity, &p.Images, &p.IsActive, &p.IsFeatured,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
