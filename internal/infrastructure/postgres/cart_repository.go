package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL
// (usable con pool o tx). La tabla cart_items tiene UNIQUE (user_id, product_id):
// nunca hay dos líneas para la misma pareja.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

const cartItemColumns = `id, user_id, product_id, quantity, created_at, updated_at`

// Get devuelve la línea para (userID, productID), o nil si no existe.
func (r *CartRepo) Get(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items WHERE user_id = $1 AND product_id = $2`
	return r.scanOne(ctx, query, userID, productID)
}

// GetForUpdate devuelve la línea bloqueando la fila (SELECT ... FOR UPDATE),
// o nil si no existe. Dentro de una tx serializa las mutaciones concurrentes
// sobre la misma pareja (user, product) sin bloquear parejas distintas.
func (r *CartRepo) GetForUpdate(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items WHERE user_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(ctx, query, userID, productID)
}

// Create inserta una línea nueva. Una violación del UNIQUE (user_id, product_id)
// significa que otra transacción insertó primero: se devuelve ErrConflict para
// que el caso de uso reintente y tome la ruta de merge.
func (r *CartRepo) Create(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sobrescribe la cantidad de una línea existente.
func (r *CartRepo) UpdateQuantity(ctx context.Context, item *entity.CartItem) error {
	query := `
		UPDATE cart_items SET quantity = $3, updated_at = $4
		WHERE user_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(ctx, query, item.UserID, item.ProductID, item.Quantity, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la línea; reporta si existía.
func (r *CartRepo) Delete(ctx context.Context, userID, productID string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return false, fmt.Errorf("delete cart item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteAll vacía el carrito del usuario; devuelve cuántas filas eliminó.
func (r *CartRepo) DeleteAll(ctx context.Context, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByUser devuelve las líneas del usuario unidas con el producto vigente,
// de la más reciente a la más antigua. El JOIN lee precio, stock e is_active
// actuales: el resumen nunca sale de valores cacheados.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error) {
	query := `
		SELECT
			ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			p.name, p.slug, p.price, p.images, p.stock_quantity, p.is_active
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var lines []*entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(
			&l.Item.ID, &l.Item.UserID, &l.Item.ProductID, &l.Item.Quantity,
			&l.Item.CreatedAt, &l.Item.UpdatedAt,
			&l.ProductName, &l.ProductSlug, &l.Price, &l.Images, &l.StockQuantity, &l.ProductActive,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *CartRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}
