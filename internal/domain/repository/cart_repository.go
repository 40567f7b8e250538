package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para las líneas del carrito.
// Los métodos reciben context porque participan en transacciones con bloqueo
// de fila; un timeout del caller debe abortar la transacción completa, nunca
// dejar una escritura parcial.
type CartRepository interface {
	// Get devuelve la línea para (userID, productID), o nil si no existe.
	Get(ctx context.Context, userID, productID string) (*entity.CartItem, error)

	// GetForUpdate es como Get pero bloquea la fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, userID, productID string) (*entity.CartItem, error)

	// Create inserta una línea nueva. Si otra transacción insertó primero la
	// misma pareja (user, product), devuelve domain.ErrConflict para que el
	// caso de uso reintente la operación completa.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sobrescribe la cantidad de una línea existente.
	UpdateQuantity(ctx context.Context, item *entity.CartItem) error

	// Delete elimina la línea; reporta si existía.
	Delete(ctx context.Context, userID, productID string) (bool, error)

	// DeleteAll vacía el carrito del usuario; devuelve cuántas filas eliminó.
	DeleteAll(ctx context.Context, userID string) (int64, error)

	// ListByUser devuelve las líneas del usuario unidas con el producto vigente,
	// ordenadas de la más reciente a la más antigua.
	ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error)
}
