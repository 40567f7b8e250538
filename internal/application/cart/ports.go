package cart

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la terna (leer línea existente,
// leer stock, escribir cantidad nueva) sea atómica por par (user, product):
// la fila de la línea se bloquea con SELECT FOR UPDATE y el insert inicial
// que pierda la carrera sale como domain.ErrConflict para reintentar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
	) error) error
}
