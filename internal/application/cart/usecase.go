package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Reintentos ante ErrConflict (dos transacciones insertando la misma línea a la vez).
const maxRetries = 3

// UseCase es el motor de mutación del carrito: agrega, actualiza y elimina
// líneas garantizando que la cantidad de una línea nunca supere el stock
// vigente del producto en el momento de aceptar la mutación.
//
// El stock es solo un techo: el motor jamás lo descuenta. Que otro flujo
// (checkout de otro usuario) agote el stock después de aceptar una línea es
// una ventana asumida, no un bug.
type UseCase struct {
	txRunner    TxRunner
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso. cartRepo y productRepo van atados al
// pool (lecturas fuera de transacción); txRunner entrega sus propios repos
// atados a cada tx para las mutaciones.
func NewUseCase(txRunner TxRunner, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem agrega quantity unidades del producto al carrito del usuario.
// Si la línea ya existe, suma (merge); si no, la crea. Falla con
// ErrNotFound si el producto no existe, ErrProductUnavailable si está
// inactivo, e InsufficientStockError si existente+solicitado supera el
// stock actual (reportando cuántas unidades sí se pueden agregar).
func (uc *UseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*dto.CartItemResponse, error) {
	if userID == "" || productID == "" || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var saved *entity.CartItem
	err := uc.runWithRetry(ctx, func(cartRepo repository.CartRepository, productRepo repository.ProductRepository) error {
		product, err := fetchSellable(productRepo, productID)
		if err != nil {
			return err
		}

		// Bloquea la línea existente (si la hay); el stock se relee dentro de
		// la misma transacción, nunca de un valor cacheado de un paso previo.
		item, err := cartRepo.GetForUpdate(ctx, userID, productID)
		if err != nil {
			return err
		}

		existing := 0
		if item != nil {
			existing = item.Quantity
		}
		target := existing + quantity
		if target > product.StockQuantity {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Available: product.StockQuantity - existing,
			}
		}

		now := time.Now()
		if item == nil {
			item = &entity.CartItem{
				ID:        uuid.New().String(),
				UserID:    userID,
				ProductID: productID,
				Quantity:  target,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := cartRepo.Create(ctx, item); err != nil {
				return err
			}
		} else {
			item.Quantity = target
			item.UpdatedAt = now
			if err := cartRepo.UpdateQuantity(ctx, item); err != nil {
				return err
			}
		}
		saved = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCartItemResponse(saved), nil
}

// UpdateItem fija la cantidad de una línea existente (absoluto, no aditivo).
// A diferencia de AddItem, exige que la línea exista: no se puede "actualizar"
// un producto que nunca se agregó.
func (uc *UseCase) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*dto.CartItemResponse, error) {
	if userID == "" || productID == "" || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var saved *entity.CartItem
	err := uc.runWithRetry(ctx, func(cartRepo repository.CartRepository, productRepo repository.ProductRepository) error {
		product, err := fetchSellable(productRepo, productID)
		if err != nil {
			return err
		}
		if quantity > product.StockQuantity {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Available: product.StockQuantity,
			}
		}

		item, err := cartRepo.GetForUpdate(ctx, userID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		item.Quantity = quantity
		item.UpdatedAt = time.Now()
		if err := cartRepo.UpdateQuantity(ctx, item); err != nil {
			return err
		}
		saved = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCartItemResponse(saved), nil
}

// RemoveItem elimina la línea del carrito; ErrNotFound si no existía.
func (uc *UseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	deleted, err := uc.cartRepo.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// ClearCart vacía el carrito del usuario. Idempotente: sobre un carrito
// vacío no hace nada y no falla.
func (uc *UseCase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	_, err := uc.cartRepo.DeleteAll(ctx, userID)
	return err
}

// runWithRetry ejecuta la mutación en transacción, reintentando hasta
// maxRetries veces cuando dos transacciones chocan insertando la misma
// línea. Al reintentar, la línea ya existe y se toma la ruta de merge.
func (uc *UseCase) runWithRetry(ctx context.Context, fn func(repository.CartRepository, repository.ProductRepository) error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = uc.txRunner.Run(ctx, fn)
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return err
}

// fetchSellable valida que el producto exista y esté activo.
func fetchSellable(productRepo repository.ProductRepository, productID string) (*entity.Product, error) {
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, domain.ErrProductUnavailable
	}
	return product, nil
}

func toCartItemResponse(item *entity.CartItem) *dto.CartItemResponse {
	if item == nil {
		return nil
	}
	return &dto.CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
