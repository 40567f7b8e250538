package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

const (
	testUserID    = "00000000-0000-0000-0000-0000000000aa"
	testProductID = "00000000-0000-0000-0000-0000000000bb"
)

func seedProduct(s *memStore, id string, price string, stock int, active bool) {
	s.putProduct(entity.Product{
		ID:            id,
		Name:          "Producto " + id[len(id)-2:],
		Slug:          "producto-" + id[len(id)-2:],
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      active,
	})
}

func TestAddItem_CreaLinea(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)

	out, err := uc.AddItem(context.Background(), testUserID, testProductID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, testProductID, out.ProductID)
	assert.NotEmpty(t, out.ID)
}

func TestAddItem_MergeSumaCantidades(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 10, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	first, err := uc.AddItem(ctx, testUserID, testProductID, 3)
	require.NoError(t, err)
	second, err := uc.AddItem(ctx, testUserID, testProductID, 4)
	require.NoError(t, err)

	assert.Equal(t, 7, second.Quantity, "add es aditivo: 3 + 4 = 7")
	assert.Equal(t, first.ID, second.ID, "la misma pareja (user, product) nunca genera dos líneas")
}

func TestAddItem_ProductoInexistente(t *testing.T) {
	s := newMemStore()
	uc := newCartUseCase(s)

	_, err := uc.AddItem(context.Background(), testUserID, testProductID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_ProductoInactivo(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, false)
	uc := newCartUseCase(s)

	_, err := uc.AddItem(context.Background(), testUserID, testProductID, 1)
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestAddItem_StockInsuficiente_ReportaDisponible(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, testProductID, 3)
	require.NoError(t, err)

	// Ya hay 3 en el carrito; pedir 4 más supera el stock (5).
	_, err = uc.AddItem(ctx, testUserID, testProductID, 4)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available,
		"debe reportar cuántas unidades adicionales caben (stock - existente), no el stock crudo")

	// El rechazo no tocó la línea.
	item, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, item.Items, 1)
	assert.Equal(t, 3, item.Items[0].Quantity)
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)

	_, err := uc.AddItem(context.Background(), testUserID, testProductID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AddItem(context.Background(), "", testProductID, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItem_EsAbsoluto(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, testProductID, 3)
	require.NoError(t, err)

	out, err := uc.UpdateItem(ctx, testUserID, testProductID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity, "update fija la cantidad, no la suma")
}

func TestUpdateItem_SinLineaPrevia(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)

	// No se puede actualizar lo que nunca se agregó.
	_, err := uc.UpdateItem(context.Background(), testUserID, testProductID, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_StockInsuficiente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, testProductID, 2)
	require.NoError(t, err)

	_, err = uc.UpdateItem(ctx, testUserID, testProductID, 6)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Available, "en update el máximo satisfacible es el stock completo")
}

func TestRemoveItem(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, testProductID, 1)
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem(ctx, testUserID, testProductID))

	// La segunda eliminación ya no encuentra la línea.
	err = uc.RemoveItem(ctx, testUserID, testProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClearCart_Idempotente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	otherProduct := "00000000-0000-0000-0000-0000000000cc"
	seedProduct(s, otherProduct, "4.50", 9, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, testProductID, 2)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, testUserID, otherProduct, 1)
	require.NoError(t, err)

	require.NoError(t, uc.ClearCart(ctx, testUserID))
	require.NoError(t, uc.ClearCart(ctx, testUserID), "vaciar un carrito vacío no falla")

	summary, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ItemCount)
	assert.True(t, summary.Subtotal.IsZero())
}

func TestAddItem_ReintentaTrasConflicto(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)

	runner := &conflictTxRunner{inner: &memTxRunner{s: s}, fails: 2}
	uc := cart.NewUseCase(runner, &memCartRepo{s: s}, &memProductRepo{s: s})

	out, err := uc.AddItem(context.Background(), testUserID, testProductID, 1)
	require.NoError(t, err, "dos conflictos seguidos deben absorberse con reintentos")
	assert.Equal(t, 1, out.Quantity)
	assert.Equal(t, 3, runner.calls)
}

func TestAddItem_ConflictoPersistenteSeRinde(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)

	runner := &conflictTxRunner{inner: &memTxRunner{s: s}, fails: 100}
	uc := cart.NewUseCase(runner, &memCartRepo{s: s}, &memProductRepo{s: s})

	_, err := uc.AddItem(context.Background(), testUserID, testProductID, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, runner.calls, "los reintentos son acotados")
}

// Con stock S y N adds concurrentes de 1 unidad, exactamente S deben
// aceptarse: ni sobreventa ni updates perdidos.
func TestAddItem_ConcurrenciaSinSobreventa(t *testing.T) {
	const (
		stock = 5
		n     = 20
	)
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", stock, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	var (
		mu       sync.Mutex
		accepted int
		rejected int
	)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := uc.AddItem(ctx, testUserID, testProductID, 1)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domain.ErrInsufficientStock):
				rejected++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, stock, accepted, "exactamente stock adds aceptados")
	assert.Equal(t, n-stock, rejected, "el resto rechazado por stock insuficiente")

	summary, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, stock, summary.Items[0].Quantity,
		"la cantidad final es la suma de los deltas aceptados")
}

// Guion completo de extremo a extremo: stock 5, precio 10.00.
func TestEscenarioCompleto(t *testing.T) {
	s := newMemStore()
	seedProduct(s, testProductID, "10.00", 5, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	out, err := uc.AddItem(ctx, testUserID, testProductID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)

	_, err = uc.AddItem(ctx, testUserID, testProductID, 4)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)

	out, err = uc.UpdateItem(ctx, testUserID, testProductID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)

	_, err = uc.AddItem(ctx, testUserID, testProductID, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "5 + 1 > 5")

	require.NoError(t, uc.RemoveItem(ctx, testUserID, testProductID))

	summary, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, "0.00", summary.Subtotal.StringFixed(2))
}
