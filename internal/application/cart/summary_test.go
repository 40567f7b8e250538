package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	productA = "00000000-0000-0000-0000-0000000000a1"
	productB = "00000000-0000-0000-0000-0000000000b2"
)

func TestGetSummary_SubtotalYConteo(t *testing.T) {
	s := newMemStore()
	seedProduct(s, productA, "10.00", 50, true)
	seedProduct(s, productB, "3.75", 50, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, productA, 2) // 20.00
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, testUserID, productB, 3) // 11.25
	require.NoError(t, err)

	summary, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)

	// item_count cuenta líneas, no unidades: 2 líneas aunque haya 5 unidades.
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, "31.25", summary.Subtotal.StringFixed(2))
	require.Len(t, summary.Items, 2)
	assert.Equal(t, productB, summary.Items[0].ProductID, "la línea más reciente va primero")
	assert.Equal(t, "11.25", summary.Items[0].ItemTotal.StringFixed(2))
}

func TestGetSummary_RecalculaConPrecioVigente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, productA, "10.00", 50, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, productA, 2)
	require.NoError(t, err)

	before, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", before.Subtotal.StringFixed(2))

	// Cambio de precio en el catálogo: la siguiente lectura ya lo refleja,
	// no hay ningún subtotal cacheado que pueda quedar obsoleto.
	s.setPrice(productA, decimal.RequireFromString("12.50"))

	after, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "25.00", after.Subtotal.StringFixed(2))
}

func TestGetSummary_ProductoDesactivadoSigueVisible(t *testing.T) {
	s := newMemStore()
	seedProduct(s, productA, "10.00", 50, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testUserID, productA, 1)
	require.NoError(t, err)

	s.setActive(productA, false)

	summary, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1, "la línea se devuelve para que el usuario la vea")
	assert.False(t, summary.Items[0].ProductActive, "pero marcada como no disponible")
}

func TestGetSummary_CarritoVacio(t *testing.T) {
	s := newMemStore()
	uc := newCartUseCase(s)

	summary, err := uc.GetSummary(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ItemCount)
	assert.NotNil(t, summary.Items, "items vacío serializa como [], no null")
	assert.Equal(t, "0.00", summary.Subtotal.StringFixed(2))
}

func TestGetSummary_NoMezclaUsuarios(t *testing.T) {
	s := newMemStore()
	seedProduct(s, productA, "10.00", 50, true)
	uc := newCartUseCase(s)
	ctx := context.Background()

	otherUser := "00000000-0000-0000-0000-0000000000ff"
	_, err := uc.AddItem(ctx, testUserID, productA, 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, otherUser, productA, 4)
	require.NoError(t, err)

	mine, err := uc.GetSummary(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, 1, mine.Items[0].Quantity)
}
