package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// GetSummary arma el resumen del carrito uniendo las líneas con el precio y
// disponibilidad vigentes del producto. Siempre se recalcula desde la BD:
// un cambio de precio en el catálogo se refleja en la siguiente lectura.
//
// ItemCount es el número de líneas, no la suma de cantidades. Las líneas
// cuyo producto fue desactivado se devuelven igualmente (el usuario debe
// verlas) marcadas con product_active=false.
func (uc *UseCase) GetSummary(ctx context.Context, userID string) (*dto.CartSummaryResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CartLineResponse, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		total := line.Total()
		subtotal = subtotal.Add(total)
		items = append(items, dto.CartLineResponse{
			ID:            line.Item.ID,
			ProductID:     line.Item.ProductID,
			ProductName:   line.ProductName,
			Slug:          line.ProductSlug,
			Price:         line.Price,
			Quantity:      line.Item.Quantity,
			ItemTotal:     total,
			Images:        line.Images,
			StockQuantity: line.StockQuantity,
			ProductActive: line.ProductActive,
			CreatedAt:     line.Item.CreatedAt,
		})
	}

	return &dto.CartSummaryResponse{
		Items:     items,
		ItemCount: len(items),
		Subtotal:  subtotal.Round(2),
	}, nil
}
