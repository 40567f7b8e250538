package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase consultas públicas del catálogo. Solo lectura: el alta y
// edición de productos se hace por fuera (seed / back-office).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos activos con filtros y paginación.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()

	filter := repository.ProductFilter{
		CategoryID:   in.Category,
		FeaturedOnly: in.Featured,
		SortBy:       in.SortBy,
		SortOrder:    in.SortOrder,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	if in.MinPrice != "" {
		d, err := decimal.NewFromString(in.MinPrice)
		if err != nil || d.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		filter.MinPrice = &d
	}
	if in.MaxPrice != "" {
		d, err := decimal.NewFromString(in.MaxPrice)
		if err != nil || d.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		filter.MaxPrice = &d
	}

	list, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total}), nil
}

// Get obtiene un producto activo por ID o, si no parece un UUID, por slug.
func (uc *ProductUseCase) Get(idOrSlug string) (*dto.ProductResponse, error) {
	if idOrSlug == "" {
		return nil, domain.ErrInvalidInput
	}
	var (
		product *entity.Product
		err     error
	)
	if looksLikeUUID(idOrSlug) {
		product, err = uc.repo.GetByID(idOrSlug)
	} else {
		product, err = uc.repo.GetBySlug(idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Featured devuelve los productos destacados activos.
func (uc *ProductUseCase) Featured(limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 8
	}
	list, err := uc.repo.ListFeatured(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListByCategory lista productos activos de una categoría con paginación.
func (uc *ProductUseCase) ListByCategory(categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, total, err := uc.repo.ListByCategory(categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}), nil
}

// looksLikeUUID distingue rutas /products/:id de /products/:slug sin ir a la BD.
func looksLikeUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, r := range s {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return false
			}
		default:
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
			if !isHex {
				return false
			}
		}
	}
	return true
}

func toProductListResponse(list []*entity.Product, page dto.PageResponse) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: page}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		SKU:              p.SKU,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		ComparePrice:     p.ComparePrice,
		StockQuantity:    p.StockQuantity,
		Images:           p.Images,
		IsActive:         p.IsActive,
		IsFeatured:       p.IsFeatured,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
