package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos (público).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        category    query  string  false  "Filtrar por categoría (UUID)"
// @Param        min_price   query  string  false  "Precio mínimo"
// @Param        max_price   query  string  false  "Precio máximo"
// @Param        featured    query  bool    false  "Solo destacados"
// @Param        sort_by     query  string  false  "name | price | created_at"
// @Param        sort_order  query  string  false  "asc | desc"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros de precio inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(8)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.QueryInt("limit", 8))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Productos de una categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path   string  true   "ID de la categoría"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "categoryId es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListByCategory(categoryID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener producto por ID o slug
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID (UUID) o slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
