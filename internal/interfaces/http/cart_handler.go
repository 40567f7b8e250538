package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito (protegido).
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartSummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.GetSummary(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito (aditivo: suma a la cantidad existente)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id y quantity (>= 1)"
// @Success      201   {object}  dto.CartItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity >= 1 son requeridos"})
	}
	out, err := h.uc.AddItem(c.Context(), userID, in.ProductID, in.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Fijar la cantidad de una línea del carrito (absoluto)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "quantity (>= 1)"
// @Success      200   {object}  dto.CartItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("productId")
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if productID == "" || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity >= 1 es requerido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), userID, productID, in.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar un producto del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	if err := h.uc.RemoveItem(c.Context(), userID, productID); err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado del carrito"})
}

// ClearCart godoc
// @Summary      Vaciar el carrito (idempotente)
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.ClearCart(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "carrito vaciado"})
}

// cartError traduce los errores del motor de carrito a respuestas HTTP.
func cartError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		available := stockErr.Available
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   stockErr.Error(),
			Available: &available,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o línea de carrito no encontrado"})
	case errors.Is(err, domain.ErrProductUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "el producto no está disponible"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrConflict):
		// Se agotaron los reintentos internos; el cliente puede volver a intentar.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintenta la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
