package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email o username ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrProductUnavailable = errors.New("producto no disponible")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrConflict           = errors.New("conflicto de concurrencia")
)

// InsufficientStockError indica que la cantidad solicitada supera el stock actual.
// Available es cuántas unidades adicionales puede agregar el usuario (stock menos
// lo que ya tiene en el carrito), para que pueda reintentar con una cantidad válida.
type InsufficientStockError struct {
	ProductID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.Available <= 0 {
		return "stock insuficiente: no hay unidades disponibles para agregar"
	}
	return fmt.Sprintf("stock insuficiente: solo %d unidades disponibles", e.Available)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error estructurado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
