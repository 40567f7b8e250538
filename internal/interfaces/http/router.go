package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CartUC     *cart.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Catálogo (público)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/featured", productHandler.Featured)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.Get)

	// Carrito (protegido: requiere Bearer Token)
	cartGroup := api.Group("/cart", AuthMiddleware(deps.JWTSecret))
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/", cartHandler.AddItem)
	cartGroup.Put("/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/:productId", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)
}
