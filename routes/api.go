package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	api_handlers "flashdeck.app/handlers/api"
	"flashdeck.app/services"
)

// registerAPIRoutes builds the handlers with their services and declares
// every route of the JSON API.
func registerAPIRoutes(app *fiber.App, db *gorm.DB) {
	userHandler := api_handlers.NewUserHandler(services.NewUserService(db))
	categoryHandler := api_handlers.NewCategoryHandler(services.NewCategoryService(db))
	cardHandler := api_handlers.NewCardHandler(services.NewCardService(db))

	users := app.Group("/users")
	users.Post("/", userHandler.CreateUser)                      // POST /users/
	users.Get("/", userHandler.ListUsers)                        // GET /users/
	users.Get("/:id/categories", userHandler.ListUserCategories) // GET /users/{id}/categories
	users.Get("/:id/cards", userHandler.ListUserCards)           // GET /users/{id}/cards

	categories := app.Group("/categories")
	categories.Post("/", categoryHandler.CreateCategory)           // POST /categories/
	categories.Get("/", categoryHandler.ListCategories)            // GET /categories/
	categories.Delete("/:id", categoryHandler.DeleteCategory)      // DELETE /categories/{id}
	categories.Get("/:id/cards", cardHandler.ListCardsByCategory)  // GET /categories/{id}/cards/

	app.Post("/cards", cardHandler.CreateCard)       // POST /cards
	app.Get("/cards", cardHandler.ListCards)         // GET /cards?page&page_size
	app.Delete("/cards/:id", cardHandler.DeleteCard) // DELETE /cards/{id}
	app.Get("/all", cardHandler.ListAllCards)        // GET /all
	app.Get("/search", cardHandler.SearchCards)      // GET /search?query&page&page_size
}
