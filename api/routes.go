package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read-only surface and the admin surface. Every
// mutating route sits behind the admin JWT gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes (no authentication)
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())
		r.Get("/dishes", handlers.dishHandler.listDishes())
		r.Get("/events", handlers.eventHandler.listUpcomingEvents())
		r.Get("/events/all", handlers.eventHandler.listAllEvents())
		r.Get("/sides", handlers.sideHandler.listSides())
		r.Get("/categories", handlers.categoryHandler.listCategories())
		r.Get("/menu", handlers.menuHandler.getCurrentMenu())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireAdmin)

		// Dish slot endpoints
		r.Put("/dishes", handlers.dishHandler.replaceDishes())
		r.Patch("/dish/{dishID}/image", handlers.dishHandler.removeDishImage())
		r.Delete("/dish/{dishID}", handlers.dishHandler.deleteDish())

		// Event endpoints
		r.Post("/event", handlers.eventHandler.createEvent())
		r.Put("/event/{eventID}", handlers.eventHandler.updateEvent())
		r.Delete("/event/{eventID}", handlers.eventHandler.deleteEvent())

		// Weekly menu endpoints
		r.Post("/menu", handlers.menuHandler.uploadMenu())

		// Side endpoints
		r.Post("/side", handlers.sideHandler.createSide())
		r.Put("/side/{sideID}", handlers.sideHandler.updateSide())
		r.Delete("/side/{sideID}", handlers.sideHandler.deleteSide())

		// Category endpoints
		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())
	})
}
