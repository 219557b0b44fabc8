package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PEREIRAD01/backend-Pitstoppro/handlers"
	"github.com/PEREIRAD01/backend-Pitstoppro/middleware"
)

func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, vehicles *handlers.VehicleHandler, jwtSecret string) {
	app.Get("/health", handlers.Health)

	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	// Protect routes with middleware
	protected := middleware.JwtAuthMiddleware(jwtSecret)
	app.Get("/auth/me", protected, auth.Me)

	app.Get("/vehicles", protected, vehicles.List)
	app.Post("/vehicles", protected, vehicles.Create)
	app.Patch("/vehicles/:id", protected, vehicles.Update)
	app.Delete("/vehicles/:id", protected, vehicles.Delete)
}
