package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/PEREIRAD01/backend-Pitstoppro/config"
	"github.com/PEREIRAD01/backend-Pitstoppro/database"
	"github.com/PEREIRAD01/backend-Pitstoppro/handlers"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
	"github.com/PEREIRAD01/backend-Pitstoppro/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var users repositories.UserStore = database.NewGormUserStore(db)
	if cfg.RedisAddr != "" {
		rdb, err := database.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		users = database.NewCachedUserStore(users, rdb)
	}
	vehicles := database.NewGormVehicleStore(db)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})

	authHandler := handlers.NewAuthHandler(users, cfg.JWTSecret, cfg.TokenTTL)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	routes.SetupRoutes(app, authHandler, vehicleHandler, cfg.JWTSecret)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
