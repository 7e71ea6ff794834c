package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"visualearn/config"
	"visualearn/database"
	authRoutes "visualearn/routers/authRoutes"
	classRoutes "visualearn/routers/classRoutes"
	paymentRoutes "visualearn/routers/paymentRoutes"
	selectionRoutes "visualearn/routers/selectionRoutes"
	userRoutes "visualearn/routers/userRoutes"
	"visualearn/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Visual Learning.........")
	})

	stripe := utils.NewStripeClient(config.AppConfig.StripeSecretKey, utils.StripeAPIBase)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, db)
	classRoutes.SetupClassRoutes(app, db)
	selectionRoutes.SetupSelectionRoutes(app, db)
	paymentRoutes.SetupPaymentRoutes(app, db, stripe)

	cleanup := utils.StartSelectionCleanup(db)
	defer cleanup.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
