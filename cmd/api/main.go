package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"buildease/internal/config"
	"buildease/internal/handler"
	"buildease/internal/middleware"
	"buildease/internal/repository"
	"buildease/internal/service"
	"buildease/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	rates, err := config.LoadRates(cfg)
	if err != nil {
		log.Fatalf("Failed to load rate table: %v", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (gallery upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, rates, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)
	authRoutes.Post("/refresh", h.Auth.RefreshToken)

	protected := api.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.GetMe)
	protected.Put("/auth/profile", h.Auth.UpdateProfile)

	projects := protected.Group("/projects")
	projects.Get("/", h.Project.List)
	projects.Get("/my", h.Project.ListMine)
	projects.Get("/:id", h.Project.Get)
	projects.Post("/", middleware.RequireRole("customer"), h.Project.Create)
	projects.Post("/:id/bid", middleware.RequireRole("contractor"), h.Project.SubmitBid)
	projects.Put("/:id/progress", middleware.RequireRole("contractor"), h.Project.UpdateProgress)
	projects.Post("/:id/gallery", h.Project.UploadGalleryImage)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)

	contractors := protected.Group("/contractors")
	contractors.Get("/", h.Contractor.List)
	contractors.Get("/:id", h.Contractor.Get)

	workers := protected.Group("/workers", middleware.RequireRole("contractor"))
	workers.Get("/", h.Worker.List)
	workers.Post("/", h.Worker.Create)
	workers.Put("/:id", h.Worker.Update)
	workers.Delete("/:id", h.Worker.Delete)

	marketplace := protected.Group("/marketplace")
	marketplace.Get("/", h.Marketplace.ListItems)
	marketplace.Post("/orders", h.Marketplace.CreateOrder)
	marketplace.Get("/orders", h.Marketplace.ListOrders)
	marketplace.Get("/:id", h.Marketplace.GetItem)

	budget := protected.Group("/budget")
	budget.Post("/estimate", h.Budget.Estimate)
	budget.Post("/quotation", h.Budget.Quote)
	budget.Post("/prediction", h.Budget.Predict)
	budget.Get("/rates", h.Budget.GetRates)
}
