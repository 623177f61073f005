package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/instructormatch/instructor_match/configs"
	"github.com/instructormatch/instructor_match/database"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/jobs"
	"github.com/instructormatch/instructor_match/routes"
	"github.com/instructormatch/instructor_match/storage"
	"github.com/robfig/cron/v3"
)

func main() {
	var store storage.Storage
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		db, err := database.Connect(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		store = storage.NewGormStorage(db)
		log.Println("Database connected and migrated")
	} else {
		// No DATABASE_URL: run against the in-memory store. Useful for
		// local poking, everything is lost on restart.
		log.Println("DATABASE_URL not set, using in-memory storage")
		store = storage.NewMemoryStorage()
	}

	h := handlers.New(store)

	c := cron.New()
	c.AddFunc("0 */6 * * *", func() { jobs.NotifyStaleOpenRequests(store) })
	go c.Start()

	app := fiber.New(fiber.Config{
		AppName:       "InstructorMatch",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, h)
	routes.ProfileRoutes(app, h)
	routes.MarketplaceRoutes(app, h)
	routes.ReviewRoutes(app, h)
	routes.NotificationRoutes(app, h)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
