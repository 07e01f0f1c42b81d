package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/madiharazzak/WEIC-Time-Tracking/configs"
	"github.com/madiharazzak/WEIC-Time-Tracking/database"
	"github.com/madiharazzak/WEIC-Time-Tracking/handlers"
	"github.com/madiharazzak/WEIC-Time-Tracking/jobs"
	"github.com/madiharazzak/WEIC-Time-Tracking/middleware"
	"github.com/madiharazzak/WEIC-Time-Tracking/notifications"
	"github.com/madiharazzak/WEIC-Time-Tracking/routes"
	"github.com/madiharazzak/WEIC-Time-Tracking/services"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
	"github.com/madiharazzak/WEIC-Time-Tracking/store/memstore"
	"github.com/madiharazzak/WEIC-Time-Tracking/store/pgstore"
)

func main() {
	timeZone := config.ConfigOr("TIME_ZONE", "Local")
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		log.Printf("⚠️ Invalid TIME_ZONE %q, falling back to system local time", timeZone)
		loc = time.Local
	}

	var st store.Store
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		db, err := database.Connect(dsn)
		if err != nil {
			log.Fatalf("🔥 Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("🔥 Failed to run migrations: %v", err)
		}
		st = pgstore.New(db)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using in-memory store. Data is lost on restart.")
		st = memstore.New()
	}

	timeclock := services.NewTimeclockService(st, loc)
	sessions := middleware.NewSessionStore()
	h := handlers.New(st, timeclock, sessions, config.Config("APP_SECRET"))

	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("55 23 * * *", func() { jobs.SweepStaleSessions(timeclock, st) })
	c.AddFunc("0 18 * * *", func() { jobs.SendDailySummary(st, loc) })
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "WEIC Time Tracking",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("FRONTEND_URL", "http://localhost:5173"),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Disposition",
		MaxAge:           86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timeZone,
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to WEIC Time Tracking API",
		})
	})

	routes.AuthRoutes(app, h)
	routes.SettingsRoutes(app, h)
	routes.TeacherRoutes(app, h, sessions)
	routes.TimesheetRoutes(app, h, sessions)
	routes.WebsocketRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Println("✅ Server is running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
