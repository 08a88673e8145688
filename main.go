package main

import (
	"log"
	"rank_manager/config"
	"rank_manager/handler"
	"rank_manager/router"
	"rank_manager/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "rank_manager",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("ALLOW_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	s := store.New()
	a := handler.New(s)
	s.OnChange(a.BroadcastLedger)

	a.Notifier.Start()
	defer a.Notifier.Stop()
	a.StartDailySummaryScheduler()
	defer a.StopDailySummaryScheduler()

	router.SetupRoutes(app, a)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
