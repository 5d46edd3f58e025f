package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-resale-tracker/internal/handler"
	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/repository"
	"go-resale-tracker/internal/service"
	"go-resale-tracker/internal/ws"
	"go-resale-tracker/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.OrderBatch{},
		&model.OrderLine{},
		&model.BatchSettings{},
	); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	wsHub := ws.NewHub()
	go wsHub.Run()

	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	catalogService := service.NewCatalogService(categoryRepo, productRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, settingsRepo, wsHub)
	reportService := service.NewReportService(categoryRepo, productRepo, orderRepo, settingsRepo)
	exportService := service.NewExportService(orderRepo, reportService)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService, exportService)

	app := fiber.New(fiber.Config{
		AppName: "Resale Tracker v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/categories", catalogHandler.GetCategories)
	api.Post("/categories", catalogHandler.CreateCategory)
	api.Put("/categories/:id", catalogHandler.RenameCategory)
	api.Delete("/categories/:id", catalogHandler.DeleteCategory)

	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/categories/:categoryId/products", catalogHandler.GetProductsByCategory)
	api.Post("/categories/:categoryId/products", catalogHandler.CreateProduct)
	api.Put("/categories/:categoryId/products/:id", catalogHandler.UpdateProduct)
	api.Delete("/categories/:categoryId/products/:id", catalogHandler.DeleteProduct)

	// Order batches and lines
	api.Get("/batches", orderHandler.GetBatches)
	api.Post("/batches", orderHandler.CreateBatch)
	api.Get("/batches/:id", orderHandler.GetBatch)
	api.Delete("/batches/:id", orderHandler.DeleteBatch)

	api.Get("/batches/:id/lines", orderHandler.GetLines)
	api.Post("/batches/:id/lines", orderHandler.CreateLine)
	api.Put("/batches/:id/lines/:lineId", orderHandler.UpdateLine)
	api.Delete("/batches/:id/lines/:lineId", orderHandler.DeleteLine)

	api.Get("/batches/:id/settings", orderHandler.GetSettings)
	api.Put("/batches/:id/settings", orderHandler.SaveSettings)

	// Reports (recomputed from the current snapshot on every request)
	api.Get("/reports/price-list", reportHandler.GetPriceList)
	api.Get("/reports/batches/:id/details", reportHandler.GetBatchDetails)
	api.Get("/reports/batches/:id/summary", reportHandler.GetBatchSummary)
	api.Get("/reports/analysis", reportHandler.GetAnalysis)
	api.Get("/reports/income", reportHandler.GetIncomeOverview)

	// CSV exports
	api.Get("/exports/price-list", reportHandler.ExportPriceList)
	api.Get("/exports/batches/:id/lines", reportHandler.ExportBatchLines)
	api.Get("/exports/batches/:id/details", reportHandler.ExportBatchDetails)
	api.Get("/exports/analysis", reportHandler.ExportAnalysis)

	// WebSocket change feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
