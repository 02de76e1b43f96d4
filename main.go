package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/repositories"
	"catalog/internal/server"
	"catalog/internal/services"
	"catalog/internal/uploads"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Upload storage ---
	storage := uploads.NewStorage(cfg.UploadDir, cfg.MaxUploadSize)
	if err := storage.EnsureDir(); err != nil {
		log.Fatalf("Failed to prepare uploads: %v", err)
	}

	// --- Optional event publishing ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.EventsQueue})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set. Catalog events will not be published.")
	}

	// --- Repository, service, handler ---
	productRepo := repositories.NewMemoryProductRepository()
	if err := repositories.Seed(productRepo); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	productService := services.NewProductService(productRepo, storage, publisher)
	productHandler := handlers.NewProductHandler(productService)

	app := server.NewApp(cfg, productHandler)

	// --- Start HTTP Server ---
	log.Printf("Starting server on http://localhost%s", cfg.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
