package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sincmart/internal/adapter/api"
	"sincmart/internal/adapter/api/handler"
	"sincmart/internal/adapter/api/router"
	"sincmart/internal/adapter/repository"
	"sincmart/internal/infrastructure/mongodb"
	"sincmart/internal/usecase"
	"sincmart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// The store handle is established once here and shared read-only by
	// every repository for the lifetime of the process.
	db, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	reportRepo := repository.NewMongoReportRepository(db)
	questionRepo := repository.NewMongoQuestionRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	userUseCase := usecase.NewUserUseCase(userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	engagementUseCase := usecase.NewEngagementUseCase(reviewRepo, reportRepo, questionRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	handler.Setup(userUseCase, catalogUseCase, engagementUseCase, orderUseCase)
	handler.SetupHealthHandler(db)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("Failed to close MongoDB connection: %v", err)
	}
}
