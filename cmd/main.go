package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhina-ss/Smart-Canteen/internal/api"
	"github.com/dhina-ss/Smart-Canteen/internal/checkout"
	"github.com/dhina-ss/Smart-Canteen/internal/events"
	"github.com/dhina-ss/Smart-Canteen/internal/handler"
	"github.com/dhina-ss/Smart-Canteen/internal/receipt"
	"github.com/dhina-ss/Smart-Canteen/internal/stock"
	"github.com/dhina-ss/Smart-Canteen/pkg/config"
	"github.com/dhina-ss/Smart-Canteen/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client := api.NewClient(cfg.APIBaseURL, logger)
	reconciler := stock.NewReconciler(client, logger)
	receipts := receipt.NewGenerator(cfg.ReceiptDir, logger)

	var producer *events.Producer
	if cfg.KafkaBrokers != "" {
		producer = events.NewProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
	}

	workflow := checkout.NewWorkflow(client, reconciler, receipts, producer, logger)
	console := handler.NewConsoleHandler(client, workflow, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	v1 := router.Group("/console")
	{
		v1.GET("/customers", console.Customers)
		v1.GET("/products", console.Products)
		v1.GET("/inventory", console.Inventory)
		v1.GET("/sales", console.Sales)
		v1.GET("/invoices", console.Invoices)
		v1.GET("/dashboard", console.Dashboard)
		v1.POST("/checkout", console.Checkout)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("api_base_url", cfg.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
