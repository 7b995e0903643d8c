package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/config"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/database"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/logger"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/routes"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/schema"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			zlog.Fatal("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Apply collection validators and indexes before serving traffic.
	manager := schema.NewManager(client.Database(cfg.DatabaseName), zlog)
	if err := manager.SetupAll(ctx); err != nil {
		zlog.Fatal("Failed to apply collection schemas", zap.Error(err))
	}
	if err := manager.CreateIndexes(ctx); err != nil {
		zlog.Fatal("Failed to create indexes", zap.Error(err))
	}

	// Initialize router
	router := routes.SetupRouter(client, cfg, zlog)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	zlog.Info("Server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
