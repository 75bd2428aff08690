package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tourism-backend/config"
	"tourism-backend/controllers"
	"tourism-backend/routes"
	"tourism-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if cfg.AdminToken == "changeme" {
		log.Println("⚠️  ADMIN_TOKEN is not set; using the default admin token")
	}

	// Tables and seed data must exist before the listener starts.
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database bootstrap failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Cannot get raw sql.DB: %v", err)
	}
	defer sqlDB.Close()
	log.Println("✅ Database ready.")

	destinationService := services.NewDestinationService(db)
	bookingService := services.NewBookingService(db)
	contactService := services.NewContactService(db)

	destinationController := controllers.NewDestinationController(destinationService)
	bookingController := controllers.NewBookingController(bookingService)
	contactController := controllers.NewContactController(contactService)

	router := routes.SetupRouter(cfg, destinationController, bookingController, contactController)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}
