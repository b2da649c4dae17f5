package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"broskii-backend/config"
	"broskii-backend/controllers"
	"broskii-backend/routes"
	"broskii-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	gallery, err := services.NewGalleryService()
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}

	// Initialize services
	mailer := services.NewSMTPMailer()
	bookingService := services.NewBookingService(db)
	tripService := services.NewTripService(db)
	waitlistService := services.NewWaitlistService(db)
	subscriberService := services.NewSubscriberService(db)
	wizardService := services.NewWizardService(bookingService, mailer, tripService)

	// Initialize controllers
	galleryController := controllers.NewGalleryController(gallery)
	bookingEmailController := controllers.NewBookingEmailController(mailer)
	contactController := controllers.NewContactController(mailer)
	wizardController := controllers.NewWizardController(wizardService)
	waitlistController := controllers.NewWaitlistController(waitlistService)
	subscriberController := controllers.NewSubscriberController(subscriberService)
	tripController := controllers.NewTripController(tripService)

	router := routes.SetupRouter(
		galleryController,
		bookingEmailController,
		contactController,
		wizardController,
		waitlistController,
		subscriberController,
		tripController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
