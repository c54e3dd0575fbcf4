package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/wonderpark/parkpos/internal/adapter/handler"
	"github.com/wonderpark/parkpos/internal/adapter/payment"
	"github.com/wonderpark/parkpos/internal/adapter/repository/postgres"
	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/services"
	"github.com/wonderpark/parkpos/internal/platform/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedPark() *domain.Park {
	park := &domain.Park{
		Name:           envOr("PARK_NAME", "Wonderland"),
		Location:       envOr("PARK_LOCATION", "Los Angeles, CA"),
		OperatingHours: envOr("PARK_HOURS", "9:00 AM - 10:00 PM"),
		Attractions:    []string{"Splash Zone", "Haunted House"},
		Events:         []string{"Halloween Special"},
		Services:       []string{"Food Court", "Gift Shop"},
	}

	park.AddRide(&domain.Ride{
		Name:      "Roller Coaster",
		Category:  "Thrill",
		MinHeight: "48 inches",
		MaxHeight: "78 inches",
		Duration:  "2 minutes",
		Capacity:  20,
		Status:    domain.RideOpen,
	})
	park.AddRide(&domain.Ride{
		Name:     "Carousel",
		Category: "Family",
		Duration: "4 minutes",
		Capacity: 30,
		Status:   domain.RideOpen,
	})

	return park
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	dbConfig := database.Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   envOr("DB_NAME", "parkpos"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	redisAddr := fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379"))
	log.Printf("Connecting to Redis at %s...", redisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	accountStore := postgres.NewAccountStore(db)
	orderStore := postgres.NewOrderStore(db)
	salesStore := postgres.NewSalesStore(db)

	catalog := domain.DefaultCatalog()
	discounts := domain.NewDiscountLedger(catalog)
	park := seedPark()
	policy := domain.Policy{}

	accountService := services.NewAccountService(accountStore, policy)
	ticketingService := services.NewTicketingService(
		catalog, discounts, accountStore, orderStore, salesStore, payment.NewStub(), redisClient,
	)
	adminService := services.NewAdminService(catalog, discounts, salesStore, park, policy, redisClient)

	posHandler := handler.NewPOSHandler(accountService, ticketingService, adminService)

	mux := http.NewServeMux()

	mux.HandleFunc("/accounts", posHandler.Register)
	mux.HandleFunc("/login", posHandler.Login)
	mux.HandleFunc("/catalog", posHandler.Catalog)
	mux.HandleFunc("/purchases", posHandler.Purchase)
	mux.HandleFunc("/orders", posHandler.Orders)
	mux.HandleFunc("/sales", posHandler.Sales)
	mux.HandleFunc("/discounts", posHandler.SetDiscount)
	mux.HandleFunc("/loyalty/redeem", posHandler.RedeemPoints)

	server := &http.Server{
		Addr:         ":" + envOr("PORT", "8080"),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s (park: %s, total ride capacity: %d)",
			server.Addr, park.Name, park.CheckCapacity())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
