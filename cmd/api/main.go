package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/adhamel/tripsplit/docs"
	"github.com/adhamel/tripsplit/internal/config"
	"github.com/adhamel/tripsplit/internal/database"
	"github.com/adhamel/tripsplit/internal/engine/split"
	"github.com/adhamel/tripsplit/internal/expense"
	"github.com/adhamel/tripsplit/internal/notification"
	"github.com/adhamel/tripsplit/internal/participant"
	"github.com/adhamel/tripsplit/internal/settlement"
	"github.com/adhamel/tripsplit/internal/trip"
	"github.com/adhamel/tripsplit/pkg/logging"
	mw "github.com/adhamel/tripsplit/pkg/middleware"
)

// @title           TripSplit API
// @version         1.0
// @description     Shared expense tracking with exact cent splits, balance views and debt simplification.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	slog.Info("connected to database")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := split.NewFactory()

	// Notification feature (injected into the others)
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Participant feature
	participantRepo := participant.NewRepository(db)
	participantService := participant.NewService(participantRepo)
	participantHandler := participant.NewHandler(participantService)

	// Trip feature
	tripRepo := trip.NewRepository(db)
	tripService := trip.NewService(tripRepo, notificationService)
	tripHandler := trip.NewHandler(tripService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, tripRepo, splitFactory, notificationService)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature (also serves the trip balance views)
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, expenseRepo, tripRepo, notificationService)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.TestParticipantMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/participants", participantHandler.Routes())
		r.Mount("/trips", tripHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
