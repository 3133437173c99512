package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Ashikrreddy06/Split-Wise/docs"
	"github.com/Ashikrreddy06/Split-Wise/internal/balance"
	"github.com/Ashikrreddy06/Split-Wise/internal/config"
	"github.com/Ashikrreddy06/Split-Wise/internal/database"
	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/group"
	"github.com/Ashikrreddy06/Split-Wise/internal/ledger/split"
	"github.com/Ashikrreddy06/Split-Wise/internal/person"
	"github.com/Ashikrreddy06/Split-Wise/internal/settings"
	"github.com/Ashikrreddy06/Split-Wise/internal/snapshot"
	mw "github.com/Ashikrreddy06/Split-Wise/pkg/middleware"
)

// @title           Split-Wise API
// @version         1.0
// @description     Shared expense ledger with split calculation, balance tracking and debt simplification
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Connected to database successfully")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := split.NewFactory()

	// Person feature
	personRepo := person.NewRepository(db)
	personService := person.NewService(personRepo)
	personHandler := person.NewHandler(personService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Entry feature (with split factory injected)
	entryRepo := entry.NewRepository(db)
	entryService := entry.NewService(entryRepo, splitFactory)
	entryHandler := entry.NewHandler(entryService)

	// Balance feature (derives everything from the entry log)
	balanceService := balance.NewService(entryService, personService)
	balanceHandler := balance.NewHandler(balanceService)

	// Settings feature
	settingsRepo := settings.NewRepository(db)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	// Snapshot feature (export/import)
	snapshotRepo := snapshot.NewRepository(db)
	snapshotService := snapshot.NewService(snapshotRepo)
	snapshotHandler := snapshot.NewHandler(snapshotService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.ActingPerson)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/persons", personHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/entries", entryHandler.Routes())
		r.Mount("/balances", balanceHandler.Routes())
		r.Mount("/settings", settingsHandler.Routes())
		r.Mount("/snapshot", snapshotHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
