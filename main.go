package main

import (
	"log"
	"net/http"
	"strings"

	"menuwatch/config"
	"menuwatch/database"
	"menuwatch/fetcher"
	"menuwatch/handlers"
	"menuwatch/history"
	"menuwatch/middleware"
	"menuwatch/monitor"
	"menuwatch/notifier"
	"menuwatch/report"
	"menuwatch/repository"
	"menuwatch/scheduler"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	store := history.NewStore(cfg.HistoryFile)

	client, err := fetcher.NewClient(cfg.ProxyURL)
	if err != nil {
		log.Fatalf("Failed to create fetch client: %v", err)
	}
	defer client.Close()

	tg := notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	if !tg.Configured() {
		log.Println("Telegram not configured, alerts will only be logged")
	}

	m, err := monitor.New(config.Competitors, config.Categories, config.ReferencePrices(), client, store, tg)
	if err != nil {
		log.Fatalf("Failed to create monitor: %v", err)
	}
	m.SetReportWriter(report.NewGenerator(cfg.ReportFile))

	// The database time series is optional; the JSON history file is
	// always written.
	if cfg.DatabaseURL != "" {
		if err := database.InitDatabase(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer database.CloseDatabase()

		if err := database.CreateTables(); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		m.SetPricePointSink(repository.NewPricePointRepository())
	}

	sched := scheduler.New(m, cfg.ActiveHourStart, cfg.ActiveHourEnd)
	if err := sched.Start(cfg.IntervalHours); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	h := handlers.NewHandlers(store, m, cfg.ReportFile)

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware(5))

	r.HandleFunc("/", h.Dashboard).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/history", h.GetHistory).Methods("GET")
	apiV1.HandleFunc("/history/{name}", h.GetCompetitorHistory).Methods("GET")
	apiV1.HandleFunc("/run", h.TriggerRun).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("🌐 Server starting on %s:%s", cfg.Host, cfg.Port)
	log.Printf("   GET  / - Dashboard")
	log.Printf("   GET  /health - Health check")
	log.Printf("   GET  /api/v1/history - Full history")
	log.Printf("   POST /api/v1/run - Trigger a check cycle")

	log.Fatal(http.ListenAndServe(cfg.Host+":"+cfg.Port, c.Handler(r)))
}
