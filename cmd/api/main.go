package main

import (
	"database/sql"
	stdlog "log"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/config"
	"github.com/WathsalaM369/stress-management-coach/internal/database"
	"github.com/WathsalaM369/stress-management-coach/internal/handler"
	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/middleware"
	"github.com/WathsalaM369/stress-management-coach/internal/migration"
	"github.com/WathsalaM369/stress-management-coach/internal/repository"
	"github.com/WathsalaM369/stress-management-coach/internal/scheduler"
	"github.com/WathsalaM369/stress-management-coach/internal/service"
	"github.com/WathsalaM369/stress-management-coach/internal/websocket"
)

const Version = "1.0.0"

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Inicializa logger estruturado
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Global()
	log.Info().
		Str("version", Version).
		Str("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Bool("log_json", cfg.LogJSON).
		Bool("history", cfg.HistoryEnabled()).
		Msg("Stress Scheduler API iniciando")

	// Histórico em PostgreSQL (opcional)
	var db *sql.DB
	var historyRepo *repository.HistoryRepository
	if cfg.HistoryEnabled() {
		db, err = database.Connect(database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Erro ao conectar no banco de dados")
		}
		defer database.Close(db)

		if err := migration.NewMigrator(db).Run(); err != nil {
			log.Fatal().Err(err).Msg("Erro ao executar migrações")
		}

		historyRepo = repository.NewHistoryRepository(db)
	}

	// Hub de eventos WebSocket
	hub := websocket.NewHub()
	go hub.Run()

	// Inicializa dependências
	engine := scheduler.New()
	scheduleService := service.NewScheduleService(engine, historyRepo, hub)
	excelGenerator := service.NewExcelGenerator()

	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	estimateHandler := handler.NewEstimateHandler(scheduleService)
	wsHandler := handler.NewWebSocketHandler(hub)

	healthHandler := handler.NewHealthHandler(db, hub, Version)

	// Configura modo do Gin
	gin.SetMode(cfg.GinMode)

	// Inicializa router
	r := gin.New()
	r.Use(middleware.RequestID()) // Request ID + logging estruturado
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(rateLimiter.Middleware())

	// Health checks e métricas (públicos)
	r.GET("/health", healthHandler.LivenessCheck)
	r.GET("/health/ready", healthHandler.ReadinessCheck)
	r.GET("/metrics", healthHandler.GetMetrics)

	// WebSocket de eventos (público, somente leitura)
	r.GET("/ws", wsHandler.Serve)

	// Debug memory endpoint (público)
	r.GET("/debug/memory", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"alloc_mb":      m.Alloc / 1024 / 1024,
			"sys_mb":        m.Sys / 1024 / 1024,
			"heap_alloc_mb": m.HeapAlloc / 1024 / 1024,
			"goroutines":    runtime.NumGoroutine(),
			"gc_runs":       m.NumGC,
		})
	})

	// Grupo de rotas protegidas
	api := r.Group("/api/v1")
	api.Use(middleware.BearerAuth(middleware.AuthConfig{
		TokenAPI: cfg.TokenAPI,
	}))
	{
		api.POST("/schedule", scheduleHandler.GenerateSchedule)
		api.POST("/estimate-stress", estimateHandler.EstimateStress)

		if historyRepo != nil {
			historyHandler := handler.NewHistoryHandler(historyRepo, excelGenerator)
			api.GET("/history", historyHandler.List)
			api.GET("/history/:id", historyHandler.GetByID)
			api.GET("/history/:id/export", historyHandler.Export)
		}
	}

	// Inicia servidor
	port := cfg.Port
	log.Info().Str("port", port).Msg("Servidor iniciando")

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Erro ao iniciar servidor")
		os.Exit(1)
	}
}
