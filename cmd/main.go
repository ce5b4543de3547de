package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/create_booking"
	exportCSVHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/export_csv"
	getAvailabilityHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/get_schedule"
	getStatsHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/get_stats"
	pingHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/ping"
	streamHandler "github.com/ibbie/MT-BookingService/internal/api/handlers/stream"
	"github.com/ibbie/MT-BookingService/internal/api/middleware"
	"github.com/ibbie/MT-BookingService/internal/config"
	"github.com/ibbie/MT-BookingService/internal/events"
	bookingRepo "github.com/ibbie/MT-BookingService/internal/infra/storage/booking"
	healthRepo "github.com/ibbie/MT-BookingService/internal/infra/storage/health"
	bookingsService "github.com/ibbie/MT-BookingService/internal/service/bookings"
	createBookingUC "github.com/ibbie/MT-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/ibbie/MT-BookingService/internal/usecase/get_available_slots"
	"github.com/ibbie/MT-BookingService/pkg/dbmetrics"
	"github.com/ibbie/MT-BookingService/pkg/logger"
	"github.com/ibbie/MT-BookingService/pkg/metrics"
	"github.com/ibbie/MT-BookingService/pkg/simpletxmanager"
	"github.com/ibbie/MT-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MT-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Правила работы барбершопа фиксируются на все время жизни процесса
	rules, err := cfg.ToRules()
	if err != nil {
		log.Fatal("Invalid shop rules: %v", err)
	}
	log.Info("Shop rules loaded: %d slots/day, %d services, booking window %d days",
		len(rules.WorkingHours), len(rules.ServiceDurations), rules.MaxDaysAhead)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Хаб SSE-уведомлений о смене занятости слотов
	hub := events.NewHub(log)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	var healthRepository *healthRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		healthRepository = healthRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		healthRepository = healthRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		hub,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		rules,
		txMgr,
		hub,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		rules,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	exportCSV := exportCSVHandler.NewHandler(bookingSvc, log)
	slotStream := streamHandler.NewHandler(hub, log)
	adminPing := pingHandler.NewHandler(healthRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "MT-BookingService is running")
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// SSE поток обновлений занятости
	api.HandleFunc("/stream", slotStream.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Admin.Token, log))

	// Проверка токена
	admin.HandleFunc("/ping", adminPing.Handle).Methods(http.MethodGet)

	// Агрегаты для панели
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Расписание на день
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Переходы статуса
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Выгрузка истории
	admin.HandleFunc("/export/csv", exportCSV.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Закрываем SSE подписчиков, чтобы Shutdown не ждал их WriteTimeout
	hub.Close()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
