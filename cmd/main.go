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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/carhub/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/carhub/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/carhub/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/carhub/booking-service/internal/api/handlers/get_booking"
	getPendingCountHandler "github.com/carhub/booking-service/internal/api/handlers/get_pending_count"
	getStoreBookingsHandler "github.com/carhub/booking-service/internal/api/handlers/get_store_bookings"
	getStoreScheduleHandler "github.com/carhub/booking-service/internal/api/handlers/get_store_schedule"
	getUserBookingsHandler "github.com/carhub/booking-service/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/carhub/booking-service/internal/api/handlers/update_booking_status"
	updateStoreScheduleHandler "github.com/carhub/booking-service/internal/api/handlers/update_store_schedule"
	"github.com/carhub/booking-service/internal/api/middleware"
	"github.com/carhub/booking-service/internal/config"
	"github.com/carhub/booking-service/internal/infra/counters"
	bookingRepo "github.com/carhub/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/carhub/booking-service/internal/infra/storage/schedule"
	catalogServiceClient "github.com/carhub/booking-service/internal/integrations/catalogservice"
	bookingsService "github.com/carhub/booking-service/internal/service/bookings"
	scheduleService "github.com/carhub/booking-service/internal/service/schedule"
	createBookingUC "github.com/carhub/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/carhub/booking-service/internal/usecase/get_available_slots"
	"github.com/carhub/booking-service/pkg/dbmetrics"
	"github.com/carhub/booking-service/pkg/logger"
	"github.com/carhub/booking-service/pkg/metrics"
	"github.com/carhub/booking-service/pkg/simpletxmanager"
	"github.com/carhub/booking-service/pkg/txmanager"
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

	log.Info("Starting CarHub BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping Redis: %v", err)
	}
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционного клиента каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Счётчик необработанных бронирований
	pendingCounter := counters.NewPendingCounter(rdb, "bookings:pending")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogClient,
		pendingCounter,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		pendingCounter,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getStoreBookings := getStoreBookingsHandler.NewHandler(bookingSvc, log)
	getPendingCount := getPendingCountHandler.NewHandler(bookingSvc, log)
	getStoreSchedule := getStoreScheduleHandler.NewHandler(scheduleSvc, log)
	updateStoreSchedule := updateStoreScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request ID для трассировки и access-лог с ним
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов: только на создание бронирования
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			log,
		)
		log.Info("Rate limiting enabled: %d requests per %ds", cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для бронирования
	api.HandleFunc("/stores/{storeId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение недельного расписания автосервиса
	api.HandleFunc("/stores/{storeId}/schedule",
		getStoreSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (единственный маршрут под rate limit)
	createBookingHandler := http.Handler(http.HandlerFunc(createBooking.Handle))
	if rateLimiter != nil {
		createBookingHandler = rateLimiter.Middleware(createBookingHandler)
	}
	protected.Handle("/bookings", createBookingHandler).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (для владельцев)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление автосервисом (для владельцев) ---
	// Список бронирований автосервиса
	protected.HandleFunc("/stores/{storeId}/bookings", getStoreBookings.Handle).Methods(http.MethodGet)

	// Счётчик необработанных бронирований
	protected.HandleFunc("/stores/{storeId}/pending-count", getPendingCount.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания
	protected.HandleFunc("/stores/{storeId}/schedule", updateStoreSchedule.Handle).Methods(http.MethodPut)

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
