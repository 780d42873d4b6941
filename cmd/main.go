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

	cancelBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_service"
	createSlotHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_slot"
	deleteBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/delete_service"
	deleteSlotHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/delete_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_customer_bookings"
	getServicesHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_services"
	getSlotsHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_slots"
	updateBookingStatusHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/update_service"
	updateSlotsHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/update_slots"
	"github.com/m04kA/SMC-CleaningService/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningService/internal/config"
	"github.com/m04kA/SMC-CleaningService/internal/infra/migrate"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-CleaningService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CleaningService/internal/service/catalog"
	slotsService "github.com/m04kA/SMC-CleaningService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CleaningService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CleaningService/migrations"
	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningService/pkg/logger"
	"github.com/m04kA/SMC-CleaningService/pkg/metrics"
	"github.com/m04kA/SMC-CleaningService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
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

	log.Info("Starting SMC-CleaningService...")
	log.Info("Configuration loaded from config.toml")

	// Шаблон слотов для ленивой генерации
	slotTemplate, err := cfg.Slots.Template()
	if err != nil {
		log.Fatal("Invalid slot template: %v", err)
	}

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

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, migrations.FS)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, schema version=%d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
		serviceRepository *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	// TODO: Точно нужно переделать эту шл
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)
	slotSvc := slotsService.NewService(slotRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		serviceRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		slotTemplate,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	updateSlots := updateSlotsHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
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

	// Доступные слоты на дату (с ленивой генерацией стандартной сетки)
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования в новый статус
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление слотами (для администраторов) ---
	// Ручное создание слота
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Административный список слотов на дату
	protected.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Массовое включение/выключение слотов
	protected.HandleFunc("/slots/enabled", updateSlots.Handle).Methods(http.MethodPatch)

	// Удаление пустого слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг (для администраторов) ---
	// Создание услуги
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)

	// Обновление услуги
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)

	// Удаление услуги
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
