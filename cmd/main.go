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

	createAppointmentHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/create_appointment"
	createBlackoutHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/create_blackout"
	createServiceHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/delete_appointment"
	deleteBlackoutHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/delete_blackout"
	deleteServiceHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/delete_service"
	getAppointmentsHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/get_appointments"
	getAvailableDaysHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/get_available_slots"
	getWorkingHoursHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/get_working_hours"
	listBlackoutsHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/list_blackouts"
	listServicesHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/list_services"
	updateServiceHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/update_service"
	updateWorkingHoursHandler "github.com/salonbook/salon-booking-service/internal/api/handlers/update_working_hours"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/config"
	"github.com/salonbook/salon-booking-service/internal/domain"
	appointmentRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	blackoutRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
	appointmentsService "github.com/salonbook/salon-booking-service/internal/service/appointments"
	catalogService "github.com/salonbook/salon-booking-service/internal/service/catalog"
	scheduleService "github.com/salonbook/salon-booking-service/internal/service/schedule"
	createAppointmentUC "github.com/salonbook/salon-booking-service/internal/usecase/create_appointment"
	getAvailableDaysUC "github.com/salonbook/salon-booking-service/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/salonbook/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/salonbook/salon-booking-service/pkg/dbmetrics"
	"github.com/salonbook/salon-booking-service/pkg/logger"
	"github.com/salonbook/salon-booking-service/pkg/metrics"
	"github.com/salonbook/salon-booking-service/pkg/simpletxmanager"
	"github.com/salonbook/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
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

	// Горизонт бронирования
	windowDays := cfg.Booking.WindowDays
	if windowDays <= 0 {
		windowDays = domain.DefaultBookingWindowDays
	}
	log.Info("Booking window: %d days", windowDays)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		blackoutRepository    *blackoutRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, blackoutRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		scheduleRepository,
		blackoutRepository,
		txMgr,
		log,
		windowDays,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		scheduleRepository,
		blackoutRepository,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		serviceRepository,
		scheduleRepository,
		log,
		windowDays,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(scheduleSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(scheduleSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(scheduleSvc, log)

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

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Дни, открытые для записи
	api.HandleFunc("/available-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	protected.HandleFunc("/schedule/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/blackouts", listBlackouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blackouts/{blackoutId}", deleteBlackout.Handle).Methods(http.MethodDelete)

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
