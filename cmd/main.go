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

	adminActionHandler "github.com/royalrinse/booking-service/internal/api/handlers/admin_action"
	adminListBookingsHandler "github.com/royalrinse/booking-service/internal/api/handlers/admin_list_bookings"
	capturePaymentHandler "github.com/royalrinse/booking-service/internal/api/handlers/capture_payment"
	createBookingHandler "github.com/royalrinse/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/royalrinse/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/royalrinse/booking-service/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/royalrinse/booking-service/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/royalrinse/booking-service/internal/api/handlers/get_user_bookings"
	listServicesHandler "github.com/royalrinse/booking-service/internal/api/handlers/list_services"
	loginUserHandler "github.com/royalrinse/booking-service/internal/api/handlers/login_user"
	registerUserHandler "github.com/royalrinse/booking-service/internal/api/handlers/register_user"
	"github.com/royalrinse/booking-service/internal/api/middleware"
	"github.com/royalrinse/booking-service/internal/config"
	"github.com/royalrinse/booking-service/internal/domain"
	bookingRepo "github.com/royalrinse/booking-service/internal/infra/storage/booking"
	userRepo "github.com/royalrinse/booking-service/internal/infra/storage/user"
	bookingsService "github.com/royalrinse/booking-service/internal/service/bookings"
	catalogService "github.com/royalrinse/booking-service/internal/service/catalog"
	usersService "github.com/royalrinse/booking-service/internal/service/users"
	adminTransitionUC "github.com/royalrinse/booking-service/internal/usecase/admin_transition"
	createBookingUC "github.com/royalrinse/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/royalrinse/booking-service/internal/usecase/get_available_slots"
	"github.com/royalrinse/booking-service/pkg/dbmetrics"
	"github.com/royalrinse/booking-service/pkg/logger"
	"github.com/royalrinse/booking-service/pkg/metrics"
	"github.com/royalrinse/booking-service/pkg/simpletxmanager"
	"github.com/royalrinse/booking-service/pkg/txmanager"
	"github.com/royalrinse/booking-service/pkg/types"
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

	log.Info("Starting RoyalRinse booking service...")
	log.Info("Configuration loaded from config.toml")

	// Дневной набор слотов из конфигурации
	slotSet := make(domain.SlotSet, 0, len(cfg.Booking.Slots))
	for _, raw := range cfg.Booking.Slots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			log.Fatal("Invalid slot %q in config: %v", raw, err)
		}
		slotSet = append(slotSet, slot)
	}
	log.Info("Daily slot set loaded: %d slots", len(slotSet))

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc, err := catalogService.NewService(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	log.Info("Service catalog loaded: %d tiers", len(catalogSvc.List()))

	usersSvc := usersService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		catalogSvc,
		txMgr,
		slotSet,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		slotSet,
		log,
	)

	adminTransitionUseCase := adminTransitionUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getSchedule := getScheduleHandler.NewHandler(bookingSvc, log)
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	loginUser := loginUserHandler.NewHandler(usersSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	capturePayment := capturePaymentHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log)
	adminAction := adminActionHandler.NewHandler(adminTransitionUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Расписание на дату: одобренные и оплаченные бронирования
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Оплата бронирования
	protected.HandleFunc("/bookings/{bookingId}/payment", capturePayment.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Все бронирования для админской панели
	admin.HandleFunc("/bookings", adminListBookings.Handle).Methods(http.MethodGet)

	// Переход статуса бронирования
	admin.HandleFunc("/bookings/{bookingId}/action", adminAction.Handle).Methods(http.MethodPost)

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
