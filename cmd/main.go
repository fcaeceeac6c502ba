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

	addLineItemHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/add_line_item"
	applyActionHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/apply_action"
	confirmBookingHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/confirm_booking"
	getSessionHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/get_session"
	getTravelPlanHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/get_travel_plan"
	loadReservationHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/load_reservation"
	startSessionHandler "github.com/m04kA/TourOperator-BookingService/internal/api/handlers/start_session"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	"github.com/m04kA/TourOperator-BookingService/internal/config"
	sessionRepo "github.com/m04kA/TourOperator-BookingService/internal/infra/storage/session"
	catalogServiceClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/catalogservice"
	clientServiceClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/clientservice"
	reservationServiceClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	travelPlanServiceClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/travelplanservice"
	itineraryService "github.com/m04kA/TourOperator-BookingService/internal/service/itinerary"
	wizardService "github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
	addLineItemUC "github.com/m04kA/TourOperator-BookingService/internal/usecase/add_line_item"
	confirmBookingUC "github.com/m04kA/TourOperator-BookingService/internal/usecase/confirm_booking"
	loadReservationUC "github.com/m04kA/TourOperator-BookingService/internal/usecase/load_reservation"
	"github.com/m04kA/TourOperator-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOperator-BookingService/pkg/logger"
	"github.com/m04kA/TourOperator-BookingService/pkg/metrics"
	"github.com/m04kA/TourOperator-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/TourOperator-BookingService/pkg/txmanager"
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

	log.Info("Starting TourOperator-BookingService...")
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

	// Инициализируем интеграционных клиентов
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	reservationClient := reservationServiceClient.NewClient(
		cfg.ReservationService.URL,
		time.Duration(cfg.ReservationService.Timeout)*time.Second,
		log,
	)
	travelPlanClient := travelPlanServiceClient.NewClient(
		cfg.TravelPlanService.URL,
		time.Duration(cfg.TravelPlanService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClientService=%s, ReservationService=%s, TravelPlanService=%s, CatalogService=%s)",
		cfg.ClientService.URL, cfg.ReservationService.URL, cfg.TravelPlanService.URL, cfg.CatalogService.URL)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		sessionRepository *sessionRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	wizardSvc := wizardService.NewService(sessionRepository, txMgr, log)
	itinerarySvc := itineraryService.NewService(travelPlanClient, reservationClient, log)

	// Инициализируем use cases
	addLineItemUseCase := addLineItemUC.NewUseCase(wizardSvc, catalogClient, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		sessionRepository,
		clientClient,
		reservationClient,
		itinerarySvc,
		log,
	)
	loadReservationUseCase := loadReservationUC.NewUseCase(wizardSvc, reservationClient, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(wizardSvc, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	applyAction := applyActionHandler.NewHandler(wizardSvc, log)
	addLineItem := addLineItemHandler.NewHandler(addLineItemUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	loadReservation := loadReservationHandler.NewHandler(loadReservationUseCase, log)
	getTravelPlan := getTravelPlanHandler.NewHandler(itinerarySvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии мастера оформления ---
	// Новая сессия
	protected.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Действие мастера (навигация, клиент, удаление позиций, даты, заметки)
	protected.HandleFunc("/sessions/{sessionId}/actions", applyAction.Handle).Methods(http.MethodPost)

	// Добавление позиции с ценой из каталога
	protected.HandleFunc("/sessions/{sessionId}/items", addLineItem.Handle).Methods(http.MethodPost)

	// Подтверждение заявки
	protected.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Загрузка существующего бронирования (режим редактирования)
	protected.HandleFunc("/sessions/{sessionId}/load-reservation", loadReservation.Handle).Methods(http.MethodPost)

	// --- Планы поездок ---
	protected.HandleFunc("/reservations/{reservationId}/travel-plan", getTravelPlan.Handle).Methods(http.MethodGet)

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

	log.Info("Server exited")
}
