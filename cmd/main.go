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

	"github.com/m04kA/SMC-AppointmentService/internal/api"
	addBlackoutDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/add_blackout_date"
	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_service"
	executeAssistantToolHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/execute_assistant_tool"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getCalendarOverviewHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_calendar_overview"
	getConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_config"
	healthHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_appointments"
	listAssistantToolsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_assistant_tools"
	listBlackoutDatesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_blackout_dates"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	removeBlackoutDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/remove_blackout_date"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	updateConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_config"
	updateServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/assistant"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	availabilityCache "github.com/m04kA/SMC-AppointmentService/internal/infra/cache/availability"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	blackoutRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/blackout"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	getCalendarOverviewUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_overview"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/migrator"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// eventPublisher общий интерфейс kafka и noop publisher'ов
type eventPublisher interface {
	createAppointmentUC.EventPublisher
	appointmentsService.EventPublisher
	Close() error
}

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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil-метрики нигде не пишутся
	var metricsCollector *metrics.Metrics
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
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	configRepository := availabilityRepo.NewRepository(wrappedDB)
	blackoutRepository := blackoutRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш конфигурации доступности (если включен)
	// Без redis usecase'ы читают конфигурацию и blackout-даты напрямую из репозиториев
	var (
		configSource   getAvailableSlotsUC.ConfigRepository   = configRepository
		blackoutSource getAvailableSlotsUC.BlackoutRepository = blackoutRepository
		invalidator    availabilityService.Cache              = availabilityCache.NoopInvalidator{}
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, reads will fall back to database: %v", err)
		}

		store := availabilityCache.NewStore(
			redisClient,
			configRepository,
			blackoutRepository,
			time.Duration(cfg.Redis.TTL)*time.Second,
			metricsCollector,
			log,
		)
		configSource = store
		blackoutSource = store
		invalidator = store
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Публикация событий о записях (если включена)
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
		)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	limits := getAvailableSlotsUC.Limits{
		MinDurationMinutes: cfg.Scheduling.MinDurationMinutes,
		MaxDurationMinutes: cfg.Scheduling.MaxDurationMinutes,
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		configSource,
		blackoutSource,
		limits,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		configSource,
		blackoutSource,
		catalogRepository,
		txMgr,
		publisher,
		metricsCollector,
		createAppointmentUC.Limits(limits),
		log,
	)

	getCalendarOverviewUseCase := getCalendarOverviewUC.NewUseCase(
		appointmentRepository,
		configSource,
		blackoutSource,
		getCalendarOverviewUC.Settings{
			DurationMinutes: cfg.Scheduling.OverviewDurationMinutes,
			MaxPeriodDays:   cfg.Scheduling.MaxOverviewDays,
		},
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		configSource,
		blackoutSource,
		txMgr,
		publisher,
		appointmentsService.Limits(limits),
		log,
	)

	availabilitySvc := availabilityService.NewService(
		configRepository,
		blackoutRepository,
		invalidator,
		txMgr,
		availabilityService.Settings{
			DefaultSlotStepMinutes: cfg.Scheduling.SlotStepMinutes,
			MinDurationMinutes:     cfg.Scheduling.MinDurationMinutes,
			MaxDurationMinutes:     cfg.Scheduling.MaxDurationMinutes,
		},
		log,
	)

	catalogSvc := catalogService.NewService(
		catalogRepository,
		txMgr,
		catalogService.Settings{
			MinDurationMinutes: cfg.Scheduling.MinDurationMinutes,
			MaxDurationMinutes: cfg.Scheduling.MaxDurationMinutes,
		},
		log,
	)

	toolExecutor := assistant.NewExecutor(getAvailableSlotsUseCase, createAppointmentUseCase, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendarOverview := getCalendarOverviewHandler.NewHandler(getCalendarOverviewUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getConfig := getConfigHandler.NewHandler(availabilitySvc, log)
	updateConfig := updateConfigHandler.NewHandler(availabilitySvc, log)
	listBlackoutDates := listBlackoutDatesHandler.NewHandler(availabilitySvc, log)
	addBlackoutDate := addBlackoutDateHandler.NewHandler(availabilitySvc, log)
	removeBlackoutDate := removeBlackoutDateHandler.NewHandler(availabilitySvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listAssistantTools := listAssistantToolsHandler.NewHandler()
	executeAssistantTool := executeAssistantToolHandler.NewHandler(toolExecutor, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api.RegisterRoutes(r, api.Handlers{
		Health:               health.Handle,
		GetAvailableSlots:    getAvailableSlots.Handle,
		GetCalendarOverview:  getCalendarOverview.Handle,
		ListAssistantTools:   listAssistantTools.Handle,
		ExecuteAssistantTool: executeAssistantTool.Handle,
		ListServices:         listServices.Handle,
		CreateService:        createService.Handle,
		UpdateService:        updateService.Handle,
		DeleteService:        deleteService.Handle,
		GetConfig:            getConfig.Handle,
		UpdateConfig:         updateConfig.Handle,
		ListBlackoutDates:    listBlackoutDates.Handle,
		AddBlackoutDate:      addBlackoutDate.Handle,
		RemoveBlackoutDate:   removeBlackoutDate.Handle,
		ListAppointments:     listAppointments.Handle,
		CreateAppointment:    createAppointment.Handle,
		GetAppointment:       getAppointment.Handle,
		UpdateAppointment:    updateAppointment.Handle,
		CancelAppointment:    cancelAppointment.Handle,
	}, cfg.Auth.APIKey)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
