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

	cancelAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_block"
	deleteBlockHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/delete_block"
	getAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_business_hours"
	getCalendarHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_calendar"
	listAppointmentsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_appointments"
	listBlocksHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_blocks"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_business_hours"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	hoursCache "github.com/m04kA/SMC-AgendaService/internal/infra/cache/hours"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	blockedRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/blocked"
	businessHoursRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business_hours"
	serviceCatalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service_catalog"
	appointmentsService "github.com/m04kA/SMC-AgendaService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-AgendaService/internal/service/availability"
	blocksService "github.com/m04kA/SMC-AgendaService/internal/service/blocks"
	hoursService "github.com/m04kA/SMC-AgendaService/internal/service/hours"
	createAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_calendar"
	rescheduleAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from config.toml (timezone=%s)", cfg.Business.Timezone)

	// Инициализируем метрики (если включены)
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

	// Выбираем исполнитель запросов (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	hoursRepository := businessHoursRepo.NewRepository(executor)
	catalogRepository := serviceCatalogRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)
	blockRepository := blockedRepo.NewRepository(executor)

	// Рабочие часы читаются на каждый запрос слотов, поэтому при наличии redis кэшируем их
	var hoursSource hoursService.HoursRepository = hoursRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		pingCancel()

		hoursSource = hoursCache.New(
			redisClient,
			hoursRepository,
			time.Duration(cfg.Redis.TTL)*time.Second,
			metricsCollector,
			log,
		)
		log.Info("Business hours cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем сервисы
	hoursSvc := hoursService.NewService(hoursSource, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	blocksSvc := blocksService.NewService(blockRepository, log)
	availabilitySvc := availabilityService.NewService(
		hoursSvc,
		appointmentRepository,
		blockRepository,
		cfg.Location(),
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		availabilitySvc,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		availabilitySvc,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilitySvc,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		hoursSvc,
		appointmentRepository,
		blockRepository,
		cfg.Calendar.RowHeight,
		cfg.Calendar.MinEventHeight,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	createBlock := createBlockHandler.NewHandler(blocksSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blocksSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

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
	stopLimiterCh := make(chan struct{})
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ограничение частоты запросов на клиента (если включено)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustProxy,
			log,
		)
		limiter.StartEviction(time.Minute, stopLimiterCh)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов ресурса на дату
	api.HandleFunc("/tenants/{tenantId}/resources/{resourceId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение рабочих часов
	api.HandleFunc("/tenants/{tenantId}/business-hours",
		getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Рабочие часы ---
	protected.HandleFunc("/tenants/{tenantId}/business-hours",
		updateBusinessHours.Handle).Methods(http.MethodPut)

	// --- Календарь ---
	protected.HandleFunc("/tenants/{tenantId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи (force доступен только администратору)
	protected.HandleFunc("/tenants/{tenantId}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей
	protected.HandleFunc("/tenants/{tenantId}/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/tenants/{tenantId}/appointments/{appointmentId}",
		getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи
	protected.HandleFunc("/tenants/{tenantId}/appointments/{appointmentId}/reschedule",
		rescheduleAppointment.Handle).Methods(http.MethodPut)

	// Отмена записи
	protected.HandleFunc("/tenants/{tenantId}/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPost)

	// Смена статуса записи
	protected.HandleFunc("/tenants/{tenantId}/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Блокировки ---
	protected.HandleFunc("/tenants/{tenantId}/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tenants/{tenantId}/blocks", listBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantId}/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

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
	close(stopLimiterCh)

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
