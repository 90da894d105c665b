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

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	bulkDeleteHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/bulk_delete_agendamentos"
	completeHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/complete_agendamento"
	createHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/create_agendamento"
	deleteHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/delete_agendamento"
	getHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/get_agendamento"
	availabilityHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/get_availability"
	listHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/list_agendamentos"
	loginHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/login"
	rescheduleHandler "github.com/m04kA/SMC-AgendamentoService/internal/api/handlers/reschedule_agendamento"
	"github.com/m04kA/SMC-AgendamentoService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendamentoService/internal/config"
	agendamentoRepo "github.com/m04kA/SMC-AgendamentoService/internal/infra/storage/agendamento"
	agendamentosService "github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
	authService "github.com/m04kA/SMC-AgendamentoService/internal/service/auth"
	createUC "github.com/m04kA/SMC-AgendamentoService/internal/usecase/create_agendamento"
	availabilityUC "github.com/m04kA/SMC-AgendamentoService/internal/usecase/get_availability"
	rescheduleUC "github.com/m04kA/SMC-AgendamentoService/internal/usecase/reschedule_agendamento"
	"github.com/m04kA/SMC-AgendamentoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendamentoService/pkg/jwt"
	"github.com/m04kA/SMC-AgendamentoService/pkg/logger"
	"github.com/m04kA/SMC-AgendamentoService/pkg/metrics"
	"github.com/m04kA/SMC-AgendamentoService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AgendamentoService/pkg/txmanager"
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

	log.Info("Starting SMC-AgendamentoService...")
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

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *agendamentoRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = agendamentoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = agendamentoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	jwtService := jwt.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	agendamentoSvc := agendamentosService.NewService(bookingRepository, log)
	authSvc := authService.NewService(cfg.Auth.PasswordHash, jwtService, log)

	// Инициализируем use cases
	createUseCase := createUC.NewUseCase(
		bookingRepository,
		txMgr,
		cfg.Booking.MaxAdvanceDays,
		cfg.Booking.Localities,
		log,
	)
	rescheduleUseCase := rescheduleUC.NewUseCase(
		bookingRepository,
		txMgr,
		cfg.Booking.MaxAdvanceDays,
		log,
	)
	availabilityUseCase := availabilityUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createAgendamento := createHandler.NewHandler(createUseCase, log)
	getAgendamento := getHandler.NewHandler(agendamentoSvc, log)
	rescheduleAgendamento := rescheduleHandler.NewHandler(rescheduleUseCase, log)
	getAvailability := availabilityHandler.NewHandler(availabilityUseCase, log)
	login := loginHandler.NewHandler(authSvc, log)
	listAgendamentos := listHandler.NewHandler(agendamentoSvc, log)
	completeAgendamento := completeHandler.NewHandler(agendamentoSvc, log)
	deleteAgendamento := deleteHandler.NewHandler(agendamentoSvc, log)
	bulkDeleteAgendamentos := bulkDeleteHandler.NewHandler(agendamentoSvc, log)

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
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Аутентификация бэк-офиса
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// Создание агендаменто
	api.HandleFunc("/agendamentos", createAgendamento.Handle).Methods(http.MethodPost)

	// Получение агендаменто по номеру ноты
	api.HandleFunc("/agendamentos/{nota}", getAgendamento.Handle).Methods(http.MethodGet)

	// Перенос агендаменто (разрешён один раз)
	api.HandleFunc("/agendamentos/{nota}/reagendar", rescheduleAgendamento.Handle).Methods(http.MethodPost)

	// Доступность слотов по локалидаде
	api.HandleFunc("/disponibilidade/{localidade}", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// BACKOFFICE ROUTES (требуют JWT)
	// ============================================================

	backoffice := api.PathPrefix("/backoffice").Subrouter()
	backoffice.Use(middleware.Auth(jwtService))

	// Список агендаментов с фильтрами
	backoffice.HandleFunc("/agendamentos", listAgendamentos.Handle).Methods(http.MethodGet)

	// Массовое удаление агендаментов
	backoffice.HandleFunc("/agendamentos/excluir-massa", bulkDeleteAgendamentos.Handle).Methods(http.MethodPost)

	// Завершение агендаменто
	backoffice.HandleFunc("/agendamentos/{nota}/concluir", completeAgendamento.Handle).Methods(http.MethodPost)

	// Удаление агендаменто
	backoffice.HandleFunc("/agendamentos/{nota}", deleteAgendamento.Handle).Methods(http.MethodDelete)

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
