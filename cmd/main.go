package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	getCourseListHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_course_list"
	getReservationTimeHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation_time"
	getShopCalendarHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_shop_calendar"
	getShopListHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_shop_list"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationService/internal/infra/queue"
	remindRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/remind_message"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	shopRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop"
	shopReservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ReservationService/internal/service/aggregation"
	shopsService "github.com/m04kA/SMC-ReservationService/internal/service/shops"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getReservationTimeUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_reservation_time"
	getShopCalendarUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_shop_calendar"
	"github.com/m04kA/SMC-ReservationService/internal/worker"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Метрики (nil, если выключены: все методы записи nil-safe)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	shopRepository := shopRepo.NewRepository(wrappedDB)
	dayRepository := shopReservationRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	remindRepository := remindRepo.NewRepository(wrappedDB)

	// Блокировка дня магазина
	var dayLocker createReservationUC.Locker = lock.NoopLocker{}
	if cfg.Redis.Enabled {
		redisClient, err := lock.NewRedisClient(ctx, lock.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		})
		if err != nil {
			log.Warn("Redis unavailable, day lock disabled: %v", err)
		} else {
			defer redisClient.Close()
			dayLocker = lock.NewRedisLocker(
				redisClient,
				time.Duration(cfg.Redis.LockTTLMs)*time.Millisecond,
				time.Duration(cfg.Redis.LockWaitMs)*time.Millisecond,
			)
			log.Info("Redis day lock enabled (addr=%s)", cfg.Redis.Addr)
		}
	}

	verifier := identity.NewVerifier(cfg.Identity.ChannelSecret, cfg.Identity.ChannelID, cfg.Identity.Issuer)

	// Сервисы
	aggregationSvc := aggregation.NewService(dayRepository, metricsCollector, log, aggregation.Config{
		MaxMergeRetries: cfg.Reservation.MaxMergeRetries,
		RetentionDays:   cfg.Reservation.RetentionDays,
	})
	shopSvc := shopsService.NewService(shopRepository, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		shopRepository,
		aggregationSvc,
		reservationRepository,
		remindRepository,
		dayLocker,
		txMgr,
		log,
		createReservationUC.Config{
			ChannelID:            cfg.Remind.ChannelID,
			RemindDateDifference: cfg.Remind.DateDifference,
			RetentionDays:        cfg.Reservation.RetentionDays,
		},
	)
	getShopCalendarUseCase := getShopCalendarUC.NewUseCase(dayRepository, log)
	getReservationTimeUseCase := getReservationTimeUC.NewUseCase(dayRepository, log)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getShopCalendar := getShopCalendarHandler.NewHandler(getShopCalendarUseCase, log)
	getReservationTime := getReservationTimeHandler.NewHandler(getReservationTimeUseCase, log)
	getShopList := getShopListHandler.NewHandler(shopSvc, log)
	getCourseList := getCourseListHandler.NewHandler(shopSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/shops", getShopList.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/courses", getCourseList.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/calendar", getShopCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/reservation-times", getReservationTime.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <ID token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(verifier, log))

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPut)

	// Фоновые воркеры
	var wg sync.WaitGroup

	retention := worker.NewRetention(
		dayRepository,
		log,
		time.Duration(cfg.Reservation.CleanupInterval)*time.Second,
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		retention.Run(ctx)
	}()

	if cfg.RabbitMQ.Enabled {
		publisher, err := queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()

		relay := worker.NewRemindRelay(
			remindRepository,
			publisher,
			metricsCollector,
			log,
			time.Duration(cfg.Remind.PollInterval)*time.Second,
			cfg.Remind.BatchSize,
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			relay.Run(ctx)
		}()
	} else {
		log.Warn("RabbitMQ disabled, reminders stay in outbox")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()
	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server stopped gracefully")
}
