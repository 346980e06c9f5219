package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/admin_coupons"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/admin_courts"
	cancelBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/cancel_booking"
	couponsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/coupons"
	courtsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/courts"
	createBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/create_booking"
	createPaymentOrderHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/create_payment_order"
	exportBookingsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/export_bookings"
	finalizePaymentHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/finalize_payment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_booking"
	getReceiptHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_receipt"
	listBookingsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/list_bookings"
	listPaymentsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/list_payments"
	updateBookingStatusHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/config"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	couponRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/coupon"
	courtRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/razorpay"
	bookingsService "github.com/m04kA/SMC-ClubBookingService/internal/service/bookings"
	couponsService "github.com/m04kA/SMC-ClubBookingService/internal/service/coupons"
	courtsService "github.com/m04kA/SMC-ClubBookingService/internal/service/courts"
	paymentsService "github.com/m04kA/SMC-ClubBookingService/internal/service/payments"
	reportsService "github.com/m04kA/SMC-ClubBookingService/internal/service/reports"
	createBookingUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
	createPaymentOrderUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_payment_order"
	finalizePaymentUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/finalize_payment"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClubBookingService/pkg/auth"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClubBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ClubBookingService/pkg/mq"
	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
)

// systemClock текущее время для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ClubBookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики регистрируются всегда, наружу отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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

	var collector dbmetrics.Collector
	if cfg.Metrics.Enabled {
		collector = metricsCollector
		log.Info("Database metrics collection started")
	}
	wrappedDB := dbmetrics.WrapWithDefault(db, collector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)

	// Токены провайдера идентификации
	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// События бронирований
	var publisher bookingsService.EventPublisher = events.Noop{}
	if cfg.Broker.Enabled {
		broker, err := mq.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		defer broker.Close()
		publisher = events.NewPublisher(broker)
		log.Info("Booking events are published to exchange %s", cfg.Broker.Exchange)
	}

	// Платежная система
	var (
		verifier finalizePaymentUC.PaymentVerifier
		orders   createPaymentOrderUC.OrderCreator
	)
	if cfg.Payments.Enabled {
		client := razorpay.NewClient(cfg.Payments.KeyID, cfg.Payments.KeySecret,
			cfg.Payments.Currency, cfg.Payments.VerifySignature, log)
		verifier, orders = client, client
		log.Info("Razorpay payments enabled (currency=%s, verify_signature=%t)",
			cfg.Payments.Currency, cfg.Payments.VerifySignature)
	} else {
		trusting := razorpay.NewTrustingVerifier(log)
		verifier, orders = trusting, trusting
		log.Warn("Payments disabled: transactions are accepted without processor verification")
	}

	// Письма с чеком
	var receiptMailer finalizePaymentUC.ReceiptMailer = mailer.Noop{}
	if cfg.Mail.Enabled {
		receiptMailer = mailer.New(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
		log.Info("Receipt e-mails enabled via %s:%d", cfg.Mail.Host, cfg.Mail.Port)
	}

	// Инициализируем сервисы
	clock := systemClock{}
	courtSvc := courtsService.NewService(courtRepository, cfg.Courts.CacheTTL(), clock, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, metricsCollector, clock, log)
	couponSvc := couponsService.NewService(couponRepository, clock, log)
	paymentSvc := paymentsService.NewService(paymentRepository, log)
	reportSvc := reportsService.NewService(paymentSvc, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, courtSvc, publisher, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, courtSvc, log)
	createPaymentOrderUseCase := createPaymentOrderUC.NewUseCase(bookingRepository, couponRepository, orders, log)
	finalizePaymentUseCase := finalizePaymentUC.NewUseCase(
		bookingRepository,
		couponRepository,
		paymentRepository,
		verifier,
		publisher,
		receiptMailer,
		reportSvc,
		metricsCollector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	courts := courtsHandler.NewHandler(courtSvc, log)
	coupons := couponsHandler.NewHandler(couponSvc, log)
	adminCoupons := admin_coupons.NewHandler(couponSvc, log)
	adminCourts := admin_courts.NewHandler(courtSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(createPaymentOrderUseCase, log)
	finalizePayment := finalizePaymentHandler.NewHandler(finalizePaymentUseCase, log)
	listPayments := listPaymentsHandler.NewHandler(paymentSvc, log)
	getReceipt := getReceiptHandler.NewHandler(reportSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(cfg.Server.OperationTimeout()))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/courts", courts.List).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", courts.Get).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coupons", coupons.List).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	protected.HandleFunc("/coupons/preview", coupons.Preview).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Оплата ---
	protected.HandleFunc("/bookings/{bookingId}/payment/order", createPaymentOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/payment", finalizePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments", listPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{paymentId}/receipt", getReceipt.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/courts", adminCourts.Create).Methods(http.MethodPost)
	admin.HandleFunc("/admin/courts/{courtId}", adminCourts.Update).Methods(http.MethodPut)
	admin.HandleFunc("/admin/courts/{courtId}", adminCourts.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/coupons", adminCoupons.List).Methods(http.MethodGet)
	admin.HandleFunc("/admin/coupons", adminCoupons.Create).Methods(http.MethodPost)
	admin.HandleFunc("/admin/coupons/{couponId}", adminCoupons.Update).Methods(http.MethodPut)
	admin.HandleFunc("/admin/coupons/{couponId}", adminCoupons.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/coupons/{couponId}/deactivate", adminCoupons.Deactivate).Methods(http.MethodPatch)

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

	log.Info("Server stopped gracefully")
}
