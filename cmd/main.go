package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accountHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/account"
	bookMandapHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/book_mandap"
	getBookingHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/get_catalog"
	getSessionHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/get_session"
	listBookingsHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/list_bookings"
	listComplaintsHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/list_complaints"
	loginHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/logout"
	notificationsHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/notifications"
	notificationsStreamHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/notifications_stream"
	passwordResetHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/password_reset"
	paymentActionHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/payment_action"
	signupHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/signup"
	submitRequestHandler "github.com/m04kA/SMC-CitizenClient/internal/api/handlers/submit_request"
	"github.com/m04kA/SMC-CitizenClient/internal/api/middleware"
	"github.com/m04kA/SMC-CitizenClient/internal/app"
	"github.com/m04kA/SMC-CitizenClient/internal/config"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/metrics"
)

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
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.WithFormat(cfg.Logs.Format))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CitizenClient gateway...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище, клиент API, сервисы и use cases
	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(startCtx, cfg, log, metricsCollector)
	startCancel()
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}
	defer application.Close()

	// Первичная загрузка уведомлений
	if cfg.Notifications.RefreshOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.API.Timeout)*time.Second)
			defer cancel()
			if err := application.Notifications.Refresh(ctx, true); err != nil {
				log.Warn("Initial notifications refresh failed: %v", err)
			}
		}()
	}

	// Инициализируем handlers
	login := loginHandler.NewHandler(application.Auth, log)
	logout := logoutHandler.NewHandler(application.Auth, log)
	signup := signupHandler.NewHandler(application.Auth, log)
	passwordReset := passwordResetHandler.NewHandler(application.Auth, log)
	getSession := getSessionHandler.NewHandler(application.Account, application.Notifications, log)
	account := accountHandler.NewHandler(application.Account, log)
	listBookings := listBookingsHandler.NewHandler(application.Bookings, log)
	getBooking := getBookingHandler.NewHandler(application.Bookings, log)
	listComplaints := listComplaintsHandler.NewHandler(application.Bookings, log)
	getCatalog := getCatalogHandler.NewHandler(application.Catalog, log)
	submitRequest := submitRequestHandler.NewHandler(application.SubmitRequest, log)
	bookMandap := bookMandapHandler.NewHandler(application.BookMandap, log)
	notifications := notificationsHandler.NewHandler(application.Notifications, log)
	paymentAction := paymentActionHandler.NewHandler(application.PaymentAction, log)
	notificationsStream := notificationsStreamHandler.NewHandler(application.Notifications, originChecker(cfg.Server.AllowedOrigins), log)

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

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// --- Вход и регистрация ---
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup/otp", signup.SendOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup/otp/resend", signup.ResendOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup/otp/verify", signup.VerifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", signup.Register).Methods(http.MethodPost)

	// --- Восстановление пароля ---
	api.HandleFunc("/auth/password/otp", passwordReset.SendOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/otp/resend", passwordReset.ResendOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/otp/verify", passwordReset.VerifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/reset", passwordReset.Reset).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/confirm", passwordReset.Confirm).Methods(http.MethodPost)

	// --- Справочники ---
	api.HandleFunc("/catalog/mandaps", getCatalog.Mandaps).Methods(http.MethodGet)
	api.HandleFunc("/catalog/mandaps/{mandapId}", getCatalog.Mandap).Methods(http.MethodGet)
	api.HandleFunc("/catalog/complaint-categories", getCatalog.ComplaintCategories).Methods(http.MethodGet)
	api.HandleFunc("/catalog/pollution-categories", getCatalog.PollutionCategories).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют токен в сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionGuard(application.Session, log))

	// --- Сессия и профиль ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/account", account.Get).Methods(http.MethodGet)
	protected.HandleFunc("/account", account.Update).Methods(http.MethodPut)

	// --- Заявки и бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{serviceType}/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/complaints", listComplaints.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{kind}", submitRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/mandaps/{mandapId}/bookings", bookMandap.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/refresh", notifications.Refresh).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/surface", notifications.Surface).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/open", notifications.Open).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/payment/confirm", paymentAction.Confirm).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/payment/reject", paymentAction.Reject).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/stream", notificationsStream.Handle).Methods(http.MethodGet)

	var handler http.Handler = r
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
			gorillaHandlers.AllowCredentials(),
		)(r)
		log.Info("CORS enabled for %v", cfg.Server.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

// originChecker проверка Origin для websocket по списку allowed_origins.
// Пустой список разрешает любой Origin.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
