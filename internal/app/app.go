package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/config"
	"github.com/m04kA/SMC-CitizenClient/internal/infra/storage/kv"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	accountService "github.com/m04kA/SMC-CitizenClient/internal/service/account"
	authService "github.com/m04kA/SMC-CitizenClient/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CitizenClient/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CitizenClient/internal/service/catalog"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
	sessionService "github.com/m04kA/SMC-CitizenClient/internal/service/session"
	bookMandapUC "github.com/m04kA/SMC-CitizenClient/internal/usecase/book_mandap"
	paymentActionUC "github.com/m04kA/SMC-CitizenClient/internal/usecase/payment_action"
	submitRequestUC "github.com/m04kA/SMC-CitizenClient/internal/usecase/submit_request"
	"github.com/m04kA/SMC-CitizenClient/pkg/database"
	"github.com/m04kA/SMC-CitizenClient/pkg/dbmetrics"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/metrics"
	"github.com/m04kA/SMC-CitizenClient/pkg/txmanager"
)

// App зависимости клиента, общие для HTTP шлюза и citizenctl
type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	API           *citizenapi.Client
	Session       *sessionService.Service
	Auth          *authService.Service
	Account       *accountService.Service
	Bookings      *bookingsService.Service
	Catalog       *catalogService.Service
	Notifications *notificationsService.Store

	SubmitRequest *submitRequestUC.UseCase
	BookMandap    *bookMandapUC.UseCase
	PaymentAction *paymentActionUC.UseCase

	db     *sql.DB
	stopCh chan struct{}
}

// New открывает локальное хранилище, применяет миграции и собирает сервисы.
// m может быть nil, тогда метрики не пишутся.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*App, error) {
	db, driver, err := database.Connect(ctx, cfg.Storage.DSN, database.Options{
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}
	log.Info("Storage opened (driver=%s)", driver)

	a := &App{
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		db:      db,
		stopCh:  make(chan struct{}),
	}

	var wrappedDB *dbmetrics.DB
	if m != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, m, a.stopCh)
		log.Info("Storage metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	kvRepository := kv.NewRepository(wrappedDB, driver)
	if err := kvRepository.Migrate(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)
	a.Session = sessionService.NewService(kvRepository, txMgr, log)
	if err := a.Session.Migrate(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("migrate session: %w", err)
	}

	a.API = citizenapi.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		cfg.API.UserAgent,
		m,
		log,
	)
	log.Info("Citizen API client initialized (url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	a.Notifications = notificationsService.NewStore(a.API, a.Session, m, log)
	a.Auth = authService.NewService(a.API, a.Session, a.Notifications, log)
	a.Account = accountService.NewService(a.API, a.Session, log)
	a.Bookings = bookingsService.NewService(a.API, a.Session, log)
	a.Catalog = catalogService.NewService(a.API, a.Session, log)

	a.SubmitRequest = submitRequestUC.NewUseCase(a.API, a.API, a.Session, log)
	a.BookMandap = bookMandapUC.NewUseCase(a.API, a.Session, log)
	a.PaymentAction = paymentActionUC.NewUseCase(a.API, a.Notifications, a.Session, log)

	return a, nil
}

// Close останавливает сбор метрик и закрывает хранилище
func (a *App) Close() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
	if err := a.db.Close(); err != nil {
		a.Logger.Error("Failed to close storage: %v", err)
	}
}
