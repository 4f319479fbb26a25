package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/onboard/internal/onboard/http"
	"github.com/aussiebroadwan/onboard/internal/onboard/notify"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/telemetry"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags.
var BuildVersion = "v0.1.0"

const serviceName = "onboard"

// NewLogger builds the process logger from cfg and installs it as the default.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: serviceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// Services is every domain service over one store.
type Services struct {
	Employees    *service.EmployeeService
	Assignments  *service.AssignmentService
	Invitations  *service.InvitationService
	Tasks        *service.TaskService
	Progress     *service.ProgressService
	Roles        *service.RoleService
	Identity     *service.IdentityService
	Provision    *service.ProvisionService
	Housekeeping *service.HousekeepingService
}

// NewServices wires the services. The CLI uses it without an HTTP server.
func NewServices(cfg Config, db Database, sender notify.Sender, logger *slog.Logger) *Services {
	base := service.Base{Store: db}
	assignments := &service.AssignmentService{Base: base}
	return &Services{
		Employees:   &service.EmployeeService{Base: base, Assignments: assignments},
		Assignments: assignments,
		Invitations: &service.InvitationService{
			Base:        base,
			Sender:      sender,
			TTL:         cfg.Invitation.TTL,
			LinkBase:    cfg.Invitation.BaseURL,
			ReturnToken: cfg.Invitation.ReturnToken,
		},
		Tasks:     &service.TaskService{Base: base},
		Progress:  &service.ProgressService{Base: base},
		Roles:     &service.RoleService{Base: base},
		Identity:  &service.IdentityService{Base: base},
		Provision: &service.ProvisionService{Base: base},
		Housekeeping: service.NewHousekeepingService(
			db,
			logger,
			cfg.HousekeepingInterval,
			cfg.Invitation.Retention,
		),
	}
}

// NewSender picks SMTP delivery when SMTP_ADDR is set and logging otherwise.
func NewSender(cfg SMTPConfig) (notify.Sender, error) {
	if cfg.Addr == "" {
		return notify.LogSender{}, nil
	}
	s, err := notify.NewSMTPSender(notify.SMTPConfig{
		Addr:     cfg.Addr,
		From:     cfg.From,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Application encapsulates the onboarding service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       Database
	keys     *Keys
	services *Services
	tracing  telemetry.Shutdown

	stopJWKS context.CancelFunc

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialised.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{cfg: cfg, logger: NewLogger(cfg)}

	tracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:  cfg.OTel.Enabled,
		Endpoint: cfg.OTel.Endpoint,
		Service:  serviceName,
		Version:  BuildVersion,
	})
	if err != nil {
		return nil, err
	}
	app.tracing = tracing

	db, err := OpenMigratedStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database ready", slog.String("driver", cfg.Database.Driver))

	keys, err := InitKeys(ctx, cfg.Auth, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize verification keys: %w", err)
	}
	app.keys = keys

	sender, err := NewSender(cfg.SMTP)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}

	app.services = NewServices(cfg, db, sender, app.logger)
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.services.Housekeeping.Start()

	if app.keys.Remote != nil {
		ctx, cancel := context.WithCancel(context.Background())
		app.stopJWKS = cancel
		go app.keys.Remote.Run(ctx, app.cfg.Auth.JWKSRefresh, app.logger)
	}

	app.logger.Info("onboard service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains requests, stops background work and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down onboard service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.services.Housekeeping.Stop()
	if app.stopJWKS != nil {
		app.stopJWKS()
	}
	if err := app.tracing(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("onboard service stopped")
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	s := app.services
	router.Identity = s.Identity
	router.RequiredScope = app.cfg.Auth.RequiredScope
	router.Handlers = &httpapi.Handlers{
		Employees:      s.Employees,
		Assignments:    s.Assignments,
		Invitations:    s.Invitations,
		Tasks:          s.Tasks,
		Progress:       s.Progress,
		Roles:          s.Roles,
		Provisioner:    s.Provision,
		ProvisionToken: app.cfg.ProvisionToken,
	}
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
