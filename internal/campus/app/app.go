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

	"github.com/aussiebroadwan/campus/internal/campus/graph"
	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/memory"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application holds the campus API and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	codec *jwtx.Codec

	sessionService    *service.SessionService
	authService       *service.AuthService
	userService       *service.UserService
	courseService     *service.CourseService
	assignmentService *service.AssignmentService
	gradeService      *service.GradeService
	bootstrapService  *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		db: memory.NewStore(),
	}

	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		app.logger.Warn("CAMPUS_TOKEN_SECRET not set, using a random secret for this process")
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize)
		if err != nil {
			return nil, err
		}
		secret = generated
	}

	codec, err := jwtx.NewCodec(secret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec
	app.logger.Info("token codec ready", "alg", codec.Alg(), "issuer", cfg.Issuer, "ttl", cfg.TokenTTL.String())

	app.initServices()

	if err := app.bootstrap(context.Background()); err != nil {
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		return nil, err
	}

	return app, nil
}

// Handler exposes the routed API, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("campus starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

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

// Shutdown drains in-flight requests and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down campus...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("campus stopped")
	return nil
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store: app.db,
		Codec: app.codec,
		TTL:   app.cfg.TokenTTL,
	}
	app.authService = &service.AuthService{
		Store:    app.db,
		Codec:    app.codec,
		Sessions: app.sessionService,
	}
	app.userService = &service.UserService{Store: app.db}
	app.courseService = &service.CourseService{Store: app.db}
	app.assignmentService = &service.AssignmentService{Store: app.db}
	app.gradeService = &service.GradeService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Users: app.userService,
	}
}

// bootstrap creates the configured admin on a fresh store. Without admin
// settings the API starts empty and createUser stays unreachable.
func (app *Application) bootstrap(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	if !app.cfg.HasBootstrapAdmin() {
		app.logger.Warn("no bootstrap admin configured, set CAMPUS_ADMIN_NAME, CAMPUS_ADMIN_EMAIL and CAMPUS_ADMIN_PASSWORD")
		return nil
	}

	if _, err := app.bootstrapService.EnsureAdmin(ctx, app.cfg.AdminName, app.cfg.AdminEmail, app.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	return nil
}

func (app *Application) initHTTP() error {
	schema, err := graph.NewSchema(&graph.Resolver{
		Auth:        app.authService,
		Users:       app.userService,
		Courses:     app.courseService,
		Assignments: app.assignmentService,
		Grades:      app.gradeService,
	})
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)
	router.Schema = schema
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
