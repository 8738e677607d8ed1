package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/CourtBooker/internal/clock"
	"github.com/stpnv0/CourtBooker/internal/config"
	"github.com/stpnv0/CourtBooker/internal/handler"
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/stpnv0/CourtBooker/internal/obs"
	"github.com/stpnv0/CourtBooker/internal/repository"
	"github.com/stpnv0/CourtBooker/internal/repository/memory"
	"github.com/stpnv0/CourtBooker/internal/router"
	"github.com/stpnv0/CourtBooker/internal/service"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "CourtBooker"

type App struct {
	cfg            *config.Config
	log            logger.Logger
	db             *dbpg.DB
	httpServer     *http.Server
	shutdownTracer func(context.Context) error
}

type repositories struct {
	courts       ports.CourtRepo
	schedules    ports.ScheduleRepo
	guests       ports.GuestRepo
	reservations ports.ReservationRepo
}

func New(cfg *config.Config, version string) (*App, error) {
	app := &App{cfg: cfg}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	app.shutdownTracer, err = obs.InitTracer(context.Background(), obs.Options{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     version,
		Environment: cfg.Tracing.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	repos, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	app.initServer(repos)

	return app, nil
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initStorage() (repositories, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Warn("using in-memory storage, data is lost on restart")

		store := memory.NewStore()
		return repositories{
			courts:       memory.NewCourtRepo(store),
			schedules:    memory.NewScheduleRepo(store),
			guests:       memory.NewGuestRepo(store),
			reservations: memory.NewReservationRepo(store),
		}, nil
	}

	if a.cfg.Postgres.AutoMigrate {
		if err := migrate(context.Background(), a.cfg, a.log, "up"); err != nil {
			return repositories{}, fmt.Errorf("migrations: %w", err)
		}
	}

	if err := a.initDB(); err != nil {
		return repositories{}, err
	}

	return repositories{
		courts:       repository.NewCourtRepo(a.db),
		schedules:    repository.NewScheduleRepo(a.db),
		guests:       repository.NewGuestRepo(a.db),
		reservations: repository.NewReservationRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServer(repos repositories) {
	clk := clock.System{}
	conflicts := service.NewConflictChecker(repos.reservations)

	courtService := service.NewCourtService(repos.courts, repos.schedules, clk, a.log)
	scheduleService := service.NewScheduleService(repos.schedules, repos.courts, conflicts, clk, a.log)
	guestService := service.NewGuestService(repos.guests, clk, a.log)
	reservationService := service.NewReservationService(
		repos.reservations,
		repos.schedules,
		repos.guests,
		conflicts,
		clk,
		a.log,
	)

	h := handler.NewHandler(courtService, scheduleService, guestService, reservationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.Tracing(a.cfg.Tracing.ServiceName),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return errors.Join(err, a.shutdown())
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}

	if err := a.shutdownTracer(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}
