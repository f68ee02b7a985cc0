package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/paybridge/internal/config"
	"github.com/you-humble/paybridge/internal/transport/http/health"
	reqlog "github.com/you-humble/paybridge/internal/transport/http/middleware"
	"github.com/you-humble/paybridge/platform/closer"
	"github.com/you-humble/paybridge/platform/logger"
)

type app struct {
	cfg    *config.Config
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		a.cfg.Logger.Level(),
		a.cfg.Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.cfg)
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if a.cfg.Store.Driver() != config.StoreDriverPostgres {
		return nil
	}

	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		reqlog.RequestLogger,
		middleware.Logger,
		middleware.Recoverer,
	)

	webhook := a.di.WebhookHandler(ctx)
	r.Get("/webhook", webhook.Notify)
	r.Post("/webhook", webhook.Notify)

	r.Get("/", a.di.InvoiceHandler(ctx).Index)

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              a.cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer a.gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 paybridge server listening",
			logger.String("address", a.cfg.Server.Address()),
			logger.String("store", a.cfg.Store.Driver()),
			logger.Bool("kafka", a.cfg.Kafka.Enabled()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(
			context.Background(), // do not inherit cancellation from ctx
			a.cfg.Server.ShutdownTimeout(),
		)
		defer cancel()

		logger.Info(sdCtx, "🛑 Server shutdown...")
		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func (a *app) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		a.cfg.Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
