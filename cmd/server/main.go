// Package main is the entry point for the site. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/vinhson/vinhson-web/internal/adapters/clients/cms"
	"github.com/vinhson/vinhson-web/internal/adapters/clients/cms/imageurl"
	adapthttp "github.com/vinhson/vinhson-web/internal/adapters/http"
	"github.com/vinhson/vinhson-web/internal/adapters/http/handlers"
	"github.com/vinhson/vinhson-web/internal/adapters/http/middleware"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views"

	"github.com/vinhson/vinhson-web/internal/app"
	"github.com/vinhson/vinhson-web/internal/platform/config"
	"github.com/vinhson/vinhson-web/internal/platform/health"
	"github.com/vinhson/vinhson-web/internal/platform/httpclient"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
	"github.com/vinhson/vinhson-web/internal/platform/telemetry"
	"github.com/vinhson/vinhson-web/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

// Names of the two CMS clients in the container.
const (
	publishedClient = "cms.published"
	previewClient   = "cms.preview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, config.WithEnvFiles(".env"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*cms.Client](injector, publishedClient))
	registry.Register(do.MustInvokeNamed[*cms.Client](injector, previewClient))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry and the Prometheus endpoint are both disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
	// prometheus is set when /metrics is served.
	prometheus *prometheus.Registry
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// initTelemetry starts the tracer when export is enabled and the meter when
// export or the Prometheus endpoint is enabled. With export disabled the
// meter carries only the Prometheus reader.
func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	tc := cfg.Telemetry
	if !tc.Enabled && !tc.Prometheus {
		return &otelProviders{}, nil
	}

	o := &otelProviders{}
	exporter := ""
	if tc.Enabled {
		tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		o.tracer = tp
		exporter = tc.Exporter
	}

	var opts []telemetry.MeterOption
	if tc.Prometheus {
		o.prometheus = prometheus.NewRegistry()
		opts = append(opts, telemetry.WithPrometheus(o.prometheus))
	}

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, exporter, tc.Endpoint, opts...)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.meter = mp

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	o.metrics = metrics

	return o, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, otel *otelProviders) {
	// Outbound CMS clients: the CDN serves published content, the live API
	// serves drafts with the read token.
	do.ProvideNamed(injector, publishedClient, func(i do.Injector) (*cms.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		hc := httpclient.New(&cfg.CMS.Client, cfg.CMS.CDNURL(), "sanity-cdn", metrics, logger)
		return cms.NewClient(hc, cms.Options{
			APIVersion:  cfg.CMS.APIVersion,
			Dataset:     cfg.CMS.Dataset,
			Perspective: cms.PerspectivePublished,
		}, logger), nil
	})

	do.ProvideNamed(injector, previewClient, func(i do.Injector) (*cms.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		hc := httpclient.New(&cfg.CMS.Client, cfg.CMS.APIURL(), "sanity-api", metrics, logger)
		return cms.NewClient(hc, cms.Options{
			APIVersion:  cfg.CMS.APIVersion,
			Dataset:     cfg.CMS.Dataset,
			Token:       cfg.CMS.Token,
			Perspective: cms.PerspectivePreviewDrafts,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.ImageURLBuilder, error) {
		return imageurl.New("", cfg.CMS.ProjectID, cfg.CMS.Dataset), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.SiteService, error) {
		published := do.MustInvokeNamed[*cms.Client](i, publishedClient)
		preview := do.MustInvokeNamed[*cms.Client](i, previewClient)
		return app.NewSiteService(published, preview, app.SiteOptions{
			SiteName:     cfg.Site.Name,
			RecentPosts:  cfg.Site.RecentPosts,
			HomeProducts: cfg.Site.HomeProducts,
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PreviewService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPreviewService(app.PreviewOptions{
			Secret:     cfg.Preview.Secret,
			CookieName: cfg.Preview.CookieName,
			MaxAge:     cfg.Preview.MaxAge,
			Secure:     cfg.Site.Secure(),
		}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RevalidationService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRevalidationService(cfg.Preview.Secret, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Views.
	do.Provide(injector, func(_ do.Injector) (*views.Renderer, error) {
		return views.NewRenderer()
	})

	do.Provide(injector, func(i do.Injector) (*views.Presenter, error) {
		catalog, err := i18n.Load()
		if err != nil {
			return nil, fmt.Errorf("loading translations: %w", err)
		}
		return views.NewPresenter(
			do.MustInvoke[*views.Renderer](i),
			catalog,
			do.MustInvoke[ports.ImageURLBuilder](i),
			views.PresenterOptions{
				BaseURL:    cfg.Site.BaseURL,
				SiteName:   cfg.Site.Name,
				SearchPath: cfg.Site.SearchPath,
			},
			logger,
		), nil
	})

	// Handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.SiteHandler, error) {
		return handlers.NewSiteHandler(
			do.MustInvoke[ports.SiteService](i),
			do.MustInvoke[*views.Presenter](i),
			do.MustInvoke[*views.Renderer](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PreviewHandler, error) {
		return handlers.NewPreviewHandler(do.MustInvoke[ports.PreviewService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RevalidateHandler, error) {
		return handlers.NewRevalidateHandler(do.MustInvoke[ports.RevalidationService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SEOHandler, error) {
		return handlers.NewSEOHandler(do.MustInvoke[ports.SiteService](i), cfg.Site.BaseURL), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		site := do.MustInvoke[*handlers.SiteHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		preview := do.MustInvoke[ports.PreviewService](i)

		routes := adapthttp.Routes{
			Site:       site,
			Preview:    do.MustInvoke[*handlers.PreviewHandler](i),
			Revalidate: do.MustInvoke[*handlers.RevalidateHandler](i),
			SEO:        do.MustInvoke[*handlers.SEOHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
			Pages: middleware.Chain(
				middleware.Timeout(cfg.Server.RequestTimeout),
				middleware.CacheControl(cfg.Site.CacheMaxAge, cfg.Site.StaleWhileRevalidate),
			),
		}
		if otel.prometheus != nil {
			routes.Metrics = telemetry.PrometheusHandler(otel.prometheus)
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger, site.RenderError),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.AppContext(preview),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
