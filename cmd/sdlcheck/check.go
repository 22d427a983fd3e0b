package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanpama/sdlcheck/internal/config"
	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/metrics"
	"github.com/hanpama/sdlcheck/internal/otel"
	"github.com/hanpama/sdlcheck/internal/schema"
	"github.com/hanpama/sdlcheck/internal/source"
	"github.com/hanpama/sdlcheck/internal/validate"
	"github.com/hanpama/sdlcheck/internal/watch"
)

// errInvalidSchema is returned when diagnostics were printed. main exits
// non-zero without printing it again.
var errInvalidSchema = errors.New("schema is invalid")

type checkOptions struct {
	format       string
	legacyNames  []string
	watch        bool
	metricsAddr  string
	otelEndpoint string
}

func newCheckCmd(g *globals) *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate the schema built from SDL documents",
		Long: `Check discovers .graphql and .graphqls files under the given paths (or the
configured schema paths), builds one schema from them and reports every
problem found. It exits with a non-zero status when the schema is invalid.

With --watch, check keeps running and validates again whenever a schema
document changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("metrics-addr") {
				g.cfg.Telemetry.MetricsAddr = o.metricsAddr
			}
			if cmd.Flags().Changed("otel-endpoint") {
				g.cfg.Telemetry.OTelEndpoint = o.otelEndpoint
			}
			if o.format != "text" && o.format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", o.format)
			}
			return runCheck(cmd.Context(), g, o, g.schemaPaths(args))
		},
	}
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringArrayVar(&o.legacyNames, "allow-legacy-name", nil, "name exempt from name validation (repeatable)")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "validate again when schema documents change")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&o.otelEndpoint, "otel-endpoint", "", "OTLP gRPC collector endpoint for traces")
	return cmd
}

// checker runs one load and validation cycle and reports the outcome.
type checker struct {
	paths       []string
	legacyNames []string
	format      string
	validator   *validate.Validator
	bus         *eventbus.Bus
	logger      *zap.Logger
	g           *globals
}

func runCheck(ctx context.Context, g *globals, o *checkOptions, paths []string) error {
	bus := eventbus.New()

	shutdown, err := otel.Setup(g.cfg.Telemetry.OTelEndpoint, g.cfg.Telemetry.ServiceName, bus)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if addr := g.cfg.Telemetry.MetricsAddr; addr != "" {
		stop, err := serveMetrics(addr, bus, g.logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	cache, err := newCache(g.cfg.Cache, o.watch)
	if err != nil {
		return err
	}

	c := &checker{
		paths:       paths,
		legacyNames: append(append([]string(nil), g.cfg.Schema.AllowedLegacyNames...), o.legacyNames...),
		format:      o.format,
		validator:   validate.New(validate.WithCache(cache), validate.WithLogger(g.logger), validate.WithEventBus(bus)),
		bus:         bus,
		logger:      g.logger,
		g:           g,
	}

	ok, err := c.check(ctx)
	if err != nil {
		return err
	}
	if !o.watch {
		if !ok {
			return errInvalidSchema
		}
		return nil
	}

	w, err := watch.New(paths, g.cfg.Watch.Debounce, g.logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, func(ctx context.Context) {
		if _, err := c.check(ctx); err != nil {
			c.logger.Error("check failed", zap.Error(err))
		}
	})
}

// check reports whether the schema is valid. Problems in the documents are
// printed; only failures to read them are returned as errors.
func (c *checker) check(ctx context.Context) (bool, error) {
	start := time.Now()
	d, err := source.NewFileSystemDiscovery(c.paths...)
	if err != nil {
		return false, err
	}
	s, err := source.Load(ctx, d, c.bus, schema.WithAllowedLegacyNames(c.legacyNames...))
	if err != nil {
		problems, ok := buildProblems(err)
		if !ok {
			return false, err
		}
		return false, writeReport(c.g.stdout, c.format, problems)
	}
	diags := c.validator.ValidateContext(ctx, s)
	c.logger.Info("schema checked",
		zap.Int("diagnostics", len(diags)),
		zap.Duration("duration", time.Since(start)))
	return len(diags) == 0, writeReport(c.g.stdout, c.format, diagnosticProblems(diags))
}

// newCache picks the memo cache for a run. Watch mode builds a fresh schema
// on every change, so cached results would only pin stale schemas.
func newCache(cfg config.CacheConfig, watching bool) (validate.Cache, error) {
	if cfg.Disabled || watching {
		return validate.NoCache{}, nil
	}
	return validate.NewLRUCache(cfg.Size)
}

func serveMetrics(addr string, bus *eventbus.Bus, logger *zap.Logger) (stop func(), err error) {
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("metrics setup: %w", err)
	}
	unsubscribe := collector.Subscribe(bus)

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return func() {
		unsubscribe()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
