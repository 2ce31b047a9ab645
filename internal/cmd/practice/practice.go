// Package practice parses practice command configuration and runs the
// workspace server.
package practice

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/practice.space/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/practice.space/internal/platform/grpc"
	i18ncatalog "github.com/louisbranch/practice.space/internal/platform/i18n/catalog"
	"github.com/louisbranch/practice.space/internal/platform/logging"
	platformotel "github.com/louisbranch/practice.space/internal/platform/otel"
	"github.com/louisbranch/practice.space/internal/problems/catalog"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	practiceserver "github.com/louisbranch/practice.space/internal/services/practice"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/observability"
	statesqlite "github.com/louisbranch/practice.space/internal/services/practice/storage/sqlite"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	pruneInterval = time.Hour
	probeTimeout  = 5 * time.Second
)

// Config holds practice command configuration.
type Config struct {
	Port                int           `env:"PORT" envDefault:"5000"`
	Host                string        `env:"PRACTICE_SPACE_HTTP_HOST"`
	UsersURL            string        `env:"PRACTICE_SPACE_USERS_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`
	FetchTimeout        time.Duration `env:"PRACTICE_SPACE_FETCH_TIMEOUT" envDefault:"5s"`
	StateDBPath         string        `env:"PRACTICE_SPACE_STATE_DB_PATH"`
	StateTTL            time.Duration `env:"PRACTICE_SPACE_STATE_TTL" envDefault:"168h"`
	GRPCHealthAddr      string        `env:"PRACTICE_SPACE_GRPC_HEALTH_ADDR"`
	LogLevel            string        `env:"PRACTICE_SPACE_LOG_LEVEL" envDefault:"info"`
	TrustForwardedProto bool          `env:"PRACTICE_SPACE_TRUST_FORWARDED_PROTO"`
	// ProbeAddr switches Run into a one-shot gRPC health probe of a running
	// instance.
	ProbeAddr string
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strconv.Itoa(c.Port))
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The HTTP server port")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "The HTTP server host; empty listens on all interfaces")
	fs.StringVar(&cfg.UsersURL, "users-url", cfg.UsersURL, "The user directory endpoint")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "Timeout for user directory fetches")
	fs.StringVar(&cfg.StateDBPath, "state-db-path", cfg.StateDBPath, "SQLite path for widget state; empty keeps state in memory")
	fs.DurationVar(&cfg.StateTTL, "state-ttl", cfg.StateTTL, "Age after which stored widget state is pruned; zero disables pruning")
	fs.StringVar(&cfg.GRPCHealthAddr, "grpc-health-addr", cfg.GRPCHealthAddr, "gRPC health listen address; empty disables it")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ProbeAddr, "probe", "", "Probe the gRPC health endpoint at this address and exit")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie and origin checks")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d is out of range", cfg.Port)
	}
	return cfg, nil
}

// Run starts the practice server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if addr := strings.TrimSpace(cfg.ProbeAddr); addr != "" {
		return probe(ctx, addr, logger)
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServicePractice, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return run(ctx, cfg, logger)
	})
}

func run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	reg, err := catalog.Load(widget.Dependencies{
		HTTPClient:   &http.Client{},
		UsersURL:     cfg.UsersURL,
		FetchTimeout: cfg.FetchTimeout,
		Logger:       logger,
		Tracer:       platformotel.Tracer("problems"),
	})
	if err != nil {
		return fmt.Errorf("load problems: %w", err)
	}
	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load message catalog: %w", err)
	}

	var (
		store    widget.StateStore = widget.NewMemoryStore()
		sqlStore *statesqlite.Store
	)
	if path := strings.TrimSpace(cfg.StateDBPath); path != "" {
		sqlStore, err = statesqlite.Open(ctx, path)
		if err != nil {
			return fmt.Errorf("open state store: %w", err)
		}
		defer func() {
			if err := sqlStore.Close(); err != nil {
				logger.Warn("close state store", zap.Error(err))
			}
		}()
		store = sqlStore
	}

	server, err := practiceserver.NewServer(ctx, practiceserver.Config{
		HTTPAddr:            cfg.HTTPAddr(),
		Registry:            reg,
		Store:               store,
		Catalog:             bundle,
		Logger:              logger,
		Metrics:             observability.NewMetrics(),
		Tracer:              platformotel.Tracer("practice"),
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init practice server: %w", err)
	}
	defer server.Close()

	var healthListener net.Listener
	if addr := strings.TrimSpace(cfg.GRPCHealthAddr); addr != "" {
		healthListener, err = net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen grpc health: %w", err)
		}
	}

	// Background work starts after setup succeeds.
	group, ctx := errgroup.WithContext(ctx)
	if sqlStore != nil && cfg.StateTTL > 0 {
		group.Go(func() error {
			pruneLoop(ctx, sqlStore, cfg.StateTTL, logger)
			return nil
		})
	}
	if healthListener != nil {
		health := platformgrpc.NewHealthServer(entrypoint.ServicePractice, logger)
		health.SetServing(entrypoint.ServicePractice, true)
		group.Go(func() error {
			return health.Serve(ctx, healthListener)
		})
	}

	group.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	logger.Info("practice started",
		zap.String("http_addr", cfg.HTTPAddr()),
		zap.Int("problems", reg.Len()),
	)
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve practice: %w", err)
	}
	return nil
}

func pruneLoop(ctx context.Context, store *statesqlite.Store, ttl time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		removed, err := store.PruneBefore(ctx, time.Now().Add(-ttl))
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Warn("prune widget state", zap.Error(err))
		case removed > 0:
			logger.Info("pruned widget state", zap.Int64("rows", removed))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func probe(ctx context.Context, addr string, logger *zap.Logger) error {
	conn, err := platformgrpc.Dial(addr)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := platformgrpc.WaitForHealth(probeCtx, conn, entrypoint.ServicePractice, logger); err != nil {
		return fmt.Errorf("probe %s: %w", addr, err)
	}
	return nil
}
