package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/auth"
	"github.com/superma0035/zapdine/pkg/config"
	"github.com/superma0035/zapdine/pkg/events"
	"github.com/superma0035/zapdine/pkg/gateway"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/orders"
	"github.com/superma0035/zapdine/pkg/orders/migrations"
	"github.com/superma0035/zapdine/pkg/server"
	"github.com/superma0035/zapdine/pkg/session"
	"github.com/superma0035/zapdine/pkg/storage"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var (
		configPath = flag.String("config", "", "Path to a YAML config file")
		grpcAddr   = flag.String("grpc-addr", "", "gRPC server address (overrides config)")
		httpAddr   = flag.String("http-addr", "", "HTTP gateway address (overrides config)")
		envFile    = flag.String("env-file", ".env", "Dotenv file loaded before the config")
	)
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *envFile, err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *grpcAddr != "" {
		cfg.Server.GRPCAddr = *grpcAddr
	}
	if *httpAddr != "" {
		cfg.Server.HTTPAddr = *httpAddr
	}

	setupLogging(cfg.Log)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("zapdine stopped")
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("store", cfg.Store.Driver).
		Str("grpc", cfg.Server.GRPCAddr).
		Str("http", cfg.Server.HTTPAddr).
		Dur("session", cfg.Session.Duration).
		Msg("starting zapdine")

	store, err := storage.Open(ctx, storage.Options{
		Driver:   cfg.Store.Driver,
		Path:     cfg.Store.Path,
		RedisURL: cfg.Store.RedisURL,
	})
	if err != nil {
		return fmt.Errorf("open lease store: %w", err)
	}
	defer store.Close()

	leases := lease.NewManager(store, cfg.Session.Duration)

	sweeper, err := lease.NewSweeper(leases, store, cfg.Store.SweepInterval, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	publisher, err := newPublisher(ctx, cfg.NATS)
	if err != nil {
		return err
	}
	defer publisher.Close()

	relay := events.NewRelay(publisher, 1024, 5*time.Second)
	unsubscribe := leases.Subscribe(relay.Observe)
	relayCtx, stopRelay := context.WithCancel(context.Background())
	go relay.Run(relayCtx)
	defer func() {
		unsubscribe()
		stopRelay()
		<-relay.Done()
	}()

	menu, orderStore, pool, err := openOrders(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	pages := session.NewRegistry(leases, orderStore, session.Config{
		Duration:      cfg.Session.Duration,
		LowTime:       cfg.Session.LowTimeThreshold,
		CheckInterval: cfg.Session.LockCheckInterval,
		TickInterval:  cfg.Session.Tick,
		LandingPath:   cfg.Session.LandingPath,
	}, session.WithIdleTimeout(cfg.Session.PageIdleTimeout))
	defer pages.CloseAll()

	if err := sweeper.Schedule("page-pruner", cfg.Store.SweepInterval, func() { pages.Prune() }); err != nil {
		return err
	}

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	if !verifier.Enabled() {
		log.Warn().Msg("JWT_SECRET is not set, owner endpoints will reject every request")
	}

	grpcServer, healthServer := server.NewGRPCServer(server.NewServer(leases, pages, menu, orderStore, nil), verifier)
	listener, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPCAddr, err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info().Str("addr", cfg.Server.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(listener); err != nil {
			errCh <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	gwServer := gateway.NewServer(cfg.Server.HTTPAddr, dialTarget(cfg.Server.GRPCAddr), gateway.Options{
		CORSOrigins:   cfg.Server.CORSOrigins,
		PublicBaseURL: cfg.Server.PublicBaseURL,
	})
	go func() {
		log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("HTTP gateway listening")
		if err := gwServer.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	log.Info().Msg("zapdine is ready")

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down gracefully")
	case err = <-errCh:
		log.Error().Err(err).Msg("server failed, shutting down")
	}

	metrics.Up.Set(0)
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := gwServer.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP gateway shutdown")
	}
	grpcServer.GracefulStop()

	log.Info().Msg("shutdown complete")
	return err
}

func newPublisher(ctx context.Context, cfg config.NATSConfig) (events.Publisher, error) {
	if cfg.URL == "" {
		log.Info().Msg("NATS_URL is not set, lease events are only logged")
		return events.NewLogPublisher(log.Logger), nil
	}

	jsCfg := events.DefaultJetStreamConfig()
	jsCfg.URL = cfg.URL
	jsCfg.StreamName = cfg.Stream
	jsCfg.SubjectPrefix = cfg.SubjectPrefix

	pub, err := events.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		return nil, fmt.Errorf("start event publisher: %w", err)
	}
	log.Info().Str("stream", cfg.Stream).Msg("publishing lease events to JetStream")
	return pub, nil
}

type orderBackend interface {
	server.OrderStore
	session.OrderCreator
}

// openOrders returns the Postgres repositories when a database is
// configured and the in-memory store otherwise.
func openOrders(ctx context.Context, cfg config.DatabaseConfig) (server.MenuStore, orderBackend, *pgxpool.Pool, error) {
	if cfg.URL == "" {
		mem := orders.NewMemory(clockwork.NewRealClock())
		if cfg.SeedFile != "" {
			if err := mem.LoadSeed(cfg.SeedFile); err != nil {
				return nil, nil, nil, fmt.Errorf("load seed: %w", err)
			}
		}
		log.Warn().Msg("DATABASE_URL is not set, orders are kept in memory")
		return mem, mem, nil, nil
	}

	pool, err := orders.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Migrate {
		if err := migrations.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
	}
	return orders.NewMenuRepository(pool), orders.NewOrderRepository(pool, clockwork.NewRealClock()), pool, nil
}

// ":9000" listens on every interface but is dialed on localhost
func dialTarget(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}

func issueToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fs.String("user", "", "Owner user id to put in the token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	envFile := fs.String("env-file", ".env", "Dotenv file holding JWT_SECRET")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}
	if err := config.LoadDotEnv(*envFile); err != nil {
		return err
	}

	verifier := auth.NewVerifier(os.Getenv("JWT_SECRET"))
	if !verifier.Enabled() {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	token, err := verifier.Issue(*userID, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
