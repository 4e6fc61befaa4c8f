package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	charsheetv1alpha1 "github.com/KirkDiggler/rpg-charsheet/internal/api/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/handlers/charsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/character"
	redisclient "github.com/KirkDiggler/rpg-charsheet/internal/redis"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
)

var (
	grpcPort  int
	storage   string
	redisAddr string
	remoteURL string
	logLevel  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the character sheet gRPC server.

Settings are read from RPG_CHARSHEET_* environment variables. Flags that are
set explicitly take precedence.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&storage, "storage", config.StorageMemory, "Roster storage backend (memory, redis, remote)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for redis storage")
	serverCmd.Flags().StringVar(&remoteURL, "remote-url", "", "Roster endpoint for remote storage, may contain {player_id}")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = grpcPort
	}
	if flags.Changed("storage") {
		cfg.Storage = storage
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("remote-url") {
		cfg.RemoteURL = remoteURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repo, closeRepo, err := newRosterRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	eventBus := events.NewBus()
	subscribeEventLog(eventBus)

	engineAdapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// Initialize services
	characterService, err := character.New(&character.Config{
		RosterRepo: repo,
		Engine:     engineAdapter,
		EventBus:   eventBus,
	})
	if err != nil {
		return fmt.Errorf("failed to create character service: %w", err)
	}

	// Initialize handlers
	characterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create character handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	// Register services
	charsheetv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(charsheetv1alpha1.CharacterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Port,
			"storage", cfg.Storage)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newRosterRepository builds the configured storage backend. The returned
// func releases any connection it opened.
func newRosterRepository(ctx context.Context, cfg *config.Config) (rosterrepo.Repository, func(), error) {
	noop := func() {}

	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		closeClient := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore on shutdown
		}

		if err := client.Ping(ctx).Err(); err != nil {
			closeClient()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		repo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{Client: client})
		if err != nil {
			closeClient()
			return nil, nil, err
		}
		return repo, closeClient, nil

	case config.StorageRemote:
		repo, err := rosterrepo.NewHTTP(&rosterrepo.HTTPConfig{
			URL:        cfg.RemoteURL,
			HTTPClient: &http.Client{Timeout: cfg.RemoteTimeout},
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil

	default:
		return rosterrepo.NewInMemory(), noop, nil
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in handler",
		"panic", fmt.Sprint(p))
	return errors.ToGRPCError(errors.Internal("internal error"))
}
