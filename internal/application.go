package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/cli"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application in the configured mode until it ends or a
// signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := SearchOptions(conf)
	if err != nil {
		return err
	}

	engine, err := search.NewEngine(opts)
	if err != nil {
		return fmt.Errorf("could not create engine: %w", err)
	}

	var positionRepo repository.PositionRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, connErr := storage.NewRedisStorage(ctx, redisAddrString)
		if connErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", connErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		positionRepo = repository.NewPositionRepository(redisStorage.Connection)
	}

	gameManager := usecase.NewGameManager(logger, engine, positionRepo)

	if err = gameManager.Warm(ctx); err != nil {
		log.Error("could not warm engine, starting cold", "error", err)
	}

	defer func() {
		// the signal context may be done already
		if persistErr := gameManager.Persist(context.WithoutCancel(ctx)); persistErr != nil {
			log.Error("could not persist positions", "error", persistErr)
		}
	}()

	log.Info("starting", "mode", conf.Mode, "algorithm", opts.Algorithm, "max_depth", opts.MaxDepth, "parallel", opts.Parallel)

	switch conf.Mode {
	case config.ModeCLI:
		console := cli.New(logger, gameManager, os.Stdin, os.Stdout)
		if err = console.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case config.ModeHTTP:
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		router := rest.NewRouter(rest.NewPingHandler(), rest.NewBestMoveHandler(logger, gameManager))
		if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

// SearchOptions translates the search section of the config.
func SearchOptions(conf *config.Config) (search.Options, error) {
	algorithm, err := search.ParseAlgorithm(conf.Search.Algorithm)
	if err != nil {
		return search.Options{}, fmt.Errorf("invalid search config: %w", err)
	}

	opts := search.DefaultOptions()
	opts.Algorithm = algorithm
	opts.Parallel = conf.Search.Parallel
	if conf.Search.MaxDepth > 0 {
		opts.MaxDepth = conf.Search.MaxDepth
	}

	return opts, nil
}
