package cli

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

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/titanic-api/internal/config"
	"github.com/aanand-mishra/titanic-api/internal/dataset"
	"github.com/aanand-mishra/titanic-api/internal/http/handlers/passenger"
	"github.com/aanand-mishra/titanic-api/internal/logger"
	"github.com/aanand-mishra/titanic-api/internal/queries"
	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/storage/sqlite"
	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/validation"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), *configPath)
		},
	}
}

// runServe is the server lifecycle:
//  1. load config and set up the logger
//  2. open storage, seeding it from the CSV when configured and empty
//  3. register routes and start listening in a goroutine
//  4. block until SIGINT/SIGTERM, then shut down gracefully
func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Env, os.Stdout)
	slog.SetDefault(log)
	log.Info("starting titanic-api", slog.String("env", cfg.Env))

	store, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer store.Close()
	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	if cfg.SeedPath != "" {
		n, err := seedIfEmpty(ctx, store, cfg.SeedPath)
		if err != nil {
			log.Error("failed to seed storage", slog.String("error", err.Error()))
			return err
		}
		if n > 0 {
			log.Info("storage seeded", slog.String("seed", cfg.SeedPath), slog.Int64("passengers", n))
		}
	}

	router := http.NewServeMux()
	passenger.Register(router, buildHandlers(store, log))

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-sigCtx.Done():
	}

	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// buildHandlers constructs every query handler over store, each wrapped
// with query logging.
func buildHandlers(store storage.Storage, log *slog.Logger) passenger.Handlers {
	return passenger.Handlers{
		List: queries.WithLogging[queries.GetPassengersQuery, []types.Passenger]("GetPassengers", log,
			queries.NewGetPassengersHandler(store, validation.New[queries.GetPassengersQuery](), log)),
		ByID: queries.WithLogging[queries.GetPassengerByIDQuery, types.PassengerDto]("GetPassengerByID", log,
			queries.NewGetPassengerByIDHandler(store, validation.New[queries.GetPassengerByIDQuery](), log)),
		ByAge: queries.WithLogging[queries.GetPassengersByAgeQuery, []types.Passenger]("GetPassengersByAge", log,
			queries.NewGetPassengersByAgeHandler(store, log)),
		ByClass: queries.WithLogging[queries.GetByClassQuery, types.FinalClassBreakdown]("GetByClass", log,
			queries.NewGetByClassHandler(store)),
		Survivals: queries.WithLogging[queries.GetSurvivalsQuery, types.SurvivalsResult]("GetSurvivals", log,
			queries.NewGetSurvivalsHandler(store)),
	}
}

// seedIfEmpty imports the CSV at path when store holds no passengers.
// It returns how many passengers were written, 0 if the store was
// already populated.
func seedIfEmpty(ctx context.Context, store storage.Storage, path string) (int64, error) {
	n, err := store.CountPassengers(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	passengers, err := dataset.LoadFile(ctx, path)
	if err != nil {
		return 0, err
	}
	written, err := store.ImportPassengers(ctx, passengers)
	if err != nil {
		return 0, fmt.Errorf("seed %s: %w", path, err)
	}
	return written, nil
}
