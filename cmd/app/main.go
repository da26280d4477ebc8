package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speedial/cmd"
	httpin "speedial/internal/adapters/in/http"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "speedial",
		Short:         "SpeeDial Express dispatch simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	cmd.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newServeCommand(&envFile), newSimulateCommand(&envFile))
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the simulation jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(*envFile, c.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, newLogger(cfg, os.Stdout))
		},
	}
}

func serve(ctx context.Context, cfg cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(cfg.EchoLogLevel())

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := e.Start(httpin.Address(cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newSimulateCommand(envFile *string) *cobra.Command {
	var ticks int

	c := &cobra.Command{
		Use:   "simulate",
		Short: "Run movement ticks over the seed data and print the fleet",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(*envFile, c.Flags())
			if err != nil {
				return err
			}
			return simulate(c.Context(), cfg, ticks, newLogger(cfg, c.ErrOrStderr()), c.OutOrStdout())
		},
	}
	c.Flags().IntVar(&ticks, "ticks", 10, "number of movement ticks to run")
	return c
}

func simulate(ctx context.Context, cfg cmd.Config, ticks int, logger *slog.Logger, out io.Writer) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", ticks)
	}

	app, err := cmd.NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	move := app.CreateMoveCouriersCommandHandler()
	for range ticks {
		if err = move.Handle(ctx, commands.NewMoveCouriersCommand()); err != nil {
			return err
		}
	}

	query, err := queries.NewGetCouriersQuery("", "")
	if err != nil {
		return err
	}
	couriers, err := app.CreateGetCouriersQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, c := range couriers {
		fmt.Fprintf(out, "%-8s %-16s %-8s %s\n", c.ID, c.Name, c.Status, c.Location)
	}
	return nil
}

func newLogger(cfg cmd.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
