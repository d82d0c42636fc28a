package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/internal/api"
	"github.com/lufutu/scrumsan-sub003/internal/api/handler/v1handler"
	"github.com/lufutu/scrumsan-sub003/internal/config"
	"github.com/lufutu/scrumsan-sub003/internal/email"
	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/internal/realtime"
	"github.com/lufutu/scrumsan-sub003/internal/worker"
	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisPublisher, err := realtime.NewRedisPublisher(ctx, realtime.Config{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
			}
			publisher := realtime.NewDebouncer(ctx, redisPublisher, cfg.Realtime.DebounceWindow)

			mailer := email.New(email.Config{
				Host:     cfg.Email.Host,
				Port:     cfg.Email.Port,
				Username: cfg.Email.Username,
				Password: cfg.Email.Password,
				From:     cfg.Email.From,
				FromName: cfg.Email.FromName,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, strg, mailer, cfg.Email.BaseURL)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Workspace: workspace.New(strg, publisher, workspace.NewOptions(cfg)),
					Planning:  planning.New(strg, publisher),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			if err := publisher.Close(); err != nil {
				logger.Error(ctx, "could not close realtime publisher", zap.Error(err))
			}

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
