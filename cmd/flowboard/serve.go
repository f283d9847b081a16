package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"flowboard/internal/config"
	"flowboard/internal/handler"
	"flowboard/internal/hub"
	"flowboard/internal/service"
	"flowboard/internal/store"
	"flowboard/internal/watcher"
)

//go:embed web/*
var webFS embed.FS

func newServeCommand(opts *globalOptions) *cobra.Command {
	var (
		addr     string
		seedPath string
		watch    bool
		strict   bool
		cascade  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram page and API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(opts)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("seed") {
				cfg.Seed.Path = seedPath
			}
			if flags.Changed("watch") {
				cfg.Seed.Watch = watch
			}
			if flags.Changed("strict") {
				cfg.Flow.StrictEndpoints = strict
			}
			if flags.Changed("cascade") {
				cfg.Flow.CascadeRemove = cascade
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), opts, cfg)
			if err != nil {
				return err
			}
			if path != "" {
				logger.Info("Loaded config", "path", path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "HTTP listen address")
	cmd.Flags().StringVarP(&seedPath, "seed", "s", "", "Seed file (.json or .yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reseed when the seed file changes")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject connects to unknown nodes")
	cmd.Flags().BoolVar(&cascade, "cascade", false, "Drop edges attached to removed nodes")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("Configuration", "summary", cfg.Summary())

	seed := seedFunc(cfg.Seed.Path)
	initial, err := seed()
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	st, err := store.New(initial,
		store.WithStrictEndpoints(cfg.Flow.StrictEndpoints),
		store.WithCascadeRemove(cfg.Flow.CascadeRemove),
	)
	if err != nil {
		return err
	}

	eventBus := service.NewEventBus()
	flowSvc := service.NewFlowService(st, eventBus, seed)
	flowSvc.SetTitle(cfg.Flow.Title)

	// Forward bus events to SSE clients
	sseHub := hub.New(logger)
	go sseHub.Run(ctx)

	events := make(chan service.Event, 100)
	eventBus.Subscribe(events)
	defer eventBus.Unsubscribe(events)
	go func() {
		for {
			select {
			case ev := <-events:
				sseHub.Broadcast(ev)
			case <-ctx.Done():
				return
			}
		}
	}()

	if cfg.Seed.Watch {
		w := watcher.New(cfg.Seed.Path, func() {
			if _, err := flowSvc.Reseed(ctx); err != nil {
				logger.Error("Failed to reseed", "path", cfg.Seed.Path, "err", err)
			}
		}).WithLogger(logger)
		go func() {
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Seed watcher stopped", "err", err)
			}
		}()
	}

	flowHandler := handler.NewFlowHandler(flowSvc, handler.Settings{
		Title:           cfg.Flow.Title,
		MountID:         cfg.Flow.MountID,
		DeleteKeyCode:   cfg.Flow.DeleteKeyCode,
		DeleteKey:       cfg.Flow.DeleteKey(),
		StrictEndpoints: cfg.Flow.StrictEndpoints,
	}, logger)
	sessionHandler := handler.NewSessionHandler(flowSvc, eventBus, logger)

	// Setup routes
	mux := http.NewServeMux()
	flowHandler.Register(mux)
	mux.Handle("GET /ws", sessionHandler)
	mux.Handle("GET /events", sseHub)

	// Static files from embedded filesystem
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		return fmt.Errorf("embedded web content: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(webContent)))

	// Apply middleware
	finalHandler := handler.Chain(mux,
		handler.Recover(logger),
		handler.CORS,
		handler.Logger(logger),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      finalHandler,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  cfg.Server.IdleTimeout.Duration(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "err", err)
	}

	logger.Info("Server stopped", "uptime", time.Since(start))
	return nil
}
