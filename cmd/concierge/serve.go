package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/inonetecx/concierge/internal/api"
	"github.com/inonetecx/concierge/internal/config"
	"github.com/inonetecx/concierge/internal/dialog"
	"github.com/inonetecx/concierge/internal/knowledge"
	"github.com/inonetecx/concierge/internal/respond"
	"github.com/inonetecx/concierge/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and MCP servers (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCloser, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	kb, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	if err := kb.Validate(); err != nil {
		return fmt.Errorf("invalid knowledge base: %w", err)
	}

	if cfg.Server.APIToken == "" {
		slog.Warn("no API token configured, chat endpoints are unauthenticated")
	}

	// No browser on a server; website requests get the textual fallback.
	sess := session.New()
	engine := dialog.NewEngine(respond.New(kb, nil), sess)
	slog.Info("dialogue engine ready", "session", sess.ID)

	handler := api.NewHandler(api.Deps{
		Engine:  engine,
		Token:   cfg.Server.APIToken,
		Version: version,
	})
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: handler}

	mcpSrv := api.NewMCPServer(api.MCPDeps{Engine: engine, KB: kb, Version: version})
	sseSrv := server.NewSSEServer(mcpSrv)
	mcpAddr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.MCPPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("mcp server listening", "addr", mcpAddr, "transport", "sse")
		if err := sseSrv.Start(mcpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http shutdown", "error", err)
		}
		if err := sseSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("mcp shutdown", "error", err)
		}
		return nil
	})

	return g.Wait()
}
