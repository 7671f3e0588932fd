package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inonetecx/concierge/internal/browser"
	"github.com/inonetecx/concierge/internal/config"
	"github.com/inonetecx/concierge/internal/dialog"
	"github.com/inonetecx/concierge/internal/knowledge"
	"github.com/inonetecx/concierge/internal/respond"
	"github.com/inonetecx/concierge/internal/session"
	"github.com/inonetecx/concierge/internal/speech"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
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

	sess := session.New()
	gen := respond.New(kb, browser.Launcher{})
	engine := dialog.NewEngine(gen, sess)

	// Output engine: console echo always, spoken output when enabled.
	console := speech.NewConsole(os.Stdout)
	var out speech.Engine = console
	if cfg.Speech.Voice {
		tts, err := speech.NewCommand(cfg.Speech.Command, nil, console)
		if err != nil {
			return fmt.Errorf("voice output requested but unavailable: %w", err)
		}
		out = tts
	}

	queue := speech.NewQueue(out)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker outlives ctx so the farewell still plays after a signal;
	// Close stops it once the backlog drains.
	done := make(chan struct{})
	go func() {
		queue.Run(context.Background())
		close(done)
	}()

	input := &speech.Input{
		Fallback: speech.NewLineReader(os.Stdin, os.Stdout, "you: "),
		Prompts:  queue,
		Timeout:  time.Duration(cfg.Speech.TimeoutSeconds) * time.Second,
		Attempts: cfg.Speech.MaxRetries,
	}

	queue.Deliver(fmt.Sprintf(
		"Hello! I'm your intelligent Inonetecx assistant. Today is %s. I'm here to help you discover how we can transform your business with cutting-edge technology solutions.",
		time.Now().Format("Monday, January 2, 2006")), false)

	controller := dialog.NewController(engine, input, queue)
	slog.Info("chat session started", "session", sess.ID)
	err = controller.Run(ctx)

	queue.Close()
	<-done

	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
