package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"protein_analyzer_go/config"
	"protein_analyzer_go/web"
)

// Run starts the web UI. Arguments are key=value pairs:
// addr, max_chars, title, log_level.
func Run(args []string) {
	opts := config.ParseArgs(append([]string{"serve"}, args...))
	cfg, err := opts.Server()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Usage: protein_analyzer serve [addr=:8501] [max_chars=1000] [title=...] [log_level=info]")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := web.NewServer(cfg, logger).ListenAndServe(ctx); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
