// Command room-server runs the scroll room headless and streams frames to
// browser renderers over WebSocket
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/scroll-room/bridge"
	"github.com/lixenwraith/scroll-room/config"
	"github.com/lixenwraith/scroll-room/engine"
)

var (
	addrFlag    = flag.String("addr", ":8080", "Listen address")
	configFlag  = flag.String("config", "", "Config file (.toml, .yaml); watched for changes")
	fpsFlag     = flag.Int("fps", 60, "Frames per second")
	verboseFlag = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}

	s, err := engine.Build(cfg, engine.Options{Logger: logger})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	commands := make(chan engine.Command, 256)
	if *configFlag != "" {
		reloads, err := config.Watch(ctx, *configFlag, logger)
		if err != nil {
			logger.Warn("config watch unavailable", "error", err)
		} else {
			go engine.ForwardReloads(ctx, reloads, commands)
		}
	}

	b := bridge.NewServer(commands, s.Status, logger)
	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           b.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addrFlag)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			cancel()
		}
	}()

	interval := time.Second / time.Duration(max(*fpsFlag, 1))
	err = s.Run(ctx, interval, commands, func(f engine.Frame) {
		if b.Clients() == 0 {
			return
		}
		if err := b.Broadcast(f); err != nil {
			logger.Warn("broadcast failed", "error", err)
		}
	})

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = httpServer.Shutdown(shutdownCtx)

	select {
	case err := <-errc:
		return err
	default:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server exit", "frames", s.Driver.Frames())
	return nil
}
