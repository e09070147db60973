// Command room-sandbox runs the scroll room in a terminal
// The screen is the camera viewport: wheel scrolls between viewpoints,
// dragging a figure spins it and clicking a wall ripples it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/audio"
	"github.com/lixenwraith/scroll-room/config"
	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/scene"
)

var (
	configFlag  = flag.String("config", "", "Config file (.toml, .yaml); watched for changes")
	logFlag     = flag.String("log", "", "Log file; logging is off when empty")
	verboseFlag = flag.Bool("v", false, "Debug logging")
	fpsFlag     = flag.Int("fps", 60, "Frames per second")
	muteFlag    = flag.Bool("mute", false, "Start with sound off")
)

func main() {
	var screen tcell.Screen

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROOM-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logger, logFile, err := setupLogging(*logFlag, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	w, h := screen.Size()
	cfg.Room.Aspect = aspectFor(w, h)

	s, err := engine.Build(cfg, engine.Options{Logger: logger})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	// Sound is optional; the room runs silent without a device
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(*muteFlag)

	s.OnMorph = func(a *actor.Actor) { sounds.PlayMorph() }
	s.OnRipple = func(n *scene.Node) { sounds.PlayRipple(panFor(n.Name)) }

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	commands := make(chan engine.Command, 64)

	if *configFlag != "" {
		reloads, err := config.Watch(ctx, *configFlag, logger)
		if err != nil {
			logger.Warn("config watch unavailable", "error", err)
		} else {
			go engine.ForwardReloads(ctx, reloads, commands)
		}
	}

	v := &view{canvas: newCanvas(w, h), muted: *muteFlag}

	go func() {
		in := &input{}
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}

			sw, sh := screen.Size()
			cmd, act := in.translate(ev, sw, sh)
			switch act {
			case actionQuit:
				cancel()
				return
			case actionMute:
				cmd = func(*engine.Scene) {
					v.muted = !v.muted
					sounds.SetMuted(v.muted)
				}
			}
			if cmd == nil {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	interval := time.Second / time.Duration(max(*fpsFlag, 1))
	err = s.Run(ctx, interval, commands, func(f engine.Frame) {
		sw, sh := screen.Size()
		v.canvas.resize(sw, sh)
		v.draw(s, f)
		v.canvas.flush(screen)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("frame loop stopped", "error", err)
	}
	logger.Info("sandbox exit", "frames", s.Driver.Frames())
}
