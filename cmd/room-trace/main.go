// Command room-trace steps the scroll room at a fixed rate and records every
// frame, or summarizes a recorded trace with -inspect
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/scroll-room/config"
	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/trace"
)

var (
	outFlag     = flag.String("out", "room"+trace.Ext, "Trace file to write")
	inspectFlag = flag.String("inspect", "", "Summarize this trace instead of recording")
	configFlag  = flag.String("config", "", "Config file (.toml, .yaml)")
	framesFlag  = flag.Int("frames", 3600, "Frames to record")
	dtFlag      = flag.Duration("dt", time.Second/60, "Fixed frame step")
	tourFlag    = flag.Bool("tour", false, "Scroll through every viewpoint over the run")
	verboseFlag = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if *inspectFlag != "" {
		err = inspect(*inspectFlag, os.Stdout)
	} else {
		err = record(logger)
	}
	if err != nil {
		logger.Error("room-trace failed", "error", err)
		os.Exit(1)
	}
}

func record(logger *slog.Logger) error {
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

	w, err := trace.Create(*outFlag)
	if err != nil {
		return err
	}

	n, err := recordFrames(s, w, *framesFlag, *dtFlag, *tourFlag)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("trace written", "path", *outFlag, "frames", n, "scene_seconds", s.Driver.Elapsed().Seconds())
	return nil
}

// recordFrames steps s n times by dt, writing each frame
// A tour spreads scroll progress evenly so the camera reaches the last viewpoint
func recordFrames(s *engine.Scene, w *trace.Writer, n int, dt time.Duration, tour bool) (int, error) {
	step := 0.0
	if tour && n > 0 {
		step = float64(s.Camera.Last()) / float64(n)
	}
	for i := 0; i < n; i++ {
		if step > 0 {
			s.Camera.SetProgress(s.Camera.Progress() + step)
		}
		s.Step(dt)
		if err := w.Write(s.Snapshot()); err != nil {
			return i, err
		}
	}
	return n, nil
}

func inspect(path string, out io.Writer) error {
	r, err := trace.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	sum, err := trace.Summarize(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "frames %d over %.2fs, ripple frames %d\n", sum.Frames, sum.Duration, sum.Ripples)
	views := make([]string, 0, len(sum.Views))
	for v := range sum.Views {
		views = append(views, v)
	}
	sort.Strings(views)
	for _, v := range views {
		fmt.Fprintf(out, "view %-6s %d\n", v, sum.Views[v])
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTOR\tDISTANCE\tX RANGE\tZ RANGE\tMORPHED")
	for _, a := range sum.Actors {
		morphed := "-"
		if a.MorphedAt >= 0 {
			morphed = fmt.Sprintf("%.2fs", a.MorphedAt)
		}
		fmt.Fprintf(tw, "%s\t%.2f\t[%.2f, %.2f]\t[%.2f, %.2f]\t%s\n",
			a.Name, a.Distance, a.MinX, a.MaxX, a.MinZ, a.MaxZ, morphed)
	}
	return tw.Flush()
}
