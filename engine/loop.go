package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/scroll-room/config"
)

// Command mutates the scene on the frame goroutine
type Command func(s *Scene)

// Run ticks the scene every interval and applies commands between frames
// Commands and ticks share one goroutine, so no scene state needs locking
// onFrame receives each snapshot; it must not retain the scene
func (s *Scene) Run(ctx context.Context, interval time.Duration, commands <-chan Command, onFrame func(Frame)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			cmd(s)

		case <-ticker.C:
			s.Tick()
			if onFrame != nil {
				onFrame(s.Snapshot())
			}
		}
	}
}

// ForwardReloads turns watched configs into Reload commands until ctx ends
func ForwardReloads(ctx context.Context, reloads <-chan config.Config, commands chan<- Command) {
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-reloads:
			if !ok {
				return
			}
			select {
			case commands <- func(s *Scene) { s.Reload(cfg) }:
			case <-ctx.Done():
				return
			}
		}
	}
}
