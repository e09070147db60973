package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/status"
)

const (
	writeWait  = 5 * time.Second
	readWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	sendQueue  = 8
)

// Server exposes /ws for frames and input and /status for telemetry
type Server struct {
	hub      *hub
	commands chan<- engine.Command
	status   *status.Registry
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer forwards decoded input to commands, which the engine loop drains
func NewServer(commands chan<- engine.Command, reg *status.Registry, logger *slog.Logger) *Server {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		hub:      newHub(reg.Ints.Get(status.BridgeClients)),
		commands: commands,
		status:   reg,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // renderers are served from anywhere in dev
		},
	}
}

// Handler routes the bridge endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/status", s.serveStatus)
	return mux
}

// Clients is the number of connected renderers
func (s *Server) Clients() int { return s.hub.len() }

// Broadcast encodes f once and queues it for every client
func (s *Server) Broadcast(f engine.Frame) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	s.hub.broadcast(b)
	return nil
}

func (s *Server) serveStatus(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(rw).Encode(s.status.Snapshot()); err != nil {
		s.logger.Warn("status encode failed", "error", err)
	}
}

func (s *Server) serveWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		s.logger.Debug("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	c := s.hub.join(sendQueue)
	defer s.hub.leave(c)
	s.logger.Info("renderer connected", "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		s.writeLoop(ctx, conn, c)
		cancel()
		_ = conn.Close()
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readWait))
	})
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		cmd, err := Decode(msg)
		if err != nil {
			s.logger.Debug("input rejected", "error", err)
			continue
		}
		select {
		case s.commands <- cmd:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}

	s.logger.Info("renderer disconnected", "remote", r.RemoteAddr, "dropped_frames", c.dropped.Load())
}

func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, c *client) {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case b := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
