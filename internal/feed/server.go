package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/errors"
	"github.com/lgbarn/fourplay-go/internal/hashing"
)

const (
	sendBuffer      = 16
	shutdownTimeout = 5 * time.Second
)

// Stats summarises the server since it started.
type Stats struct {
	Connections int64 // Currently open
	Positions   int   // Distinct placements across all sessions
	Repeats     int   // Placements seen again, in any session
}

// Server accepts WebSocket connections and runs one Session per connection.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	seen     *hashing.ThreadSafeDuplicateDetector
	active   atomic.Int64
}

// NewServer creates a server. Position tracking is shared by all sessions
// and bounded by the duplicate capacity setting.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		seen:     hashing.NewThreadSafeDuplicateDetector(true, cfg.Duplicate.MaxCapacity),
	}
}

// Stats returns current counters.
func (s *Server) Stats() Stats {
	return Stats{
		Connections: s.active.Load(),
		Positions:   s.seen.UniqueCount(),
		Repeats:     s.seen.DuplicateCount(),
	}
}

// Handler returns the HTTP routes: the feed on /ws and a health check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(s.Stats()) //nolint:errcheck
	})
	return mux
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Feed.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("feed shutdown", "error", err)
		}
	}()

	s.logger.Info("feed listening", "addr", s.cfg.Feed.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ServeHTTP upgrades the connection and serves one session on it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	s.active.Add(1)
	defer s.active.Add(-1)

	log := s.logger.With("remote", r.RemoteAddr)
	log.Info("session opened")

	send := make(chan Reply, sendBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.writeLoop(conn, send); err != nil {
			log.Debug("write loop ended", "error", err)
			conn.Close()
		}
	}()

	s.readLoop(conn, NewSession(s.cfg, s.seen), send, done, log)
	close(send)
	<-done
	log.Info("session closed")
}

// readLoop decodes requests until the peer goes away. Malformed messages
// get an error reply and the session carries on.
func (s *Server) readLoop(conn *websocket.Conn, session *Session, send chan<- Reply, done <-chan struct{}, log *slog.Logger) {
	pongWait := 2 * s.cfg.Feed.PingInterval
	conn.SetReadLimit(s.cfg.Feed.ReadLimit)
	conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("session read failed", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			reply := errorReply(errors.Wrap(errors.ErrParseFailure, err.Error()))
			select {
			case send <- reply:
				continue
			case <-done:
				return
			}
		}

		reply := session.Handle(req)
		switch reply.Type {
		case TypeTurn:
			log.Debug("turn recorded", "index", reply.Turn.Index, "hash", reply.Turn.Hash,
				"additions", len(reply.Turn.Additions), "removals", len(reply.Turn.Removals))
		case TypeError:
			log.Info("request rejected", "type", req.Type, "error", reply.Error)
		}
		select {
		case send <- reply:
		case <-done:
			return
		}
	}
}

// writeLoop sends replies and keepalive pings until send is closed.
func (s *Server) writeLoop(conn *websocket.Conn, send <-chan Reply) error {
	ticker := time.NewTicker(s.cfg.Feed.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case reply, ok := <-send:
			deadline := time.Now().Add(s.cfg.Feed.WriteTimeout)
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				return conn.WriteControl(websocket.CloseMessage, msg, deadline)
			}
			conn.SetWriteDeadline(deadline) //nolint:errcheck
			if err := conn.WriteJSON(reply); err != nil {
				return err
			}
		case <-ticker.C:
			deadline := time.Now().Add(s.cfg.Feed.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return err
			}
		}
	}
}
