// Package feed serves the analyser over a WebSocket: clients push board
// snapshots and receive turn reports and highlights back.
package feed

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/errors"
	"github.com/lgbarn/fourplay-go/internal/hashing"
	"github.com/lgbarn/fourplay-go/internal/output"
	"github.com/lgbarn/fourplay-go/internal/processing"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
)

// Request types.
const (
	TypeSnapshot = "snapshot" // Text holds a text snapshot
	TypeHTML     = "html"     // Text holds a saved page
	TypeSelect   = "select"   // Square is selected on the last turn
	TypeReset    = "reset"    // Start a new game
)

// Reply types.
const (
	TypeTurn       = "turn"
	TypeDuplicate  = "duplicate"
	TypeHighlights = "highlights"
	TypeError      = "error"
)

// Request is one client message.
type Request struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Square string `json:"square,omitempty"`
}

// Reply is one server message.
type Reply struct {
	Type       string                 `json:"type"`
	Seat       string                 `json:"seat,omitempty"`
	Turn       *output.JSONTurn       `json:"turn,omitempty"`
	Square     string                 `json:"square,omitempty"`
	Highlights []output.JSONHighlight `json:"highlights,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

func errorReply(err error) Reply {
	return Reply{Type: TypeError, Error: err.Error()}
}

// Session is the state of one connected client: a game in progress.
// It is not safe for concurrent use.
type Session struct {
	cfg      config.Config
	recorder *processing.Recorder
	seen     *hashing.ThreadSafeDuplicateDetector
	received int
}

// NewSession starts a game. seen is shared between sessions and may be nil.
func NewSession(cfg *config.Config, seen *hashing.ThreadSafeDuplicateDetector) *Session {
	return &Session{
		cfg:      *cfg,
		recorder: processing.NewRecorder(cfg.Duplicate.Suppress),
		seen:     seen,
	}
}

// Seat returns the local seat, Dead until known.
func (s *Session) Seat() chess.Seat {
	return s.cfg.Seat
}

// Handle processes one request and returns the reply to send.
func (s *Session) Handle(req Request) Reply {
	switch req.Type {
	case TypeSnapshot:
		snap, err := snapshot.NewReader(strings.NewReader(req.Text), "feed").Next()
		if err != nil {
			return errorReply(err)
		}
		if snap == nil {
			return errorReply(fmt.Errorf("empty snapshot: %w", errors.ErrIncompleteSnapshot))
		}
		return s.record(snap)

	case TypeHTML:
		page, err := snapshot.ReadHTML(strings.NewReader(req.Text), "feed")
		if err != nil {
			return errorReply(err)
		}
		if page.Seat.Playing() && !s.cfg.Seat.Playing() {
			s.cfg.Seat = page.Seat
		}
		return s.record(page.Snapshot)

	case TypeSelect:
		last := s.recorder.Last()
		if last == nil {
			return errorReply(fmt.Errorf("select %s before any turn: %w", req.Square, errors.ErrUnsupportedOperation))
		}
		hs, err := engine.HighlightsAt(last.Board, req.Square)
		if err != nil {
			return errorReply(err)
		}
		return Reply{Type: TypeHighlights, Square: req.Square, Highlights: output.HighlightsToJSON(hs)}

	case TypeReset:
		s.recorder = processing.NewRecorder(s.cfg.Duplicate.Suppress)
		s.received = 0
		return Reply{Type: TypeReset}
	}
	return errorReply(fmt.Errorf("request type %q: %w", req.Type, errors.ErrUnsupportedOperation))
}

func (s *Session) record(snap *snapshot.Snapshot) Reply {
	s.received++
	snap.Index = s.received

	a, err := processing.AnalyzeSnapshot(snap, s.cfg.SkipBad)
	if err != nil {
		return errorReply(err)
	}
	if s.seen != nil {
		s.seen.CheckAndAdd(a.Board)
	}

	turn, err := s.recorder.Record(a)
	if errors.Is(err, errors.ErrDuplicateSnapshot) {
		return Reply{Type: TypeDuplicate}
	}
	if err != nil {
		return errorReply(err)
	}
	return Reply{Type: TypeTurn, Seat: seatName(s.cfg.Seat), Turn: output.TurnToJSON(turn, &s.cfg)}
}

func seatName(seat chess.Seat) string {
	if !seat.Playing() {
		return ""
	}
	return seat.String()
}
