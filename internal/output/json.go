package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/processing"
)

// JSONTurn represents a turn in JSON format.
type JSONTurn struct {
	Index     int          `json:"index"`
	Source    string       `json:"source,omitempty"`
	Hash      string       `json:"hash"`
	Repeated  bool         `json:"repeated,omitempty"`
	Additions []string     `json:"additions"`
	Removals  []string     `json:"removals"`
	Captures  []string     `json:"captures"`
	Deaths    []string     `json:"deaths"`
	Changes   []JSONChange `json:"changes,omitempty"`
	Pieces    []JSONPiece  `json:"pieces,omitempty"`
	Threats   []JSONThreat `json:"threats,omitempty"`
}

// JSONChange represents one stamped diff board entry.
type JSONChange struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
	Change string `json:"change"`
}

// JSONPiece represents a piece and its candidates.
type JSONPiece struct {
	Code    string   `json:"code"`
	Square  string   `json:"square"`
	Seat    string   `json:"seat"`
	Role    string   `json:"role"`
	Moved   bool     `json:"moved"`
	Moves   []string `json:"moves,omitempty"`
	Attacks []string `json:"attacks,omitempty"`
}

// JSONThreat represents one attacked square from the local seat's view.
type JSONThreat struct {
	Square   string `json:"square"`
	Friends  int    `json:"friends"`
	Enemies  int    `json:"enemies"`
	Friendly bool   `json:"friendly"`
	Covered  bool   `json:"covered"`
	Enclosed bool   `json:"enclosed,omitempty"` // Occupied and boxed in diagonally
}

// JSONHighlight represents one highlighted square for a selection.
type JSONHighlight struct {
	Square   string   `json:"square"`
	Allies   []string `json:"allies,omitempty"`
	Enemies  []string `json:"enemies,omitempty"`
	Friendly bool     `json:"friendly"`
}

// JSONOutput holds multiple turns for array output.
type JSONOutput struct {
	Turns []*JSONTurn `json:"turns"`
}

// TurnToJSON converts a turn to JSON format. Pieces are always included;
// threats only when enabled and a local seat is known.
func TurnToJSON(turn *processing.Turn, cfg *config.Config) *JSONTurn {
	d := turn.Diff
	jt := &JSONTurn{
		Index:     turn.Index,
		Source:    turn.Source,
		Hash:      fmt.Sprintf("%016x", turn.Hash),
		Repeated:  turn.Repeated,
		Additions: coordCodes(d.Additions),
		Removals:  coordCodes(d.Removals),
		Captures:  coordCodes(d.Captures),
		Deaths:    coordCodes(d.Deaths),
	}

	for _, e := range d.Changes() {
		jt.Changes = append(jt.Changes, JSONChange{Square: e.Code(), Piece: e.Piece, Change: e.Change.String()})
	}
	for _, p := range turn.Board.Pieces() {
		jt.Pieces = append(jt.Pieces, pieceToJSON(p))
	}
	if cfg.Output.ShowThreats && cfg.Seat.Playing() {
		for _, th := range engine.Threats(turn.Board, cfg.Seat) {
			if len(th.Square.Attackers) == 0 {
				continue
			}
			jt.Threats = append(jt.Threats, JSONThreat{
				Square:   th.Square.Code(),
				Friends:  len(th.Friends),
				Enemies:  len(th.Enemies),
				Friendly: th.Friendly(),
				Covered:  engine.Covered(th.Square, cfg.Seat),
				Enclosed: th.Square.HasPiece() && engine.Enclosed(turn.Board, th.Square),
			})
		}
	}
	return jt
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	return JSONPiece{
		Code:    p.Code,
		Square:  p.Square.Code(),
		Seat:    p.Seat.String(),
		Role:    p.Role.String(),
		Moved:   p.Moved(),
		Moves:   squareCodes(p.Moves),
		Attacks: squareCodes(p.Attacks),
	}
}

// HighlightsToJSON converts highlights to JSON format.
func HighlightsToJSON(hs []engine.Highlight) []JSONHighlight {
	out := make([]JSONHighlight, 0, len(hs))
	for _, h := range hs {
		out = append(out, JSONHighlight{
			Square:   h.Square.Code(),
			Allies:   placements(h.Allies),
			Enemies:  placements(h.Enemies),
			Friendly: h.Friendly(),
		})
	}
	return out
}

// OutputTurnJSON outputs a single turn in JSON format.
func OutputTurnJSON(turn *processing.Turn, cfg *config.Config) {
	enc := json.NewEncoder(cfg.OutputFile)
	enc.SetIndent("", "  ")
	enc.Encode(TurnToJSON(turn, cfg)) //nolint:gosec // G104: error handled via writer
}

// OutputTurnsJSON outputs multiple turns as a JSON array.
func OutputTurnsJSON(turns []*processing.Turn, cfg *config.Config, w io.Writer) error {
	out := &JSONOutput{Turns: make([]*JSONTurn, len(turns))}
	for i, turn := range turns {
		out.Turns[i] = TurnToJSON(turn, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func coordCodes(cs []chess.Coord) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Code())
	}
	return out
}

func squareCodes(squares []*chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.Code()
	}
	return out
}

func placements(pieces []*chess.Piece) []string {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Code + "@" + p.Square.Code()
	}
	return out
}
