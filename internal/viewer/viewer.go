// Package viewer is a terminal board viewer for recorded turns. Selecting a
// piece colours its targets friendly or hostile the same way the analyser
// reports highlights.
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/output"
	"github.com/lgbarn/fourplay-go/internal/processing"
)

const helpText = "arrows/hjkl move  enter select  esc clear  [ ] turn  t threats  q quit"

// Model is the bubbletea model of the viewer.
type Model struct {
	turns   []*processing.Turn
	current int
	cursor  chess.Coord

	selected    bool
	selection   chess.Coord
	highlights  map[chess.Coord]engine.Highlight
	seat        chess.Seat
	showThreats bool

	styles styles
}

// New creates a viewer over turns, starting at the last one. seat colours
// the threat map and may be Dead.
func New(turns []*processing.Turn, seat chess.Seat) Model {
	m := Model{
		turns:  turns,
		cursor: chess.Coord{Col: 7, Row: 0},
		seat:   seat,
		styles: defaultStyles(),
	}
	if len(turns) > 0 {
		m.current = len(turns) - 1
	}
	return m
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(turns []*processing.Turn, seat chess.Seat) error {
	_, err := tea.NewProgram(New(turns, seat), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.move(0, 1)
	case "down", "j":
		m.move(0, -1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "enter", " ":
		m.toggleSelection()
	case "esc":
		m.clearSelection()
	case "[":
		m.step(-1)
	case "]":
		m.step(1)
	case "t":
		m.showThreats = !m.showThreats
	}
	return m, nil
}

func (m *Model) board() *chess.Board {
	if len(m.turns) == 0 {
		return nil
	}
	return m.turns[m.current].Board
}

// move shifts the cursor, refusing to enter a corner block or leave the grid.
func (m *Model) move(dx, dy int) {
	next := chess.Coord{Col: m.cursor.Col + dx, Row: m.cursor.Row + dy}
	if next.Accessible() {
		m.cursor = next
	}
}

func (m *Model) toggleSelection() {
	if m.selected && m.selection == m.cursor {
		m.clearSelection()
		return
	}
	m.selected = true
	m.selection = m.cursor
	m.refresh()
}

func (m *Model) clearSelection() {
	m.selected = false
	m.highlights = nil
}

// step moves to another turn, keeping the selection while it still holds a piece.
func (m *Model) step(delta int) {
	next := m.current + delta
	if next < 0 || next >= len(m.turns) {
		return
	}
	m.current = next
	m.refresh()
}

// refresh recomputes the highlights of the selected square.
func (m *Model) refresh() {
	if !m.selected {
		return
	}
	board := m.board()
	if board == nil {
		m.clearSelection()
		return
	}
	sq := board.At(m.selection)
	if sq == nil || sq.Piece == nil {
		m.clearSelection()
		return
	}
	m.highlights = make(map[chess.Coord]engine.Highlight)
	for _, h := range engine.Highlights(sq) {
		m.highlights[h.Square.Coord] = h
	}
}

func (m Model) View() string {
	board := m.board()
	if board == nil {
		return "No turns recorded.\n\n" + m.styles.help.Render("q quit") + "\n"
	}
	turn := m.turns[m.current]

	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("Turn %d of %d  %s", m.current+1, len(m.turns), turn.Header())))
	b.WriteString("\n\n")

	for row := chess.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%2d ", row+1)
		for col := 0; col < chess.BoardSize; col++ {
			b.WriteString(m.cell(board.Squares[row][col]))
		}
		b.WriteString("\n")
	}
	b.WriteString("   ")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&b, " %c ", chess.FileBase+col)
	}
	b.WriteString("\n\n")

	b.WriteString(m.status(board))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) cell(sq *chess.Square) string {
	if !sq.Accessible() {
		return m.styles.corner.Render("   ")
	}

	text, style := " . ", m.styles.empty
	if p := sq.Piece; p != nil {
		text, style = " "+p.Code, m.styles.seats[p.Seat]
	}
	text = fmt.Sprintf("%-3s", text)

	if h, ok := m.highlights[sq.Coord]; ok {
		style = m.verdict(style, h.Friendly())
	} else if m.showThreats && m.seat.Playing() && len(sq.Attackers) > 0 {
		style = m.verdict(style, engine.ThreatAt(sq, m.seat).Friendly())
	}
	if m.selected && sq.Coord == m.selection {
		style = style.Inherit(m.styles.selected)
	}
	if sq.Coord == m.cursor {
		style = style.Inherit(m.styles.cursor)
	}
	return style.Render(text)
}

func (m Model) verdict(style lipgloss.Style, friendly bool) lipgloss.Style {
	if friendly {
		return style.Inherit(m.styles.friendly)
	}
	return style.Inherit(m.styles.hostile)
}

// status describes the cursor square and, when selected, its highlights.
func (m Model) status(board *chess.Board) string {
	sq := board.At(m.cursor)
	line := sq.Code()
	if sq.Piece != nil {
		line += " " + sq.Piece.String()
	}
	if m.showThreats && m.seat.Playing() {
		th := engine.ThreatAt(sq, m.seat)
		line += fmt.Sprintf("  threats for %s: %d friends, %d enemies", m.seat, len(th.Friends), len(th.Enemies))
		if engine.Covered(sq, m.seat) {
			line += ", covered"
		}
		if sq.HasPiece() && engine.Enclosed(board, sq) {
			line += ", enclosed"
		}
	}
	line += "\n"

	if !m.selected {
		return line
	}
	var b strings.Builder
	selected := board.At(m.selection)
	output.WriteHighlights(&b, selected.Code(), engine.Highlights(selected)) //nolint:errcheck
	return line + b.String()
}
