package snapshot

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Page selectors used by the host site.
const (
	boardSelector    = "[class^='board-']"
	squareSelector   = "[data-square]"
	pieceSelector    = "[data-piece]"
	usernameSelector = "#four-player-username"
	avatarSelector   = "a.player-avatar"
)

// seatClasses maps the avatar container class to its seat.
var seatClasses = map[string]chess.Seat{
	"red":    chess.Red,
	"blue":   chess.Blue,
	"yellow": chess.Yellow,
	"green":  chess.Green,
}

// Page is one saved game page.
type Page struct {
	Snapshot *Snapshot
	Username string     // Logged-in player, empty if absent
	Seat     chess.Seat // Dead when the player is not seated
}

// ReadHTML parses a saved page. The snapshot is taken from the first board
// container, or the whole document when there is none, and is not checked
// for completeness.
func ReadHTML(r io.Reader, source string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &errors.ParseError{Err: errors.Wrap(errors.ErrParseFailure, err.Error()), File: source}
	}

	page := &Page{
		Snapshot: FromDocument(doc, source),
		Username: Username(doc),
	}
	if page.Username != "" {
		if seat, ok := SeatOf(doc, page.Username); ok {
			page.Seat = seat
		}
	}
	return page, nil
}

// FromDocument collects every cell carrying a data-square attribute. The
// piece code comes from the first descendant with a data-piece attribute.
func FromDocument(doc *goquery.Document, source string) *Snapshot {
	root := doc.Find(boardSelector).First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	s := &Snapshot{Index: 1, Source: source}
	root.Find(squareSelector).Each(func(_ int, sel *goquery.Selection) {
		square, _ := sel.Attr("data-square")
		cell := Cell{Square: strings.TrimSpace(square)}
		if piece, ok := sel.Find(pieceSelector).First().Attr("data-piece"); ok {
			cell.Piece = strings.TrimSpace(piece)
		}
		s.Cells = append(s.Cells, cell)
	})
	return s
}

// Username returns the logged-in player's name shown on the page.
func Username(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(usernameSelector).First().Text())
}

// SeatOf finds the avatar link pointing at username and maps the colour
// class of its parent to a seat.
func SeatOf(doc *goquery.Document, username string) (chess.Seat, bool) {
	if username == "" {
		return chess.Dead, false
	}

	seat, found := chess.Dead, false
	doc.Find(avatarSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || !strings.Contains(href, username) {
			return true
		}
		class, _ := sel.Parent().Attr("class")
		for _, name := range strings.Fields(class) {
			if s, ok := seatClasses[name]; ok {
				seat, found = s, true
				return false
			}
		}
		return true
	})
	return seat, found
}
