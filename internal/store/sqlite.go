package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/fourplay-go/internal/processing"
)

// DB wraps the SQLite turn log with thread-safe operations.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Open creates a database connection and initializes the schema.
func Open(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1) // SQLite only supports one writer
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// initSchema creates the required tables if they don't exist.
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		game TEXT,
		turn INTEGER,
		hash TEXT,
		pieces INTEGER,
		additions INTEGER,
		removals INTEGER,
		captures INTEGER,
		deaths INTEGER,
		moves INTEGER,
		attacks INTEGER,
		repeated BOOLEAN DEFAULT 0,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (game, turn)
	);

	CREATE TABLE IF NOT EXISTS changes (
		game TEXT,
		turn INTEGER,
		square TEXT,
		piece TEXT,
		change TEXT,
		PRIMARY KEY (game, turn, square),
		FOREIGN KEY (game, turn) REFERENCES turns(game, turn)
	);

	CREATE INDEX IF NOT EXISTS idx_changes_piece ON changes(piece);
	`

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertTurn stores a turn summary and its changes in one transaction.
// Re-inserting a turn replaces it.
func (db *DB) InsertTurn(game string, turn *processing.Turn) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	s := SummaryRow(game, turn)
	_, err = tx.Exec(`INSERT OR REPLACE INTO turns
		(game, turn, hash, pieces, additions, removals, captures, deaths, moves, attacks, repeated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Game, s.Turn, s.Hash, s.Pieces, s.Additions, s.Removals, s.Captures, s.Deaths,
		s.Moves, s.Attacks, s.Repeated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert turn %d: %w", turn.Index, err)
	}

	if _, err := tx.Exec("DELETE FROM changes WHERE game = ? AND turn = ?", game, turn.Index); err != nil {
		return fmt.Errorf("failed to clear changes of turn %d: %w", turn.Index, err)
	}

	stmt, err := tx.Prepare("INSERT INTO changes (game, turn, square, piece, change) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare change statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range ChangeRows(game, turn) {
		if _, err := stmt.Exec(row.Game, row.Turn, row.Square, row.Piece, row.Change); err != nil {
			return fmt.Errorf("failed to insert change %s of turn %d: %w", row.Square, turn.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Turns returns the summaries of a game in turn order.
func (db *DB) Turns(game string) ([]TurnRow, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`SELECT game, turn, hash, pieces, additions, removals,
		captures, deaths, moves, attacks, repeated
		FROM turns WHERE game = ? ORDER BY turn`, game)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TurnRow
	for rows.Next() {
		var r TurnRow
		if err := rows.Scan(&r.Game, &r.Turn, &r.Hash, &r.Pieces, &r.Additions, &r.Removals,
			&r.Captures, &r.Deaths, &r.Moves, &r.Attacks, &r.Repeated); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Changes returns the changes of one turn in insertion order.
func (db *DB) Changes(game string, turn int) ([]ChangeRow, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(
		"SELECT game, turn, square, piece, change FROM changes WHERE game = ? AND turn = ? ORDER BY rowid",
		game, turn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChangeRow
	for rows.Next() {
		var r ChangeRow
		if err := rows.Scan(&r.Game, &r.Turn, &r.Square, &r.Piece, &r.Change); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PieceHistory counts how often each piece code appears in a change of the given kind.
func (db *DB) PieceHistory(game, change string) (map[string]int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(
		"SELECT piece, COUNT(*) FROM changes WHERE game = ? AND change = ? GROUP BY piece",
		game, change)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var piece string
		var n int
		if err := rows.Scan(&piece, &n); err != nil {
			return nil, err
		}
		out[piece] = n
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn.Close()
}
