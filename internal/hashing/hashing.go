// Package hashing provides position hashing and duplicate detection for
// board snapshots.
package hashing

import (
	"github.com/lgbarn/fourplay-go/internal/chess"
)

// DuplicateDetector tracks seen positions for repeated snapshot detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]Signature
	// useExactMatch also requires the piece counts to agree
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures, 0 means unlimited
	maxCapacity int
	uniqueCount int
}

// Signature stores identifying information about a position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Pieces is the number of occupied squares
	Pieces int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// Sign computes the signature of a board.
func Sign(board *chess.Board) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board),
		Pieces:   board.Count(),
		WeakHash: WeakHash(board),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once full, new positions
// are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := Sign(board)
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Pieces != b.Pieces {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
