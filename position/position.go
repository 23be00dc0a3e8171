/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position implements the board representation: twelve piece
// bitboards, castling flags, en-passant target, half-move clock,
// game status and the repetition table. A Position is a value type;
// it exposes the low-level primitives (PutPiece/RemovePiece/MovePiece,
// flag setters, hash toggling) that the execute package composes into
// full move application.
package position

import (
	"strings"

	"github.com/mkopp/gochess/assert"
	"github.com/mkopp/gochess/status"
	. "github.com/mkopp/gochess/types"
	"github.com/mkopp/gochess/zobrist"
)

// backRankOrder is the piece kind standing on file a..h of either
// side's home rank at the start of a game.
var backRankOrder = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Position represents one chess position. Side to move is deliberately
// not a field here; the driver threads it through every call (spec's
// "side to move is carried by the driver").
type Position struct {
	board    [SqLength]Piece
	piecesBb [ColorLength][PkLength]Bitboard

	whiteKingMoved   bool
	whiteRookA1Moved bool
	whiteRookH1Moved bool
	blackKingMoved   bool
	blackRookA8Moved bool
	blackRookH8Moved bool

	enPassantTarget Square
	halfMoveClock   int

	gameStatus status.GameStatus

	zobristKey     zobrist.Key
	positionCounts map[zobrist.Key]int
	positionList   []zobrist.Key
}

// NewGame returns the standard starting position: flags cleared,
// status InProgress, empty history save for the initial hash at
// count 1.
func NewGame() Position {
	p := Position{
		enPassantTarget: SqNone,
		gameStatus:      status.InProgress,
		positionCounts:  map[zobrist.Key]int{},
	}
	for f := FileA; f <= FileH; f++ {
		kind := backRankOrder[f]
		p.PutPiece(MakePiece(White, kind), SquareOf(f, Rank1))
		p.PutPiece(MakePiece(Black, kind), SquareOf(f, Rank8))
		p.PutPiece(MakePiece(White, Pawn), SquareOf(f, Rank2))
		p.PutPiece(MakePiece(Black, Pawn), SquareOf(f, Rank7))
	}
	p.RecordPosition()
	return p
}

// PieceAt returns the piece occupying sq and whether the square is
// occupied at all.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	pc := p.board[sq]
	return pc, pc != PieceNone
}

// Occupied returns the union of all twelve piece bitboards.
func (p *Position) Occupied() Bitboard {
	return p.SideOccupancy(White) | p.SideOccupancy(Black)
}

// SideOccupancy returns the union of c's six piece bitboards.
func (p *Position) SideOccupancy(c Color) Bitboard {
	var bb Bitboard
	for kind := King; kind < PkLength; kind++ {
		bb |= p.piecesBb[c][kind]
	}
	return bb
}

// PieceBb returns the bitboard of pieces of kind belonging to c.
func (p *Position) PieceBb(c Color, kind PieceKind) Bitboard {
	return p.piecesBb[c][kind]
}

// Clone returns an independent value copy; the repetition map and
// history are deep-copied so the clone may be thrown away (or
// mutated) without affecting the original. Used by the validator's
// king-safety probe.
func (p *Position) Clone() Position {
	clone := *p
	clone.positionCounts = make(map[zobrist.Key]int, len(p.positionCounts))
	for k, v := range p.positionCounts {
		clone.positionCounts[k] = v
	}
	clone.positionList = append([]zobrist.Key(nil), p.positionList...)
	return clone
}

// PutPiece places piece on the empty square sq, updating the board
// array, the per-color-per-kind bitboard and the Zobrist key.
func (p *Position) PutPiece(piece Piece, sq Square) {
	assert.Assert(p.board[sq] == PieceNone, "PutPiece: square %s already occupied", sq.String())
	p.board[sq] = piece
	p.piecesBb[piece.ColorOf()][piece.KindOf()].PushSquare(sq)
	p.zobristKey ^= zobrist.Base.Piece[piece][sq]
}

// RemovePiece clears sq and returns the piece that stood there.
func (p *Position) RemovePiece(sq Square) Piece {
	pc := p.board[sq]
	assert.Assert(pc != PieceNone, "RemovePiece: square %s already empty", sq.String())
	p.board[sq] = PieceNone
	p.piecesBb[pc.ColorOf()][pc.KindOf()].PopSquare(sq)
	p.zobristKey ^= zobrist.Base.Piece[pc][sq]
	return pc
}

// MovePiece relocates the piece on from to the empty square to.
func (p *Position) MovePiece(from Square, to Square) {
	p.PutPiece(p.RemovePiece(from), to)
}

// ToggleZobrist XORs k into the current hash. Used by the executor to
// fold in castling-right, en-passant-file and side-to-move keys at
// the exact moment those facts change.
func (p *Position) ToggleZobrist(k zobrist.Key) {
	p.zobristKey ^= k
}

// Zobrist returns the position's current hash.
func (p *Position) Zobrist() zobrist.Key {
	return p.zobristKey
}

// SetZobrist overwrites the hash directly. persist does not call it:
// on load it rebuilds the hash by placing the pieces and applying the
// castling/en-passant/side-to-move toggles.
func (p *Position) SetZobrist(k zobrist.Key) {
	p.zobristKey = k
}

// SetHistory overwrites the repetition history (and the occurrence
// counts derived from it) with hashes, in order. Used by persist on
// load to restore saved state verbatim rather than rebuilding it move
// by move.
func (p *Position) SetHistory(hashes []zobrist.Key) {
	p.positionList = append([]zobrist.Key(nil), hashes...)
	p.positionCounts = make(map[zobrist.Key]int, len(hashes))
	for _, h := range hashes {
		p.positionCounts[h]++
	}
}

// RecordPosition appends the current hash to the history and bumps
// its occurrence count. Called once per applied move (and once for
// the initial position of a new game).
func (p *Position) RecordPosition() {
	p.positionList = append(p.positionList, p.zobristKey)
	p.positionCounts[p.zobristKey]++
}

// PositionList returns the ordered, append-only history of hashes.
func (p *Position) PositionList() []zobrist.Key {
	return append([]zobrist.Key(nil), p.positionList...)
}

// MaxRepetitionCount returns the largest occurrence count among all
// hashes seen so far; the status resolver compares this against 3.
func (p *Position) MaxRepetitionCount() int {
	max := 0
	for _, c := range p.positionCounts {
		if c > max {
			max = c
		}
	}
	return max
}

// EnPassantTarget returns the square a pawn may capture onto en
// passant, or SqNone if none is available.
func (p *Position) EnPassantTarget() Square {
	return p.enPassantTarget
}

// SetEnPassantTarget records sq as the skipped square of the most
// recent pawn double push.
func (p *Position) SetEnPassantTarget(sq Square) {
	p.enPassantTarget = sq
}

// ClearEnPassant drops any en-passant target; it is idempotent.
func (p *Position) ClearEnPassant() {
	p.enPassantTarget = SqNone
}

// HalfMoveClock returns the number of plies since the last pawn move
// or capture.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// SetHalfMoveClock overwrites the clock (used by persist on load).
func (p *Position) SetHalfMoveClock(n int) {
	p.halfMoveClock = n
}

// ResetHalfMoveClock zeroes the clock after a pawn move or capture.
func (p *Position) ResetHalfMoveClock() {
	p.halfMoveClock = 0
}

// IncrementHalfMoveClock advances the clock by one ply.
func (p *Position) IncrementHalfMoveClock() {
	p.halfMoveClock++
}

// Status returns the current game status.
func (p *Position) Status() status.GameStatus {
	return p.gameStatus
}

// SetStatus overwrites the game status; used by the resolver after
// every applied move and by the driver on resignation/draw agreement.
func (p *Position) SetStatus(s status.GameStatus) {
	p.gameStatus = s
}

// Castling-flag accessors. Exposed read/write (rather than as a
// derived CanCastle predicate) so persist can restore them verbatim;
// legality itself additionally checks that king and rook still stand
// on their home squares (see the validate package).

func (p *Position) WhiteKingMoved() bool   { return p.whiteKingMoved }
func (p *Position) WhiteRookA1Moved() bool { return p.whiteRookA1Moved }
func (p *Position) WhiteRookH1Moved() bool { return p.whiteRookH1Moved }
func (p *Position) BlackKingMoved() bool   { return p.blackKingMoved }
func (p *Position) BlackRookA8Moved() bool { return p.blackRookA8Moved }
func (p *Position) BlackRookH8Moved() bool { return p.blackRookH8Moved }

func (p *Position) SetWhiteKingMoved(v bool)   { p.whiteKingMoved = v }
func (p *Position) SetWhiteRookA1Moved(v bool) { p.whiteRookA1Moved = v }
func (p *Position) SetWhiteRookH1Moved(v bool) { p.whiteRookH1Moved = v }
func (p *Position) SetBlackKingMoved(v bool)   { p.blackKingMoved = v }
func (p *Position) SetBlackRookA8Moved(v bool) { p.blackRookA8Moved = v }
func (p *Position) SetBlackRookH8Moved(v bool) { p.blackRookH8Moved = v }

// String renders the board as an 8x8 ASCII matrix, rank 8 on top, plus
// a short status line, grounded on the teacher's StringBoard layout.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[SquareOf(f, r)].String())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	b.WriteString("Status: ")
	b.WriteString(p.gameStatus.String())
	b.WriteString("\n")
	return b.String()
}
