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

// Package execute applies a validated move to a Position: it moves
// pieces, handles the three special move types, and maintains
// castling flags, the en-passant target, the half-move clock and the
// Zobrist hash/repetition table. It trusts its caller; it does not
// re-validate the move.
package execute

import (
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
	"github.com/mkopp/gochess/zobrist"
)

// Apply mutates pos according to mv played by side. The caller must
// have already confirmed legality; Apply never checks it, and it must
// not crash or violate bitboard disjointness even on a bogus move
// (every capture clears its target before the mover is placed). A
// call on a Position whose status is no longer InProgress is a no-op.
func Apply(pos *position.Position, mv Move, side Color) {
	if pos.Status().IsTerminal() {
		return
	}

	from, to := mv.From(), mv.To()
	mover, _ := pos.PieceAt(from)

	backward := South
	if side == Black {
		backward = North
	}

	isPawnMove := mover.KindOf() == Pawn
	isCapture := false
	isDoublePush := false

	switch mv.MoveType() {
	case Castling:
		applyCastling(pos, to)
		// The rook's own square never appears as mv's from/to, so
		// maintainCastlingFlags below (which only looks at those two
		// squares) cannot see it move; lose its right here instead.
		loseRookRight(pos, side, to == SqG1 || to == SqG8)
	case EnPassant:
		capSq := to.To(backward)
		pos.RemovePiece(capSq)
		pos.MovePiece(from, to)
		isCapture = true
	case Promotion:
		if _, occ := pos.PieceAt(to); occ {
			pos.RemovePiece(to)
			isCapture = true
		}
		pos.RemovePiece(from)
		pos.PutPiece(MakePiece(side, mv.PromotionType()), to)
	default: // Normal
		if _, occ := pos.PieceAt(to); occ {
			pos.RemovePiece(to)
			isCapture = true
		}
		pos.MovePiece(from, to)
		if isPawnMove && SquareDistance(from, to) == 2 {
			isDoublePush = true
		}
	}

	maintainCastlingFlags(pos, mover, from, to)

	if epTarget := pos.EnPassantTarget(); epTarget != SqNone {
		pos.ToggleZobrist(zobrist.Base.EnPassantFile[epTarget.FileOf()])
		pos.ClearEnPassant()
	}
	if isDoublePush {
		skipped := to.To(backward)
		pos.SetEnPassantTarget(skipped)
		pos.ToggleZobrist(zobrist.Base.EnPassantFile[skipped.FileOf()])
	}

	if isPawnMove || isCapture {
		pos.ResetHalfMoveClock()
	} else {
		pos.IncrementHalfMoveClock()
	}

	pos.ToggleZobrist(zobrist.Base.SideToMove)
	pos.RecordPosition()
}

func applyCastling(pos *position.Position, to Square) {
	switch to {
	case SqG1:
		pos.MovePiece(SqE1, SqG1)
		pos.MovePiece(SqH1, SqF1)
	case SqC1:
		pos.MovePiece(SqE1, SqC1)
		pos.MovePiece(SqA1, SqD1)
	case SqG8:
		pos.MovePiece(SqE8, SqG8)
		pos.MovePiece(SqH8, SqF8)
	case SqC8:
		pos.MovePiece(SqE8, SqC8)
		pos.MovePiece(SqA8, SqD8)
	}
}

// maintainCastlingFlags implements spec §4.4 step 5: a king move loses
// both of its side's rights; a move touching a home-rook square (as
// mover or as a captured piece) loses that single right. Losing a
// right XORs its key out of the hash exactly once, at the moment it
// is lost - a no-op if the right was already gone.
func maintainCastlingFlags(pos *position.Position, mover Piece, from Square, to Square) {
	if mover.KindOf() == King {
		loseKingRights(pos, mover.ColorOf())
	}
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SqA1:
			loseRookRight(pos, White, false)
		case SqH1:
			loseRookRight(pos, White, true)
		case SqA8:
			loseRookRight(pos, Black, false)
		case SqH8:
			loseRookRight(pos, Black, true)
		}
	}
}

func loseKingRights(pos *position.Position, side Color) {
	if side == White {
		if pos.WhiteKingMoved() {
			return
		}
		if !pos.WhiteRookA1Moved() {
			pos.ToggleZobrist(zobrist.Base.WhiteCastleOOO)
		}
		if !pos.WhiteRookH1Moved() {
			pos.ToggleZobrist(zobrist.Base.WhiteCastleOO)
		}
		pos.SetWhiteKingMoved(true)
		return
	}
	if pos.BlackKingMoved() {
		return
	}
	if !pos.BlackRookA8Moved() {
		pos.ToggleZobrist(zobrist.Base.BlackCastleOOO)
	}
	if !pos.BlackRookH8Moved() {
		pos.ToggleZobrist(zobrist.Base.BlackCastleOO)
	}
	pos.SetBlackKingMoved(true)
}

func loseRookRight(pos *position.Position, side Color, kingside bool) {
	if side == White {
		if kingside {
			if pos.WhiteRookH1Moved() {
				return
			}
			if !pos.WhiteKingMoved() {
				pos.ToggleZobrist(zobrist.Base.WhiteCastleOO)
			}
			pos.SetWhiteRookH1Moved(true)
			return
		}
		if pos.WhiteRookA1Moved() {
			return
		}
		if !pos.WhiteKingMoved() {
			pos.ToggleZobrist(zobrist.Base.WhiteCastleOOO)
		}
		pos.SetWhiteRookA1Moved(true)
		return
	}
	if kingside {
		if pos.BlackRookH8Moved() {
			return
		}
		if !pos.BlackKingMoved() {
			pos.ToggleZobrist(zobrist.Base.BlackCastleOO)
		}
		pos.SetBlackRookH8Moved(true)
		return
	}
	if pos.BlackRookA8Moved() {
		return
	}
	if !pos.BlackKingMoved() {
		pos.ToggleZobrist(zobrist.Base.BlackCastleOOO)
	}
	pos.SetBlackRookA8Moved(true)
}
