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

// Package validate decides whether a (move, side) pair is legal in a
// given Position. It never mutates the Position it is asked about; the
// no-self-check filter runs on a throwaway clone.
package validate

import (
	"github.com/mkopp/gochess/execute"
	"github.com/mkopp/gochess/movegen"
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

// IsLegal reports whether mv is legal for side to play in pos. It is
// the conjunction of: a friendly piece stands on from, the piece-type
// pseudo-legal rule accepts the move (or, for castling, the extra
// check/attack conditions hold), and playing the move does not leave
// the mover's own king in check.
func IsLegal(pos *position.Position, mv Move, side Color) bool {
	mover, occ := pos.PieceAt(mv.From())
	if !occ || mover.ColorOf() != side {
		return false
	}

	if mv.MoveType() == Castling {
		if !isCastlingLegal(pos, mv, side) {
			return false
		}
	} else if !matchesPseudoLegal(pos, mv, side) {
		return false
	}

	return !exposesOwnKing(pos, mv, side)
}

func matchesPseudoLegal(pos *position.Position, mv Move, side Color) bool {
	for _, cand := range movegen.GeneratePseudoLegal(pos, side) {
		if cand == mv {
			return true
		}
	}
	return false
}

// isCastlingLegal adds the conditions movegen's candidate generation
// does not check: the side's king and the castling rook still stand on
// their home squares, the king is not currently in check, and neither
// the crossed square nor the landing square is attacked.
func isCastlingLegal(pos *position.Position, mv Move, side Color) bool {
	if !matchesPseudoLegal(pos, mv, side) {
		return false
	}
	rookSq := SqH1
	switch mv.To() {
	case SqC1:
		rookSq = SqA1
	case SqG8:
		rookSq = SqH8
	case SqC8:
		rookSq = SqA8
	}
	king, _ := pos.PieceAt(mv.From())
	rook, _ := pos.PieceAt(rookSq)
	if king != MakePiece(side, King) || rook != MakePiece(side, Rook) {
		return false
	}
	opp := side.Flip()
	if movegen.IsAttacked(pos, mv.From(), opp) {
		return false
	}
	if movegen.IsAttacked(pos, crossingSquare(mv.To()), opp) {
		return false
	}
	return !movegen.IsAttacked(pos, mv.To(), opp)
}

func crossingSquare(to Square) Square {
	switch to {
	case SqG1:
		return SqF1
	case SqC1:
		return SqD1
	case SqG8:
		return SqF8
	case SqC8:
		return SqD8
	default:
		return SqNone
	}
}

// exposesOwnKing implements spec's "no-self-check filter": simulate mv
// on a clone and test whether the mover's king square is attacked
// afterward.
func exposesOwnKing(pos *position.Position, mv Move, side Color) bool {
	clone := pos.Clone()
	execute.Apply(&clone, mv, side)
	kingBb := clone.PieceBb(side, King)
	if kingBb == 0 {
		return false
	}
	return movegen.IsAttacked(&clone, kingBb.Lsb(), side.Flip())
}
