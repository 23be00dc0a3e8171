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

package engine

import (
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

// MaterialScore sums piece values (pawn=1 .. queen=9, king excluded)
// and returns the difference from perspective's point of view: positive
// means perspective is ahead.
func MaterialScore(pos *position.Position, perspective Color) int {
	white := materialOf(pos, White)
	black := materialOf(pos, Black)
	if perspective == White {
		return white - black
	}
	return black - white
}

func materialOf(pos *position.Position, side Color) int {
	total := 0
	for kind := King; kind < PkLength; kind++ {
		total += pos.PieceBb(side, kind).PopCount() * kind.ValueOf()
	}
	return total
}

// insufficientMaterial implements spec §4.5's draw-by-material test:
// no pawns, rooks or queens remain for either side, and one of: only
// the two kings; one side has exactly one minor piece and the other
// none; both sides have exactly one bishop and the bishops stand on
// same-colored squares; one side has exactly two knights and the other
// no minor pieces.
func insufficientMaterial(pos *position.Position) bool {
	for _, c := range [2]Color{White, Black} {
		if pos.PieceBb(c, Pawn) != 0 || pos.PieceBb(c, Rook) != 0 || pos.PieceBb(c, Queen) != 0 {
			return false
		}
	}

	wn, wb := pos.PieceBb(White, Knight).PopCount(), pos.PieceBb(White, Bishop).PopCount()
	bn, bb := pos.PieceBb(Black, Knight).PopCount(), pos.PieceBb(Black, Bishop).PopCount()
	wMinors, bMinors := wn+wb, bn+bb

	if wMinors == 0 && bMinors == 0 {
		return true
	}
	if wMinors == 1 && bMinors == 0 {
		return true
	}
	if bMinors == 1 && wMinors == 0 {
		return true
	}
	if wb == 1 && bb == 1 && wn == 0 && bn == 0 {
		if squareColor(pos.PieceBb(White, Bishop).Lsb()) == squareColor(pos.PieceBb(Black, Bishop).Lsb()) {
			return true
		}
	}
	if wn == 2 && wb == 0 && bMinors == 0 {
		return true
	}
	if bn == 2 && bb == 0 && wMinors == 0 {
		return true
	}
	return false
}

func squareColor(sq Square) int {
	return (int(sq.FileOf()) + int(sq.RankOf())) % 2
}
