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

package types

import (
	"fmt"
	"strings"
)

// Move is a 16-bit encoding of a chess move: from-square, to-square,
// promotion piece kind and move type packed into a single primitive.
//  BITMAP 16-bit
//  |-------------------------------|
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                       1 1 1 1 1 1  to
//           1 1 1 1 1 1              from
//       1 1                          promotion piece kind (pt-Knight, 0-3)
//   1 1                              move type
type Move uint16

const (
	// MoveNone is the empty, invalid move.
	MoveNone Move = 0
)

const (
	fromShift     uint  = 6
	promTypeShift uint  = 12
	typeShift     uint  = 14
	squareMask    Move  = 0x3F
	toMask              = squareMask
	fromMask            = squareMask << fromShift
	promTypeMask  Move  = 3 << promTypeShift
	moveTypeMask  Move  = 3 << typeShift
)

// CreateMove returns an encoded Move. promType is only meaningful when t
// is Promotion; it is still encoded (defaulting to Knight) for moves of
// other types so two moves with the same from/to/type but a don't-care
// promotion field compare equal.
func CreateMove(from Square, to Square, t MoveType, promType PieceKind) Move {
	if promType < Knight {
		promType = Knight
	}
	// promType is reduced to 2 bits (Knight..Queen -> 0-3)
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveType returns the type of the move.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece kind for a Promotion move. Must be
// ignored when MoveType() is not Promotion.
func (m Move) PromotionType() PieceKind {
	return PieceKind((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// IsValid checks if the move has valid squares, promotion kind and
// move type. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// String returns a descriptive representation of a move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s type:%1s prom:%1s (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m)
}

// StringUci returns the UCI protocol representation of a move,
// e.g. "e2e4" or "a7a8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}
