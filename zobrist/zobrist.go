/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

// Package zobrist provides the process-wide random key tables used to
// incrementally hash chess positions for repetition detection.
package zobrist

import (
	"sync"

	. "github.com/mkopp/gochess/types"
)

// Key is a Zobrist hash value for a position.
type Key uint64

// Keys holds one random Key per (piece, square), per castling right,
// per en passant file and one for side-to-move. XOR-ing the relevant
// subset of these together (and never two at once for the same fact)
// produces a position's hash.
type Keys struct {
	Piece          [PieceLength][SqLength]Key
	WhiteCastleOO  Key
	WhiteCastleOOO Key
	BlackCastleOO  Key
	BlackCastleOOO Key
	EnPassantFile  [FileLength]Key
	SideToMove     Key
}

// Base is the single, process-wide key table. It is deterministic
// (fixed seed) so that two engines built from the same code agree on
// hash values without exchanging the table.
var Base Keys

var once sync.Once

func init() {
	once.Do(initKeys)
}

func initKeys() {
	r := newRandom(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			Base.Piece[pc][sq] = Key(r.rand64())
		}
	}
	Base.WhiteCastleOO = Key(r.rand64())
	Base.WhiteCastleOOO = Key(r.rand64())
	Base.BlackCastleOO = Key(r.rand64())
	Base.BlackCastleOOO = Key(r.rand64())
	for f := FileA; f <= FileH; f++ {
		Base.EnPassantFile[f] = Key(r.rand64())
	}
	Base.SideToMove = Key(r.rand64())
}
