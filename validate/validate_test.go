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

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

// emptyBoard returns a Position with every square cleared, so tests can
// place exactly the pieces a scenario needs.
func emptyBoard() position.Position {
	pos := position.NewGame()
	for sq := SqA1; int(sq) < SqLength; sq++ {
		if _, occ := pos.PieceAt(sq); occ {
			pos.RemovePiece(sq)
		}
	}
	return pos
}

func TestIsLegalRejectsEmptyFrom(t *testing.T) {
	pos := position.NewGame()
	assert.False(t, IsLegal(&pos, CreateMove(SqE4, SqE5, Normal, PkNone), White))
}

func TestIsLegalRejectsWrongColorMover(t *testing.T) {
	pos := position.NewGame()
	assert.False(t, IsLegal(&pos, CreateMove(SqE7, SqE5, Normal, PkNone), White))
}

func TestIsLegalAcceptsOpeningPawnMoves(t *testing.T) {
	pos := position.NewGame()
	assert.True(t, IsLegal(&pos, CreateMove(SqE2, SqE4, Normal, PkNone), White))
	assert.True(t, IsLegal(&pos, CreateMove(SqG1, SqF3, Normal, PkNone), White))
}

func TestIsLegalRejectsMoveNotMatchingAnyPseudoLegalPattern(t *testing.T) {
	pos := position.NewGame()
	// Rook boxed in behind its own pawns cannot jump to e4.
	assert.False(t, IsLegal(&pos, CreateMove(SqA1, SqE4, Normal, PkNone), White))
}

func TestIsLegalRejectsMoveExposingOwnKingToCheck(t *testing.T) {
	pos := emptyBoard()
	pos.PutPiece(WhiteKing, SqE1)
	pos.PutPiece(WhiteRook, SqE2)
	pos.PutPiece(BlackKing, SqE8)
	pos.PutPiece(BlackRook, SqA8)
	pos.PutPiece(BlackRook, SqE7)

	// Moving the rook off the e-file exposes the king to the e7 rook.
	assert.False(t, IsLegal(&pos, CreateMove(SqE2, SqD2, Normal, PkNone), White))
	// Staying on the e-file keeps the pin blocked.
	assert.True(t, IsLegal(&pos, CreateMove(SqE2, SqE3, Normal, PkNone), White))
}

func TestIsLegalRejectsCastlingThroughCheck(t *testing.T) {
	pos := emptyBoard()
	pos.PutPiece(WhiteKing, SqE1)
	pos.PutPiece(WhiteRook, SqH1)
	pos.PutPiece(BlackKing, SqE8)
	pos.PutPiece(BlackRook, SqF8)

	assert.False(t, IsLegal(&pos, CreateMove(SqE1, SqG1, Castling, PkNone), White))
}

func TestIsLegalAcceptsCastlingWhenPathAndKingSafe(t *testing.T) {
	pos := emptyBoard()
	pos.PutPiece(WhiteKing, SqE1)
	pos.PutPiece(WhiteRook, SqH1)
	pos.PutPiece(BlackKing, SqE8)

	assert.True(t, IsLegal(&pos, CreateMove(SqE1, SqG1, Castling, PkNone), White))
}

func TestIsLegalRejectsCastlingAfterKingMovedFlag(t *testing.T) {
	pos := emptyBoard()
	pos.PutPiece(WhiteKing, SqE1)
	pos.PutPiece(WhiteRook, SqH1)
	pos.PutPiece(BlackKing, SqE8)
	pos.SetWhiteKingMoved(true)

	assert.False(t, IsLegal(&pos, CreateMove(SqE1, SqG1, Castling, PkNone), White))
}
