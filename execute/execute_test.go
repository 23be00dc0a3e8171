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

package execute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/gochess/position"
	"github.com/mkopp/gochess/status"
	. "github.com/mkopp/gochess/types"
)

func TestApplyNormalMoveTogglesSideAndClock(t *testing.T) {
	pos := position.NewGame()
	before := pos.Zobrist()

	Apply(&pos, CreateMove(SqE2, SqE4, Normal, PkNone), White)

	pc, ok := pos.PieceAt(SqE4)
	assert.True(t, ok)
	assert.Equal(t, WhitePawn, pc)
	_, ok = pos.PieceAt(SqE2)
	assert.False(t, ok)

	assert.NotEqual(t, before, pos.Zobrist())
	assert.Equal(t, 0, pos.HalfMoveClock())
	assert.Len(t, pos.PositionList(), 2)
}

func TestApplyQuietKnightMoveIncrementsClock(t *testing.T) {
	pos := position.NewGame()
	Apply(&pos, CreateMove(SqB1, SqC3, Normal, PkNone), White)
	assert.Equal(t, 1, pos.HalfMoveClock())
}

func TestApplyCaptureResetsHalfMoveClock(t *testing.T) {
	pos := position.NewGame()
	pos.SetHalfMoveClock(17)
	pos.RemovePiece(SqB8)
	pos.PutPiece(BlackKnight, SqC3)

	Apply(&pos, CreateMove(SqB1, SqC3, Normal, PkNone), White)

	pc, ok := pos.PieceAt(SqC3)
	assert.True(t, ok)
	assert.Equal(t, WhiteKnight, pc)
	assert.Equal(t, 0, pos.HalfMoveClock())
}

func TestApplyEnPassant(t *testing.T) {
	pos := position.NewGame()
	pos.RemovePiece(SqE2)
	pos.PutPiece(WhitePawn, SqE5)

	// Black plays d7-d5, a double push next to the e5 pawn.
	Apply(&pos, CreateMove(SqD7, SqD5, Normal, PkNone), Black)
	assert.Equal(t, SqD6, pos.EnPassantTarget())

	Apply(&pos, CreateMove(SqE5, SqD6, EnPassant, PkNone), White)

	_, capturedStillThere := pos.PieceAt(SqD5)
	assert.False(t, capturedStillThere)
	pc, ok := pos.PieceAt(SqD6)
	assert.True(t, ok)
	assert.Equal(t, WhitePawn, pc)
	assert.Equal(t, SqNone, pos.EnPassantTarget())
	assert.Equal(t, 0, pos.HalfMoveClock())
}

func TestApplyPromotionCapture(t *testing.T) {
	pos := position.NewGame()
	pos.RemovePiece(SqA2)
	pos.RemovePiece(SqA7)
	pos.PutPiece(WhitePawn, SqA7)

	Apply(&pos, CreateMove(SqA7, SqA8, Promotion, Queen), White)

	pc, ok := pos.PieceAt(SqA8)
	assert.True(t, ok)
	assert.Equal(t, WhiteQueen, pc)
	assert.Equal(t, Bitboard(0), pos.PieceBb(White, Pawn)&SqA7.Bitboard())
	assert.Equal(t, 0, pos.HalfMoveClock())
}

func TestApplyCastlingKingside(t *testing.T) {
	pos := position.NewGame()
	pos.RemovePiece(SqF1)
	pos.RemovePiece(SqG1)
	before := pos.Zobrist()

	Apply(&pos, CreateMove(SqE1, SqG1, Castling, PkNone), White)

	king, ok := pos.PieceAt(SqG1)
	assert.True(t, ok)
	assert.Equal(t, WhiteKing, king)
	rook, ok := pos.PieceAt(SqF1)
	assert.True(t, ok)
	assert.Equal(t, WhiteRook, rook)
	_, ok = pos.PieceAt(SqE1)
	assert.False(t, ok)
	_, ok = pos.PieceAt(SqH1)
	assert.False(t, ok)

	assert.True(t, pos.WhiteKingMoved())
	assert.True(t, pos.WhiteRookH1Moved())
	assert.NotEqual(t, before, pos.Zobrist())
}

func TestApplyKingMoveLosesBothRights(t *testing.T) {
	pos := position.NewGame()
	pos.RemovePiece(SqE2)

	Apply(&pos, CreateMove(SqE1, SqE2, Normal, PkNone), White)

	assert.True(t, pos.WhiteKingMoved())
	assert.False(t, pos.WhiteRookA1Moved())
	assert.False(t, pos.WhiteRookH1Moved())
}

func TestApplyRookCaptureLosesSingleRight(t *testing.T) {
	pos := position.NewGame()
	pos.RemovePiece(SqG8)
	pos.PutPiece(BlackKnight, SqG3)

	Apply(&pos, CreateMove(SqG3, SqH1, Normal, PkNone), Black)

	assert.False(t, pos.WhiteKingMoved())
	assert.True(t, pos.WhiteRookH1Moved())
	assert.False(t, pos.WhiteRookA1Moved())
}

func TestApplyDoublePushSetsThenClearsEnPassant(t *testing.T) {
	pos := position.NewGame()
	Apply(&pos, CreateMove(SqE2, SqE4, Normal, PkNone), White)
	assert.Equal(t, SqE3, pos.EnPassantTarget())

	Apply(&pos, CreateMove(SqB8, SqC6, Normal, PkNone), Black)
	assert.Equal(t, SqNone, pos.EnPassantTarget())
}

func TestApplyOnTerminalPositionIsNoOp(t *testing.T) {
	pos := position.NewGame()
	pos.SetStatus(status.WhiteCheckmated)
	before := pos.Zobrist()
	beforeClock := pos.HalfMoveClock()

	Apply(&pos, CreateMove(SqE2, SqE4, Normal, PkNone), White)

	_, ok := pos.PieceAt(SqE4)
	assert.False(t, ok)
	assert.Equal(t, before, pos.Zobrist())
	assert.Equal(t, beforeClock, pos.HalfMoveClock())
}
