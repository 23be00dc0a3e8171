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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/gochess/status"
	. "github.com/mkopp/gochess/types"
)

func TestNewGameSetup(t *testing.T) {
	p := NewGame()

	assert.Equal(t, SqA1.Bitboard()|SqH1.Bitboard(), p.PieceBb(White, Rook))
	assert.Equal(t, SqB1.Bitboard()|SqG1.Bitboard(), p.PieceBb(White, Knight))
	assert.Equal(t, SqC1.Bitboard()|SqF1.Bitboard(), p.PieceBb(White, Bishop))
	assert.Equal(t, SqD1.Bitboard(), p.PieceBb(White, Queen))
	assert.Equal(t, SqE1.Bitboard(), p.PieceBb(White, King))
	assert.Equal(t, Rank2_Bb, p.PieceBb(White, Pawn))
	assert.Equal(t, Rank7_Bb, p.PieceBb(Black, Pawn))

	assert.Equal(t, SqNone, p.EnPassantTarget())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, status.InProgress, p.Status())
	assert.False(t, p.WhiteKingMoved())
	assert.False(t, p.BlackRookH8Moved())
	assert.Equal(t, 1, p.MaxRepetitionCount())
}

func TestPieceAt(t *testing.T) {
	p := NewGame()
	pc, ok := p.PieceAt(SqE1)
	assert.True(t, ok)
	assert.Equal(t, WhiteKing, pc)

	_, ok = p.PieceAt(SqE4)
	assert.False(t, ok)
}

func TestOccupiedAndSideOccupancy(t *testing.T) {
	p := NewGame()
	assert.Equal(t, Rank1_Bb|Rank2_Bb, p.SideOccupancy(White))
	assert.Equal(t, Rank7_Bb|Rank8_Bb, p.SideOccupancy(Black))
	assert.Equal(t, Rank1_Bb|Rank2_Bb|Rank7_Bb|Rank8_Bb, p.Occupied())
}

func TestPutRemoveMovePiece(t *testing.T) {
	p := NewGame()
	before := p.Zobrist()

	moved := p.RemovePiece(SqE2)
	assert.Equal(t, WhitePawn, moved)
	p.PutPiece(moved, SqE4)
	assert.NotEqual(t, before, p.Zobrist())

	pc, ok := p.PieceAt(SqE4)
	assert.True(t, ok)
	assert.Equal(t, WhitePawn, pc)
	_, ok = p.PieceAt(SqE2)
	assert.False(t, ok)

	p.MovePiece(SqE4, SqE5)
	_, ok = p.PieceAt(SqE4)
	assert.False(t, ok)
	pc, ok = p.PieceAt(SqE5)
	assert.True(t, ok)
	assert.Equal(t, WhitePawn, pc)
}

func TestCastlingFlagsReadWrite(t *testing.T) {
	p := NewGame()
	assert.False(t, p.WhiteRookA1Moved())
	p.SetWhiteRookA1Moved(true)
	assert.True(t, p.WhiteRookA1Moved())
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewGame()
	clone := p.Clone()

	clone.RecordPosition()
	clone.RemovePiece(SqE2)
	clone.SetWhiteKingMoved(true)

	_, ok := p.PieceAt(SqE2)
	assert.True(t, ok)
	assert.False(t, p.WhiteKingMoved())
	assert.NotEqual(t, p.MaxRepetitionCount(), clone.MaxRepetitionCount())
}

func TestEnPassantTarget(t *testing.T) {
	p := NewGame()
	p.SetEnPassantTarget(SqE3)
	assert.Equal(t, SqE3, p.EnPassantTarget())
	p.ClearEnPassant()
	assert.Equal(t, SqNone, p.EnPassantTarget())
}

func TestHalfMoveClock(t *testing.T) {
	p := NewGame()
	p.IncrementHalfMoveClock()
	p.IncrementHalfMoveClock()
	assert.Equal(t, 2, p.HalfMoveClock())
	p.ResetHalfMoveClock()
	assert.Equal(t, 0, p.HalfMoveClock())
	p.SetHalfMoveClock(42)
	assert.Equal(t, 42, p.HalfMoveClock())
}

func TestRecordPositionTracksRepetition(t *testing.T) {
	p := NewGame()
	assert.Equal(t, 1, p.MaxRepetitionCount())
	p.RecordPosition()
	assert.Equal(t, 2, p.MaxRepetitionCount())
	assert.Len(t, p.PositionList(), 2)
}

func TestStringBoardContainsBackRank(t *testing.T) {
	p := NewGame()
	s := p.String()
	assert.Contains(t, s, "InProgress")
	assert.Contains(t, s, "R")
	assert.Contains(t, s, "k")
}
