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

package persist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/gochess/engine"
	"github.com/mkopp/gochess/player"
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

func TestSaveLoadRoundTripsStartingPosition(t *testing.T) {
	pos := engine.NewGame()
	players := [2]player.Type{player.Human, player.RandomAI}

	var buf strings.Builder
	require.NoError(t, Save(&buf, pos, White, players))

	loaded, current, loadedPlayers, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, White, current)
	assert.Equal(t, players, loadedPlayers)
	assertPositionsEqual(t, pos, loaded)
}

func TestSaveLoadRoundTripsAfterSeveralMoves(t *testing.T) {
	pos := engine.NewGame()
	side := White
	for _, u := range []string{"e2e4", "c7c5", "g1f3", "b8c6", "f1b5"} {
		mv, err := engine.ParseMove(u)
		require.NoError(t, err)
		require.True(t, engine.IsLegal(pos, mv, side))
		engine.Apply(pos, mv, side)
		side = side.Flip()
	}
	players := [2]player.Type{player.GreedyAI, player.GreedyAI}

	var buf strings.Builder
	require.NoError(t, Save(&buf, pos, side, players))

	loaded, current, loadedPlayers, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, side, current)
	assert.Equal(t, players, loadedPlayers)
	assertPositionsEqual(t, pos, loaded)
}

func TestSaveLoadPreservesCastlingRightsAndEnPassant(t *testing.T) {
	pos := engine.NewGame()
	side := White
	for _, u := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		mv, err := engine.ParseMove(u)
		require.NoError(t, err)
		require.True(t, engine.IsLegal(pos, mv, side))
		engine.Apply(pos, mv, side)
		side = side.Flip()
	}
	require.Equal(t, SqD6, pos.EnPassantTarget())

	var buf strings.Builder
	require.NoError(t, Save(&buf, pos, side, [2]player.Type{player.Human, player.Human}))

	loaded, _, _, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, SqD6, loaded.EnPassantTarget())
	assert.False(t, loaded.WhiteKingMoved())
	assert.Equal(t, pos.Zobrist(), loaded.Zobrist())
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	_, _, _, err := Load(strings.NewReader("1 2 3\n"))
	assert.Error(t, err)
	var malformed *ErrMalformedSave
	assert.ErrorAs(t, err, &malformed)
}

func TestLoadRejectsBadHistoryCount(t *testing.T) {
	lines := []string{
		"0 0 0 0 0 0",
		"0 0 0 0 0 0",
		"0 0 0 0 0 0",
		"-1",
		"0",
		"-5",
	}
	_, _, _, err := Load(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	assert.Error(t, err)
	var malformed *ErrMalformedSave
	assert.ErrorAs(t, err, &malformed)
	assert.Equal(t, "history-count", malformed.Field)
}

func assertPositionsEqual(t *testing.T, want *position.Position, got *position.Position) {
	t.Helper()
	for sq := SqA1; int(sq) < SqLength; sq++ {
		wp, wok := want.PieceAt(sq)
		gp, gok := got.PieceAt(sq)
		assert.Equal(t, wok, gok, "occupancy mismatch at %s", sq)
		assert.Equal(t, wp, gp, "piece mismatch at %s", sq)
	}
	assert.Equal(t, want.WhiteKingMoved(), got.WhiteKingMoved())
	assert.Equal(t, want.WhiteRookA1Moved(), got.WhiteRookA1Moved())
	assert.Equal(t, want.WhiteRookH1Moved(), got.WhiteRookH1Moved())
	assert.Equal(t, want.BlackKingMoved(), got.BlackKingMoved())
	assert.Equal(t, want.BlackRookA8Moved(), got.BlackRookA8Moved())
	assert.Equal(t, want.BlackRookH8Moved(), got.BlackRookH8Moved())
	assert.Equal(t, want.EnPassantTarget(), got.EnPassantTarget())
	assert.Equal(t, want.HalfMoveClock(), got.HalfMoveClock())
	assert.Equal(t, want.PositionList(), got.PositionList())
	assert.Equal(t, want.Status(), got.Status())
	assert.Equal(t, want.Zobrist(), got.Zobrist())
}
