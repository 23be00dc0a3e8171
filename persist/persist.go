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

// Package persist saves and restores a complete game - position,
// repetition history, side to move, player types and the Zobrist
// tables themselves - as a whitespace-separated text layout, so that a
// reloaded game's hashes remain comparable to the ones computed before
// it was saved.
package persist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mkopp/gochess/player"
	"github.com/mkopp/gochess/position"
	"github.com/mkopp/gochess/status"
	. "github.com/mkopp/gochess/types"
	"github.com/mkopp/gochess/zobrist"
)

// ErrMalformedSave wraps a failure to parse a saved game, naming the
// field that could not be read.
type ErrMalformedSave struct {
	Field string
	Err   error
}

func (e *ErrMalformedSave) Error() string {
	return fmt.Sprintf("persist: malformed save (%s): %v", e.Field, e.Err)
}

func (e *ErrMalformedSave) Unwrap() error { return e.Err }

// pieceOrder fixes the field order within a bitboard line: Pawn,
// Knight, Bishop, Rook, Queen, King (spec §6.4 item 1). Zobrist piece
// keys (item 8) reuse the same per-color, per-kind order for the same
// reason: one documented convention covers both.
var pieceOrder = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Save writes pos, current, and players in the layout of spec §6.4, in
// order: piece bitboards, castling flags, en-passant target, half-move
// clock, repetition history, side to move, player types, the full
// Zobrist tables, and game status.
func Save(w io.Writer, pos *position.Position, current Color, players [2]player.Type) error {
	bw := bufio.NewWriter(w)

	for _, c := range [2]Color{White, Black} {
		fields := make([]string, len(pieceOrder))
		for i, kind := range pieceOrder {
			fields[i] = fmt.Sprintf("%d", uint64(pos.PieceBb(c, kind)))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw,
		boolDigit(pos.WhiteKingMoved()), boolDigit(pos.WhiteRookA1Moved()), boolDigit(pos.WhiteRookH1Moved()),
		boolDigit(pos.BlackKingMoved()), boolDigit(pos.BlackRookA8Moved()), boolDigit(pos.BlackRookH8Moved()),
	); err != nil {
		return err
	}

	epTarget := -1
	if pos.EnPassantTarget() != SqNone {
		epTarget = int(pos.EnPassantTarget())
	}
	if _, err := fmt.Fprintln(bw, epTarget); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(bw, pos.HalfMoveClock()); err != nil {
		return err
	}

	history := pos.PositionList()
	if _, err := fmt.Fprintln(bw, len(history)); err != nil {
		return err
	}
	hashFields := make([]string, len(history))
	for i, h := range history {
		hashFields[i] = fmt.Sprintf("%d", uint64(h))
	}
	if len(hashFields) > 0 {
		if _, err := fmt.Fprintln(bw, strings.Join(hashFields, " ")); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, int(current)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(bw, int(players[White]), int(players[Black])); err != nil {
		return err
	}

	for _, c := range [2]Color{White, Black} {
		for _, kind := range pieceOrder {
			pc := MakePiece(c, kind)
			fields := make([]string, SqLength)
			for sq := SqA1; int(sq) < SqLength; sq++ {
				fields[sq] = fmt.Sprintf("%d", uint64(zobrist.Base.Piece[pc][sq]))
			}
			if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw,
		uint64(zobrist.Base.WhiteCastleOO), uint64(zobrist.Base.WhiteCastleOOO),
		uint64(zobrist.Base.BlackCastleOO), uint64(zobrist.Base.BlackCastleOOO),
	); err != nil {
		return err
	}
	epFields := make([]string, FileLength)
	for f := FileA; f <= FileH; f++ {
		epFields[f] = fmt.Sprintf("%d", uint64(zobrist.Base.EnPassantFile[f]))
	}
	if _, err := fmt.Fprintln(bw, strings.Join(epFields, " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, uint64(zobrist.Base.SideToMove)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(bw, int(pos.Status())); err != nil {
		return err
	}

	return bw.Flush()
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// lineReader pulls one whitespace-tokenized line at a time and
// reports which field (by name) failed, so the caller's error
// identifies exactly what could not be parsed.
type lineReader struct {
	scanner *bufio.Scanner
}

func (lr *lineReader) line(field string) ([]string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return nil, &ErrMalformedSave{Field: field, Err: err}
		}
		return nil, &ErrMalformedSave{Field: field, Err: io.ErrUnexpectedEOF}
	}
	return strings.Fields(lr.scanner.Text()), nil
}

func (lr *lineReader) uint64s(field string, n int) ([]uint64, error) {
	fields, err := lr.line(field)
	if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, &ErrMalformedSave{Field: field, Err: fmt.Errorf("expected %d values, got %d", n, len(fields))}
	}
	out := make([]uint64, n)
	for i, f := range fields {
		if _, err := fmt.Sscanf(f, "%d", &out[i]); err != nil {
			return nil, &ErrMalformedSave{Field: field, Err: err}
		}
	}
	return out, nil
}

func (lr *lineReader) ints(field string, n int) ([]int, error) {
	fields, err := lr.line(field)
	if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, &ErrMalformedSave{Field: field, Err: fmt.Errorf("expected %d values, got %d", n, len(fields))}
	}
	out := make([]int, n)
	for i, f := range fields {
		if _, err := fmt.Sscanf(f, "%d", &out[i]); err != nil {
			return nil, &ErrMalformedSave{Field: field, Err: err}
		}
	}
	return out, nil
}

// Load parses the layout written by Save. On any error the returned
// Position is nil and the Color and player types (which may already
// hold values parsed before the error) must be ignored; the
// caller's own state is never touched since Load only mutates a fresh
// Position, and only after the whole file has parsed successfully. That
// deferral matters beyond error-safety: the hash can only be rebuilt
// correctly once the table it is built from (item 8) is known, and
// that is read well after the pieces (item 1).
func Load(r io.Reader) (*position.Position, Color, [2]player.Type, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	lr.scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var players [2]player.Type
	var pieceBb [ColorLength][6]uint64

	for _, c := range [2]Color{White, Black} {
		vals, err := lr.uint64s(fmt.Sprintf("piece-bitboards[%s]", c), len(pieceOrder))
		if err != nil {
			return nil, 0, players, err
		}
		copy(pieceBb[c][:], vals)
	}

	flags, err := lr.ints("castling-flags", 6)
	if err != nil {
		return nil, 0, players, err
	}
	whiteKingMoved := flags[0] != 0
	whiteRookA1Moved := flags[1] != 0
	whiteRookH1Moved := flags[2] != 0
	blackKingMoved := flags[3] != 0
	blackRookA8Moved := flags[4] != 0
	blackRookH8Moved := flags[5] != 0

	epVals, err := lr.ints("en-passant-target", 1)
	if err != nil {
		return nil, 0, players, err
	}
	epTarget := SqNone
	if epVals[0] >= 0 {
		if epVals[0] >= SqLength {
			return nil, 0, players, &ErrMalformedSave{Field: "en-passant-target", Err: fmt.Errorf("square index %d out of range", epVals[0])}
		}
		epTarget = Square(epVals[0])
	}

	clockVals, err := lr.ints("half-move-clock", 1)
	if err != nil {
		return nil, 0, players, err
	}
	if clockVals[0] < 0 {
		return nil, 0, players, &ErrMalformedSave{Field: "half-move-clock", Err: fmt.Errorf("negative clock %d", clockVals[0])}
	}
	halfMoveClock := clockVals[0]

	countVals, err := lr.ints("history-count", 1)
	if err != nil {
		return nil, 0, players, err
	}
	n := countVals[0]
	if n < 0 {
		return nil, 0, players, &ErrMalformedSave{Field: "history-count", Err: fmt.Errorf("negative count %d", n)}
	}
	history := make([]zobrist.Key, 0, n)
	if n > 0 {
		hashVals, err := lr.uint64s("history-hashes", n)
		if err != nil {
			return nil, 0, players, err
		}
		for _, v := range hashVals {
			history = append(history, zobrist.Key(v))
		}
	} else if _, err := lr.line("history-hashes"); err != nil {
		return nil, 0, players, err
	}

	currentVals, err := lr.ints("current-player", 1)
	if err != nil {
		return nil, 0, players, err
	}
	if currentVals[0] != int(White) && currentVals[0] != int(Black) {
		return nil, 0, players, &ErrMalformedSave{Field: "current-player", Err: fmt.Errorf("invalid color %d", currentVals[0])}
	}
	current := Color(currentVals[0])

	playerVals, err := lr.ints("player-types", 2)
	if err != nil {
		return nil, 0, players, err
	}
	for i, v := range playerVals {
		t := player.Type(v)
		if !t.IsValid() {
			return nil, 0, players, &ErrMalformedSave{Field: "player-types", Err: fmt.Errorf("invalid player type %d", v)}
		}
		players[i] = t
	}

	var table zobrist.Keys
	for _, c := range [2]Color{White, Black} {
		for _, kind := range pieceOrder {
			pc := MakePiece(c, kind)
			vals, err := lr.uint64s(fmt.Sprintf("zobrist-piece[%s-%s]", c, kind), SqLength)
			if err != nil {
				return nil, 0, players, err
			}
			for sq := SqA1; int(sq) < SqLength; sq++ {
				table.Piece[pc][sq] = zobrist.Key(vals[sq])
			}
		}
	}
	castleVals, err := lr.uint64s("zobrist-castle", 4)
	if err != nil {
		return nil, 0, players, err
	}
	table.WhiteCastleOO = zobrist.Key(castleVals[0])
	table.WhiteCastleOOO = zobrist.Key(castleVals[1])
	table.BlackCastleOO = zobrist.Key(castleVals[2])
	table.BlackCastleOOO = zobrist.Key(castleVals[3])

	epKeyVals, err := lr.uint64s("zobrist-en-passant", int(FileLength))
	if err != nil {
		return nil, 0, players, err
	}
	for f := FileA; f <= FileH; f++ {
		table.EnPassantFile[f] = zobrist.Key(epKeyVals[f])
	}

	sideVals, err := lr.uint64s("zobrist-side-to-move", 1)
	if err != nil {
		return nil, 0, players, err
	}
	table.SideToMove = zobrist.Key(sideVals[0])

	statusVals, err := lr.ints("game-status", 1)
	if err != nil {
		return nil, 0, players, err
	}
	st := status.GameStatus(statusVals[0])
	if !st.IsValid() {
		return nil, 0, players, &ErrMalformedSave{Field: "game-status", Err: fmt.Errorf("invalid status ordinal %d", statusVals[0])}
	}

	// Everything parsed without error: install the table and build the
	// position against it.
	zobrist.Base = table

	var pos position.Position
	for _, c := range [2]Color{White, Black} {
		for i, kind := range pieceOrder {
			bb := Bitboard(pieceBb[c][i])
			for sq := SqA1; int(sq) < SqLength; sq++ {
				if bb.Has(sq) {
					pos.PutPiece(MakePiece(c, kind), sq)
				}
			}
		}
	}

	pos.SetWhiteKingMoved(whiteKingMoved)
	pos.SetWhiteRookA1Moved(whiteRookA1Moved)
	pos.SetWhiteRookH1Moved(whiteRookH1Moved)
	pos.SetBlackKingMoved(blackKingMoved)
	pos.SetBlackRookA8Moved(blackRookA8Moved)
	pos.SetBlackRookH8Moved(blackRookH8Moved)

	// Fold in exactly the keys execute.Apply would have left toggled
	// on at this point in a live game: a castling key is present once
	// its right is gone (never re-toggled after), an en-passant file
	// key is present only while that target is live, and the
	// side-to-move key is present iff an odd number of plies have been
	// played - which, since White always moves first, is exactly
	// "Black to move".
	if whiteKingMoved || whiteRookA1Moved {
		pos.ToggleZobrist(zobrist.Base.WhiteCastleOOO)
	}
	if whiteKingMoved || whiteRookH1Moved {
		pos.ToggleZobrist(zobrist.Base.WhiteCastleOO)
	}
	if blackKingMoved || blackRookA8Moved {
		pos.ToggleZobrist(zobrist.Base.BlackCastleOOO)
	}
	if blackKingMoved || blackRookH8Moved {
		pos.ToggleZobrist(zobrist.Base.BlackCastleOO)
	}
	pos.SetEnPassantTarget(epTarget)
	if epTarget != SqNone {
		pos.ToggleZobrist(zobrist.Base.EnPassantFile[epTarget.FileOf()])
	}
	if current == Black {
		pos.ToggleZobrist(zobrist.Base.SideToMove)
	}

	pos.SetHalfMoveClock(halfMoveClock)
	pos.SetHistory(history)
	pos.SetStatus(st)

	return &pos, current, players, nil
}
