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

// Package engine is the driver API: the one entry point that composes
// position, movegen, execute, validate and status into the handful of
// calls a CLI or a player needs. Nothing outside this package should
// need to import movegen or validate directly.
package engine

import (
	"fmt"

	"github.com/mkopp/gochess/execute"
	"github.com/mkopp/gochess/movegen"
	"github.com/mkopp/gochess/position"
	"github.com/mkopp/gochess/status"
	. "github.com/mkopp/gochess/types"
	"github.com/mkopp/gochess/validate"
)

// ErrParseMove wraps a UCI token ParseMove could not decode.
type ErrParseMove struct {
	Token string
	Err   error
}

func (e *ErrParseMove) Error() string {
	return fmt.Sprintf("engine: malformed move %q: %v", e.Token, e.Err)
}

func (e *ErrParseMove) Unwrap() error { return e.Err }

// NewGame returns a freshly set up Position.
func NewGame() *position.Position {
	p := position.NewGame()
	return &p
}

// ParseMove decodes a UCI move token ("e2e4", "a7a8q") into a Move.
// Only the syntax is checked here: square letters/digits and, for a
// 5-character token, a trailing promotion letter in {q,r,b,n}. Its
// move type is provisional (Normal, or Promotion for a 5-character
// token) - IsLegal and Apply resolve the real type (Castling,
// EnPassant) against a Position before using it, since that can only
// be known in context.
func ParseMove(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return MoveNone, &ErrParseMove{Token: uci, Err: fmt.Errorf("expected 4 or 5 characters, got %d", len(uci))}
	}
	from := MakeSquare(uci[0:2])
	to := MakeSquare(uci[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, &ErrParseMove{Token: uci, Err: fmt.Errorf("invalid square letters")}
	}
	if len(uci) == 4 {
		return CreateMove(from, to, Normal, PkNone), nil
	}
	promo, ok := promotionKindOf(uci[4])
	if !ok {
		return MoveNone, &ErrParseMove{Token: uci, Err: fmt.Errorf("unknown promotion piece %q", uci[4])}
	}
	return CreateMove(from, to, Promotion, promo), nil
}

func promotionKindOf(c byte) (PieceKind, bool) {
	switch c {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	default:
		return PkNone, false
	}
}

// canonicalize resolves a (from, to, promotion) coordinate triple -
// the only part of a move a UCI token carries - against the actual
// pseudo-legal move list, which is the sole source of truth for move
// type (Castling and EnPassant can't be told apart from Normal by
// coordinates alone). Reports false if no pseudo-legal move matches.
func canonicalize(pos *position.Position, mv Move, side Color) (Move, bool) {
	from, to, promo := mv.From(), mv.To(), mv.PromotionType()
	for _, cand := range movegen.GeneratePseudoLegal(pos, side) {
		if cand.From() != from || cand.To() != to {
			continue
		}
		if (cand.MoveType() == Promotion) != (mv.MoveType() == Promotion) {
			continue
		}
		if cand.MoveType() == Promotion && cand.PromotionType() != promo {
			continue
		}
		return cand, true
	}
	return MoveNone, false
}

// IsLegal reports whether mv (identified by its from/to/promotion
// coordinates) is legal for side to play in pos.
func IsLegal(pos *position.Position, mv Move, side Color) bool {
	cand, ok := canonicalize(pos, mv, side)
	if !ok {
		return false
	}
	return validate.IsLegal(pos, cand, side)
}

// LegalMoves enumerates every legal move of side in pos: the
// pseudo-legal list filtered through validate.IsLegal, deduplicated by
// (from, to, promotion).
func LegalMoves(pos *position.Position, side Color) []Move {
	pseudo := movegen.GeneratePseudoLegal(pos, side)
	legal := make([]Move, 0, len(pseudo))
	seen := make(map[[3]int]bool, len(pseudo))
	for _, mv := range pseudo {
		if !validate.IsLegal(pos, mv, side) {
			continue
		}
		key := [3]int{int(mv.From()), int(mv.To()), int(mv.PromotionType())}
		if seen[key] {
			continue
		}
		seen[key] = true
		legal = append(legal, mv)
	}
	return legal
}

// Apply resolves mv's real move type against pos, verifies it is
// legal, plays it, and recomputes the game status (spec §4.5,
// StatusResolver) from the perspective of the side now on the move. A
// no-op if pos is already terminal or mv is not legal.
func Apply(pos *position.Position, mv Move, side Color) {
	if pos.Status().IsTerminal() {
		return
	}
	cand, ok := canonicalize(pos, mv, side)
	if !ok || !validate.IsLegal(pos, cand, side) {
		return
	}

	execute.Apply(pos, cand, side)

	opp := side.Flip()
	legal := LegalMoves(pos, opp)
	oppKingBb := pos.PieceBb(opp, King)
	oppInCheck := oppKingBb != 0 && movegen.IsAttacked(pos, oppKingBb.Lsb(), side)

	pos.SetStatus(status.Resolve(
		pos.Status(),
		opp,
		len(legal),
		oppInCheck,
		insufficientMaterial(pos),
		pos.MaxRepetitionCount(),
		pos.HalfMoveClock(),
	))
}

// Status returns pos's current game status. It is a plain accessor:
// the status is kept current by Apply after every move, per spec §4.5
// ("called after every applied move").
func Status(pos *position.Position) status.GameStatus {
	return pos.Status()
}
