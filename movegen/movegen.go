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

// Package movegen enumerates pseudo-legal moves for a side and derives
// the attack set a side projects onto the board. It knows nothing
// about king safety or castling legality beyond "is the path clear" -
// that filtering belongs to the validate package, which calls back
// into this one.
package movegen

import (
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

var knightOffsets = [8]int{6, 10, 15, 17, -6, -10, -15, -17}

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}
var queenDirs = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

var (
	whiteKingsidePath  = SqF1.Bitboard() | SqG1.Bitboard()
	whiteQueensidePath = SqB1.Bitboard() | SqC1.Bitboard() | SqD1.Bitboard()
	blackKingsidePath  = SqF8.Bitboard() | SqG8.Bitboard()
	blackQueensidePath = SqB8.Bitboard() | SqC8.Bitboard() | SqD8.Bitboard()
)

// GeneratePseudoLegal enumerates every pseudo-legal move of side in pos
// per spec §4.3: fixed offset tables for pawns and knights, ray walks
// for sliding pieces, eight king steps plus the two castling
// candidates (path-clear only; check/attack legality is the
// validator's job).
func GeneratePseudoLegal(pos *position.Position, side Color) MoveList {
	moves := make(MoveList, 0, 32)
	generatePawnMoves(pos, side, &moves)
	generateKnightMoves(pos, side, &moves)
	generateSlidingMoves(pos, side, Bishop, bishopDirs[:], &moves)
	generateSlidingMoves(pos, side, Rook, rookDirs[:], &moves)
	generateSlidingMoves(pos, side, Queen, queenDirs[:], &moves)
	generateKingMoves(pos, side, &moves)
	generateCastlingCandidates(pos, side, &moves)
	return moves
}

// AttacksOf returns the union of destination squares of every
// predicate-B pseudo-legal move of color by, excluding castling
// (castling is never itself an attack).
func AttacksOf(pos *position.Position, by Color) Bitboard {
	var bb Bitboard
	moves := make(MoveList, 0, 32)
	generatePawnMoves(pos, by, &moves)
	generateKnightMoves(pos, by, &moves)
	generateSlidingMoves(pos, by, Bishop, bishopDirs[:], &moves)
	generateSlidingMoves(pos, by, Rook, rookDirs[:], &moves)
	generateSlidingMoves(pos, by, Queen, queenDirs[:], &moves)
	generateKingMoves(pos, by, &moves)
	for _, m := range moves {
		bb.PushSquare(m.To())
	}
	return bb
}

// IsAttacked reports whether sq is in by's attack set.
func IsAttacked(pos *position.Position, sq Square, by Color) bool {
	return AttacksOf(pos, by).Has(sq)
}

func addPawnDestination(side Color, from Square, to Square, moves *MoveList) {
	if to.RankOf() == side.PromotionRank() {
		moves.PushBack(CreateMove(from, to, Promotion, Queen))
		moves.PushBack(CreateMove(from, to, Promotion, Rook))
		moves.PushBack(CreateMove(from, to, Promotion, Bishop))
		moves.PushBack(CreateMove(from, to, Promotion, Knight))
		return
	}
	moves.PushBack(CreateMove(from, to, Normal, PkNone))
}

func generatePawnMoves(pos *position.Position, side Color, moves *MoveList) {
	forward := North
	diagLeft, diagRight := Northwest, Northeast
	if side == Black {
		forward = South
		diagLeft, diagRight = Southwest, Southeast
	}

	pawns := pos.PieceBb(side, Pawn)
	for pawns != 0 {
		from := pawns.PopLsb()

		if to := from.To(forward); to != SqNone {
			if _, occ := pos.PieceAt(to); !occ {
				addPawnDestination(side, from, to, moves)
				if from.RankOf() == side.PawnHomeRank() {
					if to2 := to.To(forward); to2 != SqNone {
						if _, occ2 := pos.PieceAt(to2); !occ2 {
							moves.PushBack(CreateMove(from, to2, Normal, PkNone))
						}
					}
				}
			}
		}

		for _, d := range [2]Direction{diagLeft, diagRight} {
			to := from.To(d)
			if to == SqNone {
				continue
			}
			if pc, occ := pos.PieceAt(to); occ {
				if pc.ColorOf() != side {
					addPawnDestination(side, from, to, moves)
				}
			} else if to == pos.EnPassantTarget() {
				moves.PushBack(CreateMove(from, to, EnPassant, PkNone))
			}
		}
	}
}

func generateKnightMoves(pos *position.Position, side Color, moves *MoveList) {
	knights := pos.PieceBb(side, Knight)
	for knights != 0 {
		from := knights.PopLsb()
		for _, off := range knightOffsets {
			idx := int(from) + off
			if idx < 0 || idx > int(SqH8) {
				continue
			}
			to := Square(idx)
			fd := FileDistance(from.FileOf(), to.FileOf())
			rd := RankDistance(from.RankOf(), to.RankOf())
			if !((fd == 1 && rd == 2) || (fd == 2 && rd == 1)) {
				continue
			}
			if pc, occ := pos.PieceAt(to); occ && pc.ColorOf() == side {
				continue
			}
			moves.PushBack(CreateMove(from, to, Normal, PkNone))
		}
	}
}

func generateSlidingMoves(pos *position.Position, side Color, kind PieceKind, dirs []Direction, moves *MoveList) {
	pieces := pos.PieceBb(side, kind)
	for pieces != 0 {
		from := pieces.PopLsb()
		for _, d := range dirs {
			for to := from.To(d); to != SqNone; to = to.To(d) {
				pc, occ := pos.PieceAt(to)
				if occ {
					if pc.ColorOf() != side {
						moves.PushBack(CreateMove(from, to, Normal, PkNone))
					}
					break
				}
				moves.PushBack(CreateMove(from, to, Normal, PkNone))
			}
		}
	}
}

func generateKingMoves(pos *position.Position, side Color, moves *MoveList) {
	kings := pos.PieceBb(side, King)
	if kings == 0 {
		return
	}
	from := kings.Lsb()
	for _, d := range queenDirs {
		to := from.To(d)
		if to == SqNone {
			continue
		}
		if pc, occ := pos.PieceAt(to); occ && pc.ColorOf() == side {
			continue
		}
		moves.PushBack(CreateMove(from, to, Normal, PkNone))
	}
}

func generateCastlingCandidates(pos *position.Position, side Color, moves *MoveList) {
	occ := pos.Occupied()
	if side == White {
		if !pos.WhiteKingMoved() && !pos.WhiteRookH1Moved() && occ&whiteKingsidePath == 0 {
			moves.PushBack(CreateMove(SqE1, SqG1, Castling, PkNone))
		}
		if !pos.WhiteKingMoved() && !pos.WhiteRookA1Moved() && occ&whiteQueensidePath == 0 {
			moves.PushBack(CreateMove(SqE1, SqC1, Castling, PkNone))
		}
		return
	}
	if !pos.BlackKingMoved() && !pos.BlackRookH8Moved() && occ&blackKingsidePath == 0 {
		moves.PushBack(CreateMove(SqE8, SqG8, Castling, PkNone))
	}
	if !pos.BlackKingMoved() && !pos.BlackRookA8Moved() && occ&blackQueensidePath == 0 {
		moves.PushBack(CreateMove(SqE8, SqC8, Castling, PkNone))
	}
}
