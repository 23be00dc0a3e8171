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

package status

import . "github.com/mkopp/gochess/types"

// Resolve implements the StatusResolver ordered checks, run after every
// applied move from the perspective of opp, the side now on the move.
// It takes the board facts its caller has already computed rather than
// a Position, so that the package stays a leaf with no dependency on
// position/movegen/validate.
//
// current is the status carried into the call; a resignation or draw
// agreement already recorded overrides anything the board state would
// otherwise resolve to. legalMoveCount is len(generateAllLegal(pos,
// opp)). oppInCheck is whether opp's king square is attacked by the
// side that just moved. insufficientMaterial, maxRepetitionCount and
// halfMoveClock mirror the Position accessors of the same purpose.
func Resolve(current GameStatus, opp Color, legalMoveCount int, oppInCheck bool, insufficientMaterial bool, maxRepetitionCount int, halfMoveClock int) GameStatus {
	switch current {
	case WhiteResigns, BlackResigns, DrawAgreement:
		return current
	}

	if legalMoveCount == 0 {
		if oppInCheck {
			if opp == White {
				return WhiteCheckmated
			}
			return BlackCheckmated
		}
		return Stalemate
	}

	if insufficientMaterial {
		return InsufficientMaterial
	}
	if maxRepetitionCount >= 3 {
		return ThreefoldRepetition
	}
	if halfMoveClock >= 100 {
		return FiftyMoveDraw
	}
	return InProgress
}
