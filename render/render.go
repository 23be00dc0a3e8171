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

// Package render prints a Position as a colored Unicode board for an
// interactive terminal, as a friendlier alternative to the plain ASCII
// matrix (*position.Position).String already produces.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mkopp/gochess/engine"
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

var pieceGlyph = [PieceLength]string{
	PieceNone:   " ",
	WhiteKing:   "♔",
	WhitePawn:   "♙",
	WhiteKnight: "♘",
	WhiteBishop: "♗",
	WhiteRook:   "♖",
	WhiteQueen:  "♕",
	BlackKing:   "♚",
	BlackPawn:   "♟",
	BlackKnight: "♞",
	BlackBishop: "♝",
	BlackRook:   "♜",
	BlackQueen:  "♛",
}

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	fileLabel   = color.New(color.Bold)
)

// Board renders pos as an 8x8 grid of colored squares with Unicode
// piece glyphs, rank 8 on top (White's view), followed by a one-line
// status and side-to-move summary - grounded on the alternating
// light/dark-square coloring and rank/file border of daystram/gambit's
// board.Draw, adapted from its raw ANSI escapes to github.com/fatih/color.
func Board(pos *position.Position, toMove Color) string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		fmt.Fprintf(&b, "%s ", r.String())
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			pc, _ := pos.PieceAt(sq)
			glyph := " " + pieceGlyph[pc] + " "
			if (int(f)+int(r))%2 == 0 {
				b.WriteString(darkSquare.Sprint(glyph))
			} else {
				b.WriteString(lightSquare.Sprint(glyph))
			}
		}
		b.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	b.WriteString("  ")
	for f := FileA; f <= FileH; f++ {
		fmt.Fprintf(&b, " %s ", fileLabel.Sprint(f.String()))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s to move - %s\n", toMove, Status(pos, toMove))
	return b.String()
}

// Status summarizes the position's game status and, while the game is
// still in progress, each side's material score - so a CLI prompt can
// print one line after every move without reaching into engine/position
// internals itself.
func Status(pos *position.Position, toMove Color) string {
	st := engine.Status(pos)
	if st.IsTerminal() {
		return st.String()
	}
	return fmt.Sprintf("%s (material %+d/%+d)", st, engine.MaterialScore(pos, White), engine.MaterialScore(pos, Black))
}
