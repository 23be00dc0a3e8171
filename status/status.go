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

// Package status holds the GameStatus enumeration shared by position,
// the resolver that computes it and the driver that consumes it.
package status

// GameStatus is the terminal/non-terminal state of a game. InProgress
// is the only status under which further moves may be applied.
type GameStatus int8

//noinspection GoUnusedConst
const (
	InProgress GameStatus = iota
	WhiteCheckmated
	BlackCheckmated
	Stalemate
	InsufficientMaterial
	FiftyMoveDraw
	ThreefoldRepetition
	DrawAgreement
	WhiteResigns
	BlackResigns

	StatusLength
)

var statusToString = [StatusLength]string{
	"InProgress",
	"WhiteCheckmated",
	"BlackCheckmated",
	"Stalemate",
	"InsufficientMaterial",
	"FiftyMoveDraw",
	"ThreefoldRepetition",
	"DrawAgreement",
	"WhiteResigns",
	"BlackResigns",
}

// String returns a readable name for the status.
func (s GameStatus) String() string {
	if s < InProgress || s >= StatusLength {
		return "Unknown"
	}
	return statusToString[s]
}

// IsTerminal reports whether s ends the game (no further moves accepted).
func (s GameStatus) IsTerminal() bool {
	return s != InProgress
}

// IsValid checks s is one of the defined status values.
func (s GameStatus) IsValid() bool {
	return s >= InProgress && s < StatusLength
}
