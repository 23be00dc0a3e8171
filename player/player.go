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

// Package player implements the two auto-player seats (RandomAI,
// GreedyAI) alongside the Human marker used for save/load and the
// hva/ava CLI modes.
package player

import (
	"fmt"
	"math/rand"

	"github.com/mkopp/gochess/engine"
	"github.com/mkopp/gochess/position"
	. "github.com/mkopp/gochess/types"
)

// Type identifies who controls a seat.
type Type int8

const (
	Human Type = iota
	RandomAI
	GreedyAI

	TypeLength
)

var typeToString = [TypeLength]string{"Human", "RandomAI", "GreedyAI"}

// String returns a readable name for the player type.
func (t Type) String() string {
	if t < Human || t >= TypeLength {
		return "Unknown"
	}
	return typeToString[t]
}

// IsValid reports whether t is one of the three defined player types.
func (t Type) IsValid() bool {
	return t >= Human && t < TypeLength
}

// IsAuto reports whether t picks its own moves rather than waiting on
// input from the CLI prompt loop.
func (t Type) IsAuto() bool {
	return t == RandomAI || t == GreedyAI
}

// ChooseMove picks side's next move in pos according to t. Human is not
// a valid argument - the CLI prompt loop supplies a human's move
// itself - and returns an error if passed.
func ChooseMove(pos *position.Position, side Color, t Type) (Move, error) {
	legal := engine.LegalMoves(pos, side)
	if len(legal) == 0 {
		return MoveNone, fmt.Errorf("player: no legal moves for %s", side)
	}
	switch t {
	case RandomAI:
		return legal[rand.Intn(len(legal))], nil
	case GreedyAI:
		return greedyMove(pos, side, legal), nil
	default:
		return MoveNone, fmt.Errorf("player: type %s cannot choose its own move", t)
	}
}

// greedyMove replays each legal move on a throwaway clone, scores the
// result by material from side's perspective, and returns a move
// chosen uniformly among the highest-scoring ones - grounded on the
// original's makeGreedyMove (evaluate every hypothetical successor,
// keep the best-scoring subset, then break ties at random).
func greedyMove(pos *position.Position, side Color, legal []Move) Move {
	best := legal[0]
	bestScore := scoreAfter(pos, side, best)
	var tied []Move
	tied = append(tied, best)

	for _, mv := range legal[1:] {
		score := scoreAfter(pos, side, mv)
		switch {
		case score > bestScore:
			bestScore = score
			tied = tied[:0]
			tied = append(tied, mv)
		case score == bestScore:
			tied = append(tied, mv)
		}
	}
	return tied[rand.Intn(len(tied))]
}

func scoreAfter(pos *position.Position, side Color, mv Move) int {
	clone := pos.Clone()
	engine.Apply(&clone, mv, side)
	return engine.MaterialScore(&clone, side)
}
