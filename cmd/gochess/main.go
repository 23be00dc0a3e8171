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

// Command gochess is the interactive front end: a flag-driven launcher
// around engine/player/render/persist that reads moves from stdin and
// prints the board after every ply.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopp/gochess/config"
	"github.com/mkopp/gochess/engine"
	"github.com/mkopp/gochess/logging"
	"github.com/mkopp/gochess/persist"
	"github.com/mkopp/gochess/player"
	"github.com/mkopp/gochess/position"
	"github.com/mkopp/gochess/render"
	. "github.com/mkopp/gochess/types"
)

var out = message.NewPrinter(language.English)

var log = logging.GetLog("main")

func main() {
	help := flag.Bool("help", false, "prints usage and exits")
	flag.BoolVar(help, "h", false, "prints usage and exits (shorthand)")
	newGame := flag.Bool("new", false, "start a fresh game (default if no -file is given)")
	flag.BoolVar(newGame, "n", false, "start a fresh game (shorthand)")
	filePath := flag.String("file", "", "load a saved game and enter the interactive loop")
	flag.StringVar(filePath, "f", "", "load a saved game (shorthand)")
	evalPath := flag.String("eval", "", "load a saved game, print status and material score, and exit")
	flag.StringVar(evalPath, "e", "", "load a saved game and print its status (shorthand)")
	mode := flag.String("mode", "", "game mode: hvh|hva|ava (default from config, normally hvh)")
	configFile := flag.String("config", "", "path to configuration settings file")
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	config.Setup(*configFile)

	if *evalPath != "" {
		runEval(*evalPath)
		return
	}

	modeStr := *mode
	if modeStr == "" {
		modeStr = config.Settings.Game.DefaultMode
	}
	players, err := playersForMode(modeStr)
	if err != nil {
		out.Println(err)
		os.Exit(1)
	}

	var pos *position.Position
	var side Color

	if *filePath != "" {
		pos, side, players, err = loadGame(*filePath)
		if err != nil {
			out.Println(err)
			os.Exit(1)
		}
	} else {
		// -new is the implicit default when no -file is given.
		pos = engine.NewGame()
		side = White
	}

	runLoop(pos, side, players)
}

// playersForMode maps the --mode flag to the two player slots, White
// first then Black, per spec (hvh: both human, hva: White human /
// Black AI, ava: both AI).
func playersForMode(mode string) ([2]player.Type, error) {
	switch strings.ToLower(mode) {
	case "", "hvh", "human-vs-human":
		return [2]player.Type{player.Human, player.Human}, nil
	case "hva", "human-vs-ai":
		return [2]player.Type{player.Human, player.GreedyAI}, nil
	case "ava", "ai-vs-ai":
		return [2]player.Type{player.GreedyAI, player.GreedyAI}, nil
	default:
		return [2]player.Type{}, fmt.Errorf("gochess: unknown --mode %q (want hvh, hva or ava)", mode)
	}
}

func loadGame(path string) (*position.Position, Color, [2]player.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, White, [2]player.Type{}, fmt.Errorf("gochess: %w", err)
	}
	defer f.Close()
	return persist.Load(f)
}

func saveGame(path string, pos *position.Position, side Color, players [2]player.Type) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gochess: %w", err)
	}
	defer f.Close()
	return persist.Save(f, pos, side, players)
}

// runEval implements -e/--eval: load, print status and material score
// from White's and from Black's perspective, exit without entering the
// prompt loop.
func runEval(path string) {
	pos, _, _, err := loadGame(path)
	if err != nil {
		out.Println(err)
		os.Exit(1)
	}
	out.Printf("Status: %s\n", engine.Status(pos))
	out.Printf("Material (White): %+d\n", engine.MaterialScore(pos, White))
	out.Printf("Material (Black): %+d\n", engine.MaterialScore(pos, Black))
}

// runLoop drives the interactive prompt: print the board, resolve the
// side to move's input (human stdin or an auto-player's chosen move),
// apply it, and repeat until the game reaches a terminal status, a
// resignation, or an "exit".
func runLoop(pos *position.Position, side Color, players [2]player.Type) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(render.Board(pos, side))

		if pos.Status().IsTerminal() {
			out.Printf("Game over: %s\n", pos.Status())
			return
		}

		var uci string
		if players[side].IsAuto() {
			mv, err := player.ChooseMove(pos, side, players[side])
			if err != nil {
				log.Warningf("auto-player %s could not choose a move: %v", players[side], err)
				out.Printf("%s has no legal move.\n", side)
				return
			}
			uci = mv.StringUci()
			out.Printf("%s (%s) plays %s\n", side, players[side], uci)
		} else {
			out.Printf("%s to move> ", side)
			if !scanner.Scan() {
				return
			}
			uci = strings.TrimSpace(scanner.Text())
		}

		switch uci {
		case "exit":
			return
		case "resign":
			out.Printf("%s resigns.\n", side)
			return
		case "draw":
			out.Println("Draw offer noted; continuing is not yet automated, use 'exit' to stop.")
			continue
		case "save":
			out.Print("save path> ")
			if !scanner.Scan() {
				continue
			}
			path := strings.TrimSpace(scanner.Text())
			if err := saveGame(path, pos, side, players); err != nil {
				out.Println(err)
			} else {
				out.Printf("saved to %s\n", path)
			}
			continue
		}

		mv, err := engine.ParseMove(uci)
		if err != nil {
			out.Println(err)
			continue
		}
		if !engine.IsLegal(pos, mv, side) {
			out.Println("illegal move, try again")
			continue
		}
		engine.Apply(pos, mv, side)
		side = side.Flip()
	}
}
