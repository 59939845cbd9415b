//
// corvid - a bitboard chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/game"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/testsuite"
	. "github.com/corvidchess/corvid/internal/types"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft on the start position (or -fen) to the given depth")
	perftParallel := flag.Bool("perftparallel", false, "fans the -perft root moves out across a worker pool instead of a single goroutine")
	fen := flag.String("fen", position.StartFEN, "FEN for -perft and -go")
	depth := flag.Int("depth", 6, "search depth limit for -go and self-play")
	movetimeMs := flag.Int("movetime", 0, "search time budget in milliseconds for -go and self-play (0 = unbounded)")
	maxNodes := flag.Int64("nodes", 0, "search node budget for -go and self-play (0 = unbounded)")
	goSearch := flag.Bool("go", false, "runs a single choose_move against -fen and prints the result")
	selfPlay := flag.Bool("selfplay", false, "runs an interactive self-play loop from -fen, reading moves from stdin")
	testSuite := flag.String("testsuite", "", "path to an EPD file to run as a bm/am/dm test suite")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile (cpu.pprof) for the run, for use with\ngo tool pprof -http=localhost:8080 cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}

	switch {
	case *perft != 0 && *perftParallel:
		runPerftParallel(*fen, *perft)
	case *perft != 0:
		runPerft(*fen, *perft)
	case *goSearch:
		runGoSearch(*fen, *depth, *movetimeMs, *maxNodes)
	case *selfPlay:
		runSelfPlay(*fen, *depth, *movetimeMs, *maxNodes)
	case *testSuite != "":
		runTestSuite(*testSuite, *depth, *movetimeMs)
	default:
		flag.Usage()
	}
}

func printVersionInfo() {
	out.Printf("corvid %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

func runPerft(fen string, maxDepth int) {
	var p movegen.Perft
	for d := 1; d <= maxDepth; d++ {
		p.StartPerft(fen, d)
	}
}

func runPerftParallel(fen string, depth int) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	start := time.Now()
	nodes, err := movegen.CountNodesParallel(pos, depth)
	if err != nil {
		out.Printf("perft: %v\n", err)
		return
	}
	elapsed := time.Since(start)
	out.Printf("Nodes: %d  Time: %s  NPS: %d nps\n", nodes, elapsed, (nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
}

func searchLimits(depth, movetimeMs int, maxNodes int64) search.Limits {
	limits := search.Limits{MaxDepth: depth, MaxNodes: uint64(maxNodes)}
	if movetimeMs > 0 {
		limits.TimeBudget = time.Duration(movetimeMs) * time.Millisecond
	}
	return limits
}

func runTestSuite(path string, depth, movetimeMs int) {
	limit := time.Duration(movetimeMs) * time.Millisecond
	suite, err := testsuite.Load(path, depth, limit)
	if err != nil {
		out.Printf("failed to load test suite %q: %v\n", path, err)
		return
	}
	passed := suite.Run()
	out.Printf("%d/%d passed\n", passed, len(suite.Tests))
}

func runGoSearch(fen string, depth, movetimeMs int, maxNodes int64) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	s := search.NewSearch()
	result := s.ChooseMove(pos, searchLimits(depth, movetimeMs, maxNodes))
	out.Println(result.String())
}

// runSelfPlay drives a Game interactively from stdin: each line is either
// an algebraic move pair ("e2e4", optionally with a trailing promotion
// letter like "e7e8q"), "go" to have the engine choose and play a move, or
// "quit" to exit.
func runSelfPlay(fen string, depth, movetimeMs int, maxNodes int64) {
	g, err := game.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	s := search.NewSearch()
	limits := searchLimits(depth, movetimeMs, maxNodes)

	scanner := bufio.NewScanner(os.Stdin)
	out.Printf("%s\n%s\n", g.Position().String(), g.GameStatus())
	for !g.IsOver() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit":
			return
		case line == "go":
			result := s.ChooseMove(g.Position(), limits)
			if !result.BestMove.IsValid() {
				out.Println("no legal move")
				return
			}
			applyEngineMove(g, result.BestMove)
			if evicted, err := s.AgeTranspositionTable(context.Background()); err == nil && evicted > 0 {
				out.Printf("tt: aged out %d stale entries\n", evicted)
			}
		default:
			if err := applyUserMove(g, line); err != nil {
				out.Println(err)
				continue
			}
		}
		out.Printf("%s\n%s\n", g.Position().String(), g.GameStatus())
	}
}

func applyUserMove(g *game.Game, line string) error {
	if len(line) < 4 {
		return fmt.Errorf("malformed move %q", line)
	}
	start, end := line[0:2], line[2:4]
	promotion := ""
	if len(line) > 4 {
		promotion = strings.ToUpper(line[4:5])
	}
	_, err := g.MakeMove(start, end, promotion)
	return err
}

func applyEngineMove(g *game.Game, m Move) {
	uci := m.StringUci()
	start, end := uci[0:2], uci[2:4]
	promotion := ""
	if len(uci) > 4 {
		promotion = strings.ToUpper(uci[4:5])
	}
	if _, err := g.MakeMove(start, end, promotion); err != nil {
		out.Printf("engine produced illegal move %s: %v\n", uci, err)
	}
}
