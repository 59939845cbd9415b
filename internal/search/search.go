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

// Package search implements iterative-deepening alpha-beta search over a
// Position: quiescence search at the horizon, a transposition table, and
// killer/history move ordering, null-move pruning and late-move reductions
// layered on top (§4.6). The top-level entry point is ChooseMove.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/history"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxPly (types.MaxPly, dot-imported) bounds recursion depth: iterative
// deepening never requests more plies than this, qsearch clamps to it
// regardless of QuiescenceDepth, and it's the same bound mate-score
// ply-distance encoding assumes, so the two can't drift apart.

// Search holds everything that needs to persist across iterative-deepening
// iterations, and across successive calls to ChooseMove within one game:
// the transposition table and the killer/history tables (§4.6 "Between
// iterations the transposition table, killer tables, and history table are
// preserved").
type Search struct {
	log *logging.Logger

	tt   *tt.Table
	eval *eval.Evaluator
	hist *history.History

	statistics Statistics

	rootMoves []Move
	pv        [MaxPly + 1][]Move

	nodesVisited uint64
	stopFlag     bool
	startTime    time.Time
	deadline     time.Time
	limits       Limits
}

// NewSearch creates a Search with a fresh transposition table sized from
// config, and empty killer/history tables.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetLog("search"),
		tt:   tt.NewTable(log2(config.Settings.Search.TtBuckets)),
		eval: eval.NewEvaluator(),
		hist: history.New(),
	}
}

// log2 returns the base-2 logarithm of n, rounding down, for n >= 1.
// config stores the TT bucket count directly (§4.4) rather than a log2
// exponent, so NewTable's sizeLog2 parameter is derived here.
func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

// NewGame clears the transposition table and move-ordering tables, as if
// starting a fresh game.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.hist.Clear()
}

// ttMaxAge bounds how many Store generations an entry may lag behind before
// AgeTranspositionTable evicts it.
const ttMaxAge = 8

// AgeTranspositionTable evicts stale transposition-table entries without a
// full Clear, so a long-running game session (many successive ChooseMove
// calls, as in self-play) bounds table growth between moves rather than
// only at NewGame (§5).
func (s *Search) AgeTranspositionTable(ctx context.Context) (uint64, error) {
	return s.tt.AgeSweep(ctx, ttMaxAge)
}

// ChooseMove is the top-level entry point (§4.6): it runs iterative
// deepening alpha-beta on a clone of pos (the caller's position is left
// untouched) and returns the best move found within limits.
func (s *Search) ChooseMove(pos *position.Position, limits Limits) Result {
	p := pos.Clone()

	s.startTime = time.Now()
	s.deadline = time.Time{}
	if limits.TimeBudget > 0 {
		s.deadline = s.startTime.Add(limits.TimeBudget)
	}
	s.limits = limits
	s.nodesVisited = 0
	s.stopFlag = false
	s.statistics = Statistics{}
	for i := range s.pv {
		s.pv[i] = nil
	}

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > config.Settings.Search.MaxDepth {
		maxDepth = config.Settings.Search.MaxDepth
	}
	if maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	if p.HasRepeated() || p.HalfMoveClock() >= 100 {
		return Result{BestValue: ValueDraw}
	}

	s.rootMoves = movegen.GenerateLegal(p, movegen.AllMoves)
	if len(s.rootMoves) == 0 {
		if p.InCheck() {
			return Result{BestValue: -ValueCheckmate}
		}
		return Result{BestValue: ValueDraw}
	}
	s.sortRootMoves(p)

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth

		value := s.rootSearch(p, depth, -ValueInf, ValueInf)

		if s.stopConditions() && depth > 1 {
			break
		}

		result = Result{
			BestMove:    s.rootMoves[0],
			BestValue:   value,
			SearchDepth: depth,
			ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
			Nodes:       s.nodesVisited,
		}

		s.log.Info(out.Sprintf("depth %d seldepth %d nodes %d nps %d value %s pv %s",
			depth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited, s.nps(),
			value.String(), s.pvString()))

		if len(s.rootMoves) == 1 {
			break
		}
		if s.stopConditions() {
			break
		}
	}
	result.SearchTime = time.Since(s.startTime)
	s.log.Info(out.Sprintf("search finished: %s", result.String()))
	return result
}

// stopConditions reports whether the search should abandon any further
// recursion: an explicit stop, a node budget, or a wall-clock deadline
// (§4.6 "checked at each recursion entry").
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.limits.MaxNodes > 0 && s.nodesVisited >= s.limits.MaxNodes {
		s.stopFlag = true
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.stopFlag = true
		return true
	}
	return false
}

func (s *Search) nps() uint64 {
	elapsed := time.Since(s.startTime)
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(s.nodesVisited) / elapsed.Seconds())
}

func (s *Search) pvString() string {
	line := s.pv[0]
	sb := ""
	for i, m := range line {
		if i > 0 {
			sb += " "
		}
		sb += m.StringUci()
	}
	return sb
}

// sortRootMoves orders the root move list by the same composite key used
// inside the tree, with ply 0 for killer lookups, then tries the
// transposition table's move first, exactly as step 6 of search does for
// every interior node. This is what lets a root position seeded with an
// exact TT entry return that entry's move even under a one-node budget:
// bestMove at the root otherwise falls out of whichever move happens to
// sort first, since a single visited node never gets far enough to refute it.
func (s *Search) sortRootMoves(p *position.Position) {
	us := p.SideToMove()
	s.sortMoves(p, us, s.rootMoves, 0)
	if config.Settings.Search.UseTT {
		if entry, _ := s.tt.Probe(p.ZobristKey(), 0, -ValueInf, ValueInf); entry.Key == p.ZobristKey() && entry.Move != MoveNone {
			bringToFront(s.rootMoves, entry.Move)
		}
	}
}

// bringToFront moves m to index 0 of moves, preserving the relative order
// of everything else, used to replay the previous iteration's (or the
// transposition table's) best move first (§4.6).
func bringToFront(moves []Move, m Move) {
	for i, mv := range moves {
		if mv == m {
			if i > 0 {
				copy(moves[1:i+1], moves[0:i])
				moves[0] = m
			}
			return
		}
	}
}
