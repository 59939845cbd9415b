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

package movegen

import (
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes (and a few move-type breakdowns) reachable from a
// position at a fixed depth, walking the full legal move tree. It exists to
// validate move generation against known perft node counts, not to play
// games, so every node is visited regardless of evaluation.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft (started in a goroutine) abort at the
// next opportunity.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft for every depth from startDepth to
// endDepth, stopping early if Stop has been called.
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("perft multi-depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a perft walk from fen to depth, printing a node-count
// and timing summary. If started in a goroutine it can be stopped via Stop.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounter()
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("perft: invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.walk(depth, pos)
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// CountNodesParallel counts perft leaf nodes the same way StartPerft's walk
// does, but fans the root moves out with one goroutine per root move (no
// cap on how many run at once; this is the one concurrency seam this search
// admits): each worker clones pos so it can DoMove/UndoMove its own subtree
// without racing the others, then the per-root counts are summed. It skips
// the check/mate/capture breakdown StartPerft prints, since that bookkeeping
// is cheap to redo sequentially but not worth threading through a fan-out.
func CountNodesParallel(pos *position.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := GenerateLegal(pos, AllMoves)
	counts := make([]uint64, len(moves))

	g := new(errgroup.Group)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			child := pos.Clone()
			child.DoMove(move)
			counts[i] = countNodes(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

func countNodes(pos *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var total uint64
	for _, move := range GenerateLegal(pos, AllMoves) {
		pos.DoMove(move)
		total += countNodes(pos, depth-1)
		pos.UndoMove()
	}
	return total
}

func (perft *Perft) walk(depth int, pos *position.Position) uint64 {
	totalNodes := uint64(0)
	moves := GenerateLegal(pos, AllMoves)
	for _, move := range moves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			pos.DoMove(move)
			totalNodes += perft.walk(depth-1, pos)
			pos.UndoMove()
			continue
		}
		capture := pos.PieceAt(move.To()) != PieceNone
		enpassant := move.MoveType() == EnPassant
		castling := move.MoveType() == Castling
		promotion := move.MoveType() == Promotion
		pos.DoMove(move)
		totalNodes++
		if enpassant {
			perft.EnpassantCounter++
			perft.CaptureCounter++
		}
		if capture {
			perft.CaptureCounter++
		}
		if castling {
			perft.CastleCounter++
		}
		if promotion {
			perft.PromotionCounter++
		}
		if pos.InCheck() {
			perft.CheckCounter++
			if len(GenerateLegal(pos, AllMoves)) == 0 {
				perft.CheckMateCounter++
			}
		}
		pos.UndoMove()
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
