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

package search

import (
	"sort"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// moveOrderKey is the composite move-ordering key (§4.6 step 6): captures
// sort before quiet moves, ties broken by MVV-LVA plus a small promotion
// and development/castling bonus, then by killer status, then by the
// history-heuristic score.
type moveOrderKey struct {
	isCapture     bool
	tacticalValue int
	isKiller      bool
	historyScore  int64
}

// greater reports whether k should be searched before o.
func (k moveOrderKey) greater(o moveOrderKey) bool {
	if k.isCapture != o.isCapture {
		return k.isCapture
	}
	if k.tacticalValue != o.tacticalValue {
		return k.tacticalValue > o.tacticalValue
	}
	if k.isKiller != o.isKiller {
		return k.isKiller
	}
	return k.historyScore > o.historyScore
}

// startMinorSquares mirrors the squares the evaluator uses to detect
// minor-piece development (internal/eval/terms.go); duplicated here as a
// tiny literal rather than exported, since move ordering only needs a
// coarse bonus, not the full term.
var startMinorSquares = [2][4]Square{
	{SqB1, SqG1, SqC1, SqF1},
	{SqB8, SqG8, SqC8, SqF8},
}

const (
	castlingOrderBonus    = 30
	developmentOrderBonus = 10
)

// moveOrderScore computes the ordering key for m before it is applied to p.
func (s *Search) moveOrderScore(p *position.Position, us Color, m Move, ply int) moveOrderKey {
	captured := p.PieceAt(m.To())
	isCapture := captured != PieceNone || m.MoveType() == EnPassant
	mover := p.PieceAt(m.From())

	tactical := 0
	if isCapture {
		capturedValue := int(captured.MaterialValue())
		if m.MoveType() == EnPassant {
			capturedValue = int(Pawn.MaterialValue())
		}
		tactical = capturedValue*10 - int(mover.MaterialValue())
	}
	if m.MoveType() == Promotion {
		tactical += int(m.PromotionType().MaterialValue())
	}
	if m.MoveType() == Castling {
		tactical += castlingOrderBonus
	} else if mt := mover.TypeOf(); mt == Knight || mt == Bishop {
		for _, sq := range startMinorSquares[us] {
			if m.From() == sq {
				tactical += developmentOrderBonus
				break
			}
		}
	}

	return moveOrderKey{
		isCapture:     isCapture,
		tacticalValue: tactical,
		isKiller:      config.Settings.Search.UseKiller && s.hist.IsKiller(ply, m),
		historyScore:  historyScoreIfQuiet(s, us, isCapture, m),
	}
}

func historyScoreIfQuiet(s *Search, us Color, isCapture bool, m Move) int64 {
	if isCapture || !config.Settings.Search.UseHistory {
		return 0
	}
	return s.hist.Score(us, m)
}

// scoredMove pairs a move with its ordering key so the two can be sorted
// together without the key array drifting out of sync with a separately
// sorted move array.
type scoredMove struct {
	move Move
	key  moveOrderKey
}

// sortMoves orders moves in place by moveOrderScore, most promising first.
func (s *Search) sortMoves(p *position.Position, us Color, moves []Move, ply int) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, key: s.moveOrderScore(p, us, m, ply)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].key.greater(scored[j].key)
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
