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

// Package eval computes a tapered, centipawn value for a chess position
// by combining material, piece-square, king safety, pawn structure and
// mobility terms (§4.5).
package eval

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluator holds the (currently stateless) machinery to score a position.
// It exists, rather than a bare package function, so future terms can cache
// per-position data across calls the way pawnCache does in the teacher's
// evaluator.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog("eval")}
}

// Evaluate returns a centipawn value for pos from the side-to-move's
// perspective: positive favors the side to move.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	if pos.HasInsufficientMaterial() {
		return ValueDraw
	}

	phase := pos.GamePhase()

	total := materialAndPsqt(pos)
	if config.Settings.Eval.UseKingSafety {
		total = total.Add(kingSafety(pos))
	}
	if config.Settings.Eval.UsePawnStructure {
		total = total.Add(pawnStructure(pos))
	}
	if config.Settings.Eval.UseMinorCentralization {
		total = total.Add(minorCentralization(pos))
	}
	if config.Settings.Eval.UseMobility {
		total = total.Add(mobility(pos))
	}
	if config.Settings.Eval.UseOutposts {
		total = total.Add(outposts(pos))
	}
	if config.Settings.Eval.UseDevelopment {
		total = total.Add(developmentAndCastling(pos, phase))
	}

	value := total.Taper(phase)

	// the accumulated score is White-relative; flip for the side to move.
	if pos.SideToMove() == Black {
		value = -value
	}

	// tempo bonuses whoever is to move, so it's added after the flip.
	value += Value(config.Settings.Eval.Tempo)

	return value
}

// Evaluate is the package-level convenience entry point used by search,
// backed by a throwaway Evaluator.
func Evaluate(pos *position.Position) Value {
	return NewEvaluator().Evaluate(pos)
}

// materialAndPsqt sums static piece values and piece-square bonuses for
// every piece on the board, White-relative.
func materialAndPsqt(pos *position.Position) Score {
	var total Score
	if !config.Settings.Eval.UsePsqt {
		for pt := Pawn; pt <= Queen; pt++ {
			diff := int(pos.PiecesBb(White, pt).PopCount()-pos.PiecesBb(Black, pt).PopCount()) * int(pt.MaterialValue())
			total.Mg += diff
			total.Eg += diff
		}
		return total
	}
	for _, c := range [2]Color{White, Black} {
		for pt := King; pt <= Queen; pt++ {
			for bb := pos.PiecesBb(c, pt); bb != 0; {
				sq := bb.PopLsb()
				material := int(pt.MaterialValue())
				if c == Black {
					material = -material
				}
				s := psqtScore(pt, c, sq)
				total.Mg += s.Mg + material
				total.Eg += s.Eg + material
			}
		}
	}
	return total
}
