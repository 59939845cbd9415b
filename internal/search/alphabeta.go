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
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// rootSearch searches every root move with the full window (§4.6). Root
// moves are treated separately from search so the best move of the
// iteration can be read straight off without threading an extra "ply==0"
// case through search itself.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) Value {
	bestValue := -ValueInf
	bestMove := MoveNone

	for _, m := range s.rootMoves {
		p.DoMove(m)
		s.nodesVisited++

		var value Value
		if p.HasRepeated() || p.HalfMoveClock() >= 100 {
			value = ValueDraw
		} else {
			value = -s.search(p, depth-1, 1, -beta, -alpha, true)
		}
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
			savePV(m, s.pv[1], &s.pv[0])
			if value > alpha {
				alpha = value
			}
		}
		if s.stopConditions() {
			break
		}
	}

	if bestMove != MoveNone {
		bringToFront(s.rootMoves, bestMove)
	}
	return bestValue
}

// search is the interior alpha-beta node (§4.6 steps 1-8): fail-soft, with
// a transposition table, null-move pruning, move ordering by the composite
// key, and late-move reductions. doNull disables null-move search for the
// node directly inside a null-move search, to avoid two nulls in a row.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, doNull bool) Value {
	// step 1: budget check
	if s.stopConditions() || ply >= MaxPly {
		return s.eval.Evaluate(p)
	}

	// step 2: terminal detection
	moves := movegen.GenerateLegal(p, movegen.AllMoves)
	hasCheck := p.InCheck()
	if len(moves) == 0 {
		s.statistics.CurrentExtraSearchDepth = maxInt(s.statistics.CurrentExtraSearchDepth, ply)
		if hasCheck {
			s.statistics.Checkmates++
			return -ValueCheckmate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	// step 3: depth exhausted, drop into quiescence
	if depth <= 0 {
		return s.qsearch(p, ply, config.Settings.Search.QuiescenceDepth, alpha, beta)
	}

	us := p.SideToMove()

	// step 4: TT probe
	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		key := p.ZobristKey()
		entry, cut := s.tt.Probe(key, int8(depth), alpha, beta)
		if entry.Key == key {
			s.statistics.TTHit++
			ttMove = entry.Move
			if cut {
				s.statistics.TTCuts++
				return valueFromTT(entry.Value, ply)
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// step 5: null-move pruning
	if config.Settings.Search.UseNullMove &&
		doNull &&
		depth >= config.Settings.Search.NmpMinDepth &&
		!hasCheck &&
		hasNonPawnMaterial(p, us) {
		r := config.Settings.Search.NmpReductionBase
		if depth > 5 {
			r = config.Settings.Search.NmpReductionDeep
		}
		newDepth := depth - 1 - r
		if newDepth < 0 {
			newDepth = 0
		}
		p.DoNullMove()
		s.nodesVisited++
		nullValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false)
		p.UndoNullMove()
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			return nullValue
		}
	}

	// step 6: order moves, trying the TT move first
	s.sortMoves(p, us, moves, ply)
	if ttMove != MoveNone {
		bringToFront(moves, ttMove)
	}
	if config.Settings.Search.UseTT && ttMove != MoveNone {
		s.statistics.TTMoveUsed++
	}

	bestValue := -ValueInf
	bestMove := MoveNone
	ttType := ValueTypeAlpha

	// step 7: move loop
	for idx, m := range moves {
		isCapture := p.PieceAt(m.To()) != PieceNone || m.MoveType() == EnPassant
		isPromotion := m.MoveType() == Promotion

		p.DoMove(m)
		s.nodesVisited++
		givesCheck := p.InCheck()

		newDepth := depth - 1
		searchDepth := newDepth
		reduced := false
		if config.Settings.Search.UseLmr &&
			idx >= config.Settings.Search.LmrMinMoveIndex &&
			depth >= config.Settings.Search.LmrMinDepth &&
			!isCapture && !isPromotion && !givesCheck {
			r := 1
			if depth >= 5 {
				r = 2
			}
			searchDepth = newDepth - r
			if searchDepth < 0 {
				searchDepth = 0
			}
			reduced = searchDepth < newDepth
			if reduced {
				s.statistics.LmrReductions++
			}
		}

		var value Value
		if p.HasRepeated() || p.HalfMoveClock() >= 100 {
			value = ValueDraw
		} else {
			value = -s.search(p, searchDepth, ply+1, -beta, -alpha, true)
			if reduced && value > alpha {
				s.statistics.LmrResearches++
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, true)
			}
		}
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				savePV(m, s.pv[ply+1], &s.pv[ply])
				ttType = ValueTypeExact
				if value >= beta {
					s.statistics.BetaCuts++
					if idx == 0 {
						s.statistics.BetaCuts1st++
					}
					if !isCapture {
						s.hist.AddCutoff(us, ply, depth, m)
					}
					ttType = ValueTypeBeta
					break
				}
			}
		}
		if s.stopConditions() {
			break
		}
	}

	// step 8: store result
	if config.Settings.Search.UseTT {
		s.tt.Store(p.ZobristKey(), bestMove, int8(depth), valueToTT(bestValue, ply), ValueNA, ttType)
	}
	return bestValue
}

// qsearch extends the leaf search into forcing moves only (§4.6), using the
// static evaluation as a fail-soft stand-pat bound. qDepth bounds how many
// plies of extension remain; once it reaches zero only the stand-pat value
// is returned even if noisy moves remain, unless the side to move is in
// check, in which case every evasion is still searched.
func (s *Search) qsearch(p *position.Position, ply, qDepth int, alpha, beta Value) Value {
	if s.stopConditions() || ply >= MaxPly {
		return s.eval.Evaluate(p)
	}
	if !config.Settings.Search.UseQuiescence {
		return s.eval.Evaluate(p)
	}
	s.statistics.CurrentExtraSearchDepth = maxInt(s.statistics.CurrentExtraSearchDepth, ply)

	moves := movegen.GenerateLegal(p, movegen.AllMoves)
	hasCheck := p.InCheck()
	if len(moves) == 0 {
		if hasCheck {
			s.statistics.Checkmates++
			return -ValueCheckmate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	standPat := s.eval.Evaluate(p)
	bestValue := standPat
	if !hasCheck {
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		// in check: we must search every evasion, fail-soft floor starts low
		bestValue = -ValueInf
	}

	if qDepth <= 0 && !hasCheck {
		return bestValue
	}

	us := p.SideToMove()
	s.sortMoves(p, us, moves, ply)

	for _, m := range moves {
		if !hasCheck && !s.isNoisy(p, m) {
			continue
		}
		p.DoMove(m)
		s.nodesVisited++
		value := -s.qsearch(p, ply+1, qDepth-1, -beta, -alpha)
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				if value >= beta {
					return value
				}
			}
		}
		if s.stopConditions() {
			break
		}
	}
	return bestValue
}

// isNoisy reports whether m is worth extending into in quiescence: a
// capture with non-negative MVV-LVA, a promotion, or a move that gives
// check (§4.6).
func (s *Search) isNoisy(p *position.Position, m Move) bool {
	if m.MoveType() == Promotion {
		return true
	}
	captured := p.PieceAt(m.To())
	isCapture := captured != PieceNone || m.MoveType() == EnPassant
	if isCapture {
		capturedValue := captured.MaterialValue()
		if m.MoveType() == EnPassant {
			capturedValue = Pawn.MaterialValue()
		}
		moverValue := p.PieceAt(m.From()).MaterialValue()
		if capturedValue-moverValue >= 0 {
			return true
		}
	}
	p.DoMove(m)
	givesCheck := p.InCheck()
	p.UndoMove()
	return givesCheck
}

// hasNonPawnMaterial reports whether c has any knight, bishop, rook or
// queen left, the zugzwang guard for null-move pruning (§4.6).
func hasNonPawnMaterial(p *position.Position, c Color) bool {
	for pt := Knight; pt <= Queen; pt++ {
		if p.PiecesBb(c, pt) != BbZero {
			return true
		}
	}
	return false
}

// savePV prepends move to childPV and stores the result in *dest, the same
// "collect the principal variation from the bottom up" trick the teacher's
// alphabeta.go uses.
func savePV(move Move, childPV []Move, dest *[]Move) {
	line := make([]Move, 0, len(childPV)+1)
	line = append(line, move)
	line = append(line, childPV...)
	*dest = line
}

// valueToTT/valueFromTT adjust mate scores for the ply they are stored at
// or retrieved from, so a mate found N plies below the TT entry's original
// position is reported relative to the probing node instead (§4.4).
func valueToTT(v Value, ply int) Value {
	if !v.IsCheckmateValue() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

func valueFromTT(v Value, ply int) Value {
	if !v.IsCheckmateValue() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
