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

package types

import "strconv"

// Value is a centipawn evaluation score. Positive favors White.
type Value int16

// MaxPly bounds search recursion depth (and therefore the largest ply
// distance a mate score can carry). The search package dot-imports this
// package and relies on this constant directly rather than declaring its
// own, so the recursion bound and the mate-distance encoding can't drift
// apart.
const MaxPly = 128

// Sentinels. ValueInf sits strictly above any reachable material sum
// (max material well under 4000cp per side) so mate scores can be layered
// above it without overflowing int16.
const (
	ValueZero    Value = 0
	ValueInf     Value = 32000
	ValueNA      Value = 32001
	ValueCheckmate     = ValueInf - 1000

	// ValueCheckmateThreshold is the floor a score must clear to count as a
	// mate score. Actual mate scores are ±(ValueCheckmate - ply) for
	// ply >= 1 (alphabeta.go's terminal case), so their magnitude sits
	// strictly below ValueCheckmate by up to MaxPly; comparing against
	// ValueCheckmate itself would never match a real mate score.
	ValueCheckmateThreshold = ValueCheckmate - MaxPly - 1

	ValueDraw Value = 0
)

// IsCheckmateValue reports whether v represents a forced mate score (either side).
func (v Value) IsCheckmateValue() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ValueCheckmateThreshold && abs <= ValueCheckmate
}

// String renders a value as a plain integer, or a mate distance when it
// encodes a forced checkmate.
func (v Value) String() string {
	if v.IsCheckmateValue() {
		pliesToMate := ValueCheckmate - v
		if v < 0 {
			pliesToMate = ValueCheckmate + v
		}
		movesToMate := (int(pliesToMate) + 1) / 2
		if v < 0 {
			return "-M" + strconv.Itoa(movesToMate)
		}
		return "M" + strconv.Itoa(movesToMate)
	}
	return strconv.Itoa(int(v))
}

// ValueType classifies a transposition table score relative to its search window (§4.4).
type ValueType uint8

const (
	ValueTypeNone  ValueType = 0
	ValueTypeExact ValueType = 1
	ValueTypeAlpha ValueType = 2
	ValueTypeBeta  ValueType = 3
)

// String returns a short label for the bound type.
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeExact:
		return "EXACT"
	case ValueTypeAlpha:
		return "ALPHA"
	case ValueTypeBeta:
		return "BETA"
	default:
		return "NONE"
	}
}

// Score accumulates separate midgame and endgame centipawn totals so an
// evaluation term can be computed once and tapered later by game phase (§4.5).
type Score struct {
	Mg int
	Eg int
}

// Add returns the element-wise sum of two scores.
func (s Score) Add(o Score) Score {
	return Score{s.Mg + o.Mg, s.Eg + o.Eg}
}

// Sub returns the element-wise difference of two scores.
func (s Score) Sub(o Score) Score {
	return Score{s.Mg - o.Mg, s.Eg - o.Eg}
}

// Negate flips the sign of both components, used when folding a side's
// score into a White-relative total.
func (s Score) Negate() Score {
	return Score{-s.Mg, -s.Eg}
}

// Taper interpolates mg/eg by phase, a 0..24 game-phase counter (24 = full
// material, 0 = bare kings), per §4.5.
func (s Score) Taper(phase int) Value {
	if phase > 24 {
		phase = 24
	} else if phase < 0 {
		phase = 0
	}
	return Value((s.Mg*phase + s.Eg*(24-phase)) / 24)
}
