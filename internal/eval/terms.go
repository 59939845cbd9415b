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

package eval

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// centipawn weights for the secondary evaluation terms.
const (
	pawnShieldBonus         = 15
	kingOpenFilePenalty     = 25
	kingCentralizationUnit  = 5
	doubledPawnPenalty      = 20
	isolatedPawnPenalty     = 15
	passedPawnBonus         = 30
	minorCentralizationUnit = 3
	developmentBonus        = 8
	earlyCastleBonus        = 25
	earlyQueenPenalty       = 8
	knightOutpostMgBonus    = 15
	knightOutpostEgBonus    = 7
	bishopOutpostMgBonus    = 10
	bishopOutpostEgBonus    = 5
)

// kingSafety scores pawn shields, king-file openness and (in the endgame)
// king centralization, White-relative.
func kingSafety(pos *position.Position) Score {
	var total Score
	for _, us := range [2]Color{White, Black} {
		sign := 1
		if us == Black {
			sign = -1
		}
		kingSq := pos.KingSquare(us)
		shield := (shieldMask(us, kingSq) & pos.PiecesBb(us, Pawn)).PopCount()
		mg := shield*pawnShieldBonus
		if pos.PiecesBb(us, Pawn)&FileMask(kingSq) == BbZero {
			mg -= kingOpenFilePenalty
		}
		total.Mg += sign * mg

		// centralization: (3.5 - manhattanDistanceFromCenter) * bonus, in
		// half-square units so 3.5 and 0.5 steps stay exact integers.
		distHalves := manhattanFromCenterHalves(kingSq)
		central := (7 - distHalves) * kingCentralizationUnit / 2
		total.Eg += sign * central
	}
	return total
}

// manhattanFromCenterHalves returns the Manhattan distance from the board
// center (3.5, 3.5) doubled, so it stays an exact integer.
func manhattanFromCenterHalves(sq Square) int {
	rank, file := int(sq.RankOf()), int(sq.FileOf())
	dr, df := rank*2-7, file*2-7
	if dr < 0 {
		dr = -dr
	}
	if df < 0 {
		df = -df
	}
	return dr + df
}

var shieldMasks [2][64]Bitboard

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		shieldMasks[White][sq] = shieldSquares(White, sq)
		shieldMasks[Black][sq] = shieldSquares(Black, sq)
	}
}

func shieldSquares(us Color, kingSq Square) Bitboard {
	var bb Bitboard
	dir := us.PawnPushDirection()
	ahead := kingSq.To(dir)
	if ahead == SqNone {
		return bb
	}
	for _, d := range [3]Direction{West, 0, East} {
		sq := ahead
		if d != 0 {
			sq = ahead.To(d)
		}
		if sq != SqNone {
			bb = bb.PushSquare(sq)
		}
	}
	return bb
}

func shieldMask(us Color, kingSq Square) Bitboard {
	return shieldMasks[us][kingSq]
}

// pawnStructure scores doubled, isolated and passed pawns. The original
// heuristic folds this into a single scalar applied unchanged to both the
// midgame and endgame totals, so we do the same.
func pawnStructure(pos *position.Position) Score {
	v := 0
	for _, us := range [2]Color{White, Black} {
		sign := 1
		if us == Black {
			sign = -1
		}
		them := us.Flip()
		ourPawns := pos.PiecesBb(us, Pawn)
		theirPawns := pos.PiecesBb(them, Pawn)
		for file := 0; file < 8; file++ {
			fileMask := fileMaskByIndex(file)
			onFile := ourPawns & fileMask
			count := onFile.PopCount()
			if count == 0 {
				continue
			}
			if count > 1 {
				v -= sign * doubledPawnPenalty * (count - 1)
			}
			hasNeighbor := false
			if file > 0 && ourPawns&fileMaskByIndex(file-1) != BbZero {
				hasNeighbor = true
			}
			if file < 7 && ourPawns&fileMaskByIndex(file+1) != BbZero {
				hasNeighbor = true
			}
			if !hasNeighbor {
				v -= sign * isolatedPawnPenalty
			}
			for bb := onFile; bb != 0; {
				sq := bb.PopLsb()
				if PassedPawnMask(us, sq)&theirPawns == BbZero {
					v += sign * passedPawnBonus
				}
			}
		}
	}
	return Score{Mg: v, Eg: v}
}

func fileMaskByIndex(file int) Bitboard {
	return FileMask(SquareOf(File(file), Rank1))
}

// minorCentralization rewards knights and bishops standing near the
// center, applied equally to midgame and endgame.
func minorCentralization(pos *position.Position) Score {
	v := 0
	for _, us := range [2]Color{White, Black} {
		sign := 1
		if us == Black {
			sign = -1
		}
		for _, pt := range [2]PieceType{Knight, Bishop} {
			for bb := pos.PiecesBb(us, pt); bb != 0; {
				sq := bb.PopLsb()
				distHalves := manhattanFromCenterHalves(sq)
				v += sign * (7 - distHalves) * minorCentralizationUnit / 2
			}
		}
	}
	return Score{Mg: v, Eg: v}
}

// mobility scores the difference in pseudo-attacked squares of knights,
// bishops, rooks and queens, weighted more heavily in the midgame.
func mobility(pos *position.Position) Score {
	diff := 0
	occ := pos.OccupiedAll()
	for _, us := range [2]Color{White, Black} {
		sign := 1
		if us == Black {
			sign = -1
		}
		count := 0
		for pt := Knight; pt <= Queen; pt++ {
			for bb := pos.PiecesBb(us, pt); bb != 0; {
				sq := bb.PopLsb()
				count += (AttacksBb(pt, sq, occ) &^ pos.OccupiedBy(us)).PopCount()
			}
		}
		diff += sign * count
	}
	return Score{Mg: diff, Eg: diff * 2 / 5}
}

// outposts rewards knights and bishops supported by a friendly pawn and
// not attackable by an enemy pawn.
func outposts(pos *position.Position) Score {
	var total Score
	for _, us := range [2]Color{White, Black} {
		sign := 1
		if us == Black {
			sign = -1
		}
		them := us.Flip()
		for _, pt := range [2]PieceType{Knight, Bishop} {
			mg, eg := knightOutpostMgBonus, knightOutpostEgBonus
			if pt == Bishop {
				mg, eg = bishopOutpostMgBonus, bishopOutpostEgBonus
			}
			for bb := pos.PiecesBb(us, pt); bb != 0; {
				sq := bb.PopLsb()
				if PawnAttacks(them, sq)&pos.PiecesBb(us, Pawn) == BbZero {
					continue
				}
				if PawnAttacks(us, sq)&pos.PiecesBb(them, Pawn) != BbZero {
					continue
				}
				total.Mg += sign * mg
				total.Eg += sign * eg
			}
		}
	}
	return total
}

var startMinorSquares = [2][4]Square{
	{SqB1, SqG1, SqC1, SqF1},
	{SqB8, SqG8, SqC8, SqF8},
}
var castledKingSquares = [2][2]Square{{SqG1, SqC1}, {SqG8, SqC8}}
var queenHomeSquare = [2]Square{SqD1, SqD8}

// developmentAndCastling rewards developed minors, a castled king and a
// queen still on its home square, weighted down as material leaves the
// board via phase: openingWeight = phase/24 (1 with full non-pawn material,
// 0 once none is left), applied on top of (and in addition to) the overall
// midgame/endgame taper.
func developmentAndCastling(pos *position.Position, phase int) Score {
	openingWeight := float64(phase) / 24.0
	if openingWeight <= 0 {
		return Score{}
	}
	mg := 0.0
	for _, us := range [2]Color{White, Black} {
		sign := 1.0
		if us == Black {
			sign = -1.0
		}
		for _, sq := range startMinorSquares[us] {
			p := pos.PieceAt(sq)
			if !(p.ColorOf() == us && (p.TypeOf() == Knight || p.TypeOf() == Bishop)) {
				mg += sign * developmentBonus * openingWeight
			}
		}
		king := pos.KingSquare(us)
		if king == castledKingSquares[us][0] || king == castledKingSquares[us][1] {
			mg += sign * earlyCastleBonus * openingWeight
		}
		qp := pos.PieceAt(queenHomeSquare[us])
		if qp.TypeOf() != Queen || qp.ColorOf() != us {
			mg -= sign * earlyQueenPenalty * openingWeight
		}
	}
	return Score{Mg: int(mg), Eg: int(mg * 0.3)}
}
