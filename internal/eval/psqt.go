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

import . "github.com/corvidchess/corvid/internal/types"

// Piece square tables, centipawns, indexed [rank 0..7 (Rank1..Rank8)][file 0..7 (a..h)].
// Values are White's perspective; Black looks up the mirrored rank.
type psqTable [8][8]int

var midgameTables = [PtLength]psqTable{
	Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -10, -10, 10, 10, 5},
		{5, -5, -5, 10, 10, -5, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 15, 20, 20, 15, 10, 10},
		{20, 20, 20, 25, 25, 20, 20, 20},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	Knight: {
		{-50, -40, -30, -25, -25, -30, -40, -50},
		{-35, -15, 0, 10, 10, 0, -15, -35},
		{-25, 5, 15, 20, 20, 15, 5, -25},
		{-20, 5, 20, 25, 25, 20, 5, -20},
		{-20, 5, 20, 25, 25, 20, 5, -20},
		{-25, 0, 15, 20, 20, 15, 0, -25},
		{-35, -20, -5, 5, 5, -5, -20, -35},
		{-50, -35, -25, -20, -20, -25, -35, -50},
	},
	Bishop: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 5, 0, 0, 5, 0, -10},
		{-5, 10, 15, 10, 10, 15, 10, -5},
		{-5, 5, 15, 20, 20, 15, 5, -5},
		{-5, 5, 15, 20, 20, 15, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	Rook: {
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{5, 10, 15, 20, 20, 15, 10, 5},
		{5, 5, 10, 15, 15, 10, 5, 5},
	},
	Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 5, 10, 10, 10, 10, 5, -10},
		{-5, 5, 10, 10, 10, 10, 5, -5},
		{-5, 5, 10, 10, 10, 10, 5, -5},
		{-10, 5, 10, 10, 10, 10, 5, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	King: {
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	},
}

var endgameTables = [PtLength]psqTable{
	Pawn: mirrorTable(midgameTables[Pawn]),
	Knight: {
		{-40, -30, -20, -15, -15, -20, -30, -40},
		{-25, -5, 5, 15, 15, 5, -5, -25},
		{-15, 10, 20, 25, 25, 20, 10, -15},
		{-10, 10, 25, 30, 30, 25, 10, -10},
		{-10, 10, 25, 30, 30, 25, 10, -10},
		{-15, 5, 20, 25, 25, 20, 5, -15},
		{-25, -5, 5, 10, 10, 5, -5, -25},
		{-35, -25, -20, -15, -15, -20, -25, -35},
	},
	Bishop: {
		{-15, -10, -5, 0, 0, -5, -10, -15},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{0, 10, 15, 20, 20, 15, 10, 0},
		{0, 10, 20, 25, 25, 20, 10, 0},
		{0, 10, 20, 25, 25, 20, 10, 0},
		{0, 10, 15, 20, 20, 15, 10, 0},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-15, -10, -5, 0, 0, -5, -10, -15},
	},
	Rook: {
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 5, 10, 15, 15, 10, 5, 0},
		{5, 10, 15, 20, 20, 15, 10, 5},
		{5, 10, 15, 25, 25, 15, 10, 5},
		{5, 10, 15, 25, 25, 15, 10, 5},
		{5, 10, 15, 20, 20, 15, 10, 5},
		{0, 5, 10, 15, 15, 10, 5, 0},
		{-5, 0, 5, 5, 5, 5, 0, -5},
	},
	Queen: {
		{-25, -15, -15, -10, -10, -15, -15, -25},
		{-15, -5, 0, 5, 5, 0, -5, -15},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-15, -5, 0, 5, 5, 0, -5, -15},
		{-25, -15, -15, -10, -10, -15, -15, -25},
	},
	King: {
		{-10, -5, 0, 5, 5, 0, -5, -10},
		{-5, 5, 10, 15, 15, 10, 5, -5},
		{0, 10, 15, 20, 20, 15, 10, 0},
		{5, 15, 20, 25, 25, 20, 15, 5},
		{10, 20, 25, 30, 30, 25, 20, 10},
		{15, 25, 30, 35, 35, 30, 25, 15},
		{15, 25, 30, 35, 35, 30, 25, 15},
		{10, 20, 25, 30, 30, 25, 20, 10},
	},
}

func mirrorTable(t psqTable) psqTable {
	var m psqTable
	for r := 0; r < 8; r++ {
		m[r] = t[7-r]
	}
	return m
}

// psqtScore returns the tapered piece-square value of a piece of type pt and
// color c standing on sq, from White's perspective.
func psqtScore(pt PieceType, c Color, sq Square) Score {
	rank := int(sq.RankOf())
	if c == Black {
		rank = 7 - rank
	}
	file := int(sq.FileOf())
	s := Score{Mg: midgameTables[pt][rank][file], Eg: endgameTables[pt][rank][file]}
	if c == Black {
		return s.Negate()
	}
	return s
}
