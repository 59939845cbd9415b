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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square, SqA1 in bit 0.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xffffffffffffffff

// Bb returns the singleton bitboard for sq.
func Bb(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// PushSquare sets sq's bit in bb.
func (bb Bitboard) PushSquare(sq Square) Bitboard {
	return bb | Bb(sq)
}

// PopSquare clears sq's bit in bb.
func (bb Bitboard) PopSquare(sq Square) Bitboard {
	return bb &^ Bb(sq)
}

// Has reports whether sq's bit is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&Bb(sq) != 0
}

// Lsb returns the least-significant set square, or SqNone if bb is empty.
func (bb Bitboard) Lsb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Msb returns the most-significant set square, or SqNone if bb is empty.
func (bb Bitboard) Msb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLsb clears and returns the least-significant set square.
func (bb *Bitboard) PopLsb() Square {
	sq := bb.Lsb()
	if sq != SqNone {
		*bb &^= Bb(sq)
	}
	return sq
}

// PopCount returns the number of set squares.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// String renders the set as a hex literal.
func (bb Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("0x")
	const hexDigits = "0123456789abcdef"
	for shift := 60; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(bb>>uint(shift))&0xf])
	}
	return sb.String()
}

// StringBoard renders the set as an 8x8 grid, rank 8 on top, 'X' for a set
// square and '-' for an empty one. Useful in debug logging and tests.
func (bb Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			if bb.Has(sq) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('-')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fileDistance returns the absolute difference in files between two squares.
func fileDistance(a, b Square) int {
	d := int(a.FileOf()) - int(b.FileOf())
	if d < 0 {
		return -d
	}
	return d
}

// rankDistance returns the absolute difference in ranks between two squares.
func rankDistance(a, b Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns Chebyshev distance between two squares, the number
// of king steps needed to go from one to the other.
func SquareDistance(a, b Square) int {
	fd, rd := fileDistance(a, b), rankDistance(a, b)
	if fd > rd {
		return fd
	}
	return rd
}

// allDirs lists the 8 ray directions in a fixed order, shared by the
// sliding-ray tables and the king/queen attack generator.
var allDirs = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// slidingRays[sq][dir] holds every square along that ray out to the board
// edge, nearest first. Queried by attack generation in constant time once
// built; built once at package init by classical ray-scanning (§4.1) rather
// than by magic-bitboard or rotated-board lookups.
var slidingRays [64][8][]Square

// rayAttacksEmpty[sq][dir] is the bitboard union of slidingRays[sq][dir],
// i.e. the ray's reach on an empty board.
var rayAttacksEmpty [64][8]Bitboard

// knightAttacks[sq] and kingAttacks[sq] are precomputed single-step leaper
// attack sets.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// pawnAttacks[color][sq] are precomputed pawn capture targets.
var pawnAttacks [2][64]Bitboard

// passedPawnMask[color][sq] covers the file and both neighbor files ahead
// of sq, used to test whether an enemy pawn can ever block or capture a
// passed pawn candidate.
var passedPawnMask [2][64]Bitboard

// fileBb[f] and rankBb[r] are the 8-square file/rank masks.
var fileBb [8]Bitboard
var rankBb [8]Bitboard

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb = bb.PushSquare(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb = bb.PushSquare(SquareOf(f, r))
		}
		rankBb[r] = bb
	}

	for sq := SqA1; sq < SqNone; sq++ {
		for di, d := range allDirs {
			cur := sq
			var ray Bitboard
			var squares []Square
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				squares = append(squares, next)
				ray = ray.PushSquare(next)
				cur = next
			}
			slidingRays[sq][di] = squares
			rayAttacksEmpty[sq][di] = ray
		}

		knightAttacks[sq] = computeKnightAttacks(sq)
		kingAttacks[sq] = computeKingAttacks(sq)
		pawnAttacks[White][sq] = computePawnAttacks(sq, White)
		pawnAttacks[Black][sq] = computePawnAttacks(sq, Black)
	}

	for c := White; c <= Black; c++ {
		for sq := SqA1; sq < SqNone; sq++ {
			passedPawnMask[c][sq] = computePassedPawnMask(sq, c)
		}
	}
}

var knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

func computeKnightAttacks(sq Square) Bitboard {
	var bb Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, st := range knightSteps {
		nf, nr := f+st[0], r+st[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb = bb.PushSquare(SquareOf(File(nf), Rank(nr)))
	}
	return bb
}

func computeKingAttacks(sq Square) Bitboard {
	var bb Bitboard
	for _, d := range allDirs {
		if to := sq.To(d); to != SqNone {
			bb = bb.PushSquare(to)
		}
	}
	return bb
}

func computePawnAttacks(sq Square, c Color) Bitboard {
	var bb Bitboard
	dirs := [2]Direction{Northwest, Northeast}
	if c == Black {
		dirs = [2]Direction{Southwest, Southeast}
	}
	for _, d := range dirs {
		if to := sq.To(d); to != SqNone {
			bb = bb.PushSquare(to)
		}
	}
	return bb
}

func computePassedPawnMask(sq Square, c Color) Bitboard {
	f, r := sq.FileOf(), sq.RankOf()
	var files Bitboard
	for _, nf := range []int{int(f) - 1, int(f), int(f) + 1} {
		if nf < 0 || nf > 7 {
			continue
		}
		files |= fileBb[nf]
	}
	if c == White {
		for rr := Rank1; rr <= r; rr++ {
			files &^= rankBb[rr]
		}
	} else {
		for rr := r; rr <= Rank8; rr++ {
			files &^= rankBb[rr]
		}
	}
	return files
}

// dirIndex maps a Direction to its slot in allDirs / slidingRays.
func dirIndex(d Direction) int {
	for i, dd := range allDirs {
		if dd == d {
			return i
		}
	}
	panic("invalid ray direction")
}

// RayAttacks returns the attack set of a slider standing on sq and looking
// along direction d, stopping at (and including) the first occupied square
// found in occupied. This is the constant-time ray query of §4.1: it walks
// the precomputed slidingRays[sq][d] list, which is already ordered nearest
// to farthest, instead of rescanning the board.
func RayAttacks(sq Square, d Direction, occupied Bitboard) Bitboard {
	di := dirIndex(d)
	var bb Bitboard
	for _, s := range slidingRays[sq][di] {
		bb = bb.PushSquare(s)
		if occupied.Has(s) {
			break
		}
	}
	return bb
}

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}

// BishopAttacks returns a bishop's attack set from sq given the board's
// occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range bishopDirs {
		bb |= RayAttacks(sq, d, occupied)
	}
	return bb
}

// RookAttacks returns a rook's attack set from sq given the board's
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range rookDirs {
		bb |= RayAttacks(sq, d, occupied)
	}
	return bb
}

// QueenAttacks returns a queen's attack set from sq given the board's
// occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttacksBb returns pt's attack set from sq. pt must not be Pawn; use
// PawnAttacks for pawns since their attacks depend on color.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

// PawnAttacks returns the capture targets of a pawn of color c on sq.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the attack set of a knight on sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the attack set of a king on sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PassedPawnMask returns the file-triple mask ahead of sq for a pawn of
// color c, used by the passed-pawn evaluation term.
func PassedPawnMask(c Color, sq Square) Bitboard {
	return passedPawnMask[c][sq]
}

// FileMask returns the full-file bitboard containing sq.
func FileMask(sq Square) Bitboard {
	return fileBb[sq.FileOf()]
}

// RankMask returns the full-rank bitboard containing sq.
func RankMask(sq Square) Bitboard {
	return rankBb[sq.RankOf()]
}

// Intermediate returns the squares strictly between a and b if they share
// a rank, file or diagonal, or BbZero otherwise. Used to test that a
// castling king's path to its rook is unobstructed.
func Intermediate(a, b Square) Bitboard {
	if a == b {
		return BbZero
	}
	for _, d := range allDirs {
		di := dirIndex(d)
		var bb Bitboard
		found := false
		for _, s := range slidingRays[a][di] {
			if s == b {
				found = true
				break
			}
			bb = bb.PushSquare(s)
		}
		if found {
			return bb
		}
	}
	return BbZero
}
