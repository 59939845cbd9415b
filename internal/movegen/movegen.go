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

// Package movegen generates pseudo-legal and legal moves for a position:
// pawn pushes/captures/en passant/promotions, knight/bishop/rook/queen/king
// steps, and castling. Moves come back sorted by an internal ordering value
// (MVV-LVA for captures, a flat penalty for quiet moves) so the search can
// walk them in a reasonable order without a separate sort pass.
package movegen

import (
	"sort"

	"github.com/corvidchess/corvid/internal/assert"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// MaxMoves bounds the number of pseudo-legal moves any single position can
// have; used to preallocate move slices.
const MaxMoves = 256

// Mode selects which subset of pseudo-legal moves to generate.
type Mode int

const (
	Captures Mode = 0b01
	Quiets   Mode = 0b10
	AllMoves Mode = Captures | Quiets
)

// quietValueOffset keeps every quiet move's sort value below every capture's,
// so captures are always tried before quiet moves regardless of any
// positional nudge applied on top.
const quietValueOffset = Value(-10_000)

// GeneratePseudoLegal returns every pseudo-legal move in mode for pos,
// sorted by descending sort value, with that sort value stripped back off
// (MoveOf) before returning. It does not check whether the mover's own
// king ends up in check, nor whether a castling king crosses an attacked
// square (§4.2) — use GenerateLegal for that.
func GeneratePseudoLegal(pos *position.Position, mode Mode) []Move {
	moves := make([]Move, 0, MaxMoves)
	us := pos.SideToMove()

	if mode&Captures != 0 {
		generatePawnCaptures(pos, us, &moves)
	}
	if mode&Quiets != 0 {
		generatePawnQuiets(pos, us, &moves)
		generateCastling(pos, us, &moves)
	}
	generateKingMoves(pos, us, mode, &moves)
	generatePieceMoves(pos, us, mode, &moves)

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].ValueOf() > moves[j].ValueOf()
	})
	for i := range moves {
		moves[i] = moves[i].MoveOf()
	}
	return moves
}

// GenerateLegal filters GeneratePseudoLegal(pos, mode) down to moves
// that do not leave the mover's own king in check, including a castling
// king's path and start square. Implemented by actually applying and
// undoing each candidate move rather than tracking pins incrementally —
// more work per move, much simpler to get right.
func GenerateLegal(pos *position.Position, mode Mode) []Move {
	pseudo := GeneratePseudoLegal(pos, mode)
	us := pos.SideToMove()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if m.MoveType() == Castling && !castlingPathIsSafe(pos, us, m) {
			continue
		}
		pos.DoMove(m)
		if !pos.IsAttacked(pos.KingSquare(us), us.Flip()) {
			legal = append(legal, m)
		}
		pos.UndoMove()
	}
	return legal
}

// castlingPathIsSafe reports whether every square the king crosses,
// including its start square, is free of attack. Re-checking the
// destination square here is redundant with GenerateLegal's general
// in-check test but harmless.
func castlingPathIsSafe(pos *position.Position, us Color, m Move) bool {
	from, to := m.From(), m.To()
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo; sq <= hi; sq++ {
		if pos.IsAttacked(sq, us.Flip()) {
			return false
		}
	}
	return true
}

func generatePawnCaptures(pos *position.Position, us Color, moves *[]Move) {
	pawns := pos.PiecesBb(us, Pawn)
	oppOcc := pos.OccupiedBy(us.Flip())
	piece := MakePiece(us, Pawn)
	promotionRank := us.PromotionRank()

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()
		targets := PawnAttacks(us, from) & oppOcc
		for t := targets; t != 0; {
			to := t.PopLsb()
			captured := pos.PieceAt(to)
			base := captured.MaterialValue() - piece.MaterialValue()
			if to.RankOf() == promotionRank {
				pushPromotions(moves, from, to, base)
			} else {
				*moves = append(*moves, CreateMoveValue(from, to, Normal, PtNone, base))
			}
		}
	}

	if ep := pos.EnPassantSquare(); ep != SqNone {
		capturedSq := ep.To(us.Flip().PawnPushDirection())
		for _, d := range [2]Direction{West, East} {
			from := capturedSq.To(d)
			if from != SqNone && pos.PieceAt(from) == piece {
				*moves = append(*moves, CreateMoveValue(from, ep, EnPassant, PtNone, Pawn.MaterialValue()))
			}
		}
	}
}

func pushPromotions(moves *[]Move, from, to Square, base Value) {
	*moves = append(*moves, CreateMoveValue(from, to, Promotion, Queen, base+Queen.MaterialValue()))
	*moves = append(*moves, CreateMoveValue(from, to, Promotion, Knight, base+Knight.MaterialValue()))
	*moves = append(*moves, CreateMoveValue(from, to, Promotion, Rook, base+Rook.MaterialValue()-2000))
	*moves = append(*moves, CreateMoveValue(from, to, Promotion, Bishop, base+Bishop.MaterialValue()-2000))
}

func generatePawnQuiets(pos *position.Position, us Color, moves *[]Move) {
	pawns := pos.PiecesBb(us, Pawn)
	empty := ^pos.OccupiedAll()
	dir := us.PawnPushDirection()
	promotionRank := us.PromotionRank()
	startRank := us.PawnStartRank()

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()
		one := from.To(dir)
		if one == SqNone || !empty.Has(one) {
			continue
		}
		if one.RankOf() == promotionRank {
			pushPromotions(moves, from, one, quietValueOffset)
			continue
		}
		*moves = append(*moves, CreateMoveValue(from, one, Normal, PtNone, quietValueOffset))
		if from.RankOf() == startRank {
			two := one.To(dir)
			if two != SqNone && empty.Has(two) {
				*moves = append(*moves, CreateMoveValue(from, two, Normal, PtNone, quietValueOffset))
			}
		}
	}
}

var (
	kingsideSquares  = [2][2]Square{{SqE1, SqG1}, {SqE8, SqG8}}
	queensideSquares = [2][2]Square{{SqE1, SqC1}, {SqE8, SqC8}}
	kingsideRook     = [2]Square{SqH1, SqH8}
	queensideRook    = [2]Square{SqA1, SqA8}
)

// generateCastling emits pseudo-legal castling moves: only the squares
// between king and rook must be empty. Whether the king is in check or
// crosses an attacked square is checked by GenerateLegal.
func generateCastling(pos *position.Position, us Color, moves *[]Move) {
	cr := pos.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occ := pos.OccupiedAll()
	kingFrom := kingsideSquares[us][0]

	if cr.Has(Kingside(us)) && Intermediate(kingFrom, kingsideRook[us])&occ == 0 {
		assert.Assert(pos.KingSquare(us) == kingFrom, "movegen: king not on start square for kingside castle")
		*moves = append(*moves, CreateMoveValue(kingFrom, kingsideSquares[us][1], Castling, PtNone, -5000))
	}
	if cr.Has(Queenside(us)) && Intermediate(kingFrom, queensideRook[us])&occ == 0 {
		assert.Assert(pos.KingSquare(us) == kingFrom, "movegen: king not on start square for queenside castle")
		*moves = append(*moves, CreateMoveValue(kingFrom, queensideSquares[us][1], Castling, PtNone, -5000))
	}
}

func generateKingMoves(pos *position.Position, us Color, mode Mode, moves *[]Move) {
	from := pos.KingSquare(us)
	generateFromAttacks(pos, us, mode, King, from, KingAttacks(from), moves)
}

func generatePieceMoves(pos *position.Position, us Color, mode Mode, moves *[]Move) {
	occ := pos.OccupiedAll()
	for pt := Knight; pt <= Queen; pt++ {
		for bb := pos.PiecesBb(us, pt); bb != 0; {
			from := bb.PopLsb()
			generateFromAttacks(pos, us, mode, pt, from, AttacksBb(pt, from, occ), moves)
		}
	}
}

// generateFromAttacks turns a leaper/slider's attack bitboard into moves,
// splitting it against enemy occupation (captures) and empty squares
// (quiets) depending on mode.
func generateFromAttacks(pos *position.Position, us Color, mode Mode, pt PieceType, from Square, attacks Bitboard, moves *[]Move) {
	piece := MakePiece(us, pt)
	if mode&Captures != 0 {
		for t := attacks & pos.OccupiedBy(us.Flip()); t != 0; {
			to := t.PopLsb()
			value := pos.PieceAt(to).MaterialValue() - piece.MaterialValue()
			*moves = append(*moves, CreateMoveValue(from, to, Normal, PtNone, value))
		}
	}
	if mode&Quiets != 0 {
		for t := attacks &^ pos.OccupiedAll(); t != 0; {
			to := t.PopLsb()
			*moves = append(*moves, CreateMoveValue(from, to, Normal, PtNone, quietValueOffset))
		}
	}
}
