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

// Package game drives a Position through a sequence of algebraic moves and
// answers the outcome queries a shell needs: check, checkmate, stalemate,
// and the two draw conditions (§4.7). It owns no search or evaluation logic
// of its own; Position already carries the repetition and halfmove-clock
// bookkeeping that repetition/fifty-move detection reduces to.
package game

import (
	"errors"
	"fmt"

	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// ErrIllegalMove is the sentinel wrapped into MakeMove's error when the
// requested (start, end, promotion) tuple has no matching legal move.
var ErrIllegalMove = errors.New("game: illegal move")

// Game wraps a Position with the move history a shell displays, and the
// algebraic-notation move lookup make_move needs (§4.7).
type Game struct {
	pos       *position.Position
	moveStack []Move
}

// New starts a game from the standard position.
func New() *Game {
	return &Game{pos: position.New()}
}

// NewFromFEN starts a game from an arbitrary FEN.
func NewFromFEN(fen string) (*Game, error) {
	p, err := position.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: p}, nil
}

// Position exposes the underlying position for read-only queries (eval,
// search, FEN export). Callers must not mutate it outside Game's own
// MakeMove/Undo.
func (g *Game) Position() *position.Position { return g.pos }

// SideToMove is the color to move, redundant with Position but exposed
// directly per §4.7.
func (g *Game) SideToMove() Color { return g.pos.SideToMove() }

// Moves returns the history of applied moves, oldest first.
func (g *Game) Moves() []Move {
	out := make([]Move, len(g.moveStack))
	copy(out, g.moveStack)
	return out
}

// MakeMove parses two algebraic squares plus an optional promotion letter
// ("Q", "R", "B", "N"), finds the matching legal move (defaulting
// promotion to queen when the move is a promotion but none was given), and
// applies it (§4.7). Returns an error if no legal move matches.
func (g *Game) MakeMove(startAlg, endAlg string, promotion string) (Move, error) {
	start := MakeSquare(startAlg)
	end := MakeSquare(endAlg)
	if start == SqNone || end == SqNone {
		return MoveNone, fmt.Errorf("%w: bad square %q-%q", position.ErrMalformedNotation, startAlg, endAlg)
	}

	var promoType PieceType
	if promotion != "" {
		promoType = PieceTypeFromChar(promotion[0])
	}

	legal := movegen.GenerateLegal(g.pos, movegen.AllMoves)
	var candidate Move
	var queenPromo Move
	for _, m := range legal {
		if m.From() != start || m.To() != end {
			continue
		}
		if m.MoveType() == Promotion {
			if promoType != PtNone && m.PromotionType() == promoType {
				candidate = m
				break
			}
			if m.PromotionType() == Queen {
				queenPromo = m
			}
			continue
		}
		candidate = m
		break
	}
	if candidate == MoveNone {
		candidate = queenPromo
	}
	if candidate == MoveNone {
		return MoveNone, fmt.Errorf("%w: no legal move %s-%s", ErrIllegalMove, startAlg, endAlg)
	}

	g.pos.DoMove(candidate)
	g.moveStack = append(g.moveStack, candidate)
	return candidate, nil
}

// Undo reverses the last applied move. It is a no-op on an empty history.
func (g *Game) Undo() {
	if len(g.moveStack) == 0 {
		return
	}
	g.pos.UndoMove()
	g.moveStack = g.moveStack[:len(g.moveStack)-1]
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.pos.InCheck() }

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.pos.InCheck() && len(movegen.GenerateLegal(g.pos, movegen.AllMoves)) == 0
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return !g.pos.InCheck() && len(movegen.GenerateLegal(g.pos, movegen.AllMoves)) == 0
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100
// (fifty full moves without a pawn move or capture).
func (g *Game) IsFiftyMoveDraw() bool { return g.pos.HalfMoveClock() >= 100 }

// IsThreefoldRepetition reports whether the current position has occurred
// twice before, delegating to Position's own zobrist-keyed history ring
// (§4.7's repetition key already excludes the halfmove clock, matching
// Position.HasRepeated's key).
func (g *Game) IsThreefoldRepetition() bool { return g.pos.HasRepeated() }

// IsOver reports whether the side to move has no legal moves, or any draw
// condition holds (§4.7).
func (g *Game) IsOver() bool {
	if g.IsFiftyMoveDraw() || g.IsThreefoldRepetition() {
		return true
	}
	return len(movegen.GenerateLegal(g.pos, movegen.AllMoves)) == 0
}

// GameStatus renders the outcome as one of the strings named in §4.7.
func (g *Game) GameStatus() string {
	us := colorName(g.pos.SideToMove())
	switch {
	case g.IsCheckmate():
		return fmt.Sprintf("%s in checkmate", us)
	case g.IsStalemate():
		return "stalemate"
	case g.IsFiftyMoveDraw():
		return "draw by fifty-move rule"
	case g.IsThreefoldRepetition():
		return "draw by repetition"
	case g.InCheck():
		return fmt.Sprintf("%s in check", us)
	default:
		return "ongoing"
	}
}

// colorName renders c as the full English word game_status uses, rather
// than Color.String()'s single-letter FEN form.
func colorName(c Color) string {
	if c == White {
		return "white"
	}
	return "black"
}
