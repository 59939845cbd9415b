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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	g := New()
	assert.Equal(t, White, g.SideToMove())
	assert.Equal(t, "ongoing", g.GameStatus())
	assert.False(t, g.IsOver())
}

func TestMakeMoveAppliesAndSwitchesTurn(t *testing.T) {
	g := New()
	m, err := g.MakeMove("e2", "e4", "")
	require.NoError(t, err)
	assert.True(t, m.IsValid())
	assert.Equal(t, Black, g.SideToMove())
	assert.Len(t, g.Moves(), 1)
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := New()
	_, err := g.MakeMove("e2", "e5", "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestMakeMoveRejectsMalformedSquare(t *testing.T) {
	g := New()
	_, err := g.MakeMove("z9", "e4", "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, position.ErrMalformedNotation)
}

func TestMakeMoveDefaultsPromotionToQueen(t *testing.T) {
	g, err := NewFromFEN("8/4P3/8/8/4k3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, err := g.MakeMove("e7", "e8", "")
	require.NoError(t, err)
	assert.Equal(t, Promotion, m.MoveType())
	assert.Equal(t, Queen, m.PromotionType())
}

func TestMakeMoveHonorsExplicitPromotion(t *testing.T) {
	g, err := NewFromFEN("8/4P3/8/8/4k3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, err := g.MakeMove("e7", "e8", "N")
	require.NoError(t, err)
	assert.Equal(t, Knight, m.PromotionType())
}

func TestUndoReversesMoveAndTurn(t *testing.T) {
	g := New()
	_, err := g.MakeMove("e2", "e4", "")
	require.NoError(t, err)

	g.Undo()
	assert.Equal(t, White, g.SideToMove())
	assert.Len(t, g.Moves(), 0)
	assert.Equal(t, startFEN, g.Position().FEN())
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	g := New()
	g.Undo()
	assert.Equal(t, White, g.SideToMove())
}

func TestIsCheckmateDetectsBackRankMate(t *testing.T) {
	g, err := NewFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	_, err = g.MakeMove("a1", "a8", "")
	require.NoError(t, err)

	assert.True(t, g.IsCheckmate())
	assert.True(t, g.IsOver())
	assert.Equal(t, "black in checkmate", g.GameStatus())
}

func TestIsStalemateDetectsClassicStalemate(t *testing.T) {
	g, err := NewFromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.True(t, g.IsStalemate())
	assert.True(t, g.IsOver())
	assert.Equal(t, "stalemate", g.GameStatus())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 50")
	require.NoError(t, err)
	assert.True(t, g.IsFiftyMoveDraw())
	assert.Equal(t, "draw by fifty-move rule", g.GameStatus())
}

func TestIsThreefoldRepetition(t *testing.T) {
	g := New()
	moves := [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	for _, mv := range moves {
		_, err := g.MakeMove(mv[0], mv[1], "")
		require.NoError(t, err)
	}
	assert.True(t, g.IsThreefoldRepetition())
	assert.Equal(t, "draw by repetition", g.GameStatus())
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestFoolsMate(t *testing.T) {
	g := New()
	moves := [][2]string{
		{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"},
	}
	for _, mv := range moves {
		_, err := g.MakeMove(mv[0], mv[1], "")
		require.NoError(t, err)
	}
	assert.Equal(t, "white in checkmate", g.GameStatus())
	assert.True(t, g.IsOver())
}
