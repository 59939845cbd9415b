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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePieceRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := King; pt <= Queen; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestPieceFromCharRoundTrip(t *testing.T) {
	for _, s := range []string{"K", "P", "N", "B", "R", "Q", "k", "p", "n", "b", "r", "q"} {
		p := PieceFromChar(s)
		assert.NotEqual(t, PieceNone, p)
		assert.Equal(t, s, p.Char())
	}
}

func TestPieceFromCharInvalid(t *testing.T) {
	assert.Equal(t, PieceNone, PieceFromChar("-"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
}

func TestMaterialValues(t *testing.T) {
	assert.Equal(t, Value(100), Pawn.MaterialValue())
	assert.Equal(t, Value(320), Knight.MaterialValue())
	assert.Equal(t, Value(333), Bishop.MaterialValue())
	assert.Equal(t, Value(510), Rook.MaterialValue())
	assert.Equal(t, Value(900), Queen.MaterialValue())
	assert.Equal(t, Value(0), King.MaterialValue())
	assert.Equal(t, WhiteQueen.MaterialValue(), Queen.MaterialValue())
}

func TestIsSliding(t *testing.T) {
	assert.True(t, Bishop.IsSliding())
	assert.True(t, Rook.IsSliding())
	assert.True(t, Queen.IsSliding())
	assert.False(t, Knight.IsSliding())
	assert.False(t, Pawn.IsSliding())
	assert.False(t, King.IsSliding())
}
