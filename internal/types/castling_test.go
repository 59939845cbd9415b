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

func TestCastlingRightsHasAndRemove(t *testing.T) {
	cr := CastlingAny
	assert.True(t, cr.Has(WhiteOO))
	cr = cr.Remove(WhiteOO)
	assert.False(t, cr.Has(WhiteOO))
	assert.True(t, cr.Has(WhiteOOO))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "Kq", (WhiteOO | BlackOOO).String())
}

func TestCastlingRightsFromChar(t *testing.T) {
	assert.Equal(t, WhiteOO, CastlingRightsFromChar('K'))
	assert.Equal(t, WhiteOOO, CastlingRightsFromChar('Q'))
	assert.Equal(t, BlackOO, CastlingRightsFromChar('k'))
	assert.Equal(t, BlackOOO, CastlingRightsFromChar('q'))
	assert.Equal(t, CastlingNone, CastlingRightsFromChar('x'))
}

func TestKingsideQueensideBoth(t *testing.T) {
	assert.Equal(t, WhiteOO, Kingside(White))
	assert.Equal(t, BlackOO, Kingside(Black))
	assert.Equal(t, WhiteOOO, Queenside(White))
	assert.Equal(t, BlackOOO, Queenside(Black))
	assert.Equal(t, WhiteOO|WhiteOOO, Both(White))
}
