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

func TestValueIsCheckmateValue(t *testing.T) {
	assert.False(t, Value(900).IsCheckmateValue())
	assert.False(t, ValueCheckmateThreshold.IsCheckmateValue())
	assert.True(t, (ValueCheckmate - 1).IsCheckmateValue())
	assert.True(t, (-ValueCheckmate + 1).IsCheckmateValue())
}

func TestValueStringPlainScore(t *testing.T) {
	assert.Equal(t, "0", ValueZero.String())
	assert.Equal(t, "-150", Value(-150).String())
}

func TestValueStringMateDistance(t *testing.T) {
	assert.Equal(t, "M1", (ValueCheckmate - 1).String())
	assert.Equal(t, "-M1", (-ValueCheckmate + 1).String())
}

func TestScoreArithmetic(t *testing.T) {
	a := Score{Mg: 10, Eg: 20}
	b := Score{Mg: 3, Eg: 5}
	assert.Equal(t, Score{13, 25}, a.Add(b))
	assert.Equal(t, Score{7, 15}, a.Sub(b))
	assert.Equal(t, Score{-10, -20}, a.Negate())
}

func TestScoreTaper(t *testing.T) {
	s := Score{Mg: 100, Eg: 0}
	assert.Equal(t, Value(100), s.Taper(24))
	assert.Equal(t, Value(0), s.Taper(0))
	assert.Equal(t, Value(50), s.Taper(12))
	assert.Equal(t, Value(100), s.Taper(100))
	assert.Equal(t, Value(0), s.Taper(-5))
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "EXACT", ValueTypeExact.String())
	assert.Equal(t, "ALPHA", ValueTypeAlpha.String())
	assert.Equal(t, "BETA", ValueTypeBeta.String())
	assert.Equal(t, "NONE", ValueTypeNone.String())
}
