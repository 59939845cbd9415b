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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestAddCutoffScoresHistory(t *testing.T) {
	h := New()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)

	assert.EqualValues(t, 0, h.Score(White, m))
	h.AddCutoff(White, 3, 4, m)
	assert.EqualValues(t, 16, h.Score(White, m)) // depth*depth = 4*4

	h.AddCutoff(White, 5, 2, m)
	assert.EqualValues(t, 20, h.Score(White, m)) // 16 + 2*2
}

func TestHistoryIsPerColorAndMove(t *testing.T) {
	h := New()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)

	h.AddCutoff(White, 1, 3, m1)
	assert.EqualValues(t, 9, h.Score(White, m1))
	assert.EqualValues(t, 0, h.Score(Black, m1))
	assert.EqualValues(t, 0, h.Score(White, m2))
}

func TestAddCutoffInsertsKiller(t *testing.T) {
	h := New()
	m1 := CreateMove(SqG1, SqF3, Normal, PtNone)
	m2 := CreateMove(SqB1, SqC3, Normal, PtNone)

	assert.False(t, h.IsKiller(2, m1))
	h.AddCutoff(White, 2, 4, m1)
	assert.True(t, h.IsKiller(2, m1))
	assert.False(t, h.IsKiller(2, m2))

	h.AddCutoff(White, 2, 4, m2)
	assert.True(t, h.IsKiller(2, m1))
	assert.True(t, h.IsKiller(2, m2))
}

func TestAddCutoffKillerNoDuplicate(t *testing.T) {
	h := New()
	m := CreateMove(SqG1, SqF3, Normal, PtNone)

	h.AddCutoff(White, 0, 4, m)
	h.AddCutoff(White, 0, 4, m)
	assert.True(t, h.IsKiller(0, m))
	assert.NotEqual(t, h.Killers[0][0], h.Killers[0][1])
}

func TestClearResetsTables(t *testing.T) {
	h := New()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	h.AddCutoff(White, 0, 4, m)
	assert.True(t, h.IsKiller(0, m))

	h.Clear()
	assert.False(t, h.IsKiller(0, m))
	assert.EqualValues(t, 0, h.Score(White, m))
}

func TestIsKillerOutOfRangePly(t *testing.T) {
	h := New()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	assert.False(t, h.IsKiller(-1, m))
	assert.False(t, h.IsKiller(MaxPly, m))
}
