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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestStartPositionIsSymmetric(t *testing.T) {
	p := position.New()
	assert.Equal(t, ValueZero, Evaluate(p)-Value(config.Settings.Eval.Tempo))
}

func TestExtraQueenIsWinning(t *testing.T) {
	p, err := position.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	v := Evaluate(p)
	assert.True(t, v > 800, "expected a large advantage for the side with a lone extra queen, got %d", v)
}

func TestEvaluationFlipsWithSideToMove(t *testing.T) {
	// same piece placement, only the side to move differs, so once the
	// tempo bonus (awarded to whichever side is to move) is backed out of
	// both sides the remaining material/psqt score must be exact mirrors.
	white, err := position.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.NoError(t, err)
	tempo := Value(config.Settings.Eval.Tempo)
	assert.Equal(t, Evaluate(white)-tempo, -(Evaluate(black) - tempo))
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, ValueZero, Evaluate(p))
}

func TestCentralizedKnightBeatsCornerKnight(t *testing.T) {
	// both positions carry the same pawn so neither trips the
	// insufficient-material draw shortcut.
	centered, err := position.NewFromFEN("4k3/8/8/3N4/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	cornered, err := position.NewFromFEN("4k3/8/8/8/8/8/4P3/N3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, Evaluate(centered) > Evaluate(cornered))
}

func TestPassedPawnBonusAppliesOnlyWhenUnopposed(t *testing.T) {
	passed, err := position.NewFromFEN("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	blocked, err := position.NewFromFEN("4k3/4p3/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, Evaluate(passed) > Evaluate(blocked))
}
