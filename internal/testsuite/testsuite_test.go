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

package testsuite

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
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

func writeEPD(t *testing.T, lines ...string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.epd")
	require.NoError(t, err)
	defer f.Close()
	for _, l := range lines {
		_, err := f.WriteString(l + "\n")
		require.NoError(t, err)
	}
	return f.Name()
}

func TestParseLineResolvesBestMove(t *testing.T) {
	path := writeEPD(t, `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 bm e4; id "opening";`)
	suite, err := Load(path, 1, 0)
	require.NoError(t, err)
	require.Len(t, suite.Tests, 1)
	assert.Equal(t, BestMove, suite.Tests[0].Op)
	assert.Equal(t, "opening", suite.Tests[0].ID)
	assert.Len(t, suite.Tests[0].TargetMoves, 1)
}

func TestParseLineResolvesDirectMate(t *testing.T) {
	path := writeEPD(t, `6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1 dm 1; id "mate in one";`)
	suite, err := Load(path, 1, 0)
	require.NoError(t, err)
	require.Len(t, suite.Tests, 1)
	assert.Equal(t, DirectMate, suite.Tests[0].Op)
	assert.Equal(t, 1, suite.Tests[0].MateDepth)
}

func TestParseLineSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeEPD(t,
		"# a comment line",
		"",
		`rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 bm e4; id "x";`,
	)
	suite, err := Load(path, 1, 0)
	require.NoError(t, err)
	assert.Len(t, suite.Tests, 1)
}

func TestRunFindsMateInOne(t *testing.T) {
	path := writeEPD(t, `6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1 dm 1; id "mate in one";`)
	suite, err := Load(path, 3, 0)
	require.NoError(t, err)

	passed := suite.Run()
	assert.Equal(t, 1, passed)
	assert.Equal(t, Passed, suite.Tests[0].Outcome)
}

func TestRunBestMoveAgainstObviousCapture(t *testing.T) {
	// White rook takes a hanging black queen: the only sane move at any depth.
	path := writeEPD(t, `4k3/8/8/8/8/8/8/R2q3K w - - 0 1 bm Rxd1; id "hanging queen";`)
	suite, err := Load(path, 3, 200*time.Millisecond)
	require.NoError(t, err)

	passed := suite.Run()
	assert.Equal(t, 1, passed)
}
