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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
)

// Perft results from https://www.chessprogramming.org/Perft_Results, kept
// shallow enough to run fast while still exercising every move type.

func TestStandardPerft(t *testing.T) {
	maxDepth := 4
	var perft Perft

	var results = [5][6]uint64{
		// N      Nodes  Captures  EP  Checks  Mates
		{0, 1, 0, 0, 0, 0},
		{1, 20, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0},
		{3, 8902, 34, 0, 12, 0},
		{4, 197281, 1576, 0, 469, 8},
	}

	for i := 1; i <= maxDepth; i++ {
		perft.StartPerft(position.StartFEN, i)
		assert.Equal(t, results[i][1], perft.Nodes)
		assert.Equal(t, results[i][2], perft.CaptureCounter)
		assert.Equal(t, results[i][3], perft.EnpassantCounter)
		assert.Equal(t, results[i][4], perft.CheckCounter)
		assert.Equal(t, results[i][5], perft.CheckMateCounter)
	}
}

func TestKiwipetePerft(t *testing.T) {
	maxDepth := 3
	var perft Perft

	var kiwipete = [4][8]uint64{
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 48, 8, 0, 0, 0, 2, 0},
		{2, 2039, 351, 1, 3, 0, 91, 0},
		{3, 97862, 17102, 45, 993, 1, 3162, 0},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth)
		assert.Equal(t, kiwipete[depth][1], perft.Nodes)
		assert.Equal(t, kiwipete[depth][2], perft.CaptureCounter)
		assert.Equal(t, kiwipete[depth][3], perft.EnpassantCounter)
		assert.Equal(t, kiwipete[depth][4], perft.CheckCounter)
		assert.Equal(t, kiwipete[depth][5], perft.CheckMateCounter)
		assert.Equal(t, kiwipete[depth][6], perft.CastleCounter)
		assert.Equal(t, kiwipete[depth][7], perft.PromotionCounter)
	}
}

func TestPos5Perft(t *testing.T) {
	maxDepth := 3
	var perft Perft

	var pos5 = [4][2]uint64{
		{0, 1},
		{1, 44},
		{2, 1486},
		{3, 62379},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", depth)
		assert.Equal(t, pos5[depth][1], perft.Nodes)
	}
}

func TestCountNodesParallelMatchesSequentialWalk(t *testing.T) {
	pos, err := position.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var perft Perft
	perft.StartPerft("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3)

	got, err := CountNodesParallel(pos, 3)
	require.NoError(t, err)
	assert.Equal(t, perft.Nodes, got)
}

func TestCountNodesParallelAtZeroDepthCountsCurrentPosition(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	got, err := CountNodesParallel(pos, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestMirrorPerft(t *testing.T) {
	maxDepth := 3
	var perft Perft

	var mirror = [4][8]uint64{
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 6, 0, 0, 0, 0, 0, 0},
		{2, 264, 87, 0, 10, 0, 6, 48},
		{3, 9467, 1021, 4, 38, 22, 0, 120},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", depth)
		assert.Equal(t, mirror[depth][1], perft.Nodes)
		assert.Equal(t, mirror[depth][2], perft.CaptureCounter)
		assert.Equal(t, mirror[depth][3], perft.EnpassantCounter)
		assert.Equal(t, mirror[depth][4], perft.CheckCounter)
		assert.Equal(t, mirror[depth][5], perft.CheckMateCounter)
		assert.Equal(t, mirror[depth][6], perft.CastleCounter)
		assert.Equal(t, mirror[depth][7], perft.PromotionCounter)
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", depth)
		assert.Equal(t, mirror[depth][1], perft.Nodes)
		assert.Equal(t, mirror[depth][2], perft.CaptureCounter)
		assert.Equal(t, mirror[depth][3], perft.EnpassantCounter)
		assert.Equal(t, mirror[depth][4], perft.CheckCounter)
		assert.Equal(t, mirror[depth][5], perft.CheckMateCounter)
		assert.Equal(t, mirror[depth][6], perft.CastleCounter)
		assert.Equal(t, mirror[depth][7], perft.PromotionCounter)
	}
}
