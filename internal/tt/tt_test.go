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

package tt

import (
	"context"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/zobrist"

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

func TestStoreThenProbeExactHit(t *testing.T) {
	table := NewTable(10)
	key := zobrist.Key(12345)
	table.Store(key, MoveNone, 5, Value(100), Value(90), ValueTypeExact)
	entry, cut := table.Probe(key, 5, -ValueInf, ValueInf)
	assert.True(t, cut)
	assert.Equal(t, Value(100), entry.Value)
	assert.Equal(t, ValueTypeExact, entry.Type)
}

func TestProbeMissReturnsNoCut(t *testing.T) {
	table := NewTable(10)
	_, cut := table.Probe(zobrist.Key(1), 1, -ValueInf, ValueInf)
	assert.False(t, cut)
}

func TestProbeShallowerEntryDoesNotCut(t *testing.T) {
	table := NewTable(10)
	key := zobrist.Key(7)
	table.Store(key, MoveNone, 2, Value(50), Value(50), ValueTypeExact)
	_, cut := table.Probe(key, 6, -ValueInf, ValueInf)
	assert.False(t, cut)
}

func TestBetaEntryCutsOnlyWhenValueReachesBeta(t *testing.T) {
	table := NewTable(10)
	key := zobrist.Key(42)
	table.Store(key, MoveNone, 4, Value(300), ValueNA, ValueTypeBeta)
	_, cut := table.Probe(key, 4, Value(0), Value(200))
	assert.True(t, cut)
	_, cut = table.Probe(key, 4, Value(0), Value(400))
	assert.False(t, cut)
}

func TestAlphaEntryCutsOnlyWhenValueAtOrBelowAlpha(t *testing.T) {
	table := NewTable(10)
	key := zobrist.Key(99)
	table.Store(key, MoveNone, 4, Value(-300), ValueNA, ValueTypeAlpha)
	_, cut := table.Probe(key, 4, Value(-200), Value(200))
	assert.True(t, cut)
	_, cut = table.Probe(key, 4, Value(-400), Value(200))
	assert.False(t, cut)
}

func TestBucketFillsBeforeEviction(t *testing.T) {
	// four keys that collide on the same bucket (sizeLog2=1 -> 2 buckets,
	// mask bit 0 only) should all fit since BucketSize == 4. Keys start at 2
	// because key 0 marks an empty slot.
	table := NewTable(1)
	for i := 0; i < BucketSize; i++ {
		table.Store(zobrist.Key((i+1)*2), MoveNone, int8(i), Value(i), ValueNA, ValueTypeExact)
	}
	assert.Equal(t, uint64(BucketSize), table.Len())
	for i := 0; i < BucketSize; i++ {
		entry, cut := table.Probe(zobrist.Key((i+1)*2), int8(i), -ValueInf, ValueInf)
		assert.True(t, cut)
		assert.Equal(t, Value(i), entry.Value)
	}
}

func TestDeeperEntryReplacesShallowestOnFullBucket(t *testing.T) {
	table := NewTable(1)
	for i := 0; i < BucketSize; i++ {
		table.Store(zobrist.Key((i+1)*2), MoveNone, int8(i+1), Value(i), ValueNA, ValueTypeExact)
	}
	// every slot in this bucket is now full; a deeper entry must evict the
	// shallowest (depth=1, key=2).
	newKey := zobrist.Key(100)
	table.Store(newKey, MoveNone, int8(BucketSize+5), Value(999), ValueNA, ValueTypeExact)
	entry, cut := table.Probe(newKey, int8(BucketSize+5), -ValueInf, ValueInf)
	assert.True(t, cut)
	assert.Equal(t, Value(999), entry.Value)
	_, evictedCut := table.Probe(zobrist.Key(2), 1, -ValueInf, ValueInf)
	assert.False(t, evictedCut)
}

func TestShallowerEntryDoesNotEvictFullBucket(t *testing.T) {
	table := NewTable(1)
	for i := 0; i < BucketSize; i++ {
		table.Store(zobrist.Key((i+1)*2), MoveNone, int8(10), Value(i), ValueNA, ValueTypeExact)
	}
	table.Store(zobrist.Key(100), MoveNone, int8(1), Value(999), ValueNA, ValueTypeExact)
	_, cut := table.Probe(zobrist.Key(100), 1, -ValueInf, ValueInf)
	assert.False(t, cut)
}

func TestClearEmptiesTable(t *testing.T) {
	table := NewTable(4)
	table.Store(zobrist.Key(1), MoveNone, 3, Value(10), ValueNA, ValueTypeExact)
	assert.Equal(t, uint64(1), table.Len())
	table.Clear()
	assert.Equal(t, uint64(0), table.Len())
	_, cut := table.Probe(zobrist.Key(1), 1, -ValueInf, ValueInf)
	assert.False(t, cut)
}

func TestAgeSweepEvictsOnlyStaleEntries(t *testing.T) {
	table := NewTable(10)
	table.Store(zobrist.Key(1), MoveNone, 3, Value(10), ValueNA, ValueTypeExact)
	for i := zobrist.Key(2); i < 12; i++ {
		table.Store(i, MoveNone, 3, Value(10), ValueNA, ValueTypeExact)
	}
	assert.Equal(t, uint64(11), table.Len())

	evicted, err := table.AgeSweep(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), evicted)
	assert.Equal(t, uint64(10), table.Len())

	_, cut := table.Probe(zobrist.Key(1), 1, -ValueInf, ValueInf)
	assert.False(t, cut)
}

func TestAgeSweepOnEmptyTableEvictsNothing(t *testing.T) {
	table := NewTable(4)
	evicted, err := table.AgeSweep(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), evicted)
}
