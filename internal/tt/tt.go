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

// Package tt implements a bucketed transposition table used to cache search
// results across the iterative-deepening tree (§4.4). Each hash index maps
// to a small bucket of entries rather than a single slot, so two colliding
// keys don't necessarily evict one another.
//
// Table is not safe for concurrent use; Resize and Clear must not race with
// Probe/Store.
package tt

import (
	"context"
	"runtime"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/zobrist"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// BucketSize is the number of candidate slots searched per hash index.
const BucketSize = 4

// DefaultSizeLog2 gives 2^18 buckets, the size recorded for this engine.
const DefaultSizeLog2 = 18

// Stats tracks table usage the way the teacher's TtStats does.
type Stats struct {
	Puts       uint64
	Hits       uint64
	Misses     uint64
	Collisions uint64
	Overwrites uint64
}

// Table is the transposition table.
type Table struct {
	log     *logging.Logger
	buckets [][BucketSize]Entry
	mask    uint64
	counter uint64
	entries uint64
	Stats   Stats
}

// NewTable creates a Table with 2^sizeLog2 buckets of BucketSize entries
// each.
func NewTable(sizeLog2 int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeLog2)
	return t
}

// Resize replaces the table with a fresh one of 2^sizeLog2 buckets,
// discarding all entries.
func (t *Table) Resize(sizeLog2 int) {
	if sizeLog2 < 1 {
		sizeLog2 = 1
	}
	numBuckets := uint64(1) << uint(sizeLog2)
	t.buckets = make([][BucketSize]Entry, numBuckets)
	t.mask = numBuckets - 1
	t.entries = 0
	t.Stats = Stats{}
	t.log.Info(out.Sprintf("TT resized to %d buckets x %d entries (%d bytes)",
		numBuckets, BucketSize, numBuckets*BucketSize*uint64(entrySize)))
}

// Clear empties the table without changing its size.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = [BucketSize]Entry{}
	}
	t.entries = 0
	t.Stats = Stats{}
}

const entrySize = 40 // approximate struct size, for the log line only

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key and reports whether its search window at depth can be
// resolved directly from a cached entry (§4.4):
//   - an EXACT entry at >= depth always resolves
//   - a BETA (fail-high/lowerbound) entry resolves if its value is >= beta
//   - an ALPHA (fail-low/upperbound) entry resolves if its value is <= alpha
//
// The returned Entry is always the raw cached slot (for its Move, even on a
// non-conclusive probe), cut reports whether value/cut are authoritative.
func (t *Table) Probe(key zobrist.Key, depth int8, alpha, beta Value) (entry Entry, cut bool) {
	bucket := &t.buckets[t.index(key)]
	for i := range bucket {
		if bucket[i].Key == key {
			t.Stats.Hits++
			entry = bucket[i]
			if entry.Depth < depth {
				return entry, false
			}
			switch entry.Type {
			case ValueTypeExact:
				return entry, true
			case ValueTypeBeta:
				return entry, entry.Value >= beta
			case ValueTypeAlpha:
				return entry, entry.Value <= alpha
			}
			return entry, false
		}
	}
	t.Stats.Misses++
	return Entry{}, false
}

// Store inserts or updates a transposition entry following the original
// engine's bucketed replacement policy: update in place on key match (if at
// least as deep), fill an empty slot if the bucket has room, otherwise
// evict the shallowest/oldest slot provided the new entry is not shallower.
func (t *Table) Store(key zobrist.Key, move Move, depth int8, value, eval Value, vtype ValueType) {
	t.Stats.Puts++
	t.counter++
	bucket := &t.buckets[t.index(key)]

	for i := range bucket {
		if bucket[i].Key == key {
			if depth >= bucket[i].Depth {
				bucket[i] = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Type: vtype, age: t.counter}
			}
			return
		}
	}

	for i := range bucket {
		if bucket[i].empty() {
			bucket[i] = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Type: vtype, age: t.counter}
			t.entries++
			return
		}
	}

	t.Stats.Collisions++
	weakest := 0
	for i := 1; i < BucketSize; i++ {
		if replaceableBefore(bucket[i], bucket[weakest]) {
			weakest = i
		}
	}
	if depth < bucket[weakest].Depth {
		return
	}
	t.Stats.Overwrites++
	bucket[weakest] = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Type: vtype, age: t.counter}
}

// replaceableBefore reports whether a is a weaker replacement candidate
// than b: shallower first, ties broken by the older (smaller) age.
func replaceableBefore(a, b Entry) bool {
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	return a.age < b.age
}

// AgeSweep evicts entries that have fallen more than maxAge Store
// generations behind the table's current counter, freeing slots gradually
// between searches of a long-running game without the full Clear a fresh
// game requires (§5: TT bucket aging is the one facility permitted to fan
// out across a worker pool despite the otherwise single-threaded search).
// Buckets don't overlap, so each worker owns a disjoint slice of the table
// and needs no locking. It returns the number of entries evicted.
func (t *Table) AgeSweep(ctx context.Context, maxAge uint64) (uint64, error) {
	numBuckets := len(t.buckets)
	if numBuckets == 0 {
		return 0, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > numBuckets {
		workers = numBuckets
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (numBuckets + workers - 1) / workers

	counts := make([]uint64, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > numBuckets {
			hi = numBuckets
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			var n uint64
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				bucket := &t.buckets[i]
				for slot := range bucket {
					e := &bucket[slot]
					if e.empty() {
						continue
					}
					if t.counter-e.age > maxAge {
						*e = Entry{}
						n++
					}
				}
			}
			counts[w] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range counts {
		total += n
	}
	t.entries -= total
	return total, nil
}

// Hashfull returns how full the table is in permill, as reported by UCI's
// "info hashfull".
func (t *Table) Hashfull() int {
	total := uint64(len(t.buckets)) * BucketSize
	if total == 0 {
		return 0
	}
	return int((1000 * t.entries) / total)
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.entries
}

