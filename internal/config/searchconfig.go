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

package config

// searchConfiguration holds the knobs for one search instance (§4.6, §10).
type searchConfiguration struct {
	MaxDepth     int
	TimeBudgetMs int
	MaxNodes     int64

	TtSizeMb     int
	TtBuckets    int
	TtBucketSize int
	UseTT        bool

	UseQuiescence   bool
	QuiescenceDepth int

	UseNullMove      bool
	NmpMinDepth      int
	NmpReductionBase int
	NmpReductionDeep int

	UseLmr          bool
	LmrMinDepth     int
	LmrMinMoveIndex int

	UseKiller  bool
	UseHistory bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.MaxDepth = 64
	Settings.Search.TimeBudgetMs = 5000
	Settings.Search.MaxNodes = 0 // 0 = unbounded

	Settings.Search.TtSizeMb = 0 // 0 = derive from TtBuckets*TtBucketSize
	Settings.Search.TtBuckets = 1 << 18
	Settings.Search.TtBucketSize = 4
	Settings.Search.UseTT = true

	Settings.Search.UseQuiescence = true
	Settings.Search.QuiescenceDepth = 4

	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 2
	Settings.Search.NmpReductionBase = 1
	Settings.Search.NmpReductionDeep = 2

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMinMoveIndex = 3

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.NmpReductionDeep < Settings.Search.NmpReductionBase {
		Settings.Search.NmpReductionDeep = Settings.Search.NmpReductionBase
	}
}
