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

package search

import "time"

// Limits controls how a single choose_move call is bounded (§4.6).
type Limits struct {
	// MaxDepth is the deepest iterative-deepening iteration to start.
	// Zero means use config.Settings.Search.MaxDepth.
	MaxDepth int
	// MaxNodes is a hard ceiling on nodes visited; zero means unbounded.
	MaxNodes uint64
	// TimeBudget is a soft wall-clock deadline checked at each recursion
	// entry; zero means unbounded.
	TimeBudget time.Duration
}

// NewLimits returns a Limits instance with every bound disabled; the caller
// sets whichever fields it needs.
func NewLimits() Limits {
	return Limits{}
}
