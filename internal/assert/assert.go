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

// +build !debug

// Package assert provides cheap invariant checks that compile away entirely
// in release builds. Build with -tags debug to turn DEBUG on and get panics
// instead of silent no-ops.
package assert

// DEBUG gates whether Assert actually evaluates its condition. Left false,
// the Go compiler eliminates calls to Assert entirely since the function
// body is empty and the call has no observable effect - but the arguments
// are still evaluated, so callers that compute something expensive for the
// message should guard with "if assert.DEBUG { ... }" as well.
const DEBUG = false

// Assert panics with msg (fmt.Sprintf-formatted with a) if test is false.
// A no-op when DEBUG is false.
func Assert(test bool, msg string, a ...interface{}) {}
