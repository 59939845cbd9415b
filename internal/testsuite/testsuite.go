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

// Package testsuite runs EPD (Extended Position Description) test files
// against choose_move: each line is a FEN plus a "bm" (best move), "am"
// (avoid move) or "dm" (direct mate in N) opcode, the three opcodes chess
// engines are conventionally graded against.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// OpCode identifies which of the three supported EPD opcodes a Test checks.
type OpCode uint8

const (
	BestMove OpCode = iota // "bm"
	AvoidMove
	DirectMate
)

func (o OpCode) String() string {
	switch o {
	case BestMove:
		return "bm"
	case AvoidMove:
		return "am"
	case DirectMate:
		return "dm"
	default:
		return "?"
	}
}

// Outcome is the result of running one Test.
type Outcome uint8

const (
	NotRun Outcome = iota
	Passed
	Failed
)

func (r Outcome) String() string {
	switch r {
	case Passed:
		return "pass"
	case Failed:
		return "fail"
	default:
		return "not run"
	}
}

// Test is a single EPD line: a position plus the expected outcome.
type Test struct {
	ID          string
	FEN         string
	Op          OpCode
	TargetMoves []Move
	MateDepth   int
	Line        string

	Actual  Move
	Value   Value
	Outcome Outcome
}

// Suite is a parsed EPD file, ready to run with Run.
type Suite struct {
	Tests []*Test
	Depth int
	Limit time.Duration
}

var epdLine = regexp.MustCompile(`^\s*(.*?)\s+(bm|am|dm)\s+(.*?);(?:.*\bid\s+"(.*?)";)?.*$`)

// Load reads an EPD file and parses each line into a Test. Lines that fail
// to parse (blank, comment-only, or malformed) are skipped rather than
// treated as errors, matching how EPD files in the wild mix commentary with
// test lines.
func Load(path string, depth int, limit time.Duration) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	suite := &Suite{Depth: depth, Limit: limit}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		test, err := parseLine(line)
		if err != nil {
			continue
		}
		suite.Tests = append(suite.Tests, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return suite, nil
}

func parseLine(line string) (*Test, error) {
	m := epdLine.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("testsuite: not an EPD line: %q", line)
	}
	fen, opcode, operand, id := m[1], m[2], m[3], m[4]

	p, err := position.NewFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("testsuite: invalid FEN %q: %w", fen, err)
	}

	test := &Test{ID: id, FEN: fen, Line: line}
	switch opcode {
	case "bm":
		test.Op = BestMove
	case "am":
		test.Op = AvoidMove
	case "dm":
		test.Op = DirectMate
	}

	if test.Op == DirectMate {
		depth, err := strconv.Atoi(strings.TrimSpace(operand))
		if err != nil {
			return nil, fmt.Errorf("testsuite: invalid dm depth %q: %w", operand, err)
		}
		test.MateDepth = depth
		return test, nil
	}

	for _, san := range strings.Fields(operand) {
		mv, err := resolveSAN(p, san)
		if err != nil {
			continue
		}
		test.TargetMoves = append(test.TargetMoves, mv)
	}
	if len(test.TargetMoves) == 0 {
		return nil, fmt.Errorf("testsuite: no resolvable target move in %q", operand)
	}
	return test, nil
}

// Run executes every test in the suite against a fresh Search and returns
// the number passed.
func (s *Suite) Run() int {
	passed := 0
	for _, t := range s.Tests {
		runOne(t, s.Depth, s.Limit)
		if t.Outcome == Passed {
			passed++
		}
		out.Printf("%-6s %-8s %-8s %s  %q\n", t.Op, t.Outcome, t.Actual.StringUci(), t.FEN, t.ID)
	}
	return passed
}

func runOne(t *Test, depth int, limit time.Duration) {
	p, err := position.NewFromFEN(t.FEN)
	if err != nil {
		t.Outcome = Failed
		return
	}

	sr := search.NewSearch()
	limits := search.Limits{MaxDepth: depth}
	if limit > 0 {
		limits.TimeBudget = limit
	}
	result := sr.ChooseMove(p, limits)
	t.Actual = result.BestMove
	t.Value = result.BestValue

	switch t.Op {
	case DirectMate:
		wantPly := t.MateDepth * 2
		if result.BestValue.IsCheckmateValue() && result.BestValue > 0 && int(ValueCheckmate-result.BestValue) <= wantPly {
			t.Outcome = Passed
		} else {
			t.Outcome = Failed
		}
	case BestMove:
		t.Outcome = Failed
		for _, want := range t.TargetMoves {
			if want == result.BestMove {
				t.Outcome = Passed
				break
			}
		}
	case AvoidMove:
		t.Outcome = Passed
		for _, avoid := range t.TargetMoves {
			if avoid == result.BestMove {
				t.Outcome = Failed
				break
			}
		}
	}
}
