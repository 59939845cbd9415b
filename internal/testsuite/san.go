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
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// resolveSAN finds the legal move matching a standard algebraic notation
// token (as used in EPD "bm"/"am" opcodes), e.g. "e4", "Nf3", "Bxc4",
// "exd5", "e8=Q", "O-O". It covers the subset of SAN actually found in EPD
// test suites: check/mate suffixes and move-quality annotations ("!", "?")
// are stripped before matching.
func resolveSAN(p *position.Position, san string) (Move, error) {
	san = strings.TrimRight(san, "+#!?")
	legal := movegen.GenerateLegal(p, movegen.AllMoves)
	us := p.SideToMove()

	if san == "O-O" || san == "0-0" {
		return findCastle(legal, us, SqG1, SqG8)
	}
	if san == "O-O-O" || san == "0-0-0" {
		return findCastle(legal, us, SqC1, SqC8)
	}

	promo := PtNone
	if i := strings.IndexByte(san, '='); i >= 0 {
		if i+1 < len(san) {
			promo = PieceTypeFromChar(san[i+1])
		}
		san = san[:i]
	}

	pieceType := Pawn
	rest := san
	if len(san) > 0 && san[0] >= 'A' && san[0] <= 'Z' {
		pieceType = PieceTypeFromChar(san[0])
		rest = san[1:]
	}
	rest = strings.ReplaceAll(rest, "x", "")

	if len(rest) < 2 {
		return MoveNone, fmt.Errorf("testsuite: unparseable SAN token %q", san)
	}
	dest := MakeSquare(rest[len(rest)-2:])
	if dest == SqNone {
		return MoveNone, fmt.Errorf("testsuite: bad destination square in %q", san)
	}
	disambig := rest[:len(rest)-2]

	var candidate Move
	matches := 0
	for _, m := range legal {
		if m.To() != dest {
			continue
		}
		mover := p.PieceAt(m.From())
		if mover.TypeOf() != pieceType {
			continue
		}
		if m.MoveType() == Promotion && promo != PtNone && m.PromotionType() != promo {
			continue
		}
		if disambig != "" && !matchesDisambiguation(m.From(), disambig) {
			continue
		}
		candidate = m
		matches++
	}
	if matches == 0 {
		return MoveNone, fmt.Errorf("testsuite: no legal move matches SAN %q", san)
	}
	return candidate, nil
}

func matchesDisambiguation(from Square, disambig string) bool {
	for _, c := range disambig {
		switch {
		case c >= 'a' && c <= 'h':
			if from.FileOf() != File(c-'a') {
				return false
			}
		case c >= '1' && c <= '8':
			if from.RankOf() != Rank(c-'1') {
				return false
			}
		}
	}
	return true
}

func findCastle(legal []Move, us Color, whiteTarget, blackTarget Square) (Move, error) {
	target := whiteTarget
	if us == Black {
		target = blackTarget
	}
	for _, m := range legal {
		if m.MoveType() == Castling && m.To() == target {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("testsuite: no legal castling move for side to move")
}
