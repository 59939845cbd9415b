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

// Package history holds the move-ordering tables that accumulate across a
// search: a killer table (moves that caused a beta cutoff at a given depth)
// and a history-heuristic table (a score keyed by origin, destination and
// promotion piece that grows by depth^2 on every cutoff) (§4.6).
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxPly bounds the killer table's depth dimension.
const MaxPly = 128

// promoIndex maps a promotion piece type to a small dense index: 0 for no
// promotion, 1..4 for Knight..Queen.
func promoIndex(pt PieceType) int {
	if pt < Knight {
		return 0
	}
	return int(pt-Knight) + 1
}

// History is updated during search to bias move ordering (§4.6).
type History struct {
	// Count[color][from][to][promoIndex] accumulates depth^2 on every
	// quiet move that causes a beta cutoff.
	Count [2][64][64][5]int64
	// Killers[ply] holds up to two quiet moves that caused a beta cutoff
	// at that ply, most recent first.
	Killers [MaxPly][2]Move
}

// New creates an empty History.
func New() *History {
	return &History{}
}

// Clear resets all tables, used between games.
func (h *History) Clear() {
	*h = History{}
}

// Score returns the accumulated history-heuristic score for a quiet move.
func (h *History) Score(c Color, m Move) int64 {
	return h.Count[c][m.From()][m.To()][promoIndex(m.PromotionType())]
}

// AddCutoff records that m caused a beta cutoff at depth: bumps its history
// score by depth^2 and inserts it into the ply's killer slots.
func (h *History) AddCutoff(c Color, ply, depth int, m Move) {
	h.Count[c][m.From()][m.To()][promoIndex(m.PromotionType())] += int64(depth * depth)
	if ply < 0 || ply >= MaxPly {
		return
	}
	slot := &h.Killers[ply]
	if slot[0] == m || slot[1] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

// IsKiller reports whether m is one of the two killer moves stored at ply.
func (h *History) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	slot := &h.Killers[ply]
	return slot[0] == m || slot[1] == m
}

// String renders every non-zero history entry, in the teacher's
// locale-formatted reporting style.
func (h *History) String() string {
	sb := strings.Builder{}
	for c := White; c <= Black; c++ {
		for from := SqA1; from < SqNone; from++ {
			for to := SqA1; to < SqNone; to++ {
				for pi := 0; pi < 5; pi++ {
					count := h.Count[c][from][to][pi]
					if count == 0 {
						continue
					}
					sb.WriteString(out.Sprintf("%s %s%s promo=%d: %d\n", c.String(), from.String(), to.String(), pi, count))
				}
			}
		}
	}
	return sb.String()
}
