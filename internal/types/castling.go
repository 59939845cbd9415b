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

package types

// CastlingRights is a 4-bit mask tracking which castles are still legally
// reachable for either side (rights, not immediate legality).
type CastlingRights uint8

const (
	CastlingNone   CastlingRights = 0
	WhiteOO        CastlingRights = 1 << 0
	WhiteOOO       CastlingRights = 1 << 1
	BlackOO        CastlingRights = 1 << 2
	BlackOOO       CastlingRights = 1 << 3
	CastlingAny    CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
	CastlingLength                = 16
)

// Has reports whether cr includes every right in mask.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Remove clears the given rights, as happens when a king or rook moves or
// is captured.
func (cr CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// kingsideOf and queensideOf index by Color to fetch that side's rights.
var kingsideOf = [2]CastlingRights{WhiteOO, BlackOO}
var queensideOf = [2]CastlingRights{WhiteOOO, BlackOOO}

// Kingside returns the kingside castling right for c.
func Kingside(c Color) CastlingRights {
	return kingsideOf[c]
}

// Queenside returns the queenside castling right for c.
func Queenside(c Color) CastlingRights {
	return queensideOf[c]
}

// bothOf clears both rights belonging to a color, used when its king moves
// or is captured.
var bothOf = [2]CastlingRights{WhiteOO | WhiteOOO, BlackOO | BlackOOO}

// Both returns both castling rights belonging to c.
func Both(c Color) CastlingRights {
	return bothOf[c]
}

// String renders the rights in FEN order "KQkq", "-" if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// CastlingRightsFromChar parses one FEN castling letter (KQkq) into its
// corresponding right, or CastlingNone.
func CastlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return WhiteOO
	case 'Q':
		return WhiteOOO
	case 'k':
		return BlackOO
	case 'q':
		return BlackOOO
	default:
		return CastlingNone
	}
}
