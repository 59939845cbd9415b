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

// MoveType distinguishes the four ways a move can be applied to a position.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// String returns a short label for the move type.
func (mt MoveType) String() string {
	switch mt {
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "n"
	}
}

// Move packs a move into a single uint32:
//
//	bits  0- 5: to square
//	bits  6-11: from square
//	bits 12-13: promotion piece type, offset so Knight..Queen fit 2 bits
//	bits 14-15: move type
//	bits 16-31: sort value used by move ordering, not part of move identity
type Move uint32

const (
	MoveNone Move = 0

	toMask       Move = 0x3f
	fromMask     Move = 0x3f << 6
	promMask     Move = 0x3 << 12
	typeMask     Move = 0x3 << 14
	identityMask      = toMask | fromMask | promMask | typeMask
)

// CreateMove builds a move with no sort value attached.
func CreateMove(from, to Square, mt MoveType, promotion PieceType) Move {
	promBits := Move(0)
	if promotion >= Knight {
		promBits = Move(promotion - Knight)
	}
	return Move(to) | Move(from)<<6 | promBits<<12 | Move(mt)<<14
}

// CreateMoveValue builds a move and attaches an ordering value in one step.
func CreateMoveValue(from, to Square, mt MoveType, promotion PieceType, value Value) Move {
	return CreateMove(from, to, mt, promotion).SetValue(value)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> 6)
}

// PromotionType returns the piece type a pawn promotes to. Only meaningful
// when MoveType() is Promotion.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType((m&promMask)>>12)
}

// MoveType returns the move's type tag.
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> 14)
}

// MoveOf strips the sort value, leaving only the move's identity bits.
// Two moves compare equal by identity even if their attached values differ.
func (m Move) MoveOf() Move {
	return m & identityMask
}

// ValueOf returns the move's attached ordering value.
func (m Move) ValueOf() Value {
	return Value(int32(m>>16) + int32(-1<<15))
}

// SetValue returns a copy of m with its ordering value replaced.
func (m Move) SetValue(v Value) Move {
	return m.MoveOf() | (Move(uint16(int32(v)-int32(-1<<15))) << 16)
}

// IsValid reports whether m carries a usable from/to pair.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// String renders the move in coordinate notation (e.g. "e2e4", "e7e8Q").
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

// StringUci renders the move exactly as UCI expects it: lower-case
// coordinates, lower-case promotion letter.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		switch m.PromotionType() {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}
