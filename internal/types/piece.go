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

import "strings"

// PieceType is one of the six chess piece kinds, or PtNone.
type PieceType uint8

const (
	PtNone   PieceType = 0
	King     PieceType = 1
	Pawn     PieceType = 2
	Knight   PieceType = 3
	Bishop   PieceType = 4
	Rook     PieceType = 5
	Queen    PieceType = 6
	PtLength PieceType = 7
)

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSliding reports whether pieces of this type move along rays.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// gamePhaseValue weighs non-pawn material for the tapered-eval phase parameter (§4.5).
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns this piece type's contribution to the game-phase counter.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds centipawn material values (§4.5): P=100,N=320,B=333,R=510,Q=900.
var pieceTypeValue = [PtLength]Value{0, 0, 100, 320, 333, 510, 900}

// MaterialValue returns the static centipawn value of this piece type.
func (pt PieceType) MaterialValue() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the English name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-KPNBRQ"

// Char returns a single upper-case letter for the piece type ("-" for PtNone).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// PieceTypeFromChar parses a single upper-case piece letter (KPNBRQ).
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'K':
		return King
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	default:
		return PtNone
	}
}

// Piece packs a Color and PieceType into a single small value.
// PieceNone=0; White pieces 1..6; Black pieces 9..14 (color in bit 3).
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece builds a Piece from a Color and PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// MaterialValue returns the static centipawn value of the piece.
func (p Piece) MaterialValue() Value {
	return pieceTypeValue[p.TypeOf()]
}

const pieceToChar = " KPNBRQ- kpnbrq-"

// Char returns the FEN character for the piece (upper-case White, lower-case Black).
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

// PieceFromChar parses a single FEN piece character, or PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx < 0 || s[0] == '-' {
		return PieceNone
	}
	return Piece(idx)
}

var pieceToUnicode = []string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-",
	" ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar returns a unicode glyph for the piece.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}
