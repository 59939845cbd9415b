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

// Package position represents a chess position: an 8x8 piece board plus
// piece bitboards, a reversible move-application stack, and an incrementally
// maintained Zobrist key. Create one with New() or NewFromFEN().
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	applog "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// ErrMalformedNotation is the sentinel wrapped into every FEN parsing
// failure, so callers can test for it with errors.Is regardless of which
// field of the FEN string failed to parse.
var ErrMalformedNotation = errors.New("position: malformed notation")

var log *logging.Logger

func init() {
	log = applog.GetLog("position")
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHistory bounds the reversible move stack. A game exceeding this many
// plies is outside the scope of a single Position's lifetime; the game
// driver (internal/game) starts a fresh Position for a new game rather than
// growing this further.
const MaxHistory = 1024

// checkState is a tri-state cache for "is the side to move in check",
// invalidated on every DoMove/UndoMove and recomputed lazily by InCheck.
type checkState uint8

const (
	checkUnknown checkState = iota
	checkFalse
	checkTrue
)

// Position is the mutable board state the search walks via DoMove/UndoMove.
// It is not safe for concurrent use; each search goroutine owns its own
// Position (§5).
type Position struct {
	board           [64]Piece
	piecesBb        [2][PtLength]Bitboard
	occupiedBb      [2]Bitboard
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	kingSquare      [2]Square

	fullMoveNumber int
	zobristKey     zobrist.Key
	checkFlag      checkState

	historyCount int
	history      [MaxHistory]undoState
}

type undoState struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      zobrist.Key
	checkFlag       checkState
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// NewFromFEN parses a FEN string into a new Position.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupFromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	np := *p
	return &np
}

func (p *Position) setupFromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("%w: %q: need at least 4 fields", ErrMalformedNotation, fen)
	}

	p.board = [64]Piece{}
	p.piecesBb = [2][PtLength]Bitboard{}
	p.occupiedBb = [2]Bitboard{}
	p.kingSquare = [2]Square{SqNone, SqNone}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: %q: board must have 8 ranks", ErrMalformedNotation, fen)
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				f += File(c - '0')
			default:
				if !f.IsValid() {
					return fmt.Errorf("%w: %q: rank overflow", ErrMalformedNotation, fen)
				}
				col := White
				ch := byte(c)
				if c >= 'a' && c <= 'z' {
					col = Black
					ch = byte(c) - ('a' - 'A')
				}
				pt := PieceTypeFromChar(ch)
				if pt == PtNone {
					return fmt.Errorf("%w: %q: bad piece char %q", ErrMalformedNotation, fen, c)
				}
				sq := SquareOf(f, r)
				p.putPiece(MakePiece(col, pt), sq)
				f++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return fmt.Errorf("%w: %q: bad side to move", ErrMalformedNotation, fen)
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			p.castlingRights |= CastlingRightsFromChar(byte(c))
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		p.enPassantSquare = MakeSquare(fields[3])
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = v
		}
	}
	p.fullMoveNumber = 1
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = v
		}
	}

	p.checkFlag = checkUnknown
	p.historyCount = 0
	p.zobristKey = p.computeZobristKey()
	return nil
}

// FEN serializes the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := int(FileA); f <= int(FileH); f++ {
			pc := p.board[SquareOf(File(f), Rank(r))]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.nextPlayer.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			pc := p.board[SquareOf(File(f), Rank(r))]
			if pc == PieceNone {
				sb.WriteByte('.')
			} else {
				sb.WriteString(pc.Char())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(p.FEN())
	return sb.String()
}

// --- board mutation primitives, used by both setup and DoMove/UndoMove ---

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c] = p.occupiedBb[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.zobristKey ^= zobrist.Key(zobrist.Pieces[pc][sq])
}

func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt] = p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c] = p.occupiedBb[c].PopSquare(sq)
	p.zobristKey ^= zobrist.Key(zobrist.Pieces[pc][sq])
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	p.removePiece(from)
	p.removePiece(to)
	p.putPiece(pc, to)
}

// --- accessors ---

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color { return p.nextPlayer }

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the halfmove clock used for the 50-move rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the incrementally maintained hash key (§4.3).
func (p *Position) ZobristKey() zobrist.Key { return p.zobristKey }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBy returns the occupancy bitboard of color c.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns the bitboard of all occupied squares.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// GamePhase returns the 0..24 tapered-eval phase counter derived from
// remaining non-pawn, non-king material (§4.5).
func (p *Position) GamePhase() int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt := Knight; pt <= Queen; pt++ {
			phase += p.piecesBb[c][pt].PopCount() * pt.GamePhaseValue()
		}
	}
	if phase > 24 {
		phase = 24
	}
	return phase
}

func (p *Position) computeZobristKey() zobrist.Key {
	var key zobrist.Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobrist.Key(zobrist.Pieces[pc][sq])
		}
	}
	key ^= zobrist.Key(zobrist.CastlingRights[p.castlingRights])
	if p.enPassantSquare != SqNone {
		key ^= zobrist.Key(zobrist.EnPassantFile[p.enPassantSquare.FileOf()])
	}
	if p.nextPlayer == Black {
		key ^= zobrist.Key(zobrist.NextPlayer)
	}
	return key
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if PawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	occ := p.OccupiedAll()
	bishopsQueens := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	if bishopsQueens != 0 && BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	if rooksQueens != 0 && RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move is currently in check. The
// result is cached in checkFlag and invalidated by DoMove/UndoMove/DoNullMove
// (§4.2's cached tri-state check flag).
func (p *Position) InCheck() bool {
	if p.checkFlag == checkUnknown {
		if p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip()) {
			p.checkFlag = checkTrue
		} else {
			p.checkFlag = checkFalse
		}
	}
	return p.checkFlag == checkTrue
}

// --- move application ---

// DoMove applies a pseudo-legal move to the position. The caller is
// responsible for only ever passing moves produced by the move generator;
// this does not re-validate move legality.
func (p *Position) DoMove(m Move) {
	assert.Assert(m.IsValid(), "position: DoMove: invalid move %s", m)

	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	capturedPc := p.board[toSq]

	assert.Assert(fromPc != PieceNone, "position: DoMove: no piece on %s for move %s", fromSq, m)

	h := &p.history[p.historyCount]
	h.move = m
	h.capturedPiece = capturedPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.zobristKey = p.zobristKey
	h.checkFlag = p.checkFlag
	p.historyCount++

	color := fromPc.ColorOf()
	prevEp := p.enPassantSquare
	p.clearEnPassant()

	if capturedPc != PieceNone || fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	switch m.MoveType() {
	case Normal:
		p.movePiece(fromSq, toSq)
		if fromPc.TypeOf() == Pawn && SquareDistance(fromSq, toSq) == 2 {
			mid := Square((int(fromSq) + int(toSq)) / 2)
			p.enPassantSquare = mid
		}
	case Promotion:
		p.removePiece(fromSq)
		if capturedPc != PieceNone {
			p.removePiece(toSq)
		}
		p.putPiece(MakePiece(color, m.PromotionType()), toSq)
	case EnPassant:
		capturedSq := toSq.To(color.Flip().PawnPushDirection())
		capturedPc = p.board[capturedSq]
		h.capturedPiece = capturedPc
		p.removePiece(capturedSq)
		p.movePiece(fromSq, toSq)
	case Castling:
		p.movePiece(fromSq, toSq)
		switch toSq {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		}
	}

	p.updateCastlingRights(fromSq, toSq, fromPc, capturedPc)

	p.zobristKey ^= zobrist.Key(zobrist.CastlingRights[h.castlingRights])
	p.zobristKey ^= zobrist.Key(zobrist.CastlingRights[p.castlingRights])
	if prevEp != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[prevEp.FileOf()])
	}
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[p.enPassantSquare.FileOf()])
	}
	p.zobristKey ^= zobrist.Key(zobrist.NextPlayer)

	if color == Black {
		p.fullMoveNumber++
	}
	p.nextPlayer = color.Flip()
	p.checkFlag = checkUnknown
}

func (p *Position) clearEnPassant() {
	p.enPassantSquare = SqNone
}

func (p *Position) updateCastlingRights(from, to Square, moved, captured Piece) {
	if moved.TypeOf() == King {
		p.castlingRights = p.castlingRights.Remove(Both(moved.ColorOf()))
	}
	switch from {
	case SqA1:
		p.castlingRights = p.castlingRights.Remove(WhiteOOO)
	case SqH1:
		p.castlingRights = p.castlingRights.Remove(WhiteOO)
	case SqA8:
		p.castlingRights = p.castlingRights.Remove(BlackOOO)
	case SqH8:
		p.castlingRights = p.castlingRights.Remove(BlackOO)
	}
	switch to {
	case SqA1:
		p.castlingRights = p.castlingRights.Remove(WhiteOOO)
	case SqH1:
		p.castlingRights = p.castlingRights.Remove(WhiteOO)
	case SqA8:
		p.castlingRights = p.castlingRights.Remove(BlackOOO)
	case SqH8:
		p.castlingRights = p.castlingRights.Remove(BlackOO)
	}
}

// UndoMove reverts the last move applied via DoMove.
func (p *Position) UndoMove() {
	assert.Assert(p.historyCount > 0, "position: UndoMove: no move to undo")

	p.historyCount--
	h := &p.history[p.historyCount]
	move := h.move
	color := p.nextPlayer.Flip()

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(color, Pawn), move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		capturedSq := move.To().To(color.Flip().PawnPushDirection())
		p.putPiece(h.capturedPiece, capturedSq)
	case Castling:
		p.movePiece(move.To(), move.From())
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.checkFlag = h.checkFlag
	p.zobristKey = h.zobristKey
	if color == Black {
		p.fullMoveNumber--
	}
	p.nextPlayer = color
}

// DoNullMove flips the side to move without changing the board, used by
// null-move pruning (§4.6). The en passant square is cleared since a real
// move could never leave it intact across two plies for the same side.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCount]
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.zobristKey = p.zobristKey
	h.checkFlag = p.checkFlag
	p.historyCount++

	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[p.enPassantSquare.FileOf()])
		p.enPassantSquare = SqNone
	}
	p.zobristKey ^= zobrist.Key(zobrist.NextPlayer)
	p.nextPlayer = p.nextPlayer.Flip()
	p.checkFlag = checkUnknown
}

// UndoNullMove reverts DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCount--
	h := &p.history[p.historyCount]
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.checkFlag = h.checkFlag
	p.zobristKey = h.zobristKey
	p.nextPlayer = p.nextPlayer.Flip()
}

// HasRepeated reports whether the current position's key has already
// occurred at least twice earlier in the history since the last irreversible move (the
// halfmove clock reset point), implementing threefold-repetition detection
// (§4.7) without storing a separate global game history.
func (p *Position) HasRepeated() bool {
	count := 1
	limit := p.historyCount - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := p.historyCount - 1; i >= limit; i-- {
		if p.history[i].zobristKey == p.zobristKey {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough material
// left to force checkmate, a draw condition independent of move generation.
func (p *Position) HasInsufficientMaterial() bool {
	var nonPawnMaterial [2]Value
	for _, c := range [2]Color{White, Black} {
		for pt := Knight; pt <= Queen; pt++ {
			nonPawnMaterial[c] += Value(p.piecesBb[c][pt].PopCount()) * pt.MaterialValue()
		}
	}
	if nonPawnMaterial[White] == 0 && nonPawnMaterial[Black] == 0 &&
		p.piecesBb[White][Pawn] == BbZero && p.piecesBb[Black][Pawn] == BbZero {
		return true
	}
	if p.piecesBb[White][Pawn] != BbZero || p.piecesBb[Black][Pawn] != BbZero {
		return false
	}
	knight, bishop := Knight.MaterialValue(), Bishop.MaterialValue()
	w, b := nonPawnMaterial[White], nonPawnMaterial[Black]
	if w < 400 && b < 400 {
		return true
	}
	if (w == 2*knight && b <= bishop) || (b == 2*knight && w <= bishop) {
		return true
	}
	if (w == 2*bishop && b == bishop) || (b == 2*bishop && w == bishop) {
		return true
	}
	if w == 2*bishop || b == 2*bishop {
		return false
	}
	if (w < 2*bishop && b <= bishop) || (w <= bishop && b < 2*bishop) {
		return true
	}
	return false
}
