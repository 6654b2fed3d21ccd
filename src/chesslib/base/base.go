package base

import (
	"errors"
	"fmt"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidSquare = errors.New("invalid square")

// ---- Color ----

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// rank (1..8) where a pawn of this color promotes
func (c Color) PromotionRank() int {
	if c == Black {
		return 1
	}
	return 8
}

// ---- Piece ----

type PieceKind uint8

const (
	NoKind PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// promotion targets in dialog order
var PromotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

func (k PieceKind) IsPromotion() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

var whitePieces = map[PieceKind]Piece{
	King: WKing, Queen: WQueen, Rook: WRook, Bishop: WBishop, Knight: WKnight, Pawn: WPawn,
}

var blackPieces = map[PieceKind]Piece{
	King: BKing, Queen: BQueen, Rook: BRook, Bishop: BBishop, Knight: BKnight, Pawn: BPawn,
}

func MakePiece(k PieceKind, c Color) Piece {
	var p Piece
	var ok bool
	switch c {
	case White:
		p, ok = whitePieces[k]
	case Black:
		p, ok = blackPieces[k]
	}
	if !ok {
		return InvalidPiece
	}
	return p
}

func (p Piece) Color() Color {
	switch {
	case p >= WPawn && p <= WKing:
		return White
	case p >= BPawn && p <= BKing:
		return Black
	default:
		return NoColor
	}
}

func (p Piece) Kind() PieceKind {
	switch p {
	case WKing, BKing:
		return King
	case WQueen, BQueen:
		return Queen
	case WRook, BRook:
		return Rook
	case WBishop, BBishop:
		return Bishop
	case WKnight, BKnight:
		return Knight
	case WPawn, BPawn:
		return Pawn
	default:
		return NoKind
	}
}

func (p Piece) String() string {
	return string(ConvertRuneFromPiece(p))
}

func ConvertPieceFromRune(p rune) Piece {
	switch p {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

// 'q', 'Q' -> Queen; used by text inputs for promotion choice
// Piece -> unicode glyph, a space for EmptyPiece
func ConvertGlyphFromPiece(p Piece) string {
	switch p {
	case WKing:
		return "♔"
	case WQueen:
		return "♕"
	case WRook:
		return "♖"
	case WBishop:
		return "♗"
	case WKnight:
		return "♘"
	case WPawn:
		return "♙"
	case BKing:
		return "♚"
	case BQueen:
		return "♛"
	case BRook:
		return "♜"
	case BBishop:
		return "♝"
	case BKnight:
		return "♞"
	case BPawn:
		return "♟"
	default:
		return " "
	}
}

func ConvertKindFromRune(r rune) PieceKind {
	switch r {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	case 'k', 'K':
		return King
	case 'p', 'P':
		return Pawn
	default:
		return NoKind
	}
}

// ---- Square ----

// Square index 0..63, a1 == 0, h8 == 63
type Square int8

const NoSquare Square = -1

func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

func (s Square) IsValid() bool {
	return s >= 0 && s < 64
}

// 0..7 (a..h)
func (s Square) File() int { return int(s) % 8 }

// 0..7 (1..8)
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	str, err := AlgebraicFromSquare(int(s))
	if err != nil {
		return "-"
	}
	return str
}

func ParseSquare(pos string) (Square, error) {
	idx, err := SquareFromAlgebraic(pos)
	if err != nil {
		return NoSquare, err
	}
	return Square(idx), nil
}

func SquareFromAlgebraic(pos string) (int, error) {
	// 'a' ~ 'h' to number
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSquare, pos)
	}
	return int(pos[1]-'1')*8 + int(pos[0]-'a'), nil
}

func AlgebraicFromSquare(index int) (string, error) {
	if index < 0 || index >= 64 {
		return "", fmt.Errorf("%w: index %d", ErrInvalidSquare, index)
	}
	return string([]rune{rune(index%8 + 'a'), rune(index/8 + '1')}), nil
}

// ---- Move ----

// MoveRequest is what a user asks the rules engine to play
type MoveRequest struct {
	From      Square
	To        Square
	Promotion PieceKind // NoKind if not a promotion
}

func (r MoveRequest) String() string {
	s := r.From.String() + r.To.String()
	if r.Promotion != NoKind {
		s += string(ConvertRuneFromPiece(MakePiece(r.Promotion, Black)))
	}
	return s
}

// Move is a move as the rules engine reports it
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece // EmptyPiece if nothing captured
	Promotion PieceKind
}

func (m Move) IsCapture() bool {
	return m.Captured != EmptyPiece && m.Captured != InvalidPiece
}

func (m Move) Request() MoveRequest {
	return MoveRequest{From: m.From, To: m.To, Promotion: m.Promotion}
}

func (m Move) String() string {
	return fmt.Sprintf("%c %s", ConvertRuneFromPiece(m.Piece), m.Request())
}

// ---- Mailbox ----

// Mailbox is a board as 64 squares, a1 first. Empty squares hold EmptyPiece.
type Mailbox [64]Piece

func EmptyMailbox() Mailbox {
	var mb Mailbox
	for i := range mb {
		mb[i] = EmptyPiece
	}
	return mb
}

func (mb Mailbox) At(sq Square) Piece {
	if !sq.IsValid() {
		return InvalidPiece
	}
	return mb[sq]
}
