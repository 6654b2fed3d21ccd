// Package rules exposes chess positions as immutable snapshots.
//
// Move generation, legality and FEN handling are delegated to
// github.com/corentings/chess/v2; this package only converts between its
// types and the ones in chesslib/base.
package rules

import (
	"clickchess/src/chesslib/base"
	"errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoPiece     = errors.New("no piece on square")
	ErrInvalidFEN  = errors.New("invalid FEN")
)

// Position is a read-only view of a game state. Apply never mutates the
// receiver, it returns the next snapshot.
type Position interface {
	// legal moves of the piece standing on sq (empty if none or not its turn)
	MovesFrom(sq base.Square) []base.Move
	PieceAt(sq base.Square) (base.Piece, bool)
	Turn() base.Color
	Apply(req base.MoveRequest) (Position, base.Move, error)
	FEN() string
}

type snapshot struct {
	game *chess.Game
}

func NewClassic() Position {
	return &snapshot{game: chess.NewGame()}
}

func NewFromFEN(fen string) (Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return &snapshot{game: chess.NewGame(opt)}, nil
}

func (s *snapshot) FEN() string {
	return s.game.FEN()
}

func (s *snapshot) Turn() base.Color {
	return convColor(s.game.Position().Turn())
}

func (s *snapshot) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.IsValid() {
		return base.InvalidPiece, false
	}
	p := s.game.Position().Board().Piece(toSquare(sq))
	if p == chess.NoPiece {
		return base.EmptyPiece, false
	}
	return convPiece(p), true
}

func (s *snapshot) MovesFrom(sq base.Square) []base.Move {
	if !sq.IsValid() {
		return nil
	}
	from := toSquare(sq)
	var out []base.Move
	for _, m := range s.game.ValidMoves() {
		if m.S1() != from {
			continue
		}
		out = append(out, s.convMove(m))
	}
	return out
}

func (s *snapshot) Apply(req base.MoveRequest) (Position, base.Move, error) {
	if !req.From.IsValid() || !req.To.IsValid() {
		return s, base.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, req)
	}
	if _, ok := s.PieceAt(req.From); !ok {
		return s, base.Move{}, fmt.Errorf("%w: %s", ErrNoPiece, req.From)
	}

	// a pawn reaching the last rank needs a piece; anything else must not carry one
	promo := chess.NoPieceType
	if req.Promotion != base.NoKind {
		promo = toPieceType(req.Promotion)
	}

	from, to := toSquare(req.From), toSquare(req.To)
	for _, m := range s.game.ValidMoves() {
		if m.S1() != from || m.S2() != to || m.Promo() != promo {
			continue
		}
		done := s.convMove(m)
		next := s.game.Clone()
		mv := m
		if err := next.Move(&mv, nil); err != nil {
			return s, base.Move{}, fmt.Errorf("%w: %s: %v", ErrIllegalMove, req, err)
		}
		return &snapshot{game: next}, done, nil
	}
	return s, base.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, req)
}

func (s *snapshot) convMove(m chess.Move) base.Move {
	board := s.game.Position().Board()
	out := base.Move{
		From:      fromSquare(m.S1()),
		To:        fromSquare(m.S2()),
		Piece:     convPiece(board.Piece(m.S1())),
		Captured:  base.EmptyPiece,
		Promotion: convPieceType(m.Promo()),
	}
	if captured := board.Piece(m.S2()); captured != chess.NoPiece {
		out.Captured = convPiece(captured)
	}
	return out
}

// ---- conversions ----

func toSquare(sq base.Square) chess.Square {
	return chess.Square(int(sq))
}

func fromSquare(sq chess.Square) base.Square {
	return base.Square(int(sq))
}

func convColor(c chess.Color) base.Color {
	switch c {
	case chess.White:
		return base.White
	case chess.Black:
		return base.Black
	default:
		return base.NoColor
	}
}

func convPieceType(t chess.PieceType) base.PieceKind {
	switch t {
	case chess.King:
		return base.King
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	case chess.Pawn:
		return base.Pawn
	default:
		return base.NoKind
	}
}

func toPieceType(k base.PieceKind) chess.PieceType {
	switch k {
	case base.King:
		return chess.King
	case base.Queen:
		return chess.Queen
	case base.Rook:
		return chess.Rook
	case base.Bishop:
		return chess.Bishop
	case base.Knight:
		return chess.Knight
	case base.Pawn:
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

func convPiece(p chess.Piece) base.Piece {
	return base.MakePiece(convPieceType(p.Type()), convColor(p.Color()))
}
