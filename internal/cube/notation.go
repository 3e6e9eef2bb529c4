package cube

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseMove parses a single move in face-turn notation.
// Supports: R, R', R2 for each of the six faces.
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Move{}, errors.New("empty move notation")
	}

	move := Move{Turns: 1}

	switch notation[len(notation)-1] {
	case '\'':
		move.Turns = 3
		notation = notation[:len(notation)-1]
	case '2':
		move.Turns = 2
		notation = notation[:len(notation)-1]
	}

	switch notation {
	case "U":
		move.Face = Up
	case "R":
		move.Face = Right
	case "F":
		move.Face = Front
	case "D":
		move.Face = Down
	case "B":
		move.Face = Back
	case "L":
		move.Face = Left
	default:
		return Move{}, errors.Errorf("unknown move notation: %s", notation)
	}

	return move, nil
}

// ParseMoves parses a whitespace-separated sequence of moves
func ParseMoves(sequence string) ([]Move, error) {
	parts := strings.Fields(sequence)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing move %q", part)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// String returns the move in face-turn notation
func (m Move) String() string {
	s := m.Face.String()
	switch m.Turns {
	case 2:
		s += "2"
	case 3:
		s += "'"
	}
	return s
}

// FormatMoves renders a move sequence as space-separated notation
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = move.String()
	}
	return strings.Join(parts, " ")
}
