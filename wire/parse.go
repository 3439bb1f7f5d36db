package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMove parses a single move token: a direction letter (U, D, L or R)
// followed by a decimal distance, e.g. "R75". Whitespace around the token is
// the caller's problem; ParseMove expects a bare token.
func ParseMove(token string) (Move, error) {
	if token == "" {
		return Move{}, fmt.Errorf("empty move token")
	}

	var dir Direction
	switch token[0] {
	case 'U':
		dir = DirectionUp
	case 'D':
		dir = DirectionDown
	case 'L':
		dir = DirectionLeft
	case 'R':
		dir = DirectionRight
	default:
		return Move{}, fmt.Errorf("invalid direction %q in move %q", token[0], token)
	}

	distance, err := strconv.Atoi(token[1:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid distance in move %q: %w", token, err)
	}
	if distance < 1 {
		return Move{}, fmt.Errorf("distance must be at least 1 in move %q", token)
	}

	return Move{Direction: dir, Distance: distance}, nil
}

// ParseMoves parses a comma-separated list of move tokens describing one
// wire, e.g. "R75,D30,R83". Whitespace around individual tokens is trimmed.
func ParseMoves(line string) ([]Move, error) {
	tokens := strings.Split(line, ",")
	moves := make([]Move, 0, len(tokens))

	for i, token := range tokens {
		move, err := ParseMove(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}
