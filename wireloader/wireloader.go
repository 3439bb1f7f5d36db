// Package wireloader reads wire panel definition files: plain text with
// exactly two lines, each a comma-separated move list describing one wire.
package wireloader

import (
	"fmt"
	"os"
	"strings"

	"chosenoffset.com/crosswire/wire"
)

// Panel holds the two traced wires of one input file, plus the move lists
// they were traced from.
type Panel struct {
	A, B           wire.Wire
	MovesA, MovesB []wire.Move
}

// LoadPanel reads and parses a panel definition file.
func LoadPanel(path string) (*Panel, error) {
	// Read the panel file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read panel file %s: %w", path, err)
	}

	panel, err := ParsePanel(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid panel file %s: %w", path, err)
	}

	return panel, nil
}

// ParsePanel parses panel text: two non-empty lines, one move list per wire.
// Whitespace around the text and around individual lines and tokens is
// tolerated; anything else about the shape of the input is an error.
func ParsePanel(text string) (*Panel, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		return nil, fmt.Errorf("expected 2 wire lines, got %d", len(lines))
	}

	movesA, err := wire.ParseMoves(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("wire 1: %w", err)
	}

	movesB, err := wire.ParseMoves(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("wire 2: %w", err)
	}

	return &Panel{
		A:      wire.Trace(movesA),
		B:      wire.Trace(movesB),
		MovesA: movesA,
		MovesB: movesB,
	}, nil
}
