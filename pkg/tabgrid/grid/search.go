package grid

import (
	"fmt"
	"strings"
)

// Direction selects the neighbor read by SearchNearby.
type Direction int

const (
	Up Direction = iota + 1
	Right
	Down
	Left
)

var directionNames = map[Direction]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "up", "right", "down" or "left".
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrInvalidArgument)
}

// offset returns the row and column deltas of d.
func (d Direction) offset() (dr, dc int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Right:
		return 0, 1, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	}
	return 0, 0, false
}

// SearchCell scans rows top to bottom and each row left to right and returns
// the first position whose effective value equals keyword. A blank keyword
// never matches.
func (g *Grid) SearchCell(keyword string) (row, col int, ok bool) {
	if strings.TrimSpace(keyword) == "" {
		return 0, 0, false
	}
	for i, r := range g.Rows() {
		// one past the last stored cell, so a region reaching past it is seen
		for j := 0; j <= r.Len(); j++ {
			if v, present := g.EffectiveValue(i, j); present && v == keyword {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// SearchNearby finds keyword like SearchCell and returns the effective value
// of its neighbor in direction d. It returns false when the keyword is not
// found, the neighbor holds nothing, or d is not a known direction.
func (g *Grid) SearchNearby(keyword string, d Direction) (string, bool) {
	dr, dc, ok := d.offset()
	if !ok {
		return "", false
	}
	row, col, found := g.SearchCell(keyword)
	if !found {
		return "", false
	}
	return g.EffectiveValue(row+dr, col+dc)
}
