package geom

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionLeft:  "left",
	DirectionRight: "right",
	DirectionUp:    "up",
	DirectionDown:  "down",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts full names ("left") and the single-letter forms
// used by window manager keybinds ("l", "r", "u", "d"). Matching is
// case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirectionLeft, nil
	case "right", "r":
		return DirectionRight, nil
	case "up", "u", "t", "top":
		return DirectionUp, nil
	case "down", "d", "b", "bottom":
		return DirectionDown, nil
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}
