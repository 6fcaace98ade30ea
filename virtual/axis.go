package virtual

import (
	"fmt"
	"strings"
)

// Axis is one of the two scroll dimensions.
type Axis uint8

const (
	AxisRow    Axis = iota // vertical, indexed by row
	AxisColumn             // horizontal, indexed by column
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// ScrollDir is the direction of the most recent offset change on an axis.
type ScrollDir uint8

const (
	Forward ScrollDir = iota
	Backward
)

func (d ScrollDir) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Direction is the horizontal layout direction.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection accepts "ltr" or "rtl" (case-insensitive, empty means ltr).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("unknown direction %q", s)
}

// Alignment selects where ScrollToItem places the target item.
type Alignment uint8

const (
	// AlignAuto scrolls the minimum distance that brings the item fully into view.
	AlignAuto Alignment = iota
	// AlignSmart behaves like AlignAuto when the item is near the viewport
	// and like AlignCenter when it is far away.
	AlignSmart
	AlignStart
	AlignCenter
	AlignEnd
)

var alignmentNames = [...]string{"auto", "smart", "start", "center", "end"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// ParseAlignment maps a name ("auto", "smart", "start", "center", "end") to
// an Alignment. The empty string is AlignAuto.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" {
		return AlignAuto, nil
	}
	for i, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), nil
		}
	}
	return AlignAuto, fmt.Errorf("unknown alignment %q", s)
}
