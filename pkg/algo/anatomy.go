package algo

import (
	"unicode"

	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// Anatomy describes the structural skeleton of a capital letter inside the
// canonical viewBox: the dominant vertical stroke, the horizontal crossbar,
// the bowl curve (as a quadratic start/control/end), the apex point and the
// terminal point. Fusion and extraction generators draw from these rather
// than from font outlines.
type Anatomy struct {
	Stem     [2]svg.Point
	Crossbar [2]svg.Point
	Bowl     [3]svg.Point
	Apex     svg.Point
	Terminal svg.Point
}

func row(stem, crossbar [4]float64, bowl [6]float64, apex, terminal [2]float64) Anatomy {
	return Anatomy{
		Stem:     [2]svg.Point{{X: stem[0], Y: stem[1]}, {X: stem[2], Y: stem[3]}},
		Crossbar: [2]svg.Point{{X: crossbar[0], Y: crossbar[1]}, {X: crossbar[2], Y: crossbar[3]}},
		Bowl: [3]svg.Point{
			{X: bowl[0], Y: bowl[1]}, {X: bowl[2], Y: bowl[3]}, {X: bowl[4], Y: bowl[5]},
		},
		Apex:     svg.Point{X: apex[0], Y: apex[1]},
		Terminal: svg.Point{X: terminal[0], Y: terminal[1]},
	}
}

// defaultAnatomy is the canonical fallback row, an A-like skeleton. Every
// unresolved rune maps here; no lookup ever fails.
var defaultAnatomy = row(
	[4]float64{50, 25, 32, 75}, [4]float64{38, 58, 62, 58},
	[6]float64{50, 25, 68, 50, 68, 75}, [2]float64{50, 25}, [2]float64{68, 75})

// anatomies holds skeletons for A-Z. Coordinates live in the 25..75 band so
// generators can scale and offset without leaving the viewBox.
var anatomies = map[rune]Anatomy{
	'A': defaultAnatomy,
	'B': row([4]float64{32, 25, 32, 75}, [4]float64{32, 50, 62, 50},
		[6]float64{32, 25, 72, 37, 32, 50}, [2]float64{32, 25}, [2]float64{32, 75}),
	'C': row([4]float64{30, 35, 30, 65}, [4]float64{30, 50, 50, 50},
		[6]float64{70, 30, 25, 50, 70, 70}, [2]float64{70, 30}, [2]float64{70, 70}),
	'D': row([4]float64{32, 25, 32, 75}, [4]float64{32, 50, 55, 50},
		[6]float64{32, 25, 78, 50, 32, 75}, [2]float64{32, 25}, [2]float64{32, 75}),
	'E': row([4]float64{32, 25, 32, 75}, [4]float64{32, 50, 64, 50},
		[6]float64{32, 25, 70, 25, 70, 28}, [2]float64{32, 25}, [2]float64{70, 75}),
	'F': row([4]float64{32, 25, 32, 75}, [4]float64{32, 48, 62, 48},
		[6]float64{32, 25, 70, 25, 70, 28}, [2]float64{32, 25}, [2]float64{32, 75}),
	'G': row([4]float64{70, 52, 70, 68}, [4]float64{52, 52, 70, 52},
		[6]float64{70, 30, 22, 50, 66, 72}, [2]float64{70, 30}, [2]float64{70, 68}),
	'H': row([4]float64{32, 25, 32, 75}, [4]float64{32, 50, 68, 50},
		[6]float64{68, 25, 68, 50, 68, 75}, [2]float64{32, 25}, [2]float64{68, 75}),
	'I': row([4]float64{50, 25, 50, 75}, [4]float64{40, 25, 60, 25},
		[6]float64{40, 75, 50, 75, 60, 75}, [2]float64{50, 25}, [2]float64{50, 75}),
	'J': row([4]float64{60, 25, 60, 62}, [4]float64{48, 25, 72, 25},
		[6]float64{60, 62, 56, 78, 36, 70}, [2]float64{60, 25}, [2]float64{36, 70}),
	'K': row([4]float64{32, 25, 32, 75}, [4]float64{32, 52, 50, 52},
		[6]float64{68, 25, 40, 52, 68, 75}, [2]float64{68, 25}, [2]float64{68, 75}),
	'L': row([4]float64{35, 25, 35, 75}, [4]float64{35, 75, 68, 75},
		[6]float64{35, 72, 50, 75, 68, 75}, [2]float64{35, 25}, [2]float64{68, 75}),
	'M': row([4]float64{28, 75, 28, 25}, [4]float64{28, 40, 72, 40},
		[6]float64{28, 25, 50, 60, 72, 25}, [2]float64{50, 55}, [2]float64{72, 75}),
	'N': row([4]float64{30, 75, 30, 25}, [4]float64{30, 42, 70, 58},
		[6]float64{30, 25, 50, 50, 70, 75}, [2]float64{30, 25}, [2]float64{70, 25}),
	'O': row([4]float64{28, 42, 28, 58}, [4]float64{28, 50, 72, 50},
		[6]float64{50, 24, 78, 50, 50, 76}, [2]float64{50, 24}, [2]float64{50, 76}),
	'P': row([4]float64{32, 25, 32, 75}, [4]float64{32, 52, 58, 52},
		[6]float64{32, 25, 74, 38, 32, 52}, [2]float64{32, 25}, [2]float64{32, 75}),
	'Q': row([4]float64{28, 42, 28, 58}, [4]float64{56, 60, 74, 78},
		[6]float64{50, 24, 78, 50, 50, 76}, [2]float64{50, 24}, [2]float64{74, 78}),
	'R': row([4]float64{32, 25, 32, 75}, [4]float64{32, 52, 56, 52},
		[6]float64{32, 25, 74, 38, 32, 52}, [2]float64{32, 25}, [2]float64{70, 75}),
	'S': row([4]float64{50, 25, 50, 75}, [4]float64{34, 50, 66, 50},
		[6]float64{68, 30, 20, 42, 58, 54}, [2]float64{68, 30}, [2]float64{32, 70}),
	'T': row([4]float64{50, 25, 50, 75}, [4]float64{28, 25, 72, 25},
		[6]float64{28, 25, 50, 25, 72, 25}, [2]float64{50, 25}, [2]float64{50, 75}),
	'U': row([4]float64{30, 25, 30, 58}, [4]float64{30, 40, 70, 40},
		[6]float64{30, 58, 50, 82, 70, 58}, [2]float64{30, 25}, [2]float64{70, 25}),
	'V': row([4]float64{30, 25, 50, 75}, [4]float64{38, 48, 62, 48},
		[6]float64{30, 25, 50, 75, 70, 25}, [2]float64{50, 75}, [2]float64{70, 25}),
	'W': row([4]float64{26, 25, 38, 75}, [4]float64{32, 52, 68, 52},
		[6]float64{38, 75, 50, 40, 62, 75}, [2]float64{50, 45}, [2]float64{74, 25}),
	'X': row([4]float64{30, 25, 70, 75}, [4]float64{40, 50, 60, 50},
		[6]float64{70, 25, 50, 50, 30, 75}, [2]float64{50, 50}, [2]float64{70, 75}),
	'Y': row([4]float64{50, 50, 50, 75}, [4]float64{38, 40, 62, 40},
		[6]float64{30, 25, 50, 50, 70, 25}, [2]float64{50, 50}, [2]float64{50, 75}),
	'Z': row([4]float64{70, 25, 30, 75}, [4]float64{30, 25, 70, 25},
		[6]float64{30, 75, 50, 75, 70, 75}, [2]float64{70, 25}, [2]float64{70, 75}),
}

// anatomyFor resolves the skeleton for a rune. Lowercase maps to uppercase;
// anything without a row gets the default.
func anatomyFor(r rune) Anatomy {
	if a, ok := anatomies[unicode.ToUpper(r)]; ok {
		return a
	}
	return defaultAnatomy
}

// segment returns the drawable points of one anatomical part: two points
// for straight parts, three for the bowl (quadratic), one for point parts.
func (a Anatomy) segment(part seed.LetterPart) []svg.Point {
	switch part {
	case seed.PartStem:
		return []svg.Point{a.Stem[0], a.Stem[1]}
	case seed.PartCrossbar:
		return []svg.Point{a.Crossbar[0], a.Crossbar[1]}
	case seed.PartBowl:
		return []svg.Point{a.Bowl[0], a.Bowl[1], a.Bowl[2]}
	case seed.PartApex:
		return []svg.Point{a.Apex}
	case seed.PartTerminal:
		return []svg.Point{a.Terminal}
	}
	return []svg.Point{a.Stem[0], a.Stem[1]}
}
