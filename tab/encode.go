package tab

import (
	"strconv"
	"strings"

	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/pitch"
)

type cell struct {
	str  int
	step int
}

// Encode serializes editor placements into canonical fixed-width tab text:
// six lines in fixed string order, each an identifier, a bar line, one
// 2-character cell per step ("--", digit+"-" or two digits) and a trailing
// bar line. A later placement at the same (string, step) replaces the
// earlier fret. Exact inverse of the fixed-width decode.
func Encode(placements []model.Placement, totalSteps int) string {
	frets := make(map[cell]int, len(placements))
	for _, p := range placements {
		frets[cell{p.String, p.Step}] = p.Fret
	}

	var b strings.Builder
	for row, stringID := range pitch.StringNames {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(stringID)
		b.WriteByte('|')
		for step := 0; step < totalSteps; step++ {
			fret, ok := frets[cell{row, step}]
			switch {
			case !ok:
				b.WriteString("--")
			case fret < 10:
				b.WriteString(strconv.Itoa(fret))
				b.WriteByte('-')
			default:
				b.WriteString(strconv.Itoa(fret))
			}
		}
		b.WriteByte('|')
	}
	return b.String()
}
