package tab

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/pitch"
	"github.com/royberris/GuitarTabToPiano/util"
)

// ErrInsufficientLines is returned when fewer than six usable string lines
// are found in the input. The caller has to supply different text; there is
// nothing to retry.
var ErrInsufficientLines = errors.New("could not find six tab lines")

// tabBody matches the part of a tab line after the string identifier.
// Besides dashes, digits and bar lines it tolerates the usual annotations
// (h/p hammer-ons and pull-offs, slides, vibrato, mutes) without decoding
// them into pitch data.
var tabBody = regexp.MustCompile(`^[-0-9\s|hHpP/\\~()*xX<>]+$`)

// Parse decodes raw pasted tab text into a time-ordered sequence of chord
// events, one per step. It accepts both the canonical fixed-width form
// (two characters per step) and the legacy variable-width form.
func Parse(text string) (model.ParseResult, error) {
	selected, err := selectLines(text)
	if err != nil {
		return model.ParseResult{}, err
	}

	lines := normalize(selected)
	if isFixedWidth(lines) {
		return decodeFixed(lines), nil
	}
	return decodeLegacy(lines), nil
}

// selectLines isolates the six string lines from arbitrary pasted text.
// Candidates are non-blank lines whose body (after the first bar line)
// matches the permitted tab character class. With six or more candidates,
// consecutive windows of six are scanned for one anchored on the expected
// top two strings (e then B); the first match wins, otherwise the first six
// candidates. With fewer candidates the first six raw lines are taken
// verbatim.
func selectLines(text string) ([]string, error) {
	var raw []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		raw = append(raw, line)
	}

	var candidates []string
	for _, line := range raw {
		body := line
		if i := strings.Index(line, "|"); i >= 0 {
			body = line[i+1:]
		}
		if body != "" && tabBody.MatchString(body) {
			candidates = append(candidates, line)
		}
	}

	if len(candidates) >= 6 {
		for i := 0; i+6 <= len(candidates); i++ {
			first := candidates[i]
			second := candidates[i+1]
			if (strings.HasPrefix(first, "e") || strings.HasPrefix(first, "E")) &&
				strings.HasPrefix(second, "B") {
				return candidates[i : i+6], nil
			}
		}
		return candidates[:6], nil
	}

	if len(raw) >= 6 {
		return raw[:6], nil
	}
	return nil, fmt.Errorf("%w: got %v", ErrInsufficientLines, len(raw))
}

// normalize reduces the six selected lines to bare fret sequences of equal
// length. Sectioned input (multiple bar-delimited segments per string) is
// flattened by dropping the bar lines; flat input keeps the single body
// between the first and last bar line. Short lines are right-padded with
// dashes.
func normalize(selected []string) []string {
	first := selected[0]
	body := first
	if i := strings.Index(first, "|"); i >= 0 {
		body = first[i+1:]
	}
	sectioned := strings.Contains(strings.TrimRight(body, "|"), "|")

	lines := make([]string, len(selected))
	for i, line := range selected {
		if sectioned {
			lines[i] = flattenSections(line)
		} else {
			lines[i] = flatBody(line)
		}
	}

	var maxLen int
	for _, line := range lines {
		maxLen = util.Max(maxLen, len(line))
	}
	for i, line := range lines {
		if len(line) < maxLen {
			lines[i] = line + strings.Repeat("-", maxLen-len(line))
		}
	}
	return lines
}

// flattenSections joins the bar-delimited segments of one string into a
// continuous fret sequence, dropping the identifier segment before the
// first bar line and any empty trailing segments.
func flattenSections(line string) string {
	segments := strings.Split(line, "|")
	segments = segments[1:]
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return strings.Join(segments, "")
}

// flatBody strips whitespace and keeps the content between the first bar
// line and the trailing one(s).
func flatBody(line string) string {
	compact := strings.Join(strings.Fields(line), "")
	if i := strings.Index(compact, "|"); i >= 0 {
		compact = compact[i+1:]
	}
	return strings.TrimRight(compact, "|")
}

// isFixedWidth reports whether every line is a sequence of 2-character
// step cells: "--" (rest), digit+"-" (single-digit fret) or two digits
// (fret 10-24). The fixed-width scheme makes multi-digit frets
// self-delimiting, so decode needs no lookahead.
func isFixedWidth(lines []string) bool {
	for _, line := range lines {
		if len(line)%2 != 0 {
			return false
		}
		for i := 0; i < len(line); i += 2 {
			a, b := line[i], line[i+1]
			switch {
			case a == '-' && b == '-':
			case isDigit(a) && (b == '-' || isDigit(b)):
			default:
				return false
			}
		}
	}
	return true
}

func decodeFixed(lines []string) model.ParseResult {
	steps := len(lines[0]) / 2
	events := make([]model.TabEvent, 0, steps)
	for step := 0; step < steps; step++ {
		evt := model.TabEvent{Step: step, Notes: []model.ParsedNote{}}
		for row := range lines {
			a, b := lines[row][2*step], lines[row][2*step+1]
			if !isDigit(a) {
				continue
			}
			fret := int(a - '0')
			if isDigit(b) {
				fret = fret*10 + int(b-'0')
			}
			// never produced by valid fixed-width text, but guarded
			if fret > pitch.MaxFret {
				continue
			}
			if note, ok := makeNote(row, fret); ok {
				evt.Notes = append(evt.Notes, note)
			}
		}
		events = append(events, evt)
	}
	return model.ParseResult{Events: events, Steps: steps}
}

// decodeLegacy scans the padded lines column by column, one event per
// column. A digit starts a fret token; up to two immediately following
// digits on the same row are consumed into it (per-row cursor, so spent
// digits never restart a token on a later column). Frets above 24 are
// clamped, keeping slightly malformed pasted tabs playable.
func decodeLegacy(lines []string) model.ParseResult {
	maxLen := len(lines[0])
	next := make([]int, len(lines))

	events := make([]model.TabEvent, 0, maxLen)
	for col := 0; col < maxLen; col++ {
		evt := model.TabEvent{Step: col, Notes: []model.ParsedNote{}}
		for row := range lines {
			if col < next[row] {
				continue
			}
			if !isDigit(lines[row][col]) {
				continue
			}
			fret := int(lines[row][col] - '0')
			end := col + 1
			for end < maxLen && end-col < 3 && isDigit(lines[row][end]) {
				fret = fret*10 + int(lines[row][end]-'0')
				end++
			}
			next[row] = end
			if fret > pitch.MaxFret {
				fret = pitch.MaxFret
			}
			if note, ok := makeNote(row, fret); ok {
				evt.Notes = append(evt.Notes, note)
			}
		}
		events = append(events, evt)
	}
	return model.ParseResult{Events: events, Steps: maxLen}
}

// makeNote resolves a (row, fret) pair to piano terms. Notes outside the
// 88-key range are dropped rather than failing the parse; partial data
// beats total failure.
func makeNote(row, fret int) (model.ParsedNote, bool) {
	stringID := pitch.StringNames[row]
	open, err := pitch.OpenMidi(stringID)
	if err != nil {
		panic("no open midi for tab row: " + err.Error())
	}
	midi := open + fret
	if !pitch.InPianoRange(midi) {
		return model.ParsedNote{}, false
	}
	return model.ParsedNote{
		String:   stringID,
		Fret:     fret,
		Midi:     midi,
		PianoKey: pitch.MidiToPianoKey(midi),
		NoteName: pitch.MidiToNoteName(midi),
	}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
