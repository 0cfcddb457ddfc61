package pitch

import (
	"errors"
	"fmt"
)

// ErrUnknownString is returned when a string identifier is not one of the
// six standard-tuning identifiers. Hitting it through the fixed row tables
// is a programming defect, not a user error.
var ErrUnknownString = errors.New("unknown string identifier")

// StringNames is the fixed row order of a tab, top to bottom
// (high e down to low E).
var StringNames = [6]string{"e", "B", "G", "D", "A", "E"}

// openMidi maps each open string to its MIDI pitch in standard tuning:
// e4(64) B3(59) G3(55) D3(50) A2(45) E2(40)
var openMidi = map[string]int{
	"e": 64,
	"B": 59,
	"G": 55,
	"D": 50,
	"A": 45,
	"E": 40,
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const (
	// MaxFret is the highest fret a tab can place on any string.
	MaxFret = 24

	// MinPianoMidi and MaxPianoMidi bound the 88-key piano, A0 through C8.
	MinPianoMidi = 21
	MaxPianoMidi = 108
)

// OpenMidi returns the MIDI pitch of the named string played open.
func OpenMidi(stringID string) (int, error) {
	m, ok := openMidi[stringID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownString, stringID)
	}
	return m, nil
}

// MidiToPianoKey converts a MIDI pitch to an 88-key piano key number
// (A0=1, C8=88). No bounds checking; callers validate against
// MinPianoMidi/MaxPianoMidi first.
func MidiToPianoKey(midi int) int {
	return midi - 20
}

// MidiToNoteName renders a MIDI pitch as note name plus octave,
// e.g. 60 -> "C4".
func MidiToNoteName(midi int) string {
	return fmt.Sprintf("%v%v", noteNames[midi%12], midi/12-1)
}

// IsBlackKey reports whether the MIDI pitch falls on a black piano key.
func IsBlackKey(midi int) bool {
	switch midi % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// InPianoRange reports whether the MIDI pitch is playable on an 88-key piano.
func InPianoRange(midi int) bool {
	return midi >= MinPianoMidi && midi <= MaxPianoMidi
}
