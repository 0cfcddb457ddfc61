package model

// ParsedNote is a single fretted (or open) note resolved to piano terms.
// Midi is always openMidi(String) + Fret and PianoKey is always Midi - 20;
// notes whose Midi falls outside the 88-key range are never constructed.
type ParsedNote struct {
	String   string `json:"string"`
	Fret     int    `json:"fret"`
	Midi     int    `json:"midi"`
	PianoKey int    `json:"piano_key"`
	NoteName string `json:"note_name"`
}

// TabEvent is one timeline column. Steps with nothing played still get an
// event with an empty note list so timing is preserved.
type TabEvent struct {
	Step  int          `json:"step"`
	Notes []ParsedNote `json:"notes"`
}

// ParseResult is the full decode of one tab: exactly one event per step,
// in ascending step order.
type ParseResult struct {
	Events []TabEvent `json:"events"`
	Steps  int        `json:"steps"`
}

// Placement is an editor-side cell: a fret placed on a string at a step.
// String indexes the fixed row order (0 = high e, 5 = low E).
type Placement struct {
	String int `json:"string"`
	Step   int `json:"step"`
	Fret   int `json:"fret"`
}
