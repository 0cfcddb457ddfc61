package midifile

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/royberris/GuitarTabToPiano/model"
)

const velocity = 100

// Render converts a parse result into a single-track standard MIDI file.
// Every step lasts one eighth note at the given tempo; steps with no notes
// advance time only.
func Render(res model.ParseResult, bpm float64) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	stepTicks := smf.MetricTicks(960).Ticks8th()

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	var rest uint32
	for _, evt := range res.Events {
		if len(evt.Notes) == 0 {
			rest += stepTicks
			continue
		}
		for i, n := range evt.Notes {
			var delta uint32
			if i == 0 {
				delta = rest
			}
			tr.Add(delta, midi.NoteOn(0, uint8(n.Midi), velocity))
		}
		for i, n := range evt.Notes {
			var delta uint32
			if i == 0 {
				delta = stepTicks
			}
			tr.Add(delta, midi.NoteOff(0, uint8(n.Midi)))
		}
		rest = 0
	}

	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)
	return s
}

// WriteFile renders the parse result and writes it to path.
func WriteFile(res model.ParseResult, bpm float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()

	_, err = Render(res, bpm).WriteTo(f)
	return err
}
