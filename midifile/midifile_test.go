package midifile

import (
	"testing"

	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/tab"
	"github.com/stretchr/testify/assert"
)

const testTab = `e|--------|
B|--------|
G|--------|
D|--------|
A|--0---2-|
E|--------|`

func TestRenderNoteOnOffPairs(t *testing.T) {
	res, err := tab.Parse(testTab)
	assert := assert.New(t)
	assert.NoError(err)

	s := Render(res, 120)
	assert.Len(s.Tracks, 1)

	var ons, offs []uint8
	for _, evt := range s.Tracks[0] {
		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteOn(&channel, &key, &velocity):
			ons = append(ons, key)
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
			offs = append(offs, key)
		}
	}

	assert.Equal([]uint8{45, 47}, ons)
	assert.Equal([]uint8{45, 47}, offs)
}

func TestRenderEmptyStepsAdvanceTimeOnly(t *testing.T) {
	res, err := tab.Parse(testTab)
	assert := assert.New(t)
	assert.NoError(err)

	s := Render(res, 120)

	// first note sits at step 1, so its delta is one full empty step
	stepTicks := uint32(480) // eighth note at 960 ticks per quarter
	var firstOnDelta uint32
	for _, evt := range s.Tracks[0] {
		var channel, key, velocity uint8
		if evt.Message.GetNoteOn(&channel, &key, &velocity) {
			firstOnDelta = evt.Delta
			break
		}
	}
	assert.Equal(stepTicks, firstOnDelta)
}

func TestRenderChordSharesOneDelta(t *testing.T) {
	res := model.ParseResult{
		Steps: 1,
		Events: []model.TabEvent{{
			Step: 0,
			Notes: []model.ParsedNote{
				{String: "A", Fret: 0, Midi: 45},
				{String: "D", Fret: 2, Midi: 52},
			},
		}},
	}

	s := Render(res, 120)

	var deltas []uint32
	for _, evt := range s.Tracks[0] {
		var channel, key, velocity uint8
		if evt.Message.GetNoteOn(&channel, &key, &velocity) {
			deltas = append(deltas, evt.Delta)
		}
	}
	assert.Equal(t, []uint32{0, 0}, deltas)
}
