package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	playBpm  float64
	playPort int
)

func init() {
	playCmd.Flags().Float64Var(&playBpm, "bpm", 120, "tempo in beats per minute")
	playCmd.Flags().IntVar(&playPort, "port", 0, "MIDI out port number")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <tabfile>",
	Short: "Plays a tab on a MIDI out port",
	Long:  `Plays a tab on a MIDI out port, one eighth note per step`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		play(args[0])
	},
}

func play(path string) {
	defer midi.CloseDriver()

	out, err := midi.OutPort(playPort)
	if err != nil {
		fmt.Printf("can't find MIDI out port %v: %v\n", playPort, err)
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	res := parseFileOrExit(path)

	// a step is an eighth note
	stepDur := time.Duration(float64(time.Minute) / playBpm / 2)
	for _, evt := range res.Events {
		for _, n := range evt.Notes {
			send(midi.NoteOn(0, uint8(n.Midi), 100))
		}
		time.Sleep(stepDur)
		for _, n := range evt.Notes {
			send(midi.NoteOff(0, uint8(n.Midi)))
		}
	}
}
