package cmd

import (
	"fmt"

	"github.com/royberris/GuitarTabToPiano/midifile"
	"github.com/spf13/cobra"
)

var exportBpm float64

func init() {
	exportCmd.Flags().Float64Var(&exportBpm, "bpm", 120, "tempo in beats per minute")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <tabfile> <out.mid>",
	Short: "Exports a tab to a MIDI file",
	Long:  `Exports a tab to a standard MIDI file, one eighth note per step`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		export(args[0], args[1])
	},
}

func export(tabPath string, midiPath string) {
	res := parseFileOrExit(tabPath)
	if err := midifile.WriteFile(res, exportBpm, midiPath); err != nil {
		panic("Could not write MIDI file: " + err.Error())
	}
	fmt.Printf("Wrote %v (%v steps)\n", midiPath, res.Steps)
}
