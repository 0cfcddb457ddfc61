package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/tab"
	"github.com/royberris/GuitarTabToPiano/util"
	"github.com/spf13/cobra"
)

var parseJSON bool

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the parse result as JSON")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <tabfile>",
	Short: "Parses a tab file",
	Long:  `Parses a tab file and prints its piano-key events`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printParse(args[0])
	},
}

func parseFileOrExit(path string) model.ParseResult {
	res, err := tab.Parse(string(util.ReadFileOrPanic(path)))
	if err != nil {
		fmt.Printf("Could not parse %v: %v\n", path, err)
		os.Exit(1)
	}
	return res
}

func printParse(path string) {
	res := parseFileOrExit(path)

	if parseJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			panic("Could not encode parse result: " + err.Error())
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%v steps\n", res.Steps)
	for _, evt := range res.Events {
		for _, n := range evt.Notes {
			fmt.Printf("step %3d: string %v fret %2d -> %v (midi %v, key %v)\n",
				evt.Step, n.String, n.Fret, n.NoteName, n.Midi, n.PianoKey)
		}
	}
}
