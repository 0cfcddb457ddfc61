package cmd

import (
	"fmt"
	"os"

	"github.com/royberris/GuitarTabToPiano/constants"
	"github.com/royberris/GuitarTabToPiano/library"
	"github.com/royberris/GuitarTabToPiano/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file-or-dir>",
	Short: "Imports tab JSON exports into the library",
	Long:  `Imports tab JSON exports (a single file or every .json under a directory) into the library`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runImport(args[0])
	},
}

func runImport(path string) {
	s, err := library.New(constants.GetLibraryPath())
	if err != nil {
		panic("Could not open library: " + err.Error())
	}

	info, err := os.Stat(path)
	if err != nil {
		panic("Could not stat import path: " + err.Error())
	}

	paths := []string{path}
	if info.IsDir() {
		paths = util.GatherTabExportPaths(path, 0)
	}

	var imported int
	for i, p := range paths {
		fmt.Printf("Processing %v of %v exports\n", i+1, len(paths))
		tabs, err := s.ImportJSON(util.ReadFileOrPanic(p))
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", p, err)
			continue
		}
		imported += len(tabs)
	}

	if err := s.Flush(); err != nil {
		panic("Could not save library: " + err.Error())
	}
	fmt.Printf("Imported %v tabs into %v\n", imported, constants.GetLibraryPath())
}
