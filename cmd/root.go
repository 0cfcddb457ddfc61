package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guitartab",
	Short: "Guitar tab to piano tools",
	Long:  `Parses ASCII guitar tablature into piano-key events, encodes grid edits back to tab text, and serves the tab library.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
