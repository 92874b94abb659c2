package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of p2p",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("p2p version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
