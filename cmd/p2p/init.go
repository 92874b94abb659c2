package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local project layout",
	Long:  `Creates the pipelines/, data/ and artifacts/ directories in the current folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, dir := range []string{"pipelines", "data", "artifacts"} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		fmt.Println("Initialized directories: pipelines/, data/, artifacts/")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
