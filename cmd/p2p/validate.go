package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/xoaryaa/p2p/pkg/ir"
	"github.com/xoaryaa/p2p/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a pipeline YAML",
	Long:  `Checks the document structure, node ids, edge endpoints, ports and acyclicity, and prints the full diagnostic report.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		graph, err := ir.Parse(data)
		if err != nil {
			return err
		}

		passed, report := validate.Check(graph)

		p := termenv.ColorProfile()
		fmt.Println("Validation Report")
		for _, d := range report {
			status := termenv.String(string(d.Status))
			if d.Status == validate.OK {
				status = status.Foreground(p.Color("2"))
			} else {
				status = status.Foreground(p.Color("1")).Bold()
			}
			fmt.Printf("  [%s] %s\n", status, d.Message)
		}

		if !passed {
			// The report is the failure channel; the exit code just mirrors it.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
