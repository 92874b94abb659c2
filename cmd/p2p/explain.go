package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xoaryaa/p2p/internal/presentation/plan"
	"github.com/xoaryaa/p2p/pkg/ir"
)

var explainCmd = &cobra.Command{
	Use:   "explain FILE",
	Short: "Print an execution plan of the pipeline graph",
	Long:  `Renders the graph in topological order, either as an ASCII plan or as a Mermaid flowchart.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		graph, err := ir.Parse(data)
		if err != nil {
			return err
		}

		switch format {
		case "plan":
			out, err := plan.ASCII(graph)
			if err != nil {
				return err
			}
			fmt.Print(out)
		case "mermaid":
			fmt.Print(plan.Mermaid(graph))
		default:
			return fmt.Errorf("unknown format %q, use plan or mermaid", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().String("format", "plan", "Output format: plan | mermaid")
}
