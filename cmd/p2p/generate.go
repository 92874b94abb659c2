package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xoaryaa/p2p/pkg/templates"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pipeline YAML from a known template",
	Long:  `Writes a pre-built pipeline document for one of the catalog tasks: ` + strings.Join(templates.Tasks(), ", ") + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, _ := cmd.Flags().GetString("task")
		name, _ := cmd.Flags().GetString("name")
		outdir, _ := cmd.Flags().GetString("outdir")

		graph, err := templates.Load(task)
		if err != nil {
			return err
		}
		data, err := graph.Encode()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outdir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", outdir, err)
		}
		outfile := filepath.Join(outdir, name+".yaml")
		if err := os.WriteFile(outfile, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outfile, err)
		}

		fmt.Printf("Saved template %s to %s\n", task, outfile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("task", "", "Template to use: "+strings.Join(templates.Tasks(), " | "))
	generateCmd.Flags().String("name", "pipeline", "Output filename (without .yaml)")
	generateCmd.Flags().String("outdir", "pipelines", "Where to place the YAML")
	_ = generateCmd.MarkFlagRequired("task")
}
