package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xoaryaa/p2p/pkg/engine"
	"github.com/xoaryaa/p2p/pkg/handlers"
	"github.com/xoaryaa/p2p/pkg/ir"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute a pipeline",
	Long:  `Runs the pipeline node by node in topological order, printing progress and writing artifacts for terminal nodes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		text, _ := cmd.Flags().GetString("text")
		textFile, _ := cmd.Flags().GetString("text-file")
		query, _ := cmd.Flags().GetString("query")
		docsPath, _ := cmd.Flags().GetString("docs-path")
		topK, _ := cmd.Flags().GetInt("top-k")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		graph, err := ir.Parse(data)
		if err != nil {
			return err
		}

		runner := engine.New(handlers.Default(), engine.WithLogger(logger))
		rc := &engine.RunContext{
			Text:     text,
			TextFile: textFile,
			Query:    query,
			DocsDir:  docsPath,
			TopK:     topK,
			Stdout:   os.Stdout,
			Sink:     &engine.DirSink{Dir: envOr("P2P_ARTIFACTS_DIR", "artifacts")},
			Logger:   logger,
		}

		if err := runner.Run(cmd.Context(), graph, rc); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("text", "", "Inline text input (NER)")
	runCmd.Flags().String("text-file", "", "Path to a .txt file to use as input (NER)")
	runCmd.Flags().String("query", "", "Query text for RAG pipelines")
	runCmd.Flags().String("docs-path", envOr("P2P_DOCS_PATH", "data/docs"), "Folder with .pdf or .txt docs")
	runCmd.Flags().Int("top-k", engine.DefaultTopK, "Retriever top-k")
}
