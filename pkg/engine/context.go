package engine

import (
	"io"
	"log/slog"
	"os"
)

// DefaultTopK is the retriever depth used when the caller supplies none.
const DefaultTopK = 3

// RunContext carries the caller-supplied execution context for one run.
// Every field is optional; handlers fall back to their documented defaults
// when a field is zero.
type RunContext struct {
	// Text is an inline text input. It wins over TextFile.
	Text string
	// TextFile is a path to a plain-text file used as input when Text is empty.
	TextFile string
	// Query is the literal query text for retrieval pipelines.
	Query string
	// DocsDir is the folder scanned for PDF and plain-text documents.
	DocsDir string
	// TopK is the default retriever depth, overridable per node via params.
	TopK int

	// Stdout receives handler console output. Defaults to os.Stdout.
	Stdout io.Writer
	// Sink receives terminal JSON artifacts. Defaults to DirSink("artifacts").
	Sink ArtifactSink
	// Logger receives progress and warning messages.
	Logger *slog.Logger
}

// Out returns the console writer, defaulting to os.Stdout.
func (rc *RunContext) Out() io.Writer {
	if rc == nil || rc.Stdout == nil {
		return os.Stdout
	}
	return rc.Stdout
}

// ArtifactSink returns the artifact sink, defaulting to a DirSink rooted
// at "artifacts".
func (rc *RunContext) ArtifactSink() ArtifactSink {
	if rc == nil || rc.Sink == nil {
		return &DirSink{Dir: "artifacts"}
	}
	return rc.Sink
}

// Log returns the logger, defaulting to a no-op logger.
func (rc *RunContext) Log() *slog.Logger {
	if rc == nil || rc.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return rc.Logger
}

// RetrieverTopK returns the caller's retriever depth, or DefaultTopK.
func (rc *RunContext) RetrieverTopK() int {
	if rc == nil || rc.TopK <= 0 {
		return DefaultTopK
	}
	return rc.TopK
}
