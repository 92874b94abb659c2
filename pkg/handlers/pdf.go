package handlers

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// DefaultDocsDir is scanned when neither node params nor the run context
// name a documents folder.
const DefaultDocsDir = "data/docs"

// PDFLoader reads every PDF and plain-text file in a folder and produces
// the list on its `docs` port. Unreadable files are skipped with a
// warning; an empty or missing folder yields an empty list, not an error.
type PDFLoader struct{}

type pdfLoaderConfig struct {
	Path string `mapstructure:"path"`
}

func (h *PDFLoader) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentPDFLoader,
		Outputs:   []string{"docs"},
	}
}

func (h *PDFLoader) Run(_ context.Context, _ string, _ engine.Inputs, params map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	cfg := pdfLoaderConfig{}
	if err := decodeParams(params, &cfg); err != nil {
		return nil, err
	}
	folder := cfg.Path
	if folder == "" {
		folder = rc.DocsDir
	}
	if folder == "" {
		folder = DefaultDocsDir
	}

	docs := loadDocs(folder, rc)
	if len(docs) == 0 {
		rc.Log().Warn("no documents found, place .pdf or .txt files there", "folder", folder)
	}
	return engine.Outputs{"docs": docs}, nil
}

func loadDocs(folder string, rc *engine.RunContext) []Document {
	docs := make([]Document, 0)
	if _, err := os.Stat(folder); err != nil {
		return docs
	}

	pdfs, _ := filepath.Glob(filepath.Join(folder, "*.pdf"))
	for _, path := range pdfs {
		text, err := extractPDFText(path)
		if err != nil {
			rc.Log().Warn("could not read PDF, skipping", "file", filepath.Base(path), "err", err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			docs = append(docs, Document{Name: filepath.Base(path), Text: text})
		}
	}

	txts, _ := filepath.Glob(filepath.Join(folder, "*.txt"))
	for _, path := range txts {
		data, err := os.ReadFile(path)
		if err != nil {
			rc.Log().Warn("could not read TXT, skipping", "file", filepath.Base(path), "err", err)
			continue
		}
		docs = append(docs, Document{Name: filepath.Base(path), Text: string(data)})
	}

	return docs
}

// extractPDFText concatenates the plain text of every page. The pdf
// library panics on some malformed files, so the recover keeps a single
// bad document from killing the whole run.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
