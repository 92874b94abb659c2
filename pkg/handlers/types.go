package handlers

import (
	"sort"

	"github.com/xoaryaa/p2p/internal/bm25"
)

// Document is one loaded source document: a filename and its extracted text.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Chunk is one sliding-window piece of a document. ChunkID numbers chunks
// within their document, starting at zero.
type Chunk struct {
	Doc     string `json:"doc"`
	ChunkID int    `json:"chunk_id"`
	Text    string `json:"text"`
}

// Entity is one extracted named entity: the span text and its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Hit is one retrieval result.
type Hit struct {
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	Doc     string  `json:"doc"`
	ChunkID int     `json:"chunk_id"`
}

// SearchIndex is the opaque ranking handle BM25Indexer produces. It pairs
// the BM25 structure with the chunks it was built over, so a retriever
// wired to the index alone can map ranked positions back to chunks.
type SearchIndex struct {
	okapi  *bm25.Okapi
	chunks []Chunk
}

// Search scores the query against the index and returns the topK highest
// scoring chunks as hits. Ties break by ascending original chunk order:
// the sort is stable over a descending-score key.
func (ix *SearchIndex) Search(query string, topK int) []Hit {
	scores := ix.okapi.Scores(bm25.Tokenize(query))

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(order) {
		topK = len(order)
	}
	hits := make([]Hit, 0, topK)
	for _, idx := range order[:topK] {
		ch := ix.chunks[idx]
		hits = append(hits, Hit{
			Text:    ch.Text,
			Score:   scores[idx],
			Doc:     ch.Doc,
			ChunkID: ch.ChunkID,
		})
	}
	return hits
}
