// Package bm25 implements Okapi BM25 ranking over a tokenized corpus.
//
// The scoring follows the common Okapi parameterization (k1=1.5, b=0.75)
// with the epsilon floor applied to negative IDF values, so that very
// common terms still contribute a small positive weight instead of
// penalizing documents that contain them.
package bm25

import (
	"math"
	"strings"
)

const (
	defaultK1      = 1.5
	defaultB       = 0.75
	defaultEpsilon = 0.25
)

// Okapi is an immutable BM25 index over a corpus of token lists.
type Okapi struct {
	k1      float64
	b       float64
	epsilon float64

	corpusSize int
	avgDocLen  float64
	docLens    []int
	termFreqs  []map[string]int
	idf        map[string]float64
}

// New builds an index over the given corpus. Each corpus entry is the
// token list of one document, in corpus order.
func New(corpus [][]string) *Okapi {
	o := &Okapi{
		k1:         defaultK1,
		b:          defaultB,
		epsilon:    defaultEpsilon,
		corpusSize: len(corpus),
		docLens:    make([]int, len(corpus)),
		termFreqs:  make([]map[string]int, len(corpus)),
		idf:        make(map[string]float64),
	}

	docFreq := make(map[string]int)
	total := 0
	for i, doc := range corpus {
		o.docLens[i] = len(doc)
		total += len(doc)

		freqs := make(map[string]int, len(doc))
		for _, tok := range doc {
			freqs[tok]++
		}
		o.termFreqs[i] = freqs
		for tok := range freqs {
			docFreq[tok]++
		}
	}
	if o.corpusSize > 0 {
		o.avgDocLen = float64(total) / float64(o.corpusSize)
	}

	// IDF with the epsilon floor: terms appearing in more than half the
	// corpus get epsilon * average IDF instead of a negative weight.
	var idfSum float64
	var negative []string
	for tok, df := range docFreq {
		idf := math.Log((float64(o.corpusSize) - float64(df) + 0.5) / (float64(df) + 0.5))
		o.idf[tok] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, tok)
		}
	}
	if len(docFreq) > 0 {
		avgIDF := idfSum / float64(len(docFreq))
		floor := o.epsilon * avgIDF
		for _, tok := range negative {
			o.idf[tok] = floor
		}
	}

	return o
}

// Len returns the number of documents in the index.
func (o *Okapi) Len() int { return o.corpusSize }

// Scores returns one BM25 score per corpus document for the query tokens,
// in corpus order.
func (o *Okapi) Scores(query []string) []float64 {
	scores := make([]float64, o.corpusSize)
	for _, tok := range query {
		idf, ok := o.idf[tok]
		if !ok {
			continue
		}
		for i := 0; i < o.corpusSize; i++ {
			f := float64(o.termFreqs[i][tok])
			if f == 0 {
				continue
			}
			norm := 1 - o.b + o.b*float64(o.docLens[i])/o.avgDocLen
			scores[i] += idf * f * (o.k1 + 1) / (f + o.k1*norm)
		}
	}
	return scores
}

// Tokenize lowercases and whitespace-splits text the way the index and
// its queries expect.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
