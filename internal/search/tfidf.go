// Package search ranks stored CV texts against a query using a lexical
// TF-IDF vector space and cosine similarity. The space is re-fit from the
// live corpus on every query, so additions and deletions are always
// reflected; no state is held between calls.
package search

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[\pL\pN]{2,}`)

// vectorSpace is one fitted TF-IDF vocabulary with smoothed IDF weights.
type vectorSpace struct {
	vocab map[string]int
	idf   []float64
}

// fit builds the vocabulary over the given texts, capped to the maxFeatures
// most frequent terms (ties broken alphabetically), stopwords excluded.
func fit(texts []string, maxFeatures int) *vectorSpace {
	totals := make(map[string]int)
	df := make(map[string]int)

	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			totals[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	vs := &vectorSpace{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(texts))
	for i, term := range terms {
		vs.vocab[term] = i
		// Smoothed IDF
		vs.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return vs
}

// vector computes the L2-normalized TF-IDF vector for text. Text with no
// in-vocabulary terms yields the zero vector.
func (vs *vectorSpace) vector(text string) []float64 {
	vec := make([]float64, len(vs.idf))
	for _, tok := range tokenize(text) {
		if idx, ok := vs.vocab[tok]; ok {
			vec[idx] += vs.idf[idx]
		}
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// cosine of two L2-normalized non-negative vectors, clamped to [0,1].
func cosine(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	if sum < 0 {
		return 0
	}
	if sum > 1 {
		return 1
	}
	return sum
}

func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
		"we", "you", "he", "she", "they", "them", "his", "her", "their",
		"our", "your", "my", "me", "us", "i", "am", "has", "have", "had",
		"do", "does", "did", "not", "no", "nor", "only", "more", "most",
		"other", "some", "any", "each", "both", "few", "all", "where",
		"when", "why", "how", "what", "which", "who", "whom", "there",
		"here", "because", "while", "until", "against", "once",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
