package search

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"cv-matcher/internal/store"
)

const (
	// RelevanceThreshold excludes near-orthogonal matches. Documents at or
	// below it never appear in results. Presentation tuning, kept exact.
	RelevanceThreshold = 0.15

	// Score band constants. The similarity of every surviving match maps to
	// an integer percentage clamp(round(65 + s*30), 65, 95): a narrow,
	// user-facing band rather than the raw cosine value. Kept exact for
	// compatibility.
	scoreBase  = 65
	scoreSpan  = 30
	scoreFloor = 65
	scoreCeil  = 95

	// DefaultTopK bounds the result list.
	DefaultTopK = 5

	// maxVocabulary caps the fitted vocabulary to the most frequent terms.
	maxVocabulary = 1000
)

// Match is one ranked result.
type Match struct {
	ID         string            `json:"id"`
	Metadata   map[string]string `json:"metadata"`
	Score      int               `json:"score"`
	Similarity float64           `json:"-"`
}

// Ranker scores a corpus snapshot against a query. It is stateless; every
// Search fits a fresh vector space, so a concurrently added document may or
// may not be visible to an in-flight query.
type Ranker struct {
	log *zap.Logger
}

func NewRanker(log *zap.Logger) *Ranker {
	return &Ranker{log: log}
}

// Search ranks the corpus against the query and returns at most topK matches
// ordered by descending similarity (ties keep corpus order). An empty corpus
// or no document above the relevance threshold yields an empty result; both
// are expected outcomes, not errors.
func (r *Ranker) Search(query string, corpus []store.Document, topK int) []Match {
	if len(corpus) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	// The query joins the corpus as one extra pseudo-document for the fit.
	texts := make([]string, 0, len(corpus)+1)
	for _, doc := range corpus {
		texts = append(texts, doc.Text)
	}
	texts = append(texts, query)

	vs := fit(texts, maxVocabulary)
	queryVec := vs.vector(query)

	matches := make([]Match, 0, len(corpus))
	for _, doc := range corpus {
		sim := cosine(queryVec, vs.vector(doc.Text))
		if sim <= RelevanceThreshold {
			continue
		}
		matches = append(matches, Match{
			ID:         doc.ID,
			Metadata:   doc.Metadata,
			Score:      MapScore(sim),
			Similarity: sim,
		})
	}
	if len(matches) == 0 {
		r.log.Debug("no documents above relevance threshold",
			zap.Int("corpus_size", len(corpus)))
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// MapScore converts a similarity in [0,1] to the presentational integer band.
func MapScore(similarity float64) int {
	score := int(math.Round(scoreBase + similarity*scoreSpan))
	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeil {
		return scoreCeil
	}
	return score
}
