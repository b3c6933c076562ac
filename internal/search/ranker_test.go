package search

import (
	"testing"

	"go.uber.org/zap"

	"cv-matcher/internal/store"
)

func testCorpus() []store.Document {
	return []store.Document{
		{ID: "go-dev", Text: "golang developer kubernetes docker microservices grpc backend engineer", Metadata: map[string]string{"candidate_name": "Go Dev"}},
		{ID: "py-dev", Text: "python developer django flask postgresql backend engineer", Metadata: map[string]string{"candidate_name": "Py Dev"}},
		{ID: "chef", Text: "pasta pizza risotto kitchen seasonal menu sous chef cooking", Metadata: map[string]string{"candidate_name": "Chef"}},
	}
}

func TestSearchEmptyCorpus(t *testing.T) {
	r := NewRanker(zap.NewNop())
	if got := r.Search("any query at all", nil, 5); len(got) != 0 {
		t.Errorf("Search on empty corpus = %v, want empty", got)
	}
}

func TestSearchRelevanceThreshold(t *testing.T) {
	r := NewRanker(zap.NewNop())
	matches := r.Search("golang kubernetes docker microservices", testCorpus(), 5)

	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	for _, m := range matches {
		if m.Similarity <= RelevanceThreshold {
			t.Errorf("match %s similarity %f below threshold", m.ID, m.Similarity)
		}
		if m.Score < 65 || m.Score > 95 {
			t.Errorf("match %s score %d outside [65,95]", m.ID, m.Score)
		}
		if m.ID == "chef" {
			t.Error("near-orthogonal document passed the relevance filter")
		}
	}
	if matches[0].ID != "go-dev" {
		t.Errorf("best match = %s, want go-dev", matches[0].ID)
	}
}

func TestSearchNoMatchAboveThreshold(t *testing.T) {
	r := NewRanker(zap.NewNop())
	matches := r.Search("underwater basket weaving championship", testCorpus(), 5)
	if len(matches) != 0 {
		t.Errorf("expected empty result, got %v", matches)
	}
}

func TestSearchTopKBound(t *testing.T) {
	corpus := make([]store.Document, 0, 8)
	for i := 0; i < 8; i++ {
		corpus = append(corpus, store.Document{
			ID:   string(rune('a' + i)),
			Text: "golang developer backend services",
		})
	}
	corpus = append(corpus, store.Document{ID: "other", Text: "gardening flowers soil compost"})

	r := NewRanker(zap.NewNop())
	matches := r.Search("golang developer", corpus, 3)
	if len(matches) > 3 {
		t.Errorf("got %d matches, want at most 3", len(matches))
	}
}

func TestSearchStableTieOrder(t *testing.T) {
	corpus := []store.Document{
		{ID: "first", Text: "golang developer backend"},
		{ID: "second", Text: "golang developer backend"},
		{ID: "third", Text: "golang developer backend"},
	}
	r := NewRanker(zap.NewNop())
	matches := r.Search("golang developer", corpus, 5)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i, want := range []string{"first", "second", "third"} {
		if matches[i].ID != want {
			t.Errorf("matches[%d] = %s, want %s (ties must keep corpus order)", i, matches[i].ID, want)
		}
	}
}

func TestSearchOrderedBySimilarity(t *testing.T) {
	r := NewRanker(zap.NewNop())
	matches := r.Search("python django backend developer", testCorpus(), 5)
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not sorted: [%d]=%f > [%d]=%f",
				i, matches[i].Similarity, i-1, matches[i-1].Similarity)
		}
	}
}

func TestMapScore(t *testing.T) {
	tests := []struct {
		similarity float64
		want       int
	}{
		{0.00, 65},
		{0.50, 80},
		{1.00, 95},
		{0.15, 70}, // 65 + 4.5 rounds to 70
		{0.16, 70},
		{0.99, 95}, // 94.7 rounds to 95
	}
	for _, tt := range tests {
		if got := MapScore(tt.similarity); got != tt.want {
			t.Errorf("MapScore(%.2f) = %d, want %d", tt.similarity, got, tt.want)
		}
	}
}

func TestMapScoreDeterministic(t *testing.T) {
	for i := 0; i <= 100; i++ {
		s := float64(i) / 100
		a, b := MapScore(s), MapScore(s)
		if a != b {
			t.Fatalf("MapScore(%f) not deterministic: %d vs %d", s, a, b)
		}
		if a < 65 || a > 95 {
			t.Fatalf("MapScore(%f) = %d outside [65,95]", s, a)
		}
	}
}
