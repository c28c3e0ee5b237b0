package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexis/internal/lexicon"
	"lexis/internal/models"
	"lexis/internal/services"
)

func newService(t *testing.T) *services.DisambiguationService {
	t.Helper()
	lex, err := lexicon.Builtin()
	require.NoError(t, err)
	return services.NewDisambiguationService(lex)
}

func TestDisambiguate_UnknownWord(t *testing.T) {
	svc := newService(t)

	_, err := svc.Disambiguate("anything", "zeppelin")
	assert.ErrorIs(t, err, models.ErrUnknownWord)
}

func TestDisambiguate_EndToEnd(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		sentence string
		word     string
		context  string
		fallback bool
	}{
		{"I wrote a python script to debug the algorithm", "python", "programming", false},
		{"The python coiled around its prey in the jungle", "python", "biology", false},
		{"A bug was crawling on the ceiling near the window", "bug", "insect", false},
		{"They found a hidden bug planted in the office phone", "bug", "surveillance", false},
		{"I clicked the mouse to open the folder", "mouse", "computer", false},
		{"The crane flew over the wetland with graceful wings", "crane", "bird", false},
		{"I love python", "python", "programming", true},
	}
	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			res, err := svc.Disambiguate(tt.sentence, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.context, res.DetectedContext)
			assert.Equal(t, tt.fallback, res.Fallback)
			assert.NotEmpty(t, res.Gloss)
			assert.NotEmpty(t, res.LookupHint)
		})
	}
}

func TestDisambiguate_ContextAlwaysBelongsToWord(t *testing.T) {
	svc := newService(t)
	lex, err := lexicon.Builtin()
	require.NoError(t, err)

	sentences := []string{
		"",
		"the quick brown fox",
		"deposit money at the bank account",
		"compile the code and debug the loop",
		"the snake shed its scales in the forest",
	}
	for _, w := range lex.Words() {
		declared := make(map[string]bool, len(w.Senses))
		for _, s := range w.Senses {
			declared[s.Context] = true
		}
		for _, sentence := range sentences {
			res, err := svc.Disambiguate(sentence, w.Word)
			require.NoError(t, err)
			assert.Truef(t, declared[res.DetectedContext],
				"word %q resolved to undeclared context %q for %q", w.Word, res.DetectedContext, sentence)
		}
	}
}

func TestResolve_UnmatchedLabelFallsBackToFirstSense(t *testing.T) {
	svc := newService(t)

	sense, err := svc.Resolve("python", "astrology")
	require.NoError(t, err)
	assert.Equal(t, "programming", sense.Context)
}

func TestResolve_UnknownWord(t *testing.T) {
	svc := newService(t)

	_, err := svc.Resolve("zeppelin", "programming")
	assert.ErrorIs(t, err, models.ErrUnknownWord)
}

func TestClassify_PropagatesUnknownWord(t *testing.T) {
	svc := newService(t)

	_, err := svc.Classify("some sentence", "zeppelin")
	assert.ErrorIs(t, err, models.ErrUnknownWord)
}

func TestLookupHint(t *testing.T) {
	withTerms := models.SenseEntry{Context: "programming", Gloss: "g", SearchTerms: []string{"Python (programming language)", "Python programming"}}
	assert.Equal(t, "Python (programming language)", services.LookupHint("python", withTerms))

	noTerms := models.SenseEntry{Context: "biology", Gloss: "g"}
	assert.Equal(t, "python (biology)", services.LookupHint("python", noTerms))
}

func TestDisambiguate_LookupNotRecommendedForBareFallback(t *testing.T) {
	// A sense with no declared search terms, resolved with zero evidence,
	// should not recommend an external lookup.
	lex, err := lexicon.New(
		[]models.ContextCategory{{Label: "programming", Triggers: []string{"code"}}},
		[]models.AmbiguousWord{{Word: "widget", Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a reusable interface component"},
		}}},
	)
	require.NoError(t, err)
	svc := services.NewDisambiguationService(lex)

	res, err := svc.Disambiguate("no evidence here", "widget")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.False(t, res.LookupRecommended)

	res, err = svc.Disambiguate("reading the code", "widget")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.True(t, res.LookupRecommended, "real evidence makes the lookup worthwhile")
}
