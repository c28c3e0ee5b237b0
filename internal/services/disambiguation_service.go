package services

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"lexis/internal/classifier"
	"lexis/internal/lexicon"
	"lexis/internal/models"
)

// DisambiguationService runs the classify-then-resolve pipeline over the
// static lexicon. It holds no mutable state, so a single instance is safe
// for concurrent use.
type DisambiguationService struct {
	lexicon *lexicon.Lexicon
}

func NewDisambiguationService(lex *lexicon.Lexicon) *DisambiguationService {
	return &DisambiguationService{lexicon: lex}
}

// Classify scores the sentence against the contexts declared for word.
// Returns models.ErrUnknownWord for words outside the inventory; a caller
// that gets that error must not retry with classification output.
func (s *DisambiguationService) Classify(sentence, word string) (models.ClassificationResult, error) {
	entry, err := s.lexicon.Word(word)
	if err != nil {
		return models.ClassificationResult{}, err
	}
	return classifier.Classify(sentence, entry.Word, entry.Senses, s.lexicon.CategoryIndex()), nil
}

// Resolve selects the sense of word matching contextLabel. An unmatched
// label falls back to the word's first declared sense; that should not
// happen when the label came from Classify, but the resolver stays
// defensive about it. No keyword scanning happens here.
func (s *DisambiguationService) Resolve(word, contextLabel string) (models.SenseEntry, error) {
	entry, err := s.lexicon.Word(word)
	if err != nil {
		return models.SenseEntry{}, err
	}
	for _, sense := range entry.Senses {
		if sense.Context == contextLabel {
			return sense, nil
		}
	}
	log.WithFields(log.Fields{"word": entry.Word, "context": contextLabel}).
		Warn("no sense for detected context, falling back to first sense")
	return entry.Senses[0], nil
}

// Disambiguate is the full pipeline: classify the sentence, resolve the
// winning sense, and assemble the record handed to presentation
// collaborators. The external knowledge lookup itself is not performed
// here; the resolution only carries the hint.
func (s *DisambiguationService) Disambiguate(sentence, word string) (models.Resolution, error) {
	entry, err := s.lexicon.Word(word)
	if err != nil {
		return models.Resolution{}, err
	}

	result := classifier.Classify(sentence, entry.Word, entry.Senses, s.lexicon.CategoryIndex())
	sense, err := s.Resolve(entry.Word, result.Winner)
	if err != nil {
		// Unreachable: the word was just looked up.
		return models.Resolution{}, fmt.Errorf("resolve %q: %w", entry.Word, err)
	}

	// A lookup is worth attempting when the sense names explicit search
	// terms, or when real context evidence picked the sense. A zero-evidence
	// fallback with only a derived hint would just query noise.
	recommended := len(sense.SearchTerms) > 0 || !result.Fallback

	return models.Resolution{
		Word:              entry.Word,
		DetectedContext:   sense.Context,
		Gloss:             sense.Gloss,
		LookupHint:        LookupHint(entry.Word, sense),
		LookupRecommended: recommended,
		Scores:            result.Scores,
		Fallback:          result.Fallback,
	}, nil
}

// LookupHint picks the preferred external search term for a sense: its
// first declared search term, or "<word> (<context>)" when none is
// declared.
func LookupHint(word string, sense models.SenseEntry) string {
	if len(sense.SearchTerms) > 0 {
		return sense.SearchTerms[0]
	}
	return fmt.Sprintf("%s (%s)", word, sense.Context)
}
