package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"lexis/internal/lexicon"
	"lexis/internal/models"
	"lexis/internal/store"
	"lexis/internal/wiki"
)

// WikiLookup is the slice of the wiki client the lookup service needs.
type WikiLookup interface {
	LookupFirst(ctx context.Context, terms []string) (string, error)
}

// LookupService enriches a resolved sense with an external knowledge
// summary. It sits entirely outside the disambiguation core: it runs
// after Resolve and its failures never affect the resolved sense.
type LookupService struct {
	wiki         WikiLookup
	cache        store.SummaryCache
	lexicon      *lexicon.Lexicon
	maxSentences int
}

func NewLookupService(w WikiLookup, cache store.SummaryCache, lex *lexicon.Lexicon, maxSentences int) *LookupService {
	return &LookupService{
		wiki:         w,
		cache:        cache,
		lexicon:      lex,
		maxSentences: maxSentences,
	}
}

// CacheKey builds the context-aware cache key for a word/sense pair, so
// "python" cached under programming never shadows the snake.
func CacheKey(word, contextLabel string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if contextLabel == "" {
		return word
	}
	return word + "_" + contextLabel
}

// Enrich returns a summary for the resolution, from cache when possible.
// The sentence is used only for compound-term detection ("blood bank"
// beats "bank" as a search term). Returns "" when the resolution does not
// recommend a lookup or the source has nothing.
func (s *LookupService) Enrich(ctx context.Context, res models.Resolution, sentence string) (string, error) {
	if !res.LookupRecommended {
		return "", nil
	}

	key := CacheKey(res.Word, res.DetectedContext)
	if compound, ok := FindCompoundTerm(res.Word, sentence); ok {
		// Compound summaries get their own cache entries; "blood bank"
		// and a finance-context "bank" are different articles.
		key = CacheKey(strings.ReplaceAll(compound, " ", "_"), res.DetectedContext)
	}

	if summary, ok, err := s.cache.Get(ctx, key); err != nil {
		log.WithError(err).WithField("key", key).Warn("summary cache read failed")
	} else if ok {
		return summary, nil
	}

	summary, err := s.fetch(ctx, res, sentence)
	if err != nil {
		return "", err
	}
	if err := s.cache.Put(ctx, key, summary); err != nil {
		// The summary is already in hand; a cache write failure only
		// costs the next request a refetch.
		log.WithError(err).WithField("key", key).Warn("summary cache write failed")
	}
	return summary, nil
}

// Prefetch warms the cache for one word/sense pair. Used by the
// background worker; compound detection does not apply since there is no
// sentence.
func (s *LookupService) Prefetch(ctx context.Context, word, contextLabel string) error {
	entry, err := s.lexicon.Word(word)
	if err != nil {
		return err
	}
	res := models.Resolution{Word: entry.Word, DetectedContext: contextLabel, LookupRecommended: true}

	key := CacheKey(entry.Word, contextLabel)
	if _, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return nil // already warm
	}
	summary, err := s.fetch(ctx, res, "")
	if err != nil {
		return fmt.Errorf("prefetch %s/%s: %w", entry.Word, contextLabel, err)
	}
	if err := s.cache.Put(ctx, key, summary); err != nil {
		return fmt.Errorf("prefetch %s/%s: %w", entry.Word, contextLabel, err)
	}
	return nil
}

// fetch queries the knowledge source, trying the compound term first when
// present, then the sense's declared search terms, then generic
// fallbacks. The result is trimmed to the configured sentence budget.
func (s *LookupService) fetch(ctx context.Context, res models.Resolution, sentence string) (string, error) {
	var terms []string
	if sentence != "" {
		if compound, ok := FindCompoundTerm(res.Word, sentence); ok {
			terms = append(terms, compound)
		}
	}
	if entry, err := s.lexicon.Word(res.Word); err == nil {
		for _, sense := range entry.Senses {
			if sense.Context == res.DetectedContext {
				terms = append(terms, sense.SearchTerms...)
				break
			}
		}
	}
	if res.DetectedContext != "" {
		terms = append(terms, fmt.Sprintf("%s (%s)", res.Word, res.DetectedContext))
	}
	terms = append(terms, res.Word)

	summary, err := s.wiki.LookupFirst(ctx, terms)
	if err != nil {
		return "", err
	}
	return wiki.TrimSummary(summary, s.maxSentences), nil
}
