// Package lexicon holds the static reference tables for disambiguation:
// the context category inventory and the ambiguous-word sense tables.
// A Lexicon is built once at startup, validated, and treated as immutable
// for the process lifetime, so concurrent readers need no locking.
package lexicon

import (
	"fmt"
	"strings"

	"lexis/internal/models"
)

type Lexicon struct {
	categories []models.ContextCategory
	words      []models.AmbiguousWord

	categoryIndex map[string]models.ContextCategory
	wordIndex     map[string]models.AmbiguousWord // keyed by folded word
}

// Builtin constructs the lexicon from the compiled-in reference data and
// validates it. Malformed tables are fatal: the process cannot serve any
// request without a consistent lexicon.
func Builtin() (*Lexicon, error) {
	return New(builtinCategories, builtinWords)
}

func New(categories []models.ContextCategory, words []models.AmbiguousWord) (*Lexicon, error) {
	lex := &Lexicon{
		categories:    categories,
		words:         words,
		categoryIndex: make(map[string]models.ContextCategory, len(categories)),
		wordIndex:     make(map[string]models.AmbiguousWord, len(words)),
	}
	for _, cat := range categories {
		lex.categoryIndex[cat.Label] = cat
	}
	for _, w := range words {
		lex.wordIndex[strings.ToLower(w.Word)] = w
	}
	if err := lex.validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Word looks up an ambiguous word by case-insensitive match.
func (l *Lexicon) Word(word string) (models.AmbiguousWord, error) {
	w, ok := l.wordIndex[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return models.AmbiguousWord{}, fmt.Errorf("%w: %q", models.ErrUnknownWord, word)
	}
	return w, nil
}

// Category looks up a context category by its exact label.
func (l *Lexicon) Category(label string) (models.ContextCategory, error) {
	cat, ok := l.categoryIndex[label]
	if !ok {
		return models.ContextCategory{}, fmt.Errorf("%w: %q", models.ErrUnknownCategory, label)
	}
	return cat, nil
}

// Words returns the inventory in declaration order.
func (l *Lexicon) Words() []models.AmbiguousWord {
	return l.words
}

// Categories returns the category inventory in declaration order.
func (l *Lexicon) Categories() []models.ContextCategory {
	return l.categories
}

// CategoryIndex returns the label -> category mapping. The map is shared,
// not copied; callers must treat it as read-only.
func (l *Lexicon) CategoryIndex() map[string]models.ContextCategory {
	return l.categoryIndex
}

func (l *Lexicon) validate() error {
	if len(l.categories) == 0 {
		return fmt.Errorf("%w: no context categories declared", models.ErrInvalidLexicon)
	}
	if len(l.words) == 0 {
		return fmt.Errorf("%w: no ambiguous words declared", models.ErrInvalidLexicon)
	}

	seenLabels := make(map[string]bool, len(l.categories))
	for _, cat := range l.categories {
		if cat.Label == "" {
			return fmt.Errorf("%w: category with empty label", models.ErrInvalidLexicon)
		}
		if seenLabels[cat.Label] {
			return fmt.Errorf("%w: duplicate category label %q", models.ErrInvalidLexicon, cat.Label)
		}
		seenLabels[cat.Label] = true
		if len(cat.Triggers) == 0 {
			return fmt.Errorf("%w: category %q has no trigger keywords", models.ErrInvalidLexicon, cat.Label)
		}
		for _, trig := range cat.Triggers {
			if strings.TrimSpace(trig) == "" {
				return fmt.Errorf("%w: category %q has an empty trigger", models.ErrInvalidLexicon, cat.Label)
			}
		}
	}

	seenWords := make(map[string]bool, len(l.words))
	for _, w := range l.words {
		folded := strings.ToLower(w.Word)
		if folded == "" {
			return fmt.Errorf("%w: word with empty surface form", models.ErrInvalidLexicon)
		}
		if seenWords[folded] {
			return fmt.Errorf("%w: duplicate word %q", models.ErrInvalidLexicon, w.Word)
		}
		seenWords[folded] = true
		if len(w.Senses) == 0 {
			return fmt.Errorf("%w: word %q has no senses", models.ErrInvalidLexicon, w.Word)
		}
		seenContexts := make(map[string]bool, len(w.Senses))
		for _, sense := range w.Senses {
			if sense.Gloss == "" {
				return fmt.Errorf("%w: word %q sense %q has no gloss", models.ErrInvalidLexicon, w.Word, sense.Context)
			}
			if seenContexts[sense.Context] {
				return fmt.Errorf("%w: word %q declares context %q twice", models.ErrInvalidLexicon, w.Word, sense.Context)
			}
			seenContexts[sense.Context] = true
			if !seenLabels[sense.Context] {
				return fmt.Errorf("%w: word %q references undeclared category %q", models.ErrInvalidLexicon, w.Word, sense.Context)
			}
		}
	}
	return nil
}
