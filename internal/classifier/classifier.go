// Package classifier scores a sentence against context categories using
// trigger-keyword evidence. Classification is a pure function of its inputs
// and the static category tables: no I/O, no shared mutable state.
package classifier

import (
	"strings"
	"unicode"

	"lexis/internal/models"
)

// Tokenize case-folds the text, strips everything outside [a-z0-9] to
// spaces, and splits on whitespace.
func Tokenize(text string) []string {
	folded := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Fields(mapped)
}

// Classify scores the sentence against the categories declared in the
// word's sense table, in declaration order. Only those categories are
// considered: evidence for a category the word does not support must not
// influence resolution.
//
// Matching is whole-word: single-token triggers match against the token
// set, multi-token triggers match as space-delimited phrases. Each trigger
// counts at most once regardless of how often it occurs. Tokens equal to
// excludedWord are dropped first so the target word cannot vote for its
// own context.
//
// The winner is the category with the strictly highest score; ties go to
// the sense declared first. With no evidence at all the first declared
// sense wins and the result is flagged as a fallback. An empty or
// unusable sentence is just the zero-evidence case, never an error.
func Classify(sentence, excludedWord string, senses []models.SenseEntry, categories map[string]models.ContextCategory) models.ClassificationResult {
	result := models.ClassificationResult{
		Sentence: sentence,
		Scores:   make(map[string]int, len(senses)),
	}
	if len(senses) == 0 {
		result.Fallback = true
		return result
	}

	excluded := strings.ToLower(strings.TrimSpace(excludedWord))
	tokens := Tokenize(sentence)
	tokenSet := make(map[string]bool, len(tokens))
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok == excluded {
			continue
		}
		kept = append(kept, tok)
		tokenSet[tok] = true
	}
	// Pad with spaces so phrase triggers match on token boundaries only.
	stream := " " + strings.Join(kept, " ") + " "

	bestScore := 0
	winner := ""
	for _, sense := range senses {
		cat, ok := categories[sense.Context]
		if !ok {
			// Undeclared categories are rejected at lexicon load; score
			// zero keeps the result deterministic if one slips through.
			result.Scores[sense.Context] = 0
			continue
		}
		score := scoreCategory(cat, tokenSet, stream)
		result.Scores[sense.Context] = score
		if score > bestScore {
			bestScore = score
			winner = sense.Context
		}
	}

	if bestScore == 0 {
		result.Winner = senses[0].Context
		result.Fallback = true
		return result
	}
	result.Winner = winner
	return result
}

// scoreCategory counts the distinct triggers of cat present in the
// sentence. Distinct-keyword counting keeps one repeated common word from
// dominating the score.
func scoreCategory(cat models.ContextCategory, tokenSet map[string]bool, stream string) int {
	score := 0
	for _, trigger := range cat.Triggers {
		parts := Tokenize(trigger)
		switch len(parts) {
		case 0:
			continue
		case 1:
			if tokenSet[parts[0]] {
				score++
			}
		default:
			if strings.Contains(stream, " "+strings.Join(parts, " ")+" ") {
				score++
			}
		}
	}
	return score
}
