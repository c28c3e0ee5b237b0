package services

import (
	"lexis/internal/classifier"
)

// knownCompounds are the only two-word terms that may replace a bare word
// as the external search term. Closed list: free-form compounding produced
// too many false positives ("will watch", "the bank").
var knownCompounds = map[string]bool{
	"blood bank": true, "food bank": true, "river bank": true, "memory bank": true,
	"apple tree": true, "apple pie": true, "apple juice": true,
	"cell phone": true, "prison cell": true, "blood cell": true,
	"light bulb": true, "traffic light": true, "flash light": true,
	"book store": true, "book shelf": true, "comic book": true,
	"smart watch": true, "pocket watch": true, "stop watch": true,
	"wrist watch": true, "night watch": true,
}

// compoundSkipWords are function words that never form the head of a
// compound ("will watch" is not a compound term).
var compoundSkipWords = map[string]bool{
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"may": true, "might": true, "must": true,
	"do": true, "does": true, "did": true, "has": true, "have": true, "had": true,
	"is": true, "are": true, "was": true, "were": true,
	"the": true, "a": true, "an": true, "to": true, "and": true, "or": true,
	"but": true, "for": true, "with": true, "at": true, "by": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "my": true, "your": true, "his": true, "her": true,
	"this": true, "that": true, "these": true, "those": true,
	"some": true, "any": true, "all": true, "each": true, "every": true,
}

// FindCompoundTerm reports whether the target word appears in the sentence
// as the second half of a known compound ("bank" in "the blood bank
// operates" -> "blood bank"). Returns the compound and true, or "" and
// false.
func FindCompoundTerm(word, sentence string) (string, bool) {
	tokens := classifier.Tokenize(sentence)
	target := ""
	if t := classifier.Tokenize(word); len(t) == 1 {
		target = t[0]
	}
	if target == "" {
		return "", false
	}
	for i, tok := range tokens {
		if tok != target || i == 0 {
			continue
		}
		prev := tokens[i-1]
		if compoundSkipWords[prev] {
			continue
		}
		compound := prev + " " + tok
		if knownCompounds[compound] {
			return compound, true
		}
	}
	return "", false
}
