package models

// ContextCategory is a topical domain used as disambiguation evidence.
// Categories are static reference data, loaded once at startup and never
// mutated afterwards.
type ContextCategory struct {
	Label    string   `json:"label"`
	Triggers []string `json:"triggers"` // case-insensitive trigger keywords/phrases
}

// SenseEntry is one meaning of an ambiguous word, tied to a context category.
// It is owned by exactly one AmbiguousWord and never shared.
type SenseEntry struct {
	Context string `json:"context"` // label of a declared ContextCategory
	Gloss   string `json:"gloss"`
	// SearchTerms are candidate titles for an external knowledge lookup,
	// ordered by preference. When empty, a hint of the form
	// "<word> (<context>)" is derived instead.
	SearchTerms []string `json:"search_terms,omitempty"`
}

// AmbiguousWord maps a surface word (case-insensitive) to its ordered sense
// table. Declaration order matters: the first sense is the fallback when no
// context evidence is found, and earlier senses win score ties.
type AmbiguousWord struct {
	Word   string       `json:"word"`
	Senses []SenseEntry `json:"senses"`
}

// ClassificationResult carries the per-category evidence for one sentence.
// It is created per request and discarded after use.
type ClassificationResult struct {
	Sentence string         `json:"sentence"`
	Scores   map[string]int `json:"scores"` // category label -> distinct triggers found
	Winner   string         `json:"winner"`
	// Fallback is set when no relevant category scored above zero and the
	// winner defaulted to the word's first declared sense.
	Fallback bool `json:"fallback"`
}

// Resolution is the record handed to presentation collaborators after a
// word has been disambiguated.
type Resolution struct {
	Word              string         `json:"word"`
	DetectedContext   string         `json:"detected_context"`
	Gloss             string         `json:"gloss"`
	LookupHint        string         `json:"lookup_hint"`
	LookupRecommended bool           `json:"lookup_recommended"`
	Scores            map[string]int `json:"scores"`
	Fallback          bool           `json:"fallback"`
}
