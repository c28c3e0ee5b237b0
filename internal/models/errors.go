package models

import (
	"errors"
)

var (
	// ErrUnknownWord is returned when the target word is not in the
	// supported inventory. Callers surface it to the user; there is no
	// silent fallback sense for unsupported words.
	ErrUnknownWord = errors.New("word not supported")

	// ErrUnknownCategory is returned when a context label does not name a
	// declared category.
	ErrUnknownCategory = errors.New("unknown context category")

	// ErrInvalidLexicon signals malformed reference tables at startup.
	ErrInvalidLexicon = errors.New("invalid lexicon")
)
