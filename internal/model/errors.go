package model

import "errors"

// Fatal conditions of a run. Callers wrap these with context and test
// them with errors.Is.
var (
	// ErrMalformedDocument indicates a required node (station name, dish
	// name) is missing or the document cannot be parsed.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnknownVocabulary indicates a diet or allergen token outside the
	// known vocabulary. The upstream tag set changed and rendering stops
	// rather than misclassify.
	ErrUnknownVocabulary = errors.New("unknown vocabulary")
)
