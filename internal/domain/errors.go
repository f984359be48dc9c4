package domain

import "errors"

var (
	// ErrCorpusUnavailable signals that the transcript corpus could not be loaded.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	// ErrNarrativeProviderError signals a narrative provider failure.
	ErrNarrativeProviderError = errors.New("narrative provider error")
)
