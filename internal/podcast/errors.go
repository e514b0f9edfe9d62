package podcast

import "errors"

// Pipeline error kinds. Every failure inside Generate wraps exactly one of
// these, so callers can classify the failure with errors.Is while still
// surfacing the underlying provider error text. No kind is ever retried or
// swallowed; there is no partial result.
var (
	// ErrNotConfigured means a required provider has no credentials. Checked
	// before any network call is made.
	ErrNotConfigured = errors.New("podcast: provider not configured")

	// ErrScriptGeneration means the upstream script provider call failed.
	ErrScriptGeneration = errors.New("podcast: script generation failed")

	// ErrSynthesis means speech synthesis failed for some segment. The whole
	// generation is aborted; no audio file is written.
	ErrSynthesis = errors.New("podcast: speech synthesis failed")

	// ErrPersistence means the assembled audio could not be written to disk.
	ErrPersistence = errors.New("podcast: audio persistence failed")
)
