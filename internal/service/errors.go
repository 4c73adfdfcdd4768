package service

import "errors"

// Error kinds surfaced by the blog generation flow. Handlers map these to
// HTTP statuses; the raw provider error stays server-side.
var (
	// ErrEmptySeedIdea means the request carried no usable seed idea.
	ErrEmptySeedIdea = errors.New("seed idea is required")

	// ErrGenerationFailed means the provider call itself failed.
	ErrGenerationFailed = errors.New("blog generation failed")

	// ErrUnparsableContent means the provider answered but not with the
	// expected JSON object.
	ErrUnparsableContent = errors.New("generated content could not be parsed")
)
