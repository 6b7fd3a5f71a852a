// Package reasoning wraps the external grounded-reasoning engine behind a
// small client interface so the verification pipeline can be tested with
// fakes and never constructs credentials itself.
package reasoning

import "context"

// Client is the engine contract the pipeline consumes. Implementations
// must be safe for concurrent use; the pipeline shares one handle across
// all runs.
type Client interface {
	// CompleteGrounded sends a prompt with live web-search grounding
	// enabled and returns the raw response text.
	CompleteGrounded(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Complete sends a prompt with no grounding tools attached.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Model identifies the underlying model for result records.
	Model() string
}
