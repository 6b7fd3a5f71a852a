package verify

import (
	"context"
	"time"

	"trustlens/internal/logging"
	"trustlens/internal/reasoning"
)

// DefaultAttemptTimeout bounds each external call when the caller did not
// configure one. The upstream behavior specified no timeout at all; a hung
// engine call must not block the caller, so expiry is treated exactly like
// a failed call.
const DefaultAttemptTimeout = 90 * time.Second

// InvocationState is the terminal state of the two-tier call chain.
type InvocationState string

const (
	// StateGrounded: the primary search-grounded attempt succeeded.
	StateGrounded InvocationState = "grounded"
	// StateUngrounded: the primary attempt failed and the reduced
	// fallback attempt succeeded.
	StateUngrounded InvocationState = "ungrounded"
	// StateDefaulted: both attempts failed; no response was obtained.
	StateDefaulted InvocationState = "defaulted"
)

// Outcome carries whatever the invocation chain produced. RawText is empty
// only in the defaulted state.
type Outcome struct {
	State   InvocationState
	RawText string
	Model   string
	Elapsed time.Duration
}

// GroundingUsed reports whether the text came from the grounded attempt.
func (o Outcome) GroundingUsed() bool {
	return o.State == StateGrounded
}

// Invoker drives the exactly-two-tier call strategy against the reasoning
// engine: one grounded attempt, at most one ungrounded fallback, then a
// terminal default. No retry loops, no backoff; the chain is a deliberate
// latency bound. Invoke never returns an error.
type Invoker struct {
	client  reasoning.Client
	timeout time.Duration
}

// NewInvoker wraps an engine client. A zero timeout takes
// DefaultAttemptTimeout.
func NewInvoker(client reasoning.Client, timeout time.Duration) *Invoker {
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	return &Invoker{client: client, timeout: timeout}
}

// Invoke executes the chain. Each attempt runs under its own deadline;
// expiry counts as a thrown invocation error and feeds the next tier.
func (inv *Invoker) Invoke(ctx context.Context, analysisPrompt, fallbackPrompt string) Outcome {
	start := time.Now()
	model := inv.client.Model()

	raw, err := inv.attempt(ctx, func(actx context.Context) (string, error) {
		return inv.client.CompleteGrounded(actx, systemPrompt, analysisPrompt)
	})
	if err == nil {
		logging.Pipeline("grounded attempt succeeded in %v response_len=%d", time.Since(start), len(raw))
		return Outcome{State: StateGrounded, RawText: raw, Model: model, Elapsed: time.Since(start)}
	}
	logging.PipelineWarn("grounded attempt failed after %v: %v", time.Since(start), err)

	raw, err = inv.attempt(ctx, func(actx context.Context) (string, error) {
		return inv.client.Complete(actx, systemPrompt, fallbackPrompt)
	})
	if err == nil {
		logging.Pipeline("ungrounded fallback succeeded in %v response_len=%d", time.Since(start), len(raw))
		return Outcome{State: StateUngrounded, RawText: raw, Model: model, Elapsed: time.Since(start)}
	}
	logging.PipelineError("ungrounded fallback failed after %v: %v", time.Since(start), err)

	return Outcome{State: StateDefaulted, Model: model, Elapsed: time.Since(start)}
}

func (inv *Invoker) attempt(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	actx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()
	return call(actx)
}
