package verify

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"trustlens/internal/logging"
	"trustlens/internal/reasoning"
)

// ErrNotConfigured is returned by New when no reasoning-engine client was
// supplied. It is the only failure the pipeline surfaces apart from invalid
// input; once constructed, the pipeline always returns a valid result.
var ErrNotConfigured = errors.New("verify: reasoning client not configured")

// Config tunes the pipeline. Zero values take documented defaults.
type Config struct {
	// AttemptTimeout bounds each of the two engine attempts.
	// Defaults to DefaultAttemptTimeout.
	AttemptTimeout time.Duration
}

// Pipeline is the request-scoped verification pipeline. It is stateless
// across runs and safe for concurrent use; runs share only the engine
// client handle.
type Pipeline struct {
	client  reasoning.Client
	invoker *Invoker
	now     func() time.Time
}

// New builds a pipeline around an injected engine client. The client check
// happens here, before any network attempt, so a missing credential fails
// fast and deterministically.
func New(client reasoning.Client, cfg Config) (*Pipeline, error) {
	if client == nil {
		return nil, ErrNotConfigured
	}
	return &Pipeline{
		client:  client,
		invoker: NewInvoker(client, cfg.AttemptTimeout),
		now:     time.Now,
	}, nil
}

// Verify runs the full pipeline: normalize, build prompts, invoke the
// two-tier chain, and reconstruct the validated result. The only error it
// returns is ErrInvalidInput; every upstream failure is absorbed into the
// result as a low-confidence unverifiable verdict.
func (p *Pipeline) Verify(ctx context.Context, req VerificationRequest) (VerificationResult, error) {
	start := p.now()

	req, err := NormalizeRequest(req)
	if err != nil {
		return VerificationResult{}, err
	}

	analysisPrompt := BuildAnalysisPrompt(req, start)
	fallbackPrompt := BuildFallbackPrompt(req)

	outcome := p.invoker.Invoke(ctx, analysisPrompt, fallbackPrompt)

	result := ParseVerificationResponse(outcome.RawText, outcome.GroundingUsed())
	result.ModelIdentifier = outcome.Model
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	logging.Pipeline("verification complete state=%s verdict=%s trust_score=%d claims=%d elapsed_ms=%d",
		outcome.State, result.Verdict, result.TrustScore, len(result.Claims), result.ProcessingTimeMs)

	return result, nil
}

// VerifyBatch runs independent verifications concurrently, at most limit at
// a time (limit <= 0 means unbounded). Results are positionally aligned
// with the requests. The first invalid request aborts the batch.
func (p *Pipeline) VerifyBatch(ctx context.Context, reqs []VerificationRequest, limit int) ([]VerificationResult, error) {
	results := make([]VerificationResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, req := range reqs {
		g.Go(func() error {
			res, err := p.Verify(gctx, req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
