package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestNew_NilClientFailsFast(t *testing.T) {
	p, err := New(nil, Config{})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerify_InvalidInput(t *testing.T) {
	p, err := New(&fakeClient{}, Config{})
	require.NoError(t, err)

	_, err = p.Verify(context.Background(), VerificationRequest{Content: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerify_GroundedEndToEnd(t *testing.T) {
	client := &fakeClient{groundedResp: validResponse}
	p, err := New(client, Config{AttemptTimeout: time.Second})
	require.NoError(t, err)

	res, err := p.Verify(context.Background(), VerificationRequest{Content: "The bridge closed on Tuesday"})
	require.NoError(t, err)

	assert.Equal(t, 82, res.TrustScore)
	assert.Equal(t, VerdictMostlyTrue, res.Verdict)
	assert.True(t, res.GroundingUsed)
	assert.Equal(t, "fake-model", res.ModelIdentifier)
	assert.GreaterOrEqual(t, res.ProcessingTimeMs, int64(0))
	require.Len(t, res.Claims, 1)
}

func TestVerify_DegradesToUngrounded(t *testing.T) {
	client := &fakeClient{
		groundedErr: errors.New("timeout"),
		plainResp:   `{"trustScore": 40, "verdict": "mixed", "verdictSummary": "Could not check live sources."}`,
	}
	p, err := New(client, Config{})
	require.NoError(t, err)

	res, err := p.Verify(context.Background(), VerificationRequest{Content: "something happened"})
	require.NoError(t, err)

	assert.False(t, res.GroundingUsed)
	assert.Equal(t, 40, res.TrustScore)
	assert.Equal(t, VerdictMixed, res.Verdict)
}

func TestVerify_NeverErrorsOnEngineFailure(t *testing.T) {
	client := &fakeClient{
		groundedErr: errors.New("network"),
		plainErr:    errors.New("network"),
	}
	p, err := New(client, Config{})
	require.NoError(t, err)

	res, err := p.Verify(context.Background(), VerificationRequest{Content: "anything"})
	require.NoError(t, err, "engine failures must be absorbed into the result")

	assert.Equal(t, VerdictUnverifiable, res.Verdict)
	assert.Equal(t, 50, res.TrustScore)
	assert.Equal(t, defaultSummary, res.VerdictSummary)
	assert.False(t, res.GroundingUsed)
	require.NotNil(t, res.Claims)
	assert.Empty(t, res.Claims)
}

func TestVerify_GarbageResponseStillValid(t *testing.T) {
	client := &fakeClient{groundedResp: "I think this is probably fine, no JSON for you"}
	p, err := New(client, Config{})
	require.NoError(t, err)

	res, err := p.Verify(context.Background(), VerificationRequest{Content: "anything"})
	require.NoError(t, err)

	assert.Equal(t, VerdictUnverifiable, res.Verdict)
	assert.True(t, res.GroundingUsed, "grounded attempt succeeded even though its text was unusable")
}

func TestVerifyBatch(t *testing.T) {
	client := &fakeClient{groundedResp: validResponse}
	p, err := New(client, Config{})
	require.NoError(t, err)

	reqs := []VerificationRequest{
		{Content: "first post"},
		{Content: "second post"},
		{Content: "third post"},
	}
	results, err := p.VerifyBatch(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.Equal(t, VerdictMostlyTrue, res.Verdict)
	}
	assert.Equal(t, 3, client.groundedCalls)
}

func TestVerifyBatch_InvalidRequestAborts(t *testing.T) {
	p, err := New(&fakeClient{groundedResp: validResponse}, Config{})
	require.NoError(t, err)

	_, err = p.VerifyBatch(context.Background(), []VerificationRequest{
		{Content: "ok"},
		{Content: ""},
	}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
