package verify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a scriptable reasoning client that counts calls per tier.
type fakeClient struct {
	mu            sync.Mutex
	groundedCalls int
	plainCalls    int

	groundedResp string
	groundedErr  error
	plainResp    string
	plainErr     error

	// hang makes the grounded call block until the context expires.
	hang bool
}

func (f *fakeClient) CompleteGrounded(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.groundedCalls++
	hang := f.hang
	f.mu.Unlock()
	if hang {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.groundedResp, f.groundedErr
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.plainCalls++
	f.mu.Unlock()
	return f.plainResp, f.plainErr
}

func (f *fakeClient) Model() string { return "fake-model" }

func TestInvoke_GroundedSuccess(t *testing.T) {
	client := &fakeClient{groundedResp: `{"verdict":"verified"}`}
	inv := NewInvoker(client, time.Second)

	out := inv.Invoke(context.Background(), "analysis", "fallback")

	assert.Equal(t, StateGrounded, out.State)
	assert.True(t, out.GroundingUsed())
	assert.Equal(t, `{"verdict":"verified"}`, out.RawText)
	assert.Equal(t, "fake-model", out.Model)
	assert.Equal(t, 1, client.groundedCalls)
	assert.Equal(t, 0, client.plainCalls, "fallback must not run after a grounded success")
}

func TestInvoke_PrimaryFailureTriggersExactlyOneFallback(t *testing.T) {
	client := &fakeClient{
		groundedErr: errors.New("quota exhausted"),
		plainResp:   `{"verdict":"mixed"}`,
	}
	inv := NewInvoker(client, time.Second)

	out := inv.Invoke(context.Background(), "analysis", "fallback")

	assert.Equal(t, StateUngrounded, out.State)
	assert.False(t, out.GroundingUsed())
	assert.Equal(t, `{"verdict":"mixed"}`, out.RawText)
	assert.Equal(t, 1, client.groundedCalls)
	assert.Equal(t, 1, client.plainCalls)
}

func TestInvoke_BothFailuresYieldDefaulted(t *testing.T) {
	client := &fakeClient{
		groundedErr: errors.New("network down"),
		plainErr:    errors.New("still down"),
	}
	inv := NewInvoker(client, time.Second)

	out := inv.Invoke(context.Background(), "analysis", "fallback")

	assert.Equal(t, StateDefaulted, out.State)
	assert.Empty(t, out.RawText)
	assert.Equal(t, 1, client.groundedCalls)
	assert.Equal(t, 1, client.plainCalls, "exactly two attempts, never more")
}

func TestInvoke_TimeoutTreatedAsFailure(t *testing.T) {
	client := &fakeClient{
		hang:      true,
		plainResp: `{"verdict":"unverifiable"}`,
	}
	inv := NewInvoker(client, 20*time.Millisecond)

	start := time.Now()
	out := inv.Invoke(context.Background(), "analysis", "fallback")

	require.Less(t, time.Since(start), 2*time.Second, "a hung call must not block past its deadline")
	assert.Equal(t, StateUngrounded, out.State)
	assert.Equal(t, 1, client.plainCalls)
}

func TestNewInvoker_ZeroTimeoutTakesDefault(t *testing.T) {
	inv := NewInvoker(&fakeClient{}, 0)
	assert.Equal(t, DefaultAttemptTimeout, inv.timeout)
}
