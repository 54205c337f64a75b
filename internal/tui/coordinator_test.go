package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Blackgod0/Passcode-manager/internal/backend"
)

// scriptedClient maps passwords to canned responses and counts calls.
type scriptedClient struct {
	mu      sync.Mutex
	reports map[string]backend.Report
	errs    map[string]error
	calls   []string
}

func newScriptedClient() *scriptedClient {
	return &scriptedClient{
		reports: map[string]backend.Report{},
		errs:    map[string]error{},
	}
}

func (c *scriptedClient) Analyze(_ context.Context, password string) (backend.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, password)
	if err := c.errs[password]; err != nil {
		return backend.Report{}, err
	}
	return c.reports[password], nil
}

func (c *scriptedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func reportWithScore(score int) backend.Report {
	return backend.Report{Analysis: backend.Analysis{Score: score, Entropy: float64(score) * 10, Length: score + 3}}
}

func TestLateResponseForOlderTokenIsDiscarded(t *testing.T) {
	client := newScriptedClient()
	client.reports["v1"] = reportWithScore(1)
	client.reports["v2"] = reportWithScore(4)

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	cmd1 := c.OnSettled("v1")
	cmd2 := c.OnSettled("v2")

	// v2 resolves first, then v1's response arrives late
	msg2 := cmd2().(analyzeResultMsg)
	msg1 := cmd1().(analyzeResultMsg)

	if !c.Apply(msg2) {
		t.Fatal("freshest response was not applied")
	}
	if c.Apply(msg1) {
		t.Fatal("stale response was applied")
	}
	if state.Analysis == nil || state.Analysis.Score != 4 {
		t.Fatalf("state reflects %+v, want v2's payload", state.Analysis)
	}
	if state.Loading {
		t.Fatal("loading still set after freshest response applied")
	}
}

func TestStaleResponseDoesNotTouchLoading(t *testing.T) {
	client := newScriptedClient()
	client.reports["old"] = reportWithScore(2)

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	cmdOld := c.OnSettled("old")
	msgOld := cmdOld().(analyzeResultMsg)
	_ = c.OnSettled("new") // newer call in flight owns Loading

	if c.Apply(msgOld) {
		t.Fatal("stale response was applied")
	}
	if !state.Loading {
		t.Fatal("stale discard cleared Loading owned by the newer call")
	}
	if state.Analysis != nil {
		t.Fatal("stale discard mutated analysis")
	}
}

func TestFailureKeepsLastGoodResult(t *testing.T) {
	client := newScriptedClient()
	client.reports["good"] = reportWithScore(3)
	client.errs["bad"] = &backend.StatusError{StatusCode: 400, Message: "Password too long."}

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	c.Apply(c.OnSettled("good")().(analyzeResultMsg))
	c.Apply(c.OnSettled("bad")().(analyzeResultMsg))

	if state.Err != "Password too long." {
		t.Fatalf("error = %q, want the backend's reason", state.Err)
	}
	if state.Analysis == nil || state.Analysis.Score != 3 {
		t.Fatalf("transient failure blanked the last good analysis: %+v", state.Analysis)
	}
	if state.Loading {
		t.Fatal("loading still set after failure applied")
	}
}

func TestUnstructuredFailureGetsGenericMessage(t *testing.T) {
	client := newScriptedClient()
	client.errs["x"] = errors.New("dial tcp: connection refused")

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	c.Apply(c.OnSettled("x")().(analyzeResultMsg))
	if state.Err != "Could not reach the analysis service." {
		t.Fatalf("error = %q, want generic message", state.Err)
	}
}

func TestEmptyInputResetsSynchronouslyAndInvalidatesInFlight(t *testing.T) {
	client := newScriptedClient()
	client.reports["abc"] = reportWithScore(2)

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	cmd := c.OnSettled("abc")
	msg := cmd().(analyzeResultMsg)

	if reset := c.OnSettled(""); reset != nil {
		t.Fatal("empty input issued a call")
	}
	if state.Loading || state.Analysis != nil || state.Advisory != nil || state.Err != "" {
		t.Fatalf("reset left state %+v", state)
	}
	if c.Apply(msg) {
		t.Fatal("response from before the reset was applied")
	}
	if state.Analysis != nil {
		t.Fatal("reset state was resurrected by a pre-reset response")
	}
}

func TestTokensOnlyIncrease(t *testing.T) {
	client := newScriptedClient()
	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	last := state.LatestToken
	for _, v := range []string{"a", "", "b", "c", ""} {
		c.OnSettled(v)
		if state.LatestToken <= last {
			t.Fatalf("token did not increase: %d -> %d", last, state.LatestToken)
		}
		last = state.LatestToken
	}
}

func TestOrderingGuaranteeAcrossManyReorderedCompletions(t *testing.T) {
	client := newScriptedClient()
	values := []string{"v1", "v2", "v3", "v4", "v5"}
	for i, v := range values {
		client.reports[v] = reportWithScore(i % 5)
	}

	state := &EvaluationState{}
	c := NewCoordinator(client, time.Second, state)

	msgs := make([]analyzeResultMsg, 0, len(values))
	for _, v := range values {
		msgs = append(msgs, c.OnSettled(v)().(analyzeResultMsg))
	}

	// completion order: v3, v5, v1, v4, v2
	for _, i := range []int{2, 4, 0, 3, 1} {
		c.Apply(msgs[i])
	}

	want := client.reports["v5"].Analysis
	if state.Analysis == nil || *state.Analysis != want {
		t.Fatalf("state reflects %+v, want the largest applied token's payload %+v", state.Analysis, want)
	}
}
