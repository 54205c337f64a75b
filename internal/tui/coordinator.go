package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Blackgod0/Passcode-manager/internal/backend"
)

// EvaluationState is the single source of truth for the current evaluation.
// One instance per session; mutated only by the coordinator's reset and
// apply paths.
type EvaluationState struct {
	Input       string
	LatestToken uint64
	Analysis    *backend.Analysis
	Advisory    *backend.Advisory
	Err         string
	Loading     bool
}

type analyzeResultMsg struct {
	token  uint64
	report backend.Report
	err    error
}

// AnalyzeClient is the scoring backend. *backend.Client satisfies it.
type AnalyzeClient interface {
	Analyze(ctx context.Context, password string) (backend.Report, error)
}

// Coordinator issues tagged evaluation calls for settled input and resolves
// races between overlapping calls by discarding stale results.
type Coordinator struct {
	client  AnalyzeClient
	timeout time.Duration
	state   *EvaluationState
}

func NewCoordinator(client AnalyzeClient, timeout time.Duration, state *EvaluationState) *Coordinator {
	return &Coordinator{client: client, timeout: timeout, state: state}
}

// OnSettled handles a settled input value. Empty input resets synchronously
// and issues no call; anything else mints a fresh token and starts an
// asynchronous evaluation tagged with it.
func (c *Coordinator) OnSettled(value string) tea.Cmd {
	if value == "" {
		c.Reset()
		return nil
	}

	c.state.LatestToken++
	token := c.state.LatestToken
	c.state.Loading = true
	c.state.Err = ""

	client, timeout := c.client, c.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		report, err := client.Analyze(ctx, value)
		return analyzeResultMsg{token: token, report: report, err: err}
	}
}

// Reset clears the evaluation synchronously. The token bump makes every
// in-flight call stale, so a late response cannot resurrect cleared state.
func (c *Coordinator) Reset() {
	c.state.LatestToken++
	c.state.Analysis = nil
	c.state.Advisory = nil
	c.state.Err = ""
	c.state.Loading = false
}

// Apply folds a finished evaluation into the state. Stale responses are
// discarded entirely, without touching Loading; the newer in-flight call owns
// that. Returns whether the message was applied.
func (c *Coordinator) Apply(msg analyzeResultMsg) bool {
	if msg.token != c.state.LatestToken {
		return false
	}
	c.state.Loading = false
	if msg.err != nil {
		// keep the last good analysis/advisory visible alongside the error
		c.state.Err = humanError(msg.err)
		return true
	}
	analysis := msg.report.Analysis
	c.state.Analysis = &analysis
	c.state.Advisory = msg.report.Advisory
	c.state.Err = ""
	return true
}

func humanError(err error) string {
	var se *backend.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return "Could not reach the analysis service."
}
