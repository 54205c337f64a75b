// Package tui hosts the interactive session: a debounced password input, a
// race-free evaluation pipeline against the analysis backend, and an
// alternatives panel fed by the secure generator.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Blackgod0/Passcode-manager/internal/config"
	"github.com/Blackgod0/Passcode-manager/internal/genpass"
)

type keyMap struct {
	Generate key.Binding
	Copy     key.Binding
	UpDown   key.Binding
	Reveal   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Copy:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy selected")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select alternative")),
		Reveal:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "reveal/hide")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.UpDown, k.Reveal, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Generate, k.Copy, k.UpDown, k.Reveal, k.Quit}}
}

// App is the Bubble Tea model for one evaluation session.
type App struct {
	input textinput.Model
	keys  keyMap
	help  help.Model

	deb   *Debouncer
	coord *Coordinator
	state *EvaluationState

	gen       *genpass.Generator
	genLength int
	altCount  int

	// local alternatives, computed lazily when the backend supplies none and
	// cached until it supplies a non-empty list again
	localAlts []string
	altsBusy  bool
	altCursor int

	generated string
	status    string
	fatalErr  error

	width  int
	height int
}

// New wires a session from its collaborators. The backend base address lives
// inside client and gen; the model never sees it.
func New(cfg config.Config, client AnalyzeClient, gen *genpass.Generator) *App {
	input := textinput.New()
	input.Prompt = "Password: "
	input.Placeholder = "type a candidate password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	state := &EvaluationState{}
	altCount := cfg.Generator.Alternatives
	if altCount < 3 {
		altCount = 3
	}

	return &App{
		input:     input,
		keys:      newKeyMap(),
		help:      help.New(),
		deb:       NewDebouncer(cfg.UI.Debounce()),
		coord:     NewCoordinator(client, cfg.Backend.Timeout(), state),
		state:     state,
		gen:       gen,
		genLength: genpass.ClampLength(cfg.Generator.Length),
		altCount:  altCount,
	}
}

// FatalErr reports the error that terminated the session, if any. Checked by
// main after the program exits.
func (a *App) FatalErr() error {
	return a.fatalErr
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.deb.Stop()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Generate):
			return a, a.generateCmd()
		case key.Matches(msg, a.keys.Reveal):
			if a.input.EchoMode == textinput.EchoPassword {
				a.input.EchoMode = textinput.EchoNormal
			} else {
				a.input.EchoMode = textinput.EchoPassword
			}
			return a, nil
		case key.Matches(msg, a.keys.UpDown):
			a.moveAltCursor(msg.String())
			return a, nil
		case key.Matches(msg, a.keys.Copy):
			return a, a.copySelectedCmd()
		}
		return a, a.handleInput(msg)

	case debounceTickMsg:
		value, ok := a.deb.Resolve(msg)
		if !ok {
			return a, nil
		}
		return a, a.coord.OnSettled(value)

	case analyzeResultMsg:
		if !a.coord.Apply(msg) {
			return a, nil // stale by design
		}
		return a, a.ensureAlternatives()

	case alternativesMsg:
		a.altsBusy = false
		if msg.err != nil {
			// a failing secure source is the one non-recoverable condition
			a.fatalErr = msg.err
			return a, tea.Quit
		}
		a.localAlts = msg.passwords
		a.clampAltCursor()
		return a, nil

	case generatedMsg:
		if msg.err != nil {
			a.fatalErr = msg.err
			return a, tea.Quit
		}
		a.generated = msg.password
		a.status = "Generated a fresh password."
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.status = "Clipboard unavailable."
		} else {
			a.status = "Copied to clipboard."
		}
		return a, nil
	}

	return a, a.handleInput(msg)
}

// handleInput forwards a message to the text input and reacts to value
// changes: empty input resets synchronously, everything else goes through
// the debouncer.
func (a *App) handleInput(msg tea.Msg) tea.Cmd {
	before := a.input.Value()
	var inputCmd tea.Cmd
	a.input, inputCmd = a.input.Update(msg)
	value := a.input.Value()
	if value == before {
		return inputCmd
	}

	a.state.Input = value
	a.status = ""
	if value == "" {
		// immediate, not debounced, and independent of in-flight calls
		a.coord.Reset()
	}
	// Observe even the empty value so any pending tick is superseded.
	return tea.Batch(inputCmd, a.deb.Observe(value))
}

// ensureAlternatives lazily fills the alternatives panel after an applied
// evaluation. Backend alternatives win; otherwise a cached local batch is
// reused until the backend supplies a non-empty list.
func (a *App) ensureAlternatives() tea.Cmd {
	if a.state.Advisory != nil && len(a.state.Advisory.Alternatives) > 0 {
		a.localAlts = nil
		a.clampAltCursor()
		return nil
	}
	if a.state.Analysis == nil || len(a.localAlts) > 0 || a.altsBusy {
		return nil
	}
	a.altsBusy = true
	gen, length, count := a.gen, a.genLength, a.altCount
	return func() tea.Msg {
		batch, err := gen.GenerateBatch(context.Background(), length, count)
		return alternativesMsg{passwords: batch, err: err}
	}
}

func (a *App) generateCmd() tea.Cmd {
	gen, length := a.gen, a.genLength
	return func() tea.Msg {
		pwd, err := gen.Generate(context.Background(), length)
		return generatedMsg{password: pwd, err: err}
	}
}

// alternatives returns what the panel currently shows.
func (a *App) alternatives() []string {
	if a.state.Advisory != nil && len(a.state.Advisory.Alternatives) > 0 {
		return a.state.Advisory.Alternatives
	}
	return a.localAlts
}

func (a *App) moveAltCursor(dir string) {
	alts := a.alternatives()
	if len(alts) == 0 {
		return
	}
	if dir == "up" {
		a.altCursor--
	} else {
		a.altCursor++
	}
	a.clampAltCursor()
}

func (a *App) clampAltCursor() {
	alts := a.alternatives()
	if len(alts) == 0 {
		a.altCursor = 0
		return
	}
	if a.altCursor < 0 {
		a.altCursor = 0
	}
	if a.altCursor >= len(alts) {
		a.altCursor = len(alts) - 1
	}
}

func (a *App) copySelectedCmd() tea.Cmd {
	var text string
	if alts := a.alternatives(); len(alts) > 0 {
		text = alts[a.altCursor]
	} else if a.generated != "" {
		text = a.generated
	} else {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
