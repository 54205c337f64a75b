package tui

type generatedMsg struct {
	password string
	err      error
}

type alternativesMsg struct {
	passwords []string
	err       error
}

type copiedMsg struct {
	err error
}
