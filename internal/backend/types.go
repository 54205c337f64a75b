package backend

// Analysis is the deterministic scoring payload computed by the backend.
// The client never synthesizes one locally.
type Analysis struct {
	Score   int     `json:"score"`
	Entropy float64 `json:"entropy"`
	Length  int     `json:"length"`
}

// Advisory is the optional human-readable payload attached to an analysis.
type Advisory struct {
	Classification string   `json:"classification"`
	Explanation    string   `json:"explanation"`
	Suggestions    []string `json:"suggestions"`
	Alternatives   []string `json:"alternatives"`
}

// Report pairs an analysis with its advisory, if the backend produced one.
type Report struct {
	Analysis Analysis  `json:"analysis"`
	Advisory *Advisory `json:"ai"`
}
