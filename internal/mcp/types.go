package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes a single titled top-level window.
type WindowInfo struct {
	Handle  uint64 `json:"handle"`
	Title   string `json:"title"`
	Display string `json:"display"`
	Active  bool   `json:"active,omitempty"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ResolveWindowInput is the input for the resolve_window tool.
type ResolveWindowInput struct {
	Query string `json:"query" jsonschema:"Window handle, display string such as 'Editor (42)', or a regular expression matched against titles"`
}

// ResolveWindowOutput is the output for the resolve_window tool.
type ResolveWindowOutput struct {
	Found    bool     `json:"found"`
	Handle   uint64   `json:"handle,omitempty"`
	Strategy string   `json:"strategy,omitempty"`
	Hints    []string `json:"hints,omitempty"`
}

// CompleteWindowInput is the input for the complete_window tool.
type CompleteWindowInput struct {
	Partial string `json:"partial" jsonschema:"Partial title to complete; may contain * and ? wildcards"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of candidates to return (default: configured max_results)"`
}

// CandidateInfo is one ranked completion candidate.
type CandidateInfo struct {
	Handle  uint64 `json:"handle"`
	Title   string `json:"title"`
	Display string `json:"display"`
	Score   int    `json:"score"`
}

// CompleteWindowOutput is the output for the complete_window tool.
type CompleteWindowOutput struct {
	Candidates []CandidateInfo `json:"candidates"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	Query string `json:"query" jsonschema:"Window handle, display string such as 'Editor (42)', or a regular expression matched against titles"`
}

// FocusWindowOutput is the output for the focus_window tool.
type FocusWindowOutput struct {
	Found    bool     `json:"found"`
	Handle   uint64   `json:"handle,omitempty"`
	Strategy string   `json:"strategy,omitempty"`
	Hints    []string `json:"hints,omitempty"`
}
