package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfocus/internal/focus"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows := s.engine.Windows()
	active, hasActive := s.engine.ActiveWindow()
	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowInfo{
			Handle:  uint64(w.Handle),
			Title:   w.Title,
			Display: focus.FormatDisplay(w.Title, w.Handle),
			Active:  hasActive && w.Handle == active,
		})
	}
	s.logger.Debugf("list_windows: %d windows", len(out.Windows))
	return nil, out, nil
}

func (s *Server) handleResolveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolveWindowInput) (*mcpsdk.CallToolResult, ResolveWindowOutput, error) {
	res := s.engine.Resolve(args.Query)
	if !res.Found {
		return nil, ResolveWindowOutput{Hints: s.hints(args.Query)}, nil
	}
	return nil, ResolveWindowOutput{
		Found:    true,
		Handle:   uint64(res.Handle),
		Strategy: res.Strategy.String(),
	}, nil
}

func (s *Server) handleCompleteWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CompleteWindowInput) (*mcpsdk.CallToolResult, CompleteWindowOutput, error) {
	if args.Limit < 0 {
		return nil, CompleteWindowOutput{}, fmt.Errorf("limit must be >= 0")
	}

	candidates := s.engine.Complete(args.Partial)
	if args.Limit > 0 && len(candidates) > args.Limit {
		candidates = candidates[:args.Limit]
	}

	out := CompleteWindowOutput{Candidates: make([]CandidateInfo, 0, len(candidates))}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, CandidateInfo{
			Handle:  uint64(c.Handle),
			Title:   c.Title,
			Display: c.Display(),
			Score:   c.Score,
		})
	}
	return nil, out, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, FocusWindowOutput, error) {
	res := s.engine.FocusWindow(args.Query)
	if !res.Found {
		hints := s.hints(args.Query)
		msg := fmt.Sprintf("No window matches %q", args.Query)
		if len(hints) > 0 {
			msg += fmt.Sprintf("; did you mean %q?", hints[0])
		}
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		}, FocusWindowOutput{Hints: hints}, nil
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: fmt.Sprintf("Focused window %d (%s match)", res.Handle, res.Strategy)},
		},
	}, FocusWindowOutput{
		Found:    true,
		Handle:   uint64(res.Handle),
		Strategy: res.Strategy.String(),
	}, nil
}

// hints returns display strings for windows resembling query.
func (s *Server) hints(query string) []string {
	n := s.config.Completion.SuggestOnMiss
	if n <= 0 {
		return nil
	}
	similar := s.engine.Suggest(query, n)
	if len(similar) == 0 {
		return nil
	}
	out := make([]string, 0, len(similar))
	for _, w := range similar {
		out = append(out, focus.FormatDisplay(w.Title, w.Handle))
	}
	return out
}
