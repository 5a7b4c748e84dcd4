package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/1broseidon/winfocus/internal/focus"
)

func runFocus(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("focus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfocus focus [--path PATH] <query>")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Bring the window matching <query> to the front, restoring it if")
		fmt.Fprintln(stderr, "minimized. Exits 1 when no window matches.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	query, ok := queryArg(fs)
	if !ok {
		fmt.Fprintln(stderr, "focus requires <query>")
		fs.Usage()
		return 2
	}

	s, err := openSession(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer s.Close()

	res := s.engine.Resolve(query)
	handle, found := res.Ok()
	if !found {
		fmt.Fprintf(stderr, "No window matches %q\n", query)
		s.printHints(stderr, query)
		return 1
	}
	if err := s.engine.BringToFront(handle); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runResolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
	verbose := fs.Bool("v", false, "Also print the strategy that matched")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfocus resolve [--path PATH] [-v] <query>")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Print the handle of the window matching <query> without focusing it.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	query, ok := queryArg(fs)
	if !ok {
		fmt.Fprintln(stderr, "resolve requires <query>")
		fs.Usage()
		return 2
	}

	s, err := openSession(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer s.Close()

	res := s.engine.Resolve(query)
	if !res.Found {
		fmt.Fprintf(stderr, "No window matches %q\n", query)
		s.printHints(stderr, query)
		return 1
	}
	if *verbose {
		fmt.Fprintf(stdout, "%d\t%s\n", res.Handle, res.Strategy)
	} else {
		fmt.Fprintf(stdout, "%d\n", res.Handle)
	}
	return 0
}

func runComplete(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
	limit := fs.Int("limit", 0, "Maximum number of suggestions (0 = configured max_results)")
	scores := fs.Bool("scores", false, "Prefix each suggestion with its score")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfocus complete [--path PATH] [--limit N] [--scores] <partial>")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Print windows matching <partial>, best first, one 'title (handle)'")
		fmt.Fprintln(stderr, "per line. Each line can be passed back to 'winfocus focus'.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *limit < 0 {
		fmt.Fprintln(stderr, "--limit must be >= 0")
		return 2
	}
	partial, ok := queryArg(fs)
	if !ok {
		fmt.Fprintln(stderr, "complete requires <partial>")
		fs.Usage()
		return 2
	}

	s, err := openSession(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer s.Close()

	candidates := s.engine.Complete(partial)
	if *limit > 0 && len(candidates) > *limit {
		candidates = candidates[:*limit]
	}
	printCandidates(stdout, candidates, *scores)
	return 0
}

func printCandidates(w io.Writer, candidates []focus.Candidate, scores bool) {
	for _, c := range candidates {
		if scores {
			fmt.Fprintf(w, "%d\t%s\n", c.Score, c.Display())
		} else {
			fmt.Fprintln(w, c.Display())
		}
	}
}

func runList(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
	jsonOut := fs.Bool("json", false, "Output JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfocus list [--path PATH] [--json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "List titled top-level windows in enumeration order.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	s, err := openSession(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer s.Close()

	if err := printWindows(stdout, s.engine.Windows(), *jsonOut); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func printWindows(w io.Writer, windows []focus.WindowRecord, jsonOut bool) error {
	if jsonOut {
		if windows == nil {
			windows = []focus.WindowRecord{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(windows)
	}
	for _, win := range windows {
		fmt.Fprintf(w, "%d\t%s\n", win.Handle, win.Title)
	}
	return nil
}

// queryArg joins the remaining arguments so unquoted multi-word titles
// still form a single query.
func queryArg(fs *flag.FlagSet) (string, bool) {
	if fs.NArg() == 0 {
		return "", false
	}
	query := strings.Join(fs.Args(), " ")
	if query == "" {
		return "", false
	}
	return query, true
}
