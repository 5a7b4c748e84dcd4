package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/1broseidon/winfocus/internal/config"
	"github.com/1broseidon/winfocus/internal/focus"
	"github.com/1broseidon/winfocus/internal/logging"
	"github.com/1broseidon/winfocus/internal/platform"
)

// newBackend opens the native window system. Tests replace it.
var newBackend = platform.NewNative

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "focus":
		os.Exit(runFocus(os.Args[2:], os.Stdout, os.Stderr))
	case "resolve":
		os.Exit(runResolve(os.Args[2:], os.Stdout, os.Stderr))
	case "complete":
		os.Exit(runComplete(os.Args[2:], os.Stdout, os.Stderr))
	case "list":
		os.Exit(runList(os.Args[2:], os.Stdout, os.Stderr))
	case "pick":
		os.Exit(runPick(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winfocus <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  focus <query>       Bring the matching window to the front")
	fmt.Fprintln(w, "  resolve <query>     Print the handle a query resolves to")
	fmt.Fprintln(w, "  complete <partial>  Print ranked window suggestions")
	fmt.Fprintln(w, "  list                List titled top-level windows")
	fmt.Fprintln(w, "  pick                Choose a window interactively and focus it")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Queries are tried as a window handle, then as 'title (handle)',")
	fmt.Fprintln(w, "then as a case-sensitive regular expression over window titles.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winfocus <command> --help' for command-specific options.")
}

// session is the per-invocation state shared by subcommands.
type session struct {
	config *config.Config
	logger *logging.Logger
	engine *focus.Engine

	closeBackend func()
}

// openSession loads configuration from path (default location when empty),
// sets up logging and connects to the window system.
func openSession(path string) (*session, error) {
	res, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		log.Printf("Warning: failed to open activity log: %v", err)
		logCfg.FilePath = ""
		logger, _ = logging.New(logCfg)
	}

	backend, closeBackend, err := newBackend()
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to connect to window system: %w", err)
	}

	engine := focus.NewEngine(backend, focus.Options{
		MaxResults: cfg.Completion.MaxResults,
		Logger:     logger,
	})

	return &session{
		config:       cfg,
		logger:       logger,
		engine:       engine,
		closeBackend: closeBackend,
	}, nil
}

func (s *session) Close() {
	if s.closeBackend != nil {
		s.closeBackend()
	}
	s.logger.Close()
}

// printHints writes "did you mean" lines for a query that matched nothing.
func (s *session) printHints(w io.Writer, query string) {
	similar := s.engine.Suggest(query, s.config.Completion.SuggestOnMiss)
	if len(similar) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, win := range similar {
		fmt.Fprintf(w, "  %s\n", focus.FormatDisplay(win.Title, win.Handle))
	}
}
