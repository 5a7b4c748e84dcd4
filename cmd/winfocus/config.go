package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/winfocus/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  winfocus config validate [--path PATH]")
	fmt.Fprintln(w, "  winfocus config print [--path PATH] [--defaults]")
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(os.Stderr)
		return 2
	}
	return runConfigCommand(args[0], args[1:], os.Stdout, os.Stderr)
}

func runConfigCommand(cmd string, args []string, stdout, stderr io.Writer) int {
	switch cmd {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
		if err := fs.Parse(args); err != nil {
			return 2
		}

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if res.Loaded {
			fmt.Fprintf(stdout, "config: ok (%s)\n", res.Path)
		} else {
			fmt.Fprintln(stdout, "config: ok (defaults, no file)")
		}
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			if res.Loaded {
				fmt.Fprintf(stdout, "# source: %s\n", res.Path)
			}
			cfg = res.Config
		}

		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config command: %s\n\n", cmd)
		printConfigUsage(stderr)
		return 2
	}
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}
