package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/winfocus/internal/focus"
	"github.com/1broseidon/winfocus/internal/palette"
	"github.com/1broseidon/winfocus/internal/tui"
)

func runPick(args []string) int {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winfocus/config.yaml)")
	usePalette := fs.Bool("palette", false, "Use a launcher (rofi, fuzzel, wofi, dmenu) instead of the terminal picker")
	printOnly := fs.Bool("print", false, "Print the chosen window instead of focusing it")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winfocus pick [--path PATH] [--palette] [--print] [initial]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Choose a window interactively and bring it to the front.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "The terminal picker re-ranks windows as you type. With --palette the")
		fmt.Fprintln(os.Stderr, "launcher configured by palette_backend is used instead.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings (rofi only):")
		fmt.Fprintln(os.Stderr, "  Enter      - Focus window")
		fmt.Fprintln(os.Stderr, "  Alt+Enter  - Print 'title (handle)' without focusing")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	initial, _ := queryArg(fs)

	s, err := openSession(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	var display string
	alternate := *printOnly
	if *usePalette {
		backend, err := palette.NewBackend(s.config.PaletteBackend)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if setter, ok := backend.(interface{ SetFuzzyMatching(bool) }); ok {
			setter.SetFuzzyMatching(s.config.PaletteFuzzyMatching)
		}

		windows := s.engine.Windows()
		if initial != "" {
			matches := s.engine.Complete(initial)
			windows = make([]focus.WindowRecord, 0, len(matches))
			for _, c := range matches {
				windows = append(windows, c.Record())
			}
		}
		if len(windows) == 0 {
			fmt.Fprintln(os.Stderr, "No windows to pick from")
			return 1
		}

		active, _ := s.engine.ActiveWindow()
		pick, err := palette.PickWindow(backend, windows, palette.PickOptions{
			Prompt:  "window",
			Message: palette.PickMessage(len(windows), initial),
			Active:  active,
		})
		if err != nil {
			if errors.Is(err, palette.ErrCancelled) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		display = pick.Display
		alternate = alternate || pick.Alternate
	} else {
		c, err := tui.Pick(s.engine, initial)
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		display = c.Display()
	}

	if alternate {
		fmt.Println(display)
		return 0
	}

	// The window may have closed while the picker was open.
	handle, found := s.engine.Resolve(display).Ok()
	if !found {
		fmt.Fprintf(os.Stderr, "Window %q is gone\n", display)
		return 1
	}
	if err := s.engine.BringToFront(handle); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
