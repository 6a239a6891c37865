package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the list is rendered.
type OutputMode int

const (
	// OutputModePlain renders unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled renders a single styled page with Lip Gloss.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// defaultTerminalWidth is used when the terminal size cannot be read.
const defaultTerminalWidth = 80

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ModeInputs holds everything output mode detection depends on.
type ModeInputs struct {
	ForcePlain bool
	NoColor    bool
	StdinTTY   bool
	StdoutTTY  bool
}

// ResolveOutputMode picks the output mode for the given inputs.
// Plain wins over everything; interactive needs both stdin and stdout on a
// terminal; styled needs stdout on a terminal.
func ResolveOutputMode(in ModeInputs) OutputMode {
	switch {
	case in.ForcePlain, in.NoColor, !in.StdoutTTY:
		return OutputModePlain
	case in.StdinTTY:
		return OutputModeInteractive
	default:
		return OutputModeStyled
	}
}

// DetectOutputMode inspects the process terminals and NO_COLOR.
func DetectOutputMode(forcePlain, noColor bool) OutputMode {
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return ResolveOutputMode(ModeInputs{
		ForcePlain: forcePlain,
		NoColor:    noColor || noColorEnv,
		StdinTTY:   term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY:  term.IsTerminal(int(os.Stdout.Fd())),
	})
}

// TerminalWidth returns the stdout terminal width, or 80 when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
