package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolveOutputMode covers the detection matrix.
func TestResolveOutputMode(t *testing.T) {
	tests := []struct {
		name string
		in   ModeInputs
		want OutputMode
	}{
		{name: "full terminal", in: ModeInputs{StdinTTY: true, StdoutTTY: true}, want: OutputModeInteractive},
		{name: "piped stdin", in: ModeInputs{StdinTTY: false, StdoutTTY: true}, want: OutputModeStyled},
		{name: "piped stdout", in: ModeInputs{StdinTTY: true, StdoutTTY: false}, want: OutputModePlain},
		{name: "forced plain", in: ModeInputs{ForcePlain: true, StdinTTY: true, StdoutTTY: true}, want: OutputModePlain},
		{name: "no color", in: ModeInputs{NoColor: true, StdinTTY: true, StdoutTTY: true}, want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOutputMode(tt.in))
		})
	}
}

// TestDetectOutputMode_Plain verifies forced plain needs no terminal.
func TestDetectOutputMode_Plain(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false))
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false))
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(42).String())
}

func TestTerminalWidth(t *testing.T) {
	assert.Positive(t, TerminalWidth())
}
