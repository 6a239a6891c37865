package tui

// Key bindings, matched against tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyP        = "p"
	keyN        = "n"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyEnter    = "enter"
	keySpace    = " "
	keySpaceAlt = "space"
)

// helpText is shown under the interactive list.
const helpText = "←/p previous • →/n next • tab focus • enter select • q quit"
