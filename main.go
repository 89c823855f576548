// QEdit is a terminal text editor with tabbed viewports, a mnemonic menu
// bar, and diff-aware rendering.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/qedit/audio"
	"github.com/lixenwraith/qedit/buffer"
	"github.com/lixenwraith/qedit/editor"
	"github.com/lixenwraith/qedit/terminal"
)

// handleCrash resets the terminal and prints the panic with its stack trace
func handleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

func run() error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Fini()

	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	ed := editor.New(term, audio.NewBell())

	// Zero or one positional arg: the file to open. A startup load failure
	// alerts and falls back to an empty buffer.
	var loadErr error
	if len(os.Args) > 1 {
		loadErr = ed.OpenFile(os.Args[1])
	}
	if ed.Manager().Empty() {
		ed.OpenBuffer(buffer.New())
	}
	if loadErr != nil {
		ed.Alert("Open failed", loadErr.Error())
	}

	return ed.Run()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
