// Package editor implements the interactive front-end: viewports over text
// buffers, the menu bar state machine, blocking dialogs, and the main loop.
package editor

import (
	"fmt"
	"os"

	"github.com/lixenwraith/qedit/audio"
	"github.com/lixenwraith/qedit/buffer"
	"github.com/lixenwraith/qedit/render"
	"github.com/lixenwraith/qedit/terminal"
)

// Version is the editor version reported by Help > About
const Version = "0.1"

const aboutText = "QEdit Text Editor\nVersion " + Version + "\nCopyright © 2019 Luke Wilson.\nLicensed under the MIT License."

// Editor owns the whole UI: terminal, back grid, viewport manager, and menu
// bar. Everything runs on one goroutine, the only suspension point is the
// blocking event read.
type Editor struct {
	term   terminal.Terminal
	screen *render.Screen
	mgr    *Manager
	bar    *MenuBar
	bell   *audio.Bell

	inMenuMode bool
	quit       bool
	lastTitle  string
}

// New creates an editor over an initialized terminal
func New(term terminal.Terminal, bell *audio.Bell) *Editor {
	w, h := term.Size()
	return &Editor{
		term:   term,
		screen: render.NewScreen(w, h),
		mgr:    NewManager(0, 1, w, h-1),
		bar:    DefaultMenuBar(),
		bell:   bell,
	}
}

// OpenBuffer opens a viewport over buf and focuses it
func (e *Editor) OpenBuffer(buf *buffer.Buffer) {
	e.mgr.Focus = e.mgr.NewViewport(buf)
}

// OpenFile loads path into a new focused viewport
func (e *Editor) OpenFile(path string) error {
	buf, err := buffer.Load(path)
	if err != nil {
		return err
	}
	e.OpenBuffer(buf)
	return nil
}

// Manager exposes the viewport manager, used by startup and tests
func (e *Editor) Manager() *Manager {
	return e.mgr
}

// InMenuMode reports the current input mode
func (e *Editor) InMenuMode() bool {
	return e.inMenuMode
}

// composeFrame renders the full frame into the back grid and returns the
// hardware cursor cell
func (e *Editor) composeFrame() (cursorX, cursorY int, showCursor bool) {
	w, h := e.screen.Size()
	r := e.screen.Region()

	// Shaded backdrop below the menu bar
	r.Sub(0, 1, w, h-1).FillRune('▒', render.LightWhite, render.Black)

	e.mgr.Resize(0, 1, w, h-1)
	editFocus := !e.inMenuMode && !e.bar.IsOpen()
	cursorX, cursorY, showCursor = e.mgr.Render(r, editFocus)

	e.bar.Render(r, e.inMenuMode || e.bar.IsOpen())
	e.bar.RenderOpen(r)

	if !editFocus {
		showCursor = false
	}
	return cursorX, cursorY, showCursor
}

// presentFrame flushes the back grid and positions the cursor
func (e *Editor) presentFrame(cursorX, cursorY int, showCursor bool) {
	w, h := e.screen.Size()
	e.term.Flush(e.screen.Cells(), w, h)
	if showCursor {
		e.term.MoveCursor(cursorX, cursorY)
	}
	e.term.SetCursorVisible(showCursor)
}

// handleResize clears the physical screen and resizes the back grid, the
// next compose reflows everything
func (e *Editor) handleResize(w, h int) {
	e.term.Clear(render.Black)
	e.screen.Resize(w, h)
}

// Run drives the main loop until quit
func (e *Editor) Run() error {
	for !e.quit {
		if e.mgr.Empty() {
			e.inMenuMode = true
		}

		cx, cy, show := e.composeFrame()
		e.presentFrame(cx, cy, show)
		if v := e.mgr.Focused(); v != nil && v.DisplayName() != e.lastTitle {
			e.lastTitle = v.DisplayName()
			e.term.SetTitle(e.lastTitle)
		}

		ev := e.term.PollEvent()
		switch ev.Type {
		case terminal.EventResize:
			e.handleResize(ev.Width, ev.Height)
			continue
		case terminal.EventClosed:
			return nil
		case terminal.EventError:
			return fmt.Errorf("input: %w", ev.Err)
		case terminal.EventKey:
		default:
			continue
		}

		switch {
		case ev.Key == terminal.KeyEscape:
			e.inMenuMode = !e.inMenuMode
		case ev.Key == terminal.KeyCtrlL:
			e.term.Sync()
		case ev.Key == terminal.KeyCtrlQ && e.inMenuMode:
			e.quit = true
		case ev.Key == terminal.KeyTab && e.inMenuMode:
			e.mgr.NextTab()
		case !e.inMenuMode:
			if msg := e.mgr.HandleKey(ev); msg != "" {
				e.Alert("Unhandled key event", msg)
			}
		default:
			w, _ := e.screen.Size()
			if e.bar.HandleBarKey(ev, w) {
				if action := e.runOpenMenus(); action != ActionNone {
					e.dispatch(action)
					if !e.mgr.Empty() {
						e.inMenuMode = false
					}
				}
			}
		}
	}
	return nil
}

// runOpenMenus blocks while dropdown levels are open, returning the chosen
// action or ActionNone on cancel
func (e *Editor) runOpenMenus() ActionKind {
	for e.bar.IsOpen() {
		cx, cy, show := e.composeFrame()
		e.presentFrame(cx, cy, show)

		ev := e.term.PollEvent()
		switch ev.Type {
		case terminal.EventResize:
			e.handleResize(ev.Width, ev.Height)
			continue
		case terminal.EventClosed, terminal.EventError:
			e.bar.Close()
			return ActionNone
		case terminal.EventKey:
		default:
			continue
		}

		if action, _ := e.bar.HandleOpenKey(ev); action != ActionNone {
			return action
		}
	}
	return ActionNone
}

// dispatch executes a completed menu action. Filesystem failures surface as
// alerts, never as aborts.
func (e *Editor) dispatch(action ActionKind) {
	switch action {
	case ActionClose:
		if e.mgr.Empty() {
			e.quit = true
		} else {
			e.mgr.CloseFocused()
		}

	case ActionNew:
		e.OpenBuffer(buffer.New())

	case ActionSave:
		v := e.mgr.Focused()
		if v == nil || !v.Buf.Modified() {
			return
		}
		if v.Buf.FileName() == "" {
			e.saveAs(v)
			return
		}
		if err := v.Buf.Save(); err != nil {
			e.Alert("Save failed", err.Error())
		}

	case ActionSaveAs:
		if v := e.mgr.Focused(); v != nil {
			e.saveAs(v)
		}

	case ActionOpen:
		path, ok := e.Input("Open file", "", InputPath)
		if !ok {
			return
		}
		info, err := os.Stat(path)
		if err != nil {
			e.Alert("Open failed", err.Error())
			return
		}
		if info.IsDir() {
			e.Alert("Only accepts files", fmt.Sprintf("You entered %q, which is a directory.", path))
			return
		}
		buf, err := buffer.Load(path)
		if err != nil {
			e.Alert("Open failed", err.Error())
			return
		}
		e.OpenBuffer(buf)

	case ActionUndo:
		if v := e.mgr.Focused(); v != nil {
			v.Buf.Undo()
		}

	case ActionRedo:
		if v := e.mgr.Focused(); v != nil {
			v.Buf.Redo()
		}

	case ActionAbout:
		e.Alert("About QEdit", aboutText)

	case ActionScripted:
		e.Alert("Unimplemented action selected", action.String())
	}
}

// saveAs prompts for a path and rebinds the viewport's buffer to the saved
// file. Returns false when the user cancelled.
func (e *Editor) saveAs(v *Viewport) bool {
	name := v.DisplayName()
	path, ok := e.Input(fmt.Sprintf("Save file '%s'", name), "./"+name, InputAny)
	if !ok {
		return false
	}
	if err := v.Buf.SaveAs(path); err != nil {
		e.Alert("Save failed", err.Error())
		return false
	}
	v.Title = v.DisplayName()
	return true
}
