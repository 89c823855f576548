package editor

import (
	"os"
	"strings"

	"github.com/lixenwraith/qedit/render"
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

const (
	alertMinWidth  = 25
	alertMinHeight = 5

	inputMinWidth = 28
	inputHeight   = 6
)

// InputKind selects validation for the input dialog
type InputKind int

const (
	// InputAny accepts any text
	InputAny InputKind = iota
	// InputPath only confirms text naming an existing filesystem entry
	InputPath
)

// alertLines wraps the body against two thirds of the terminal width
func alertLines(body string, termW int) []string {
	twoThirds := termW * 2 / 3
	if twoThirds < 1 {
		twoThirds = 1
	}
	var out []string
	for _, l := range strings.Split(body, "\n") {
		if tui.RuneLen(l) > twoThirds {
			out = append(out, tui.WrapText(l, twoThirds)...)
		} else {
			out = append(out, l)
		}
	}
	return out
}

// alertSize computes the dialog box dimensions from the wrapped body
func alertSize(title string, lines []string) (w, h int) {
	bodyMax := 0
	for _, l := range lines {
		if n := tui.RuneLen(l); n > bodyMax {
			bodyMax = n
		}
	}

	w = alertMinWidth
	if bodyMax > alertMinWidth {
		w = bodyMax + 4 // left and right body padding
	}
	if tw := tui.RuneLen(title) + 2; tw > w {
		w = tw
	}
	h = alertMinHeight + len(lines)
	return w, h
}

// drawAlert renders the dialog box over the current frame
func (e *Editor) drawAlert(title string, lines []string) {
	termW, termH := e.screen.Size()
	w, h := alertSize(title, lines)
	ox := termW/2 - w/2
	oy := termH/2 - h/2

	body := e.screen.Region().Sub(ox, oy, w, h).Modal(tui.ModalOpts{
		Title:   title,
		TitleFg: render.Black,
		TitleBg: render.LightWhite,
		Bg:      render.White,
	})
	for i, l := range lines {
		body.TextCenter(1+i, l, render.Black, render.White, terminal.AttrNone)
	}

	body.TextCenter(len(lines)+2, " OK ", render.Black, render.LightWhite, terminal.AttrNone)
}

// Alert shows a blocking message dialog, Enter dismisses it. All other keys
// are discarded.
func (e *Editor) Alert(title, body string) {
	for {
		e.composeFrame()
		termW, _ := e.screen.Size()
		e.drawAlert(title, alertLines(body, termW))
		e.presentFrame(0, 0, false)

		ev := e.term.PollEvent()
		switch ev.Type {
		case terminal.EventResize:
			e.handleResize(ev.Width, ev.Height)
		case terminal.EventClosed, terminal.EventError:
			return
		case terminal.EventKey:
			if ev.Key == terminal.KeyEnter {
				return
			}
		}
	}
}

// inputConfirmDisabled reports whether the confirm affordance is held back
// for the current text
func inputConfirmDisabled(kind InputKind, text string) bool {
	if kind != InputPath {
		return false
	}
	_, err := os.Stat(text)
	return err != nil
}

// Input shows a blocking single-line text dialog. It returns the entered
// text and true on confirm, or false on cancel.
func (e *Editor) Input(title, initial string, kind InputKind) (string, bool) {
	field := tui.NewTextFieldState(initial)

	for {
		e.composeFrame()

		termW, termH := e.screen.Size()
		w := inputMinWidth
		if tw := tui.RuneLen(title) + 2; tw > w {
			w = tw
		}
		ox := termW/2 - w/2
		oy := termH/2 - inputHeight/2

		disabled := inputConfirmDisabled(kind, field.Value())

		body := e.screen.Region().Sub(ox, oy, w, inputHeight).Modal(tui.ModalOpts{
			Title:   title,
			TitleFg: render.Black,
			TitleBg: render.LightWhite,
			Bg:      render.White,
		})

		fieldW := w - 2
		field.AdjustScroll(fieldW - 2)
		inputRow := body.Sub(1, 1, fieldW, 1)
		inputRow.Fill(render.LightWhite)
		visible := string(field.Text[field.Scroll:])
		inputRow.Text(1, 0, visible, render.Black, render.LightWhite, terminal.AttrNone)

		affordances := body.Sub(1, 3, w-2, 1)
		affordances.Text(0, 0, "Cancel=ESCAPE", render.Black, render.White, terminal.AttrNone)
		if !disabled {
			affordances.TextRight(0, "OK=RETURN", render.Black, render.White, terminal.AttrNone)
		}

		cursorX := ox + 2 + (field.Cursor - field.Scroll)
		cursorY := oy + 2
		e.presentFrame(cursorX, cursorY, true)

		ev := e.term.PollEvent()
		switch ev.Type {
		case terminal.EventResize:
			e.handleResize(ev.Width, ev.Height)
			continue
		case terminal.EventClosed, terminal.EventError:
			return "", false
		case terminal.EventKey:
		default:
			continue
		}

		switch ev.Key {
		case terminal.KeyEnter:
			if disabled {
				e.bell.Ring()
				continue
			}
			return field.Value(), true
		case terminal.KeyEscape:
			return "", false
		default:
			field.HandleKey(ev.Key, ev.Rune, ev.Modifiers)
		}
	}
}
