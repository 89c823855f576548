package editor

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/qedit/render"
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

// ActionKind identifies a menu action to dispatch
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionNew
	ActionSave
	ActionSaveAs
	ActionOpen
	ActionUndo
	ActionRedo
	ActionAbout
	ActionScripted
)

// String returns the action name for diagnostics
func (a ActionKind) String() string {
	switch a {
	case ActionClose:
		return "Close"
	case ActionNew:
		return "New"
	case ActionSave:
		return "Save"
	case ActionSaveAs:
		return "SaveAs"
	case ActionOpen:
		return "Open"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionAbout:
		return "About"
	case ActionScripted:
		return "Scripted"
	}
	return "None"
}

type childKind int

const (
	childSeparator childKind = iota
	childAction
	childSubMenu
)

// MenuChild is one entry of a menu: a separator, an action, or a nested menu.
// Labels mark their mnemonic with '_' before the letter.
type MenuChild struct {
	Label  string
	kind   childKind
	Action ActionKind
	Sub    *Menu
}

// Separator creates a horizontal rule entry
func Separator() MenuChild {
	return MenuChild{kind: childSeparator}
}

// Action creates an action entry
func Action(label string, kind ActionKind) MenuChild {
	return MenuChild{Label: label, kind: childAction, Action: kind}
}

// SubMenu creates a nested menu entry
func SubMenu(label string, m *Menu) MenuChild {
	return MenuChild{Label: label, kind: childSubMenu, Sub: m}
}

// Menu is a vertical list of children rendered as a dropdown box
type Menu struct {
	Children []MenuChild
}

// visibleLabel strips the mnemonic marker
func visibleLabel(label string) string {
	return strings.Replace(label, "_", "", 1)
}

// mnemonic returns the lowercased letter following '_', 0 when unmarked
func mnemonic(label string) rune {
	runes := []rune(label)
	for i, r := range runes {
		if r == '_' && i+1 < len(runes) {
			return unicode.ToLower(runes[i+1])
		}
	}
	return 0
}

// Width returns the rendered box width: 2 + the longest visible label.
// Panics on a menu with no selectable children, such a menu can never
// yield an action and is a construction error.
func (m *Menu) Width() int {
	selectable := false
	longest := 0
	for _, c := range m.Children {
		if c.kind != childSeparator {
			selectable = true
		}
		if n := tui.DisplayWidth(visibleLabel(c.Label)); n > longest {
			longest = n
		}
	}
	if !selectable {
		panic("menu has no selectable children")
	}
	return 2 + longest
}

// Height returns the rendered box height including borders
func (m *Menu) Height() int {
	return len(m.Children) + 2
}

// next returns the following selectable index with wraparound
func (m *Menu) next(i int) int {
	for {
		i++
		if i >= len(m.Children) {
			i = 0
		}
		if m.Children[i].kind != childSeparator {
			return i
		}
	}
}

// previous returns the preceding selectable index with wraparound
func (m *Menu) previous(i int) int {
	for {
		i--
		if i < 0 {
			i = len(m.Children) - 1
		}
		if m.Children[i].kind != childSeparator {
			return i
		}
	}
}

// childByMnemonic returns the index of the non-separator child matching r
// case-insensitively, -1 when none matches
func (m *Menu) childByMnemonic(r rune) int {
	r = unicode.ToLower(r)
	for i, c := range m.Children {
		if c.kind == childSeparator {
			continue
		}
		if mnemonic(c.Label) == r {
			return i
		}
	}
	return -1
}

// Render draws the dropdown box with the given selection highlighted
func (m *Menu) Render(screen tui.Region, x, y, selection int) {
	width := m.Width()
	box := screen.Sub(x, y, width, m.Height())
	box.Fill(render.White)
	box.BoxBg(tui.LineSingle, render.Black, render.White)

	for i, c := range m.Children {
		row := i + 1
		fg, bg := render.Black, render.White
		if i == selection {
			fg, bg = render.White, render.Black
		}

		if c.kind == childSeparator {
			box.Sub(1, row, width-2, 1).HLine(0, tui.LineSingle, render.Black, render.White)
			continue
		}

		col := 1
		runes := []rune(c.Label)
		for j := 0; j < len(runes); j++ {
			if runes[j] == '_' && j+1 < len(runes) {
				j++
				box.Cell(col, row, runes[j], render.LightWhite, bg, terminal.AttrBold)
			} else {
				box.Cell(col, row, runes[j], fg, bg, terminal.AttrNone)
			}
			col++
		}
		for ; col < width-1; col++ {
			box.Cell(col, row, ' ', fg, bg, terminal.AttrNone)
		}
	}
}

// menuLevel is one open dropdown in the menu stack
type menuLevel struct {
	menu      *Menu
	x         int
	selection int
}

// MenuBar is the horizontal menu list on the top row. While menus are open
// it holds an explicit stack of dropdown levels, the innermost level
// consumes events.
type MenuBar struct {
	Selection int
	Menus     []NamedMenu
	open      []menuLevel
}

// NamedMenu pairs a bar title with its dropdown
type NamedMenu struct {
	Label string
	Menu  *Menu
}

// helpLabel marks the menu pinned to the right edge of the bar
const helpLabel = "_Help"

// Render draws the bar across the top row of the region
func (b *MenuBar) Render(screen tui.Region, focused bool) {
	barW := screen.W
	bar := screen.Sub(0, 0, barW, 1)
	bar.Fill(render.White)

	x := 1
	for i, nm := range b.Menus {
		label := visibleLabel(nm.Label)
		itemX := x
		if nm.Label == helpLabel {
			itemX = barW - tui.DisplayWidth(label) - 2
		} else {
			x += tui.DisplayWidth(label) + 2
		}

		fg, bg := render.Black, render.LightWhite
		if focused && i == b.Selection {
			fg, bg = render.LightWhite, render.Black
		}

		bar.Cell(itemX, 0, ' ', fg, bg, terminal.AttrNone)
		col := itemX + 1
		runes := []rune(nm.Label)
		for j := 0; j < len(runes); j++ {
			if runes[j] == '_' && j+1 < len(runes) {
				j++
				bar.Cell(col, 0, runes[j], fg, bg, terminal.AttrUnderline)
			} else {
				bar.Cell(col, 0, runes[j], fg, bg, terminal.AttrNone)
			}
			col++
		}
		bar.Cell(col, 0, ' ', fg, bg, terminal.AttrNone)
	}
}

// RenderOpen draws every open dropdown level under the bar
func (b *MenuBar) RenderOpen(screen tui.Region) {
	for _, lvl := range b.open {
		lvl.menu.Render(screen, lvl.x, 1, lvl.selection)
	}
}

// originX returns the bar column under the title of menu idx
func (b *MenuBar) originX(idx, barW int) int {
	if b.Menus[idx].Label == helpLabel {
		return barW - tui.DisplayWidth(visibleLabel(helpLabel)) - 2
	}
	x := 1
	for i := 0; i < idx; i++ {
		if b.Menus[i].Label == helpLabel {
			continue
		}
		x += tui.DisplayWidth(visibleLabel(b.Menus[i].Label)) + 2
	}
	return x
}

// IsOpen reports whether any dropdown level is open
func (b *MenuBar) IsOpen() bool {
	return len(b.open) > 0
}

// HandleBarKey processes a key in bar mode. It returns true when a dropdown
// was opened.
func (b *MenuBar) HandleBarKey(ev terminal.Event, barW int) bool {
	switch ev.Key {
	case terminal.KeyRight:
		b.Selection = (b.Selection + 1) % len(b.Menus)
	case terminal.KeyLeft:
		b.Selection--
		if b.Selection < 0 {
			b.Selection = len(b.Menus) - 1
		}
	case terminal.KeyEnter:
		b.openMenu(b.Selection, barW)
		return true
	case terminal.KeyRune:
		r := unicode.ToLower(ev.Rune)
		for i, nm := range b.Menus {
			if mnemonic(nm.Label) == r {
				b.Selection = i
				b.openMenu(i, barW)
				return true
			}
		}
	}
	return false
}

func (b *MenuBar) openMenu(idx, barW int) {
	menu := b.Menus[idx].Menu
	b.open = []menuLevel{{
		menu:      menu,
		x:         b.originX(idx, barW),
		selection: firstSelectable(menu),
	}}
}

func firstSelectable(m *Menu) int {
	for i, c := range m.Children {
		if c.kind != childSeparator {
			return i
		}
	}
	return 0
}

// HandleOpenKey processes a key while dropdowns are open. It returns the
// yielded action (ActionNone when none) and whether the stack is still open.
func (b *MenuBar) HandleOpenKey(ev terminal.Event) (ActionKind, bool) {
	lvl := &b.open[len(b.open)-1]

	switch ev.Key {
	case terminal.KeyUp:
		lvl.selection = lvl.menu.previous(lvl.selection)
		return ActionNone, true
	case terminal.KeyDown:
		lvl.selection = lvl.menu.next(lvl.selection)
		return ActionNone, true
	case terminal.KeyEnter:
		return b.activate(lvl, lvl.selection)
	case terminal.KeyRune:
		if idx := lvl.menu.childByMnemonic(ev.Rune); idx >= 0 {
			lvl.selection = idx
			return b.activate(lvl, idx)
		}
	}

	// Unknown keys close only the innermost level
	b.open = b.open[:len(b.open)-1]
	return ActionNone, len(b.open) > 0
}

// activate handles selection of a non-separator child
func (b *MenuBar) activate(lvl *menuLevel, idx int) (ActionKind, bool) {
	child := lvl.menu.Children[idx]
	switch child.kind {
	case childAction:
		b.open = nil
		return child.Action, false
	case childSubMenu:
		b.open = append(b.open, menuLevel{
			menu:      child.Sub,
			x:         lvl.x + lvl.menu.Width(),
			selection: firstSelectable(child.Sub),
		})
	}
	return ActionNone, true
}

// Close discards all open dropdown levels
func (b *MenuBar) Close() {
	b.open = nil
}

// DefaultMenuBar builds the stock File/Edit/Help bar
func DefaultMenuBar() *MenuBar {
	file := &Menu{Children: []MenuChild{
		Action("_New", ActionNew),
		Action("_Open", ActionOpen),
		Separator(),
		Action("_Save", ActionSave),
		Action("Save _as ...", ActionSaveAs),
		Separator(),
		Action("_Quit", ActionClose),
	}}
	edit := &Menu{Children: []MenuChild{
		Action("_Undo", ActionUndo),
		Action("_Redo", ActionRedo),
	}}
	help := &Menu{Children: []MenuChild{
		Action("_About", ActionAbout),
	}}

	return &MenuBar{
		Menus: []NamedMenu{
			{Label: "_File", Menu: file},
			{Label: "_Edit", Menu: edit},
			{Label: helpLabel, Menu: help},
		},
	}
}
