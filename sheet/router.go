package sheet

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sheetgrid/grid"
)

// CommandKind is what a routed key asks the sheet to do.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdNavigate
	CmdSelectAll
	CmdCollapse
	CmdBeginEdit
	CmdTypeEdit
	CmdCommitEdit
	CmdCancelEdit
	CmdEditInput
	CmdClear
	CmdToggle
	CmdCopy
	CmdCut
	CmdPaste
	CmdPasteText
	CmdUndo
	CmdRedo
	CmdInsertRow
	CmdDuplicateRow
	CmdDeleteRow
)

// Command is the result of routing one key.
type Command struct {
	Kind   CommandKind
	Dir    grid.Direction
	Extend bool
	// Move is set on CmdCommitEdit when the commit is followed by Dir.
	Move bool
	Text string
}

type binding struct {
	b   func(KeyMap) key.Binding
	cmd Command
}

var navBindings = []binding{
	{func(k KeyMap) key.Binding { return k.Up }, Command{Kind: CmdNavigate, Dir: grid.DirUp}},
	{func(k KeyMap) key.Binding { return k.Down }, Command{Kind: CmdNavigate, Dir: grid.DirDown}},
	{func(k KeyMap) key.Binding { return k.Left }, Command{Kind: CmdNavigate, Dir: grid.DirLeft}},
	{func(k KeyMap) key.Binding { return k.Right }, Command{Kind: CmdNavigate, Dir: grid.DirRight}},
	{func(k KeyMap) key.Binding { return k.ShiftUp }, Command{Kind: CmdNavigate, Dir: grid.DirUp, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftDown }, Command{Kind: CmdNavigate, Dir: grid.DirDown, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftLeft }, Command{Kind: CmdNavigate, Dir: grid.DirLeft, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftRight }, Command{Kind: CmdNavigate, Dir: grid.DirRight, Extend: true}},
	{func(k KeyMap) key.Binding { return k.Tab }, Command{Kind: CmdNavigate, Dir: grid.DirTab}},
	{func(k KeyMap) key.Binding { return k.ShiftTab }, Command{Kind: CmdNavigate, Dir: grid.DirShiftTab}},
	{func(k KeyMap) key.Binding { return k.Home }, Command{Kind: CmdNavigate, Dir: grid.DirHome}},
	{func(k KeyMap) key.Binding { return k.End }, Command{Kind: CmdNavigate, Dir: grid.DirEnd}},
	{func(k KeyMap) key.Binding { return k.GridHome }, Command{Kind: CmdNavigate, Dir: grid.DirGridHome}},
	{func(k KeyMap) key.Binding { return k.GridEnd }, Command{Kind: CmdNavigate, Dir: grid.DirGridEnd}},
	{func(k KeyMap) key.Binding { return k.ShiftGridHome }, Command{Kind: CmdNavigate, Dir: grid.DirGridHome, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftGridEnd }, Command{Kind: CmdNavigate, Dir: grid.DirGridEnd, Extend: true}},
	{func(k KeyMap) key.Binding { return k.PageUp }, Command{Kind: CmdNavigate, Dir: grid.DirPageUp}},
	{func(k KeyMap) key.Binding { return k.PageDown }, Command{Kind: CmdNavigate, Dir: grid.DirPageDown}},
}

var commandBindings = []binding{
	{func(k KeyMap) key.Binding { return k.SelectAll }, Command{Kind: CmdSelectAll}},
	{func(k KeyMap) key.Binding { return k.Enter }, Command{Kind: CmdBeginEdit}},
	{func(k KeyMap) key.Binding { return k.Escape }, Command{Kind: CmdCollapse}},
	{func(k KeyMap) key.Binding { return k.Clear }, Command{Kind: CmdClear}},
	{func(k KeyMap) key.Binding { return k.Toggle }, Command{Kind: CmdToggle}},
	{func(k KeyMap) key.Binding { return k.Undo }, Command{Kind: CmdUndo}},
	{func(k KeyMap) key.Binding { return k.Redo }, Command{Kind: CmdRedo}},
	{func(k KeyMap) key.Binding { return k.Copy }, Command{Kind: CmdCopy}},
	{func(k KeyMap) key.Binding { return k.Cut }, Command{Kind: CmdCut}},
	{func(k KeyMap) key.Binding { return k.Paste }, Command{Kind: CmdPaste}},
	{func(k KeyMap) key.Binding { return k.InsertRow }, Command{Kind: CmdInsertRow}},
	{func(k KeyMap) key.Binding { return k.DuplicateRow }, Command{Kind: CmdDuplicateRow}},
	{func(k KeyMap) key.Binding { return k.DeleteRow }, Command{Kind: CmdDeleteRow}},
}

// route maps a key to a command given whether a cell editor is open and
// whether the active cell accepts edits. It has no side effects; ok is false
// for keys with no meaning in the current state, including typed text over a
// cell that cannot be edited.
func route(km KeyMap, msg tea.KeyMsg, editing, editable bool) (Command, bool) {
	if editing {
		return routeEditing(km, msg), true
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		return Command{Kind: CmdPasteText, Text: string(msg.Runes)}, true
	}

	for _, b := range navBindings {
		if key.Matches(msg, b.b(km)) {
			return b.cmd, true
		}
	}
	for _, b := range commandBindings {
		if key.Matches(msg, b.b(km)) {
			return b.cmd, true
		}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && editable {
		return Command{Kind: CmdTypeEdit, Text: string(msg.Runes)}, true
	}
	return Command{}, false
}

// routeEditing handles keys while the cell editor is open. Keys that do not
// leave the editor are forwarded to it.
func routeEditing(km KeyMap, msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.Enter):
		return Command{Kind: CmdCommitEdit, Move: true, Dir: grid.DirDown}
	case key.Matches(msg, km.Tab):
		return Command{Kind: CmdCommitEdit, Move: true, Dir: grid.DirTab}
	case key.Matches(msg, km.ShiftTab):
		return Command{Kind: CmdCommitEdit, Move: true, Dir: grid.DirShiftTab}
	case key.Matches(msg, km.Up):
		return Command{Kind: CmdCommitEdit, Move: true, Dir: grid.DirUp}
	case key.Matches(msg, km.Down):
		return Command{Kind: CmdCommitEdit, Move: true, Dir: grid.DirDown}
	case key.Matches(msg, km.Escape):
		return Command{Kind: CmdCancelEdit}
	default:
		return Command{Kind: CmdEditInput}
	}
}
