package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/fleetboard/internal/config"
)

// keyMap holds the board bindings built from the configured key mappings
type keyMap struct {
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevCard      key.Binding
	NextCard      key.Binding
	Lift          key.Binding
	Drop          key.Binding
	Cancel        key.Binding
	Search        key.Binding
	CycleStatus   key.Binding
	CyclePriority key.Binding
	ClearFilter   key.Binding
	Refresh       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn:    binding("prev column", km.PrevColumn, "left"),
		NextColumn:    binding("next column", km.NextColumn, "right"),
		PrevCard:      binding("up", km.PrevCard, "up"),
		NextCard:      binding("down", km.NextCard, "down"),
		Lift:          binding("lift/drop", km.Lift),
		Drop:          binding("drop here", km.Drop),
		Cancel:        binding("cancel", km.Cancel),
		Search:        binding("search", km.Search),
		CycleStatus:   binding("status filter", km.CycleStatus),
		CyclePriority: binding("priority filter", km.CyclePriority),
		ClearFilter:   binding("clear filters", km.ClearFilter),
		Refresh:       binding("refresh", km.Refresh),
		Help:          binding("help", km.ShowHelp),
		Quit:          binding("quit", km.Quit, "ctrl+c"),
	}
}

// binding creates a key binding whose help shows the first key
func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(displayKey(keys[0]), desc),
	)
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "":
		return "unbound"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lift, k.Drop, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard},
		{k.Lift, k.Drop, k.Cancel},
		{k.Search, k.CycleStatus, k.CyclePriority, k.ClearFilter},
		{k.Refresh, k.Help, k.Quit},
	}
}
