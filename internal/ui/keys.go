package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the host key bindings
type keyMap struct {
	PrevWorkspace key.Binding
	NextWorkspace key.Binding
	PrevScan      key.Binding
	NextScan      key.Binding
	ToggleScan    key.Binding
	SelectAll     key.Binding
	ClearScans    key.Binding
	PickStatus    key.Binding
	PrevStatus    key.Binding
	NextStatus    key.Binding
	CustomStatus  key.Binding
	Pager         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevWorkspace: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev workspace"),
		),
		NextWorkspace: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next workspace"),
		),
		PrevScan: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev scan"),
		),
		NextScan: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next scan"),
		),
		ToggleScan: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle scan"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all scans"),
		),
		ClearScans: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scans"),
		),
		PickStatus: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "9"),
			key.WithHelp("1-6,9", "pick status"),
		),
		PrevStatus: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev status"),
		),
		NextStatus: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next status"),
		),
		CustomStatus: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "custom status"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWorkspace, k.ToggleScan, k.PickStatus, k.Pager, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWorkspace, k.NextWorkspace},
		{k.PrevScan, k.NextScan, k.ToggleScan, k.SelectAll, k.ClearScans},
		{k.PickStatus, k.PrevStatus, k.NextStatus, k.CustomStatus},
		{k.Pager, k.Help, k.Quit},
	}
}
