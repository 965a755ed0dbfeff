package config

// KeyMappings defines all configurable board key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Dragging
	Lift   string `yaml:"lift"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Filtering
	Search        string `yaml:"search"`
	CycleStatus   string `yaml:"cycle_status"`
	CyclePriority string `yaml:"cycle_priority"`
	ClearFilter   string `yaml:"clear_filter"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Lift:   " ",
		Drop:   "enter",
		Cancel: "esc",

		Search:        "/",
		CycleStatus:   "s",
		CyclePriority: "p",
		ClearFilter:   "c",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.Lift, defaults.Lift)
	fill(&k.Drop, defaults.Drop)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.Search, defaults.Search)
	fill(&k.CycleStatus, defaults.CycleStatus)
	fill(&k.CyclePriority, defaults.CyclePriority)
	fill(&k.ClearFilter, defaults.ClearFilter)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
