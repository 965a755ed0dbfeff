package colors

// ColorScheme defines all configurable board colors
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and the status bar)
	Accent string `yaml:"accent"`

	// Borders
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	LiftedBorder   string `yaml:"lifted_border"` // Card being dragged

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// Notifications
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color with its value in other, in declaration order
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.ColumnBorder, &other.ColumnBorder},
		{&c.CardBorder, &other.CardBorder},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.LiftedBorder, &other.LiftedBorder},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.PriorityLow, &other.PriorityLow},
		{&c.PriorityMedium, &other.PriorityMedium},
		{&c.PriorityHigh, &other.PriorityHigh},
		{&c.ErrorFg, &other.ErrorFg},
	}
}

// ApplyDefaults fills in missing color values from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	for _, f := range c.fields(preset) {
		if *f[0] == "" {
			*f[0] = *f[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, f := range c.fields(&other) {
		if *f[1] != "" {
			*f[0] = *f[1]
		}
	}
}
