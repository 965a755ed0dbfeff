package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		LiftedBorder:   "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityLow:    "#22C55E",
		PriorityMedium: "#EAB308",
		PriorityHigh:   "#EF4444",

		ErrorFg: "#FF0000",
	}
}
