package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		LiftedBorder:   "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityLow:    "#D0D0D0",
		PriorityMedium: "#D0D0D0",
		PriorityHigh:   "#FFFFFF",

		ErrorFg: "#FFFFFF",
	}
}
