package models

// LayoutEntry is one saved card placement on the local board layout.
// SourceColumn is the column the card's API status mapped to when the
// entry was written.
type LayoutEntry struct {
	CardID       string `json:"card_id"`
	Column       string `json:"column"`
	Position     int    `json:"position"`
	SourceColumn string `json:"source_column"`
}
