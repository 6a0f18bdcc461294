package models

import "time"

// Palette is a shared color palette. DominantColors and AccentColors are
// comma-separated color values; IsPublic controls listing visibility.
type Palette struct {
	ID             string
	Name           string
	DominantColors string
	AccentColors   string
	IsPublic       bool
	CreatedBy      string
	CreatedAt      time.Time
}
