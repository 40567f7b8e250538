package entity

import "time"

// Category representa una categoría del catálogo.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ImageURL    string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
