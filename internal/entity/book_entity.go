package entity

import "time"

// Book is the container work that owns zero or more clips. It arrives
// fully denormalized inside every clip that references it.
type Book struct {
	Id           string
	Title        string
	Authors      []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	CatalogueId  *string
	ThumbnailUrl *string
}
