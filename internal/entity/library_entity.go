package entity

import "time"

// LibraryItem is one work in the user's library with clip counts.
type LibraryItem struct {
	Id           string
	Title        string
	Authors      []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	ClipCount    int
	ThumbnailUrl *string
	CatalogueId  *string
}

// DocumentAnnotations bundles a book with all of its clips, as returned
// by the annotations listing.
type DocumentAnnotations struct {
	Source      Book
	Annotations []Clip
	Total       int
}
