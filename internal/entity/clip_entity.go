package entity

import (
	"fmt"
	"time"
)

// Clip is a single highlighted excerpt from a book, with an optional
// location range in the unit system named by LocationType.
type Clip struct {
	Id           string
	Book         Book
	Content      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LocationType string
	ClipStart    *int
	ClipEnd      *int
}

// LocationLabel renders the clip's locator range: "100-120" when both
// ends are present, "100" when only the start is known, "" otherwise.
func (c Clip) LocationLabel() string {
	if c.ClipStart == nil {
		return ""
	}
	if c.ClipEnd == nil {
		return fmt.Sprintf("%d", *c.ClipStart)
	}
	return fmt.Sprintf("%d-%d", *c.ClipStart, *c.ClipEnd)
}
