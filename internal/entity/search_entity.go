package entity

// SearchResult is one hit from the home search submission.
type SearchResult struct {
	Id          string
	Title       string
	Description string
}
