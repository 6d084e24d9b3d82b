package dto

// ClipResponse is the denormalized clip shape: the owning book's fields
// are flattened alongside the clip's own. The backend sends the same
// shape for single clips, similarity neighbors, samples and completion
// sources.
type ClipResponse struct {
	Id                string  `json:"id"`
	DocumentId        string  `json:"document_id"`
	Title             string  `json:"title"`
	Authors           *string `json:"authors"`
	CatalogueId       *string `json:"catalogue_id"`
	UserThumbnailPath *string `json:"user_thumbnail_path"`
	Content           string  `json:"content"`
	LocationType      string  `json:"location_type"`
	ClipStart         *int    `json:"clip_start"`
	ClipEnd           *int    `json:"clip_end"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         *string `json:"updated_at"`
}

// AnnotationResponse is a clip listed under its own document; the book
// fields live in the surrounding DocumentAnnotationsResponse.source.
type AnnotationResponse struct {
	Id           string  `json:"id"`
	Content      string  `json:"content"`
	LocationType string  `json:"location_type"`
	ClipStart    *int    `json:"clip_start"`
	ClipEnd      *int    `json:"clip_end"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
}

type BookResponse struct {
	Id            string  `json:"id"`
	Title         string  `json:"title"`
	Authors       *string `json:"authors"`
	CatalogueId   *string `json:"catalogue_id"`
	ThumbnailPath *string `json:"thumbnail_path"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
}

type DocumentAnnotationsResponse struct {
	Annotations []AnnotationResponse `json:"annotations"`
	Total       int                  `json:"total"`
	Source      BookResponse         `json:"source"`
}
