package dto

type LibraryItemResponse struct {
	Id            string  `json:"id"`
	Title         string  `json:"title"`
	Authors       *string `json:"authors"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
	NClips        int     `json:"n_clips"`
	ThumbnailPath *string `json:"thumbnail_path"`
	CatalogueId   *string `json:"catalogue_id"`
}
