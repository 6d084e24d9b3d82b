package dto

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type SearchResultResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
