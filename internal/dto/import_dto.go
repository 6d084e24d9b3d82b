package dto

type ImportResponse struct {
	NewAnnotationImports int `json:"new_annotation_imports"`
}
