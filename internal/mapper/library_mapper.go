package mapper

import (
	"marginalia/internal/dto"
	"marginalia/internal/entity"
)

type LibraryMapper struct{}

func NewLibraryMapper() *LibraryMapper {
	return &LibraryMapper{}
}

func (m *LibraryMapper) ItemToEntity(r *dto.LibraryItemResponse) *entity.LibraryItem {
	if r == nil {
		return nil
	}

	return &entity.LibraryItem{
		Id:           r.Id,
		Title:        r.Title,
		Authors:      splitAuthors(r.Authors),
		CreatedAt:    parseTime(r.CreatedAt),
		UpdatedAt:    parseTimePtr(r.UpdatedAt),
		ClipCount:    r.NClips,
		ThumbnailUrl: r.ThumbnailPath,
		CatalogueId:  r.CatalogueId,
	}
}

func (m *LibraryMapper) ItemsToEntities(list []dto.LibraryItemResponse) []entity.LibraryItem {
	entities := make([]entity.LibraryItem, 0, len(list))
	for i := range list {
		entities = append(entities, *m.ItemToEntity(&list[i]))
	}
	return entities
}
