package mapper

import (
	"marginalia/internal/dto"
	"marginalia/internal/entity"
)

type ClipMapper struct{}

func NewClipMapper() *ClipMapper {
	return &ClipMapper{}
}

// ClipToEntity rebuilds the embedded book from the flattened wire shape.
func (m *ClipMapper) ClipToEntity(c *dto.ClipResponse) *entity.Clip {
	if c == nil {
		return nil
	}

	return &entity.Clip{
		Id: c.Id,
		Book: entity.Book{
			Id:           c.DocumentId,
			Title:        c.Title,
			Authors:      splitAuthors(c.Authors),
			CreatedAt:    parseTime(c.CreatedAt),
			UpdatedAt:    parseTimePtr(c.UpdatedAt),
			CatalogueId:  c.CatalogueId,
			ThumbnailUrl: c.UserThumbnailPath,
		},
		Content:      c.Content,
		CreatedAt:    parseTime(c.CreatedAt),
		UpdatedAt:    parseTimePtr(c.UpdatedAt),
		LocationType: c.LocationType,
		ClipStart:    c.ClipStart,
		ClipEnd:      c.ClipEnd,
	}
}

func (m *ClipMapper) ClipsToEntities(clips []dto.ClipResponse) []entity.Clip {
	entities := make([]entity.Clip, 0, len(clips))
	for i := range clips {
		entities = append(entities, *m.ClipToEntity(&clips[i]))
	}
	return entities
}

func (m *ClipMapper) BookToEntity(b *dto.BookResponse) *entity.Book {
	if b == nil {
		return nil
	}

	return &entity.Book{
		Id:           b.Id,
		Title:        b.Title,
		Authors:      splitAuthors(b.Authors),
		CreatedAt:    parseTime(b.CreatedAt),
		UpdatedAt:    parseTimePtr(b.UpdatedAt),
		CatalogueId:  b.CatalogueId,
		ThumbnailUrl: b.ThumbnailPath,
	}
}

// DocumentAnnotationsToEntity pairs every annotation with the listing's
// source book, keeping each clip fully denormalized.
func (m *ClipMapper) DocumentAnnotationsToEntity(r *dto.DocumentAnnotationsResponse) *entity.DocumentAnnotations {
	if r == nil {
		return nil
	}

	book := m.BookToEntity(&r.Source)
	annotations := make([]entity.Clip, 0, len(r.Annotations))
	for _, a := range r.Annotations {
		annotations = append(annotations, entity.Clip{
			Id:           a.Id,
			Book:         *book,
			Content:      a.Content,
			CreatedAt:    parseTime(a.CreatedAt),
			UpdatedAt:    parseTimePtr(a.UpdatedAt),
			LocationType: a.LocationType,
			ClipStart:    a.ClipStart,
			ClipEnd:      a.ClipEnd,
		})
	}

	return &entity.DocumentAnnotations{
		Source:      *book,
		Annotations: annotations,
		Total:       r.Total,
	}
}
