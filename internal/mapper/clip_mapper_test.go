package mapper

import (
	"testing"
	"time"

	"marginalia/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestClipToEntity(t *testing.T) {
	m := NewClipMapper()

	resp := &dto.ClipResponse{
		Id:           "clip-1",
		DocumentId:   "book-1",
		Title:        "Meditations",
		Authors:      strPtr("Marcus Aurelius;Gregory Hays"),
		Content:      "You have power over your mind.",
		LocationType: "page",
		ClipStart:    intPtr(100),
		ClipEnd:      intPtr(120),
		CreatedAt:    "2024-01-01T00:00:00Z",
		UpdatedAt:    strPtr("2024-02-01T12:30:00Z"),
	}

	clip := m.ClipToEntity(resp)
	require.NotNil(t, clip)

	assert.Equal(t, "clip-1", clip.Id)
	assert.Equal(t, "book-1", clip.Book.Id)
	assert.Equal(t, "Meditations", clip.Book.Title)
	assert.Equal(t, []string{"Marcus Aurelius", "Gregory Hays"}, clip.Book.Authors)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), clip.CreatedAt)
	require.NotNil(t, clip.UpdatedAt)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC), *clip.UpdatedAt)
	assert.Equal(t, 100, *clip.ClipStart)
	assert.Equal(t, 120, *clip.ClipEnd)
}

func TestClipToEntityDefaults(t *testing.T) {
	m := NewClipMapper()

	clip := m.ClipToEntity(&dto.ClipResponse{
		Id:         "clip-2",
		DocumentId: "book-2",
		Title:      "Untitled",
		CreatedAt:  "2024-01-01T00:00:00Z",
	})
	require.NotNil(t, clip)

	assert.Equal(t, []string{}, clip.Book.Authors, "null authors must normalize to an empty list")
	assert.Nil(t, clip.UpdatedAt)
	assert.Nil(t, clip.ClipStart)
	assert.Nil(t, clip.ClipEnd)
	assert.Nil(t, clip.Book.ThumbnailUrl)
}

func TestClipToEntityNil(t *testing.T) {
	assert.Nil(t, NewClipMapper().ClipToEntity(nil))
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  []string
	}{
		{"nil field", nil, []string{}},
		{"empty string", strPtr(""), []string{}},
		{"single author", strPtr("Annie Dillard"), []string{"Annie Dillard"}},
		{"two authors", strPtr("A;B"), []string{"A", "B"}},
		{"padded entries", strPtr("A; B ;C"), []string{"A", "B", "C"}},
		{"trailing delimiter", strPtr("A;"), []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAuthors(tt.input))
		})
	}
}

func TestParseTimeUnparsable(t *testing.T) {
	// Coercion only: malformed timestamps become the zero value, never
	// an error.
	assert.True(t, parseTime("not-a-date").IsZero())
	assert.Nil(t, parseTimePtr(nil))
}

func TestDocumentAnnotationsToEntity(t *testing.T) {
	m := NewClipMapper()

	resp := &dto.DocumentAnnotationsResponse{
		Annotations: []dto.AnnotationResponse{
			{Id: "a1", Content: "first", LocationType: "page", ClipStart: intPtr(3), CreatedAt: "2024-01-01T00:00:00Z"},
			{Id: "a2", Content: "second", LocationType: "page", CreatedAt: "2024-01-02T00:00:00Z"},
		},
		Total: 2,
		Source: dto.BookResponse{
			Id:        "book-1",
			Title:     "Meditations",
			Authors:   strPtr("Marcus Aurelius"),
			CreatedAt: "2023-12-01T00:00:00Z",
		},
	}

	annotations := m.DocumentAnnotationsToEntity(resp)
	require.NotNil(t, annotations)
	require.Len(t, annotations.Annotations, 2)

	assert.Equal(t, 2, annotations.Total)
	assert.Equal(t, "Meditations", annotations.Source.Title)
	// Every clip carries the full book, denormalized.
	assert.Equal(t, annotations.Source, annotations.Annotations[0].Book)
	assert.Equal(t, annotations.Source, annotations.Annotations[1].Book)
	assert.Equal(t, "first", annotations.Annotations[0].Content)
}
