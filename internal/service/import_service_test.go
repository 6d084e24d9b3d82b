package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"marginalia/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImportRepo struct {
	uploads int
}

func (f *fakeImportRepo) UploadReadwiseCSV(ctx context.Context, filename string, file io.Reader) (int, error) {
	f.uploads++
	return 7, nil
}

func TestImportRejectsNonCSV(t *testing.T) {
	repo := &fakeImportRepo{}
	svc := NewImportService(repo, memory.NewViewCache(time.Minute, time.Minute), nopLogger{})

	_, err := svc.ImportReadwiseCSV(context.Background(), "export.xlsx", strings.NewReader("data"))
	require.Error(t, err)
	assert.Zero(t, repo.uploads, "nothing should be uploaded for a non-csv file")
}

func TestImportFlushesViews(t *testing.T) {
	repo := &fakeImportRepo{}
	cache := memory.NewViewCache(time.Minute, time.Minute)
	cache.Set(memory.KeyLibrary, "stale")
	svc := NewImportService(repo, cache, nopLogger{})

	count, err := svc.ImportReadwiseCSV(context.Background(), "export.CSV", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	_, found := cache.Get(memory.KeyLibrary)
	assert.False(t, found, "bulk import must drop every cached view")
}
