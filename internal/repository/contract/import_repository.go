package contract

import (
	"context"
	"io"
)

type ImportRepository interface {
	// UploadReadwiseCSV streams a Readwise export to the bulk import
	// endpoint and returns the number of newly imported annotations.
	UploadReadwiseCSV(ctx context.Context, filename string, file io.Reader) (int, error)
}
