package api

import (
	"context"
	"io"

	"marginalia/internal/dto"
	"marginalia/internal/repository/contract"
)

type importRepository struct {
	client *Client
}

func NewImportRepository(client *Client) contract.ImportRepository {
	return &importRepository{client: client}
}

func (r *importRepository) UploadReadwiseCSV(ctx context.Context, filename string, file io.Reader) (int, error) {
	var resp dto.ImportResponse
	if err := r.client.postMultipart(ctx, "/document/upload/readwise", "csv_file", filename, file, &resp); err != nil {
		return 0, err
	}
	return resp.NewAnnotationImports, nil
}
