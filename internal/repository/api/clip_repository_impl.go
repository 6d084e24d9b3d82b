package api

import (
	"context"
	"net/url"
	"strconv"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/mapper"
	"marginalia/internal/repository/contract"
)

type clipRepository struct {
	client *Client
	mapper *mapper.ClipMapper
}

func NewClipRepository(client *Client, m *mapper.ClipMapper) contract.ClipRepository {
	return &clipRepository{client: client, mapper: m}
}

func (r *clipRepository) Get(ctx context.Context, clipId string) (*entity.Clip, error) {
	var resp dto.ClipResponse
	if err := r.client.getJSON(ctx, "/clip/"+clipId, nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.ClipToEntity(&resp), nil
}

func (r *clipRepository) GetSimilar(ctx context.Context, clipId string) ([]entity.Clip, error) {
	var resp []dto.ClipResponse
	if err := r.client.getJSON(ctx, "/clip/"+clipId+"/similar", nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.ClipsToEntities(resp), nil
}

func (r *clipRepository) Delete(ctx context.Context, clipId string) error {
	return r.client.delete(ctx, "/clip/"+clipId)
}

func (r *clipRepository) Sample(ctx context.Context, limit int, random bool) ([]entity.Clip, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	query.Set("random", strconv.FormatBool(random))

	var resp []dto.ClipResponse
	if err := r.client.getJSON(ctx, "/clip", query, &resp); err != nil {
		return nil, err
	}
	return r.mapper.ClipsToEntities(resp), nil
}
