package api

import (
	"context"
	"io"
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type ImagesAPI struct{ c *Client }

func (i *ImagesAPI) List(ctx context.Context) ([]model.Image, error) {
	var out []model.Image
	err := i.c.do(ctx, request{method: http.MethodGet, path: "/api/images"}, &out)
	return out, err
}

func (i *ImagesAPI) Upload(ctx context.Context, filename string, r io.Reader) (*model.Image, error) {
	var out model.Image
	if err := i.c.upload(ctx, "/api/images/upload", "image", filename, r, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *ImagesAPI) Delete(ctx context.Context, filename string) error {
	return i.c.do(ctx, request{method: http.MethodDelete, path: path("/api/images/%s", filename)}, nil)
}
