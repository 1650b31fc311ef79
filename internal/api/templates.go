package api

import (
	"context"
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type TemplatesAPI struct{ c *Client }

// TemplateFilter values are sent as query params when non-empty.
type TemplateFilter struct {
	IsActive string
	Search   string
}

func (t *TemplatesAPI) List(ctx context.Context, f TemplateFilter) ([]model.Template, error) {
	var out []model.Template
	err := t.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/templates",
		params: query("isActive", f.IsActive, "search", f.Search),
	}, &out)
	return out, err
}

func (t *TemplatesAPI) Get(ctx context.Context, id string) (*model.Template, error) {
	var out model.Template
	if err := t.c.do(ctx, request{method: http.MethodGet, path: path("/api/templates/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TemplatesAPI) Create(ctx context.Context, in model.TemplateInput) (*model.Template, error) {
	var out model.Template
	if err := t.c.do(ctx, request{method: http.MethodPost, path: "/api/templates", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TemplatesAPI) Update(ctx context.Context, id string, in model.TemplateInput) (*model.Template, error) {
	var out model.Template
	if err := t.c.do(ctx, request{method: http.MethodPatch, path: path("/api/templates/%s", id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TemplatesAPI) Delete(ctx context.Context, id string) error {
	return t.c.do(ctx, request{method: http.MethodDelete, path: path("/api/templates/%s", id)}, nil)
}

func (t *TemplatesAPI) Duplicate(ctx context.Context, id string) (*model.Template, error) {
	var out model.Template
	if err := t.c.do(ctx, request{method: http.MethodPost, path: path("/api/templates/%s/duplicate", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractVariables asks the backend which placeholders content uses.
func (t *TemplatesAPI) ExtractVariables(ctx context.Context, content string) ([]string, error) {
	var out struct {
		Variables []string `json:"variables"`
	}
	err := t.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/templates/extract-variables",
		body:   map[string]string{"content": content},
	}, &out)
	return out.Variables, err
}
