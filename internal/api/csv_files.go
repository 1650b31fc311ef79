package api

import (
	"context"
	"io"
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type CsvFilesAPI struct{ c *Client }

type CsvFileFilter struct {
	IsFiltered string
	Status     string
}

type ContactQuery struct {
	Page    int
	Limit   int
	IsValid string
}

func (f *CsvFilesAPI) List(ctx context.Context, filter CsvFileFilter) ([]model.CsvFile, error) {
	var out []model.CsvFile
	err := f.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/csv-files",
		params: query("isFiltered", filter.IsFiltered, "status", filter.Status),
	}, &out)
	return out, err
}

func (f *CsvFilesAPI) Get(ctx context.Context, id string) (*model.CsvFile, error) {
	var out model.CsvFile
	if err := f.c.do(ctx, request{method: http.MethodGet, path: path("/api/csv-files/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload sends the file as multipart "file" with a display "name".
func (f *CsvFilesAPI) Upload(ctx context.Context, filename, name string, r io.Reader) (*model.CsvFile, error) {
	var out model.CsvFile
	err := f.c.upload(ctx, "/api/csv-files/upload", "file", filename, r, map[string]string{"name": name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *CsvFilesAPI) Contacts(ctx context.Context, id string, q ContactQuery) (*model.Page[model.CsvContact], error) {
	var out model.Page[model.CsvContact]
	err := f.c.do(ctx, request{
		method: http.MethodGet,
		path:   path("/api/csv-files/%s/contacts", id),
		params: query("page", itoa(q.Page), "limit", itoa(q.Limit), "isValid", q.IsValid),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *CsvFilesAPI) FilterOptions(ctx context.Context, id string) (*model.FilterOptions, error) {
	var out model.FilterOptions
	if err := f.c.do(ctx, request{method: http.MethodGet, path: path("/api/csv-files/%s/filter-options", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Filter creates a derived list holding only the matching contacts.
func (f *CsvFilesAPI) Filter(ctx context.Context, id string, req model.FilterRequest) (*model.CsvFile, error) {
	var out model.CsvFile
	if err := f.c.do(ctx, request{method: http.MethodPost, path: path("/api/csv-files/%s/filter", id), body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *CsvFilesAPI) Stats(ctx context.Context, id string) (*model.CsvFileStats, error) {
	var out model.CsvFileStats
	if err := f.c.do(ctx, request{method: http.MethodGet, path: path("/api/csv-files/%s/stats", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *CsvFilesAPI) Delete(ctx context.Context, id string) error {
	return f.c.do(ctx, request{method: http.MethodDelete, path: path("/api/csv-files/%s", id)}, nil)
}
