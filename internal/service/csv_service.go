package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// ContactsPageSize is the contact table page size.
const ContactsPageSize = 50

type CSVService struct {
	CsvFiles CsvFileAPI
}

type CsvFileDetails struct {
	File     *model.CsvFile
	Contacts *model.Page[model.CsvContact]
	Options  *model.FilterOptions
}

// List restricts the result to original uploads ("false") or filtered
// subsets ("true") when filtered is set.
func (s *CSVService) List(ctx context.Context, filtered string) ([]model.CsvFile, error) {
	return s.CsvFiles.List(ctx, api.CsvFileFilter{IsFiltered: filtered})
}

// Upload names the list after the file, minus its .csv suffix, when name is
// blank.
func (s *CSVService) Upload(ctx context.Context, filename, name string, r io.Reader) (*model.CsvFile, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultListName(filename)
	}
	return s.CsvFiles.Upload(ctx, filename, strings.TrimSpace(name), r)
}

// DefaultListName strips the directory and a trailing .csv from filename.
func DefaultListName(filename string) string {
	base := filepath.Base(filename)
	if strings.HasSuffix(strings.ToLower(base), ".csv") {
		base = base[:len(base)-len(".csv")]
	}
	return base
}

// Detail loads the file, one page of contacts and, for ready files, the
// values available for filtering.
func (s *CSVService) Detail(ctx context.Context, id string, page int) (*CsvFileDetails, error) {
	file, err := s.CsvFiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	contacts, err := s.CsvFiles.Contacts(ctx, id, api.ContactQuery{Page: page, Limit: ContactsPageSize})
	if err != nil {
		return nil, err
	}
	details := &CsvFileDetails{File: file, Contacts: contacts}
	if file.Status == model.CsvReady && !file.IsFiltered {
		opts, err := s.CsvFiles.FilterOptions(ctx, id)
		if err != nil {
			return nil, err
		}
		details.Options = opts
	}
	return details, nil
}

// Filter creates a filtered subset of a list. Empty criteria are dropped.
func (s *CSVService) Filter(ctx context.Context, id string, f form.CsvFilter) (*model.CsvFile, error) {
	req := model.FilterRequest{Name: strings.TrimSpace(f.Name)}
	req.Countries = nonEmpty(f.Countries)
	req.Timezones = nonEmpty(f.Timezones)
	req.EmailDomains = nonEmpty(f.EmailDomains)
	return s.CsvFiles.Filter(ctx, id, req)
}

func (s *CSVService) Delete(ctx context.Context, id string) error {
	return s.CsvFiles.Delete(ctx, id)
}

func nonEmpty(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
