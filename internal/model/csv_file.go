package model

import "time"

const (
	CsvProcessing = "processing"
	CsvReady      = "ready"
	CsvError      = "error"
)

type CsvFile struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	OriginalFilename string            `json:"original_filename"`
	StoragePath      string            `json:"storage_path"`
	RowCount         int               `json:"row_count"`
	ColumnMapping    map[string]string `json:"column_mapping"`
	IsFiltered       bool              `json:"is_filtered"`
	ParentFileID     *string           `json:"parent_file_id"`
	FilterCriteria   *FilterCriteria   `json:"filter_criteria"`
	Status           string            `json:"status"`
	ErrorMessage     *string           `json:"error_message"`
	CreatedBy        *string           `json:"created_by"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type FilterCriteria struct {
	Countries    []string `json:"countries,omitempty"`
	Timezones    []string `json:"timezones,omitempty"`
	EmailDomains []string `json:"emailDomains,omitempty"`
}

// FilterRequest asks the backend to derive a new, filtered list.
type FilterRequest struct {
	Name string `json:"name,omitempty"`
	FilterCriteria
}

type FilterOptions struct {
	Countries    []string `json:"countries"`
	Timezones    []string `json:"timezones"`
	EmailDomains []string `json:"emailDomains"`
}

// CsvContact is one parsed row of an uploaded list.
type CsvContact struct {
	ID              string         `json:"id"`
	CsvFileID       string         `json:"csv_file_id"`
	Email           string         `json:"email"`
	FirstName       *string        `json:"first_name"`
	LastName        *string        `json:"last_name"`
	Country         *string        `json:"country"`
	Timezone        *string        `json:"timezone"`
	Phone           *string        `json:"phone"`
	Company         *string        `json:"company"`
	CustomFields    map[string]any `json:"custom_fields"`
	IsValid         bool           `json:"is_valid"`
	ValidationError *string        `json:"validation_error"`
	CreatedAt       time.Time      `json:"created_at"`
}

// FullName joins the optional name parts, or returns "".
func (c CsvContact) FullName() string {
	first, last := deref(c.FirstName), deref(c.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

type CsvFileStats struct {
	Total     int            `json:"total"`
	Valid     int            `json:"valid"`
	Invalid   int            `json:"invalid"`
	Countries map[string]int `json:"countries"`
	Domains   map[string]int `json:"domains"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
