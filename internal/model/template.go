package model

import "time"

type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	BodyHTML  *string   `json:"body_html"`
	BodyText  *string   `json:"body_text"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"is_active"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TemplateInput struct {
	Name      *string  `json:"name,omitempty"`
	Subject   *string  `json:"subject,omitempty"`
	BodyHTML  *string  `json:"bodyHtml,omitempty"`
	BodyText  *string  `json:"bodyText,omitempty"`
	Variables []string `json:"variables,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}
