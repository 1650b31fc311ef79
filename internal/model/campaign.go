// internal/model/campaign.go
package model

import "time"

const (
	CampaignDraft     = "draft"
	CampaignScheduled = "scheduled"
	CampaignSending   = "sending"
	CampaignSent      = "sent"
	CampaignPaused    = "paused"
	CampaignCancelled = "cancelled"
)

type Campaign struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     *string        `json:"description"`
	TemplateID      *string        `json:"template_id"`
	CsvFileID       *string        `json:"csv_file_id"`
	FromName        string         `json:"from_name"`
	FromEmail       string         `json:"from_email"`
	ReplyTo         *string        `json:"reply_to"`
	SubjectOverride *string        `json:"subject_override"`
	Status          string         `json:"status"`
	ScheduledAt     *time.Time     `json:"scheduled_at"`
	StartedAt       *time.Time     `json:"started_at"`
	CompletedAt     *time.Time     `json:"completed_at"`
	SendOptions     map[string]any `json:"send_options"`
	Stats           CampaignStats  `json:"stats"`
	CreatedBy       *string        `json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Template        *Template      `json:"template,omitempty"`
	CsvFile         *CsvFile       `json:"csv_file,omitempty"`
}

type CampaignStats struct {
	Total        int `json:"total"`
	Sent         int `json:"sent"`
	Delivered    int `json:"delivered"`
	Opened       int `json:"opened"`
	Clicked      int `json:"clicked"`
	Bounced      int `json:"bounced"`
	Failed       int `json:"failed"`
	Unsubscribed int `json:"unsubscribed"`
}

// IsSending reports whether the backend is still delivering the campaign.
// Pollers keep refreshing only while this holds.
func (c *Campaign) IsSending() bool {
	return c != nil && c.Status == CampaignSending
}

// MissingForStart returns which references a campaign still needs before it
// can be started, in the order the dashboard reports them.
func (c *Campaign) MissingForStart() []string {
	var missing []string
	if c.TemplateID == nil || *c.TemplateID == "" {
		missing = append(missing, "template")
	}
	if c.CsvFileID == nil || *c.CsvFileID == "" {
		missing = append(missing, "csv_file")
	}
	return missing
}

// Progress returns sent and total recipients, e.g. for "12 / 40 sent".
func (s CampaignStats) Progress() (int, int) {
	return s.Sent, s.Total
}

// CampaignInput is the create/update body. Nil fields are omitted so PATCH
// only touches what was set.
type CampaignInput struct {
	Name            *string        `json:"name,omitempty"`
	Description     *string        `json:"description,omitempty"`
	TemplateID      *string        `json:"templateId,omitempty"`
	CsvFileID       *string        `json:"csvFileId,omitempty"`
	FromName        *string        `json:"fromName,omitempty"`
	FromEmail       *string        `json:"fromEmail,omitempty"`
	ReplyTo         *string        `json:"replyTo,omitempty"`
	SubjectOverride *string        `json:"subjectOverride,omitempty"`
	SendOptions     map[string]any `json:"sendOptions,omitempty"`
}

type ScheduleRequest struct {
	ScheduledAt string `json:"scheduledAt"`
	Timezone    string `json:"timezone,omitempty"`
}
