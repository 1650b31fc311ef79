// internal/model/campaign_email.go
package model

import "time"

type CampaignEmail struct {
	ID                string         `json:"id"`
	CampaignID        string         `json:"campaign_id"`
	CsvContactID      string         `json:"csv_contact_id"`
	EmailAddress      string         `json:"email_address"`
	RecipientName     *string        `json:"recipient_name"`
	Status            string         `json:"status"` // pending, queued, sending, sent, delivered, opened, clicked, bounced, failed, unsubscribed
	ProviderMessageID *string        `json:"provider_message_id"`
	SentAt            *time.Time     `json:"sent_at"`
	DeliveredAt       *time.Time     `json:"delivered_at"`
	OpenedAt          *time.Time     `json:"opened_at"`
	ClickedAt         *time.Time     `json:"clicked_at"`
	BouncedAt         *time.Time     `json:"bounced_at"`
	ErrorMessage      *string        `json:"error_message"`
	Metadata          map[string]any `json:"metadata"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	CsvContact        *CsvContact    `json:"csv_contact,omitempty"`
}

type EmailEvent struct {
	ID              int64          `json:"id"`
	CampaignEmailID string         `json:"campaign_email_id"`
	EventType       string         `json:"event_type"` // queued, sent, delivered, opened, clicked, bounced, complained, unsubscribed
	EventData       map[string]any `json:"event_data"`
	IPAddress       *string        `json:"ip_address"`
	UserAgent       *string        `json:"user_agent"`
	OccurredAt      time.Time      `json:"occurred_at"`
}

// EmailDetails is the per-recipient report: the email row and its events.
type EmailDetails struct {
	CampaignEmail
	Events []EmailEvent `json:"events"`
}
