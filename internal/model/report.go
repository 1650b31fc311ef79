package model

import "time"

type DashboardStats struct {
	Campaigns struct {
		Total     int `json:"total"`
		Draft     int `json:"draft"`
		Scheduled int `json:"scheduled"`
		Sending   int `json:"sending"`
		Sent      int `json:"sent"`
		Paused    int `json:"paused"`
		Cancelled int `json:"cancelled"`
	} `json:"campaigns"`
	Templates int `json:"templates"`
	CsvFiles  int `json:"csvFiles"`
	Contacts  int `json:"contacts"`
	Emails    struct {
		Total        int `json:"total"`
		Pending      int `json:"pending"`
		Sent         int `json:"sent"`
		Delivered    int `json:"delivered"`
		Opened       int `json:"opened"`
		Clicked      int `json:"clicked"`
		Bounced      int `json:"bounced"`
		Failed       int `json:"failed"`
		Unsubscribed int `json:"unsubscribed"`
	} `json:"emails"`
	WeeklyChanges *WeeklyChanges `json:"weeklyChanges,omitempty"`
}

type WeeklyChanges struct {
	Campaigns int `json:"campaigns"`
	Templates int `json:"templates"`
	CsvFiles  int `json:"csvFiles"`
	Contacts  int `json:"contacts"`
}

// EmailPerformancePoint is one day of the performance chart.
type EmailPerformancePoint struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Sent    int    `json:"sent"`
	Opened  int    `json:"opened"`
	Clicked int    `json:"clicked"`
}

type ActivityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CampaignID  *string   `json:"campaign_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type CampaignReport struct {
	Campaign       Campaign       `json:"campaign"`
	Stats          CampaignStats  `json:"stats"`
	StatusCounts   map[string]int `json:"statusCounts"`
	RecentEvents   []EmailEvent   `json:"recentEvents"`
	DeliveryRate   float64        `json:"deliveryRate"`
	OpenRate       float64        `json:"openRate"`
	ClickRate      float64        `json:"clickRate"`
	BounceRate     float64        `json:"bounceRate"`
	HourlyActivity []AdHourly     `json:"hourlyActivity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is the {"data": [...], "pagination": {...}} list envelope.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
