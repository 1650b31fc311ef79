package model

import "time"

type Advertisement struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	DestinationURL string    `json:"destination_url"`
	TrackingCode   string    `json:"tracking_code"`
	Platform       *string   `json:"platform"`
	UTMSource      *string   `json:"utm_source"`
	UTMMedium      *string   `json:"utm_medium"`
	UTMCampaign    *string   `json:"utm_campaign"`
	IsActive       bool      `json:"is_active"`
	Stats          AdStats   `json:"stats"`
	CreatedBy      *string   `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AdStats struct {
	Clicks       int `json:"clicks"`
	UniqueClicks int `json:"unique_clicks"`
}

type AdvertisementInput struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	DestinationURL *string `json:"destination_url,omitempty"`
	Platform       *string `json:"platform,omitempty"`
	UTMSource      *string `json:"utm_source,omitempty"`
	UTMMedium      *string `json:"utm_medium,omitempty"`
	UTMCampaign    *string `json:"utm_campaign,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type AdClick struct {
	ID              string    `json:"id"`
	AdvertisementID string    `json:"advertisement_id"`
	IPAddress       *string   `json:"ip_address"`
	UserAgent       *string   `json:"user_agent"`
	Referrer        *string   `json:"referrer"`
	Country         *string   `json:"country"`
	City            *string   `json:"city"`
	DeviceType      *string   `json:"device_type"`
	Browser         *string   `json:"browser"`
	OS              *string   `json:"os"`
	ClickedAt       time.Time `json:"clicked_at"`
}

type AdDailyStats struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AdBreakdown struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AdHourly struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type AdDetailedStats struct {
	Advertisement      Advertisement  `json:"advertisement"`
	DailyStats         []AdDailyStats `json:"dailyStats"`
	DeviceBreakdown    []AdBreakdown  `json:"deviceBreakdown"`
	BrowserBreakdown   []AdBreakdown  `json:"browserBreakdown"`
	OSBreakdown        []AdBreakdown  `json:"osBreakdown"`
	HourlyDistribution []AdHourly     `json:"hourlyDistribution"`
	TotalClicks        int            `json:"totalClicks"`
	PeriodDays         int            `json:"periodDays"`
	RecentClicks       []AdClick      `json:"recentClicks,omitempty"`
}

type AdDashboardStats struct {
	TotalAds    int     `json:"totalAds"`
	ActiveAds   int     `json:"activeAds"`
	TotalClicks int     `json:"totalClicks"`
	TopAds      []TopAd `json:"topAds"`
}

type TopAd struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Stats    AdStats `json:"stats"`
	Platform *string `json:"platform"`
}
