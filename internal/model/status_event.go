package model

import "time"

// StatusEvent records a campaign moving from one status to another, as seen
// by a poller.
type StatusEvent struct {
	CampaignID string        `json:"campaign_id"`
	Name       string        `json:"name"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	Stats      CampaignStats `json:"stats"`
	ObservedAt time.Time     `json:"observed_at"`
}
