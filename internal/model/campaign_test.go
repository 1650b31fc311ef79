package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

func TestCampaignIsSending(t *testing.T) {
	var nilCampaign *model.Campaign
	assert.False(t, nilCampaign.IsSending())
	assert.True(t, (&model.Campaign{Status: model.CampaignSending}).IsSending())
	assert.False(t, (&model.Campaign{Status: model.CampaignPaused}).IsSending())
}

func TestCampaignMissingForStart(t *testing.T) {
	empty := ""
	id := "x1"

	assert.Equal(t, []string{"template", "csv_file"}, (&model.Campaign{TemplateID: &empty}).MissingForStart())
	assert.Equal(t, []string{"csv_file"}, (&model.Campaign{TemplateID: &id}).MissingForStart())
	assert.Empty(t, (&model.Campaign{TemplateID: &id, CsvFileID: &id}).MissingForStart())
}

func TestCampaignStatsProgress(t *testing.T) {
	sent, total := model.CampaignStats{Sent: 12, Total: 40}.Progress()
	assert.Equal(t, 12, sent)
	assert.Equal(t, 40, total)
}
