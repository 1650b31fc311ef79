package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func newCampaignService(m *mockCampaigns) *service.CampaignService {
	return &service.CampaignService{Campaigns: m, Validator: form.NewValidator()}
}

func strp(s string) *string { return &s }

func TestStartRejectsCampaignWithoutTemplate(t *testing.T) {
	m := &mockCampaigns{gets: []*model.Campaign{{ID: "c1", Status: model.CampaignDraft, CsvFileID: strp("f1")}}}
	err := newCampaignService(m).Start(context.Background(), "c1")

	assert.ErrorIs(t, err, appErrors.ErrCampaignNotStartable)
	assert.Contains(t, err.Error(), "template")
	assert.Empty(t, m.started)
}

func TestStartRejectsCampaignWithoutContacts(t *testing.T) {
	m := &mockCampaigns{gets: []*model.Campaign{{ID: "c1", TemplateID: strp("t1")}}}
	err := newCampaignService(m).Start(context.Background(), "c1")

	assert.ErrorIs(t, err, appErrors.ErrCampaignNotStartable)
	assert.Contains(t, err.Error(), "contact list")
}

func TestStartCallsBackend(t *testing.T) {
	m := &mockCampaigns{gets: []*model.Campaign{{ID: "c1", TemplateID: strp("t1"), CsvFileID: strp("f1")}}}
	require.NoError(t, newCampaignService(m).Start(context.Background(), "c1"))
	assert.Equal(t, []string{"c1"}, m.started)
}

func TestCreateSendImmediatelySkipsSchedule(t *testing.T) {
	m := &mockCampaigns{}
	c, err := newCampaignService(m).Create(context.Background(), form.Campaign{
		Name: " Launch ", FromName: "Team", FromEmail: "team@example.com",
		SendImmediately: true, Timezone: "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "Launch", c.Name)
	require.Len(t, m.created, 1)
	assert.Nil(t, m.created[0].TemplateID)
	assert.Equal(t, true, m.created[0].SendOptions["sendImmediately"])
	assert.Empty(t, m.scheduled)
}

func TestCreateSchedulesInTimezone(t *testing.T) {
	m := &mockCampaigns{}
	c, err := newCampaignService(m).Create(context.Background(), form.Campaign{
		Name: "Launch", FromName: "Team", FromEmail: "team@example.com",
		TemplateID: "t1", CsvFileID: "f1",
		ScheduledDate: "2025-03-01", ScheduledTime: "09:30", Timezone: "Africa/Nairobi",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CampaignScheduled, c.Status)
	require.Len(t, m.scheduled, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC), m.scheduled[0].UTC())
	assert.Equal(t, "t1", *m.created[0].TemplateID)
}

func TestCreateValidatesBeforeCallingBackend(t *testing.T) {
	m := &mockCampaigns{}
	_, err := newCampaignService(m).Create(context.Background(), form.Campaign{SendImmediately: true})

	var ve *appErrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Campaign name is required", ve.First())
	assert.Empty(t, m.created)
}

func TestDetailToleratesEmailFailure(t *testing.T) {
	m := &mockCampaigns{
		gets:      []*model.Campaign{{ID: "c1", Name: "Launch"}},
		emailsErr: errors.New("boom"),
	}
	d, err := newCampaignService(m).Detail(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Launch", d.Campaign.Name)
	assert.Error(t, d.EmailsErr)
	assert.Empty(t, d.Emails)
}

func TestDetailFailsWhenCampaignMissing(t *testing.T) {
	m := &mockCampaigns{
		gets:    []*model.Campaign{nil},
		getErrs: []error{appErrors.NewNotFound("/api/campaigns/c1", "Campaign not found")},
	}
	_, err := newCampaignService(m).Detail(context.Background(), "c1")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"start", "cancel"}, service.Actions(model.CampaignDraft))
	assert.Equal(t, []string{"start", "cancel"}, service.Actions(model.CampaignScheduled))
	assert.Equal(t, []string{"pause", "cancel"}, service.Actions(model.CampaignSending))
	assert.Equal(t, []string{"start", "cancel"}, service.Actions(model.CampaignPaused))
	assert.Nil(t, service.Actions(model.CampaignSent))
	assert.Nil(t, service.Actions(model.CampaignCancelled))
}
