package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

const (
	PerformanceDays = 7
	ActivityLimit   = 10
)

type ReportService struct {
	Reports   ReportAPI
	Campaigns CampaignAPI
}

// Overview is everything the home dashboard shows.
type Overview struct {
	Stats       *model.DashboardStats
	Performance []model.EmailPerformancePoint
	Activity    []model.ActivityItem
	Campaigns   []model.Campaign
}

// Overview fetches stats, the week's performance, recent activity and the
// latest campaigns concurrently.
func (s *ReportService) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stats, err = s.Reports.Dashboard(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Performance, err = s.Reports.EmailPerformance(gctx, PerformanceDays)
		return err
	})
	g.Go(func() (err error) {
		out.Activity, err = s.Reports.Activity(gctx, ActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		out.Campaigns, err = s.Campaigns.List(gctx, api.CampaignFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Reports is the reports page: overall stats plus every sent campaign.
type Reports struct {
	Stats     *model.DashboardStats
	Campaigns []model.Campaign
}

func (s *ReportService) ReportsPage(ctx context.Context) (*Reports, error) {
	out := &Reports{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stats, err = s.Reports.Dashboard(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Campaigns, err = s.Campaigns.List(gctx, api.CampaignFilter{Status: model.CampaignSent})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReportService) Campaign(ctx context.Context, id string) (*model.CampaignReport, error) {
	return s.Reports.CampaignReport(ctx, id)
}

// Rate formats n/d as a percentage with one decimal, "0.0" when d is 0.
func Rate(n, d int) string {
	if d == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(n)/float64(d)*100, 'f', 1, 64)
}
