package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printCampaigns(w io.Writer, campaigns []model.Campaign) {
	if len(campaigns) == 0 {
		fmt.Fprintln(w, "No campaigns found")
		return
	}
	tw := table(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tSENT\tOPENED\tCLICKED\tCREATED")
	for _, c := range campaigns {
		sent, total := c.Stats.Progress()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s%%\t%s%%\t%s\n",
			c.ID, c.Name, c.Status, sent, total,
			service.Rate(c.Stats.Opened, c.Stats.Sent),
			service.Rate(c.Stats.Clicked, c.Stats.Sent),
			date(c.CreatedAt),
		)
	}
}

func printCampaign(w io.Writer, c *model.Campaign) {
	tw := table(w)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Status:\t%s\n", c.Status)
	fmt.Fprintf(tw, "From:\t%s <%s>\n", c.FromName, c.FromEmail)
	if c.Template != nil {
		fmt.Fprintf(tw, "Template:\t%s\n", c.Template.Name)
	}
	if c.CsvFile != nil {
		fmt.Fprintf(tw, "Contacts:\t%s (%d rows)\n", c.CsvFile.Name, c.CsvFile.RowCount)
	}
	if c.ScheduledAt != nil {
		fmt.Fprintf(tw, "Scheduled:\t%s\n", c.ScheduledAt.Format(time.RFC1123))
	}
	s := c.Stats
	fmt.Fprintf(tw, "Sent:\t%d / %d\n", s.Sent, s.Total)
	fmt.Fprintf(tw, "Delivered:\t%d (%s%%)\n", s.Delivered, service.Rate(s.Delivered, s.Sent))
	fmt.Fprintf(tw, "Opened:\t%d (%s%%)\n", s.Opened, service.Rate(s.Opened, s.Sent))
	fmt.Fprintf(tw, "Clicked:\t%d (%s%%)\n", s.Clicked, service.Rate(s.Clicked, s.Sent))
	fmt.Fprintf(tw, "Bounced:\t%d\n", s.Bounced)
	fmt.Fprintf(tw, "Failed:\t%d\n", s.Failed)
	tw.Flush()
	if c.Status == model.CampaignDraft {
		for _, m := range c.MissingForStart() {
			if m == "csv_file" {
				m = "contact list"
			}
			fmt.Fprintf(w, "Not startable yet: select a %s first.\n", m)
		}
	}
}

func printRecipients(w io.Writer, emails []model.CampaignEmail) {
	fmt.Fprintln(w)
	if len(emails) == 0 {
		fmt.Fprintln(w, "No recipients yet")
		return
	}
	tw := table(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "EMAIL\tNAME\tSTATUS")
	for _, e := range emails {
		name := "-"
		if e.RecipientName != nil && *e.RecipientName != "" {
			name = *e.RecipientName
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.EmailAddress, name, e.Status)
	}
}

func printTemplates(w io.Writer, templates []model.Template) {
	if len(templates) == 0 {
		fmt.Fprintln(w, "No templates found")
		return
	}
	tw := table(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "ID\tNAME\tSUBJECT\tVARIABLES\tACTIVE")
	for _, t := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, t.Subject, len(t.Variables), yesNo(t.IsActive))
	}
}

func printCsvFiles(w io.Writer, files []model.CsvFile) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No contact lists found")
		return
	}
	tw := table(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "ID\tNAME\tROWS\tSTATUS\tFILTERED\tUPLOADED")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", f.ID, f.Name, f.RowCount, f.Status, yesNo(f.IsFiltered), date(f.CreatedAt))
	}
}

func printAds(w io.Writer, ads []model.Advertisement, link func(*model.Advertisement) string) {
	if len(ads) == 0 {
		fmt.Fprintln(w, "No advertisements found")
		return
	}
	tw := table(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "ID\tNAME\tCLICKS\tUNIQUE\tACTIVE\tLINK")
	for i := range ads {
		ad := &ads[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n", ad.ID, ad.Name, ad.Stats.Clicks, ad.Stats.UniqueClicks, yesNo(ad.IsActive), link(ad))
	}
}

func printDashboard(w io.Writer, r *service.Reports) {
	s := r.Stats
	tw := table(w)
	fmt.Fprintf(tw, "Campaigns:\t%d (%d sending, %d sent, %d scheduled, %d draft)\n",
		s.Campaigns.Total, s.Campaigns.Sending, s.Campaigns.Sent, s.Campaigns.Scheduled, s.Campaigns.Draft)
	fmt.Fprintf(tw, "Templates:\t%d\n", s.Templates)
	fmt.Fprintf(tw, "Contact lists:\t%d (%d contacts)\n", s.CsvFiles, s.Contacts)
	fmt.Fprintf(tw, "Emails sent:\t%d\n", s.Emails.Sent)
	fmt.Fprintf(tw, "Open rate:\t%s%%\n", service.Rate(s.Emails.Opened, s.Emails.Sent))
	fmt.Fprintf(tw, "Click rate:\t%s%%\n", service.Rate(s.Emails.Clicked, s.Emails.Sent))
	fmt.Fprintf(tw, "Bounce rate:\t%s%%\n", service.Rate(s.Emails.Bounced, s.Emails.Sent))
	tw.Flush()

	if len(r.Campaigns) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSent campaigns:")
	printCampaigns(w, r.Campaigns)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
