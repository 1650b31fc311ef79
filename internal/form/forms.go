package form

import (
	"strings"
	"time"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
)

type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

func (Login) Messages() map[string]string {
	return map[string]string{
		"password.min": "Password must be at least 6 characters",
	}
}

type Signup struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	FullName        string `form:"full_name" validate:"required,min=2"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
}

func (Signup) Messages() map[string]string {
	return map[string]string{
		"password.min":             "Password must be at least 6 characters",
		"full_name.min":            "Name must be at least 2 characters",
		"full_name.required":       "Name must be at least 2 characters",
		"confirm_password.eqfield": "Passwords don't match",
	}
}

// Campaign is the new-campaign form. Unless SendImmediately is set the
// schedule date and time are required.
type Campaign struct {
	Name            string `form:"name" validate:"notblank"`
	Description     string `form:"description"`
	TemplateID      string `form:"template_id"`
	CsvFileID       string `form:"csv_file_id"`
	FromName        string `form:"from_name" validate:"notblank"`
	FromEmail       string `form:"from_email" validate:"notblank,email"`
	ReplyTo         string `form:"reply_to" validate:"omitempty,email"`
	SendImmediately bool   `form:"send_immediately"`
	ScheduledDate   string `form:"scheduled_date" validate:"required_if=SendImmediately false"`
	ScheduledTime   string `form:"scheduled_time" validate:"required_if=SendImmediately false"`
	Timezone        string `form:"timezone"`
}

func (Campaign) Messages() map[string]string {
	return map[string]string{
		"name.notblank":              "Campaign name is required",
		"from_name.notblank":         "Sender name is required",
		"from_email.notblank":        "Sender email address is required",
		"scheduled_date.required_if": "Scheduled send date and time are required",
		"scheduled_time.required_if": "Scheduled send date and time are required",
	}
}

// ScheduledAt combines date (2006-01-02) and time (15:04) in the form's
// timezone, falling back to UTC for an unknown zone.
func (c Campaign) ScheduledAt() (time.Time, error) {
	loc := time.UTC
	if c.Timezone != "" {
		if l, err := time.LoadLocation(c.Timezone); err == nil {
			loc = l
		}
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", c.ScheduledDate+" "+c.ScheduledTime, loc)
	if err != nil {
		ve := &appErrors.ValidationError{}
		ve.Add("scheduled_date", "Scheduled send date and time are invalid")
		return time.Time{}, ve
	}
	return t, nil
}

// Template is the new-template form. In visual mode the HTML is generated from
// BodyText; in html mode CustomHTML is used as is.
type Template struct {
	Name       string `form:"name" validate:"notblank"`
	Subject    string `form:"subject" validate:"notblank"`
	EditorMode string `form:"editor_mode" validate:"omitempty,oneof=visual html"`
	BodyText   string `form:"body_text"`
	CTAText    string `form:"cta_text"`
	CTALink    string `form:"cta_link" validate:"omitempty,weburl"`
	CustomHTML string `form:"custom_html"`
}

func (Template) Messages() map[string]string {
	return map[string]string{
		"name.notblank":    "Template name is required",
		"subject.notblank": "Subject is required",
	}
}

// HTMLMode reports whether the custom HTML editor is in use.
func (t Template) HTMLMode() bool {
	return strings.EqualFold(t.EditorMode, "html")
}

type Advertisement struct {
	Name           string `form:"name" validate:"notblank"`
	Description    string `form:"description"`
	DestinationURL string `form:"destination_url" validate:"notblank,weburl"`
	Platform       string `form:"platform"`
	UTMSource      string `form:"utm_source"`
	UTMMedium      string `form:"utm_medium"`
	UTMCampaign    string `form:"utm_campaign"`
}

func (Advertisement) Messages() map[string]string {
	return map[string]string{
		"name.notblank":            "Advertisement name is required",
		"destination_url.notblank": "Destination URL is required",
	}
}

type CsvFilter struct {
	Name         string   `form:"name"`
	Countries    []string `form:"countries"`
	Timezones    []string `form:"timezones"`
	EmailDomains []string `form:"email_domains"`
}
