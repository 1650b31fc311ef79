package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/config"
	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/service"
	"github.com/unclebandit/campaign-dashboard/internal/session"
)

// cli carries what every subcommand needs once the root has resolved its
// flags.
type cli struct {
	fs          afero.Fs
	apiURL      string
	sessionPath string
	verbose     bool

	cfg    *config.Config
	logger *slog.Logger
	client *api.Client

	auth      *service.AuthService
	campaigns *service.CampaignService
	templates *service.TemplateService
	csv       *service.CSVService
	ads       *service.AdvertisementService
	reports   *service.ReportService
	watcher   *service.CampaignWatcher
	events    *queue.InMemoryQueue
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	app := &cli{fs: fs}

	root := &cobra.Command{
		Use:   "mailctl",
		Short: "Command-line client for the campaign backend",
		Long: `mailctl drives the campaign backend from a terminal.

Sign in once with "mailctl login"; the session is cached in
~/.mailctl/session.json and refreshed automatically.

Examples:
  mailctl login --email me@example.com
  mailctl campaigns list --status sending
  mailctl campaigns watch <id>
  mailctl csv upload contacts.csv --name "March leads"`,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	root.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "Backend base URL (default $API_URL)")
	root.PersistentFlags().StringVar(&app.sessionPath, "session", "", "Session cache file (default ~/.mailctl/session.json)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(
		app.loginCmd(),
		app.logoutCmd(),
		app.whoamiCmd(),
		app.campaignsCmd(),
		app.templatesCmd(),
		app.csvCmd(),
		app.adsCmd(),
		app.reportsCmd(),
	)
	return root
}

func (a *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.apiURL == "" {
		a.apiURL = cfg.APIURL
	}
	if a.sessionPath == "" {
		if a.sessionPath, err = session.DefaultPath(); err != nil {
			return err
		}
	}

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), "text", level)

	tokens := session.NewManager(session.NewFileStore(a.fs, a.sessionPath))
	a.client = api.New(a.apiURL, tokens,
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithLogger(a.logger),
	)

	v := form.NewValidator()
	a.auth = &service.AuthService{Auth: a.client.Auth, Tokens: tokens, Validator: v, Logger: a.logger}
	a.campaigns = &service.CampaignService{Campaigns: a.client.Campaigns, Validator: v, Logger: a.logger}
	a.templates = &service.TemplateService{Templates: a.client.Templates, Validator: v}
	a.csv = &service.CSVService{CsvFiles: a.client.CsvFiles}
	a.ads = &service.AdvertisementService{Ads: a.client.Advertisements, Validator: v}
	a.reports = &service.ReportService{Reports: a.client.Reports, Campaigns: a.client.Campaigns}

	a.events = queue.NewInMemoryQueue()
	a.watcher = service.NewCampaignWatcher(a.client.Campaigns, a.events, cfg.PollInterval)
	a.watcher.Logger = a.logger
	return nil
}

// explain turns backend and validation failures into terminal-friendly
// errors.
func explain(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, appErrors.ErrSessionExpired) || appErrors.IsUnauthorized(err) {
		return errors.New("not signed in or session expired; run \"mailctl login\"")
	}
	var apiErr *appErrors.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("backend: %s (%d)", apiErr.Message, apiErr.Status)
	}
	return err
}
