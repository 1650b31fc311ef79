package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func (a *cli) campaignsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign", "c"},
		Short:   "List, inspect and control campaigns",
	}
	cmd.AddCommand(
		a.campaignsListCmd(),
		a.campaignsShowCmd(),
		a.campaignActionCmd("start", "Start sending a campaign", "Campaign started", (*service.CampaignService).Start),
		a.campaignActionCmd("pause", "Pause a sending campaign", "Campaign paused", (*service.CampaignService).Pause),
		a.campaignActionCmd("cancel", "Cancel a campaign", "Campaign cancelled", (*service.CampaignService).Cancel),
		a.campaignsDuplicateCmd(),
		a.campaignsWatchCmd(),
	)
	return cmd
}

func (a *cli) campaignsListCmd() *cobra.Command {
	var status, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			campaigns, err := a.campaigns.List(cmd.Context(), status, search)
			if err != nil {
				return explain(err)
			}
			printCampaigns(cmd.OutOrStdout(), campaigns)
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only campaigns in this status (draft, scheduled, sending, sent, paused, cancelled)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Match campaign names")
	return cmd
}

func (a *cli) campaignsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a campaign with its delivery stats and first recipients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.campaigns.Detail(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			out := cmd.OutOrStdout()
			printCampaign(out, details.Campaign)
			if details.EmailsErr != nil {
				fmt.Fprintf(out, "\nRecipients unavailable: %v\n", explain(details.EmailsErr))
				return nil
			}
			printRecipients(out, details.Emails)
			return nil
		},
	}
}

// campaignActionCmd takes a method expression since the service only exists
// once setup has run.
func (a *cli) campaignActionCmd(use, short, done string, do func(*service.CampaignService, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := do(a.campaigns, cmd.Context(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}

func (a *cli) campaignsDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a campaign into a new draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.campaigns.Duplicate(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created draft %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}
}

func (a *cli) campaignsWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <id>",
		Short: "Follow a sending campaign until it stops",
		Long: `Poll the campaign while it is sending and print its progress on
every refresh. Status changes are printed as they are observed. Exits when
the campaign leaves the sending state or on Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			// status events arrive on queue goroutines
			var mu sync.Mutex
			printf := func(format string, args ...any) {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintf(out, format, args...)
			}
			err := a.events.Subscribe(queue.TopicCampaignStatus, func(payload any) error {
				if ev, ok := payload.(model.StatusEvent); ok {
					printf("Status: %s -> %s\n", ev.From, ev.To)
				}
				return nil
			})
			if err != nil {
				return err
			}

			last, err := a.watcher.Watch(ctx, args[0], func(c *model.Campaign) {
				sent, total := c.Stats.Progress()
				printf("%s  %s  %d / %d sent\n", c.Name, c.Status, sent, total)
			})
			a.events.Wait()
			if err != nil && !errors.Is(err, context.Canceled) {
				return explain(err)
			}
			if last != nil {
				fmt.Fprintf(out, "Final status: %s (opened %s%%, clicked %s%%)\n",
					last.Status,
					service.Rate(last.Stats.Opened, last.Stats.Sent),
					service.Rate(last.Stats.Clicked, last.Stats.Sent),
				)
			}
			return nil
		},
	}
}
