package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *cli) templatesCmd() *cobra.Command {
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List email templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := a.templates.List(cmd.Context(), search)
			if err != nil {
				return explain(err)
			}
			printTemplates(cmd.OutOrStdout(), templates)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "q", "", "Match template names")

	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "t"},
		Short:   "Inspect email templates",
	}
	cmd.AddCommand(list)
	return cmd
}

func (a *cli) csvCmd() *cobra.Command {
	var filtered string
	list := &cobra.Command{
		Use:   "list",
		Short: "List contact lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := a.csv.List(cmd.Context(), filtered)
			if err != nil {
				return explain(err)
			}
			printCsvFiles(cmd.OutOrStdout(), files)
			return nil
		},
	}
	list.Flags().StringVar(&filtered, "filtered", "", `"true" for filtered subsets only, "false" for uploads only`)

	var name string
	upload := &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Upload a CSV file as a new contact list",
		Long: `Upload a CSV file. The list is named after the file, without its
.csv extension, unless --name is given. The backend validates rows
asynchronously; check "mailctl csv list" for the final status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.fs.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			file, err := a.csv.Upload(cmd.Context(), filepath.Base(args[0]), name, f)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s), status %s\n", file.Name, file.ID, file.Status)
			return nil
		},
	}
	upload.Flags().StringVarP(&name, "name", "n", "", "List name")

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Manage contact lists",
	}
	cmd.AddCommand(list, upload)
	return cmd
}

func (a *cli) adsCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List advertisements with their click counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ads, err := a.ads.List(cmd.Context())
			if err != nil {
				return explain(err)
			}
			printAds(cmd.OutOrStdout(), ads, a.ads.TrackingLink)
			return nil
		},
	}
	link := &cobra.Command{
		Use:   "link <id>",
		Short: "Print the tracking link of an advertisement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ad, err := a.ads.Get(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.ads.TrackingLink(ad))
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:     "ads",
		Aliases: []string{"ad"},
		Short:   "Inspect advertisement tracking links",
	}
	cmd.AddCommand(list, link)
	return cmd
}

func (a *cli) reportsCmd() *cobra.Command {
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show account-wide campaign and email totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.reports.ReportsPage(cmd.Context())
			if err != nil {
				return explain(err)
			}
			printDashboard(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Campaign reporting",
	}
	cmd.AddCommand(dashboard)
	return cmd
}
