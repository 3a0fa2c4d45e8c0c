package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/example/go-qconform/internal/config"
	"github.com/example/go-qconform/internal/conform"
	"github.com/example/go-qconform/internal/device"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the conformance battery against a device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			name := config.NormalizeDevice(cfg.Device.Name)
			if _, err := device.Lookup(name); err != nil {
				return err
			}

			runner := &conform.Runner{
				Device: name,
				Options: device.Options{
					Shots:    cfg.Run.Shots,
					Analytic: cfg.Run.Analytic,
					Seed:     cfg.Run.Seed,
				},
				MaxRuns: cfg.Run.MaxRuns,
			}

			outcomes := runner.RunAll(conform.Battery())
			summary := conform.Summarize(outcomes)
			report := conform.Report{
				Device:   name,
				Shots:    cfg.Run.Shots,
				Analytic: cfg.Run.Analytic,
				Seed:     cfg.Run.Seed,
				Summary:  summary,
				Outcomes: outcomes,
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			default:
				printOutcomeTable(cmd, outcomes, summary)
			}

			if cfg.Run.Report != "" {
				if err := conform.SaveReport(cfg.Run.Report, report); err != nil {
					return err
				}
				slog.Info("report written", "path", cfg.Run.Report)
			}

			slog.Info("battery finished",
				"device", name,
				"ok", summary.OK,
				"skipped", summary.Skipped,
				"failed", summary.Failed,
			)
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d cases failed", summary.Failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	return cmd
}

func printOutcomeTable(cmd *cobra.Command, outcomes []conform.Outcome, summary conform.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CASE\tSTATUS\tATTEMPTS\tREASON")
	for _, o := range outcomes {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", o.Case, o.Status, o.Attempts, o.Reason)
	}
	_ = w.Flush()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d ok, %d skipped, %d failed\n",
		summary.OK, summary.Skipped, summary.Failed)
}
