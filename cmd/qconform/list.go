package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/example/go-qconform/internal/conform"
	"github.com/example/go-qconform/internal/device"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the conformance cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "CASE\tWIRES\tMODE\tREQUIRES")
			for _, c := range conform.Battery() {
				mode := "expval/var"
				if c.Sampling {
					mode = "sample"
				}
				requires := strings.Join(c.Needs, ",")
				if requires == "" {
					requires = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", c.Name, c.Wires, mode, requires)
			}
			return w.Flush()
		},
	}
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List registered devices and their capabilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range device.Names() {
				dev, err := device.New(name, 1, device.Options{Analytic: true})
				if err != nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t(construct failed: %v)\n", name, err)
					continue
				}
				caps := dev.Capabilities()
				keys := make([]string, 0, len(caps))
				for k := range caps {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				parts := make([]string, 0, len(keys))
				for _, k := range keys {
					parts = append(parts, fmt.Sprintf("%s=%v", k, caps[k]))
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(parts, " "))
			}
			return nil
		},
	}
}
