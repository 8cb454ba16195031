package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kreqio/kreq/pkg/cluster"
	"github.com/kreqio/kreq/pkg/config"
	"github.com/kreqio/kreq/pkg/report"
	"github.com/kreqio/kreq/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewReportCommand creates the root cobra command for kreq
func NewReportCommand(streams IOStreams) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "kreq",
		Short: "kreq - report aggregate CPU/memory resource requests for cluster pods",
		Long: `kreq reports the aggregate CPU and memory resource requests of the pods
in a Kubernetes cluster, one synchronous snapshot per invocation.

With --wide the report adds allocatable/capacity figures for the worker
nodes and utilization percentages of the container requests against the
cluster's allocatable resources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.Flags().StringVarP(&cfg.Namespace, "namespace", "n", cfg.Namespace, "Filter pods by specific namespace (default: all namespaces)")
	cmd.Flags().BoolVar(&cfg.Wide, "wide", cfg.Wide, "Show wide output including node resources")

	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// runReport takes one cluster snapshot and renders it to the output stream
func runReport(ctx context.Context, cfg *config.Config, streams IOStreams) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %v", err)
	}

	client, err := cluster.New()
	if err != nil {
		return err
	}

	return report.Run(ctx, client, report.Options{
		Namespace: cfg.Namespace,
		Wide:      cfg.Wide,
	}, streams.Out)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
