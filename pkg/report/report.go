package report

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// ClusterQuerier is the data source for one report snapshot. A failed
// call aborts the run; no partial result is ever consumed.
type ClusterQuerier interface {
	// PodRequests returns one descriptor per container, scoped to one
	// namespace or, with an empty namespace, cluster-wide.
	PodRequests(ctx context.Context, namespace string) ([]ContainerSpec, error)
	// NodeResources returns every node with its allocatable/capacity
	// quantities and labels.
	NodeResources(ctx context.Context) ([]NodeSpec, error)
	// NodeUsage returns a point-in-time usage snapshot keyed by node
	// name; an empty map when the metrics API is unavailable.
	NodeUsage(ctx context.Context) (map[string]NodeUsage, error)
}

// Options selects the scope and shape of a report.
type Options struct {
	// Namespace scopes the pod listing; empty means all namespaces.
	Namespace string
	// Wide adds the node resource section.
	Wide bool
}

// Report is one aggregated snapshot.
type Report struct {
	Namespace  string
	Wide       bool
	Containers []ContainerRecord
	// TotalCPU is millicores, TotalMemory is MiB, summed over all
	// container requests.
	TotalCPU    float64
	TotalMemory float64
	Nodes       map[string]NodeResourceRecord
	Usage       map[string]NodeUsage
}

// Build takes one snapshot from the querier and aggregates it.
func Build(ctx context.Context, q ClusterQuerier, opts Options) (*Report, error) {
	containers, err := q.PodRequests(ctx, opts.Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to get pod data: %w", err)
	}

	records, totalCPU, totalMemory := Aggregate(containers)
	rep := &Report{
		Namespace:   opts.Namespace,
		Wide:        opts.Wide,
		Containers:  records,
		TotalCPU:    totalCPU,
		TotalMemory: totalMemory,
	}

	if opts.Wide {
		nodes, err := q.NodeResources(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get node data: %w", err)
		}
		rep.Nodes = AggregateNodes(nodes)

		usage, err := q.NodeUsage(ctx)
		if err != nil {
			// usage is best-effort; the section is dropped, the run is not
			log.Debug().Err(err).Msg("Node usage unavailable, skipping usage section")
		} else {
			rep.Usage = usage
		}
	}

	return rep, nil
}

// Run builds a report and renders it to out.
func Run(ctx context.Context, q ClusterQuerier, opts Options, out io.Writer) error {
	rep, err := Build(ctx, q, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, Render(rep)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
