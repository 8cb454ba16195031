// Package cluster queries a Kubernetes cluster for the snapshot data the
// report is built from. Quantities cross the boundary as raw strings so
// that all normalization stays in the report package.
package cluster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	metricsclient "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/kreqio/kreq/pkg/report"
)

// Client implements report.ClusterQuerier against the Kubernetes API.
type Client struct {
	core    *kubernetes.Clientset
	metrics *metricsclient.Clientset
}

// New builds a client from the ambient REST configuration: in-cluster
// when available, otherwise the standard kubeconfig loading rules.
func New() (*Client, error) {
	cfg, err := loadRESTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster configuration: %w", err)
	}
	core, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	m, err := metricsclient.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics client: %w", err)
	}
	return &Client{core: core, metrics: m}, nil
}

func loadRESTConfig() (*rest.Config, error) {
	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

// PodRequests lists the pods in namespace (all namespaces when empty)
// and flattens them to one descriptor per container. Unset requests are
// marked report.NA.
func (c *Client) PodRequests(ctx context.Context, namespace string) ([]report.ContainerSpec, error) {
	pods, err := c.core.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	out := make([]report.ContainerSpec, 0, len(pods.Items))
	for _, p := range pods.Items {
		nodeName := p.Spec.NodeName
		if nodeName == "" {
			nodeName = report.NA
		}
		for _, ctr := range p.Spec.Containers {
			out = append(out, report.ContainerSpec{
				Namespace: p.Namespace,
				Pod:       p.Name,
				Container: ctr.Name,
				NodeName:  nodeName,
				CPU:       requestString(ctr.Resources.Requests, corev1.ResourceCPU),
				Memory:    requestString(ctr.Resources.Requests, corev1.ResourceMemory),
			})
		}
	}
	return out, nil
}

// NodeResources lists every node with its allocatable and capacity
// quantities. Control-plane filtering happens downstream in the
// aggregator.
func (c *Client) NodeResources(ctx context.Context) ([]report.NodeSpec, error) {
	nodes, err := c.core.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	out := make([]report.NodeSpec, 0, len(nodes.Items))
	for _, n := range nodes.Items {
		out = append(out, report.NodeSpec{
			Name:              n.Name,
			Labels:            n.Labels,
			AllocatableCPU:    quantityString(n.Status.Allocatable, corev1.ResourceCPU),
			AllocatableMemory: quantityString(n.Status.Allocatable, corev1.ResourceMemory),
			CapacityCPU:       quantityString(n.Status.Capacity, corev1.ResourceCPU),
			CapacityMemory:    quantityString(n.Status.Capacity, corev1.ResourceMemory),
		})
	}
	return out, nil
}

// NodeUsage reads a point-in-time usage snapshot from metrics-server. A
// missing metrics API is a degradation, not a failure: the usage section
// is simply absent from the report.
func (c *Client) NodeUsage(ctx context.Context) (map[string]report.NodeUsage, error) {
	nms, err := c.metrics.MetricsV1beta1().NodeMetricses().List(ctx, metav1.ListOptions{})
	if err != nil {
		log.Debug().Err(err).Msg("Failed to get node metrics (metrics-server may not be installed)")
		return map[string]report.NodeUsage{}, nil
	}

	out := make(map[string]report.NodeUsage, len(nms.Items))
	for _, m := range nms.Items {
		out[m.Name] = report.NodeUsage{
			CPUMillicores:   report.CPUMillicores(quantityString(m.Usage, corev1.ResourceCPU)),
			MemoryMebibytes: report.MemoryMebibytes(quantityString(m.Usage, corev1.ResourceMemory)),
		}
	}
	return out, nil
}

// requestString renders a request quantity in its raw string form, NA
// when the request is not declared.
func requestString(requests corev1.ResourceList, name corev1.ResourceName) string {
	q, ok := requests[name]
	if !ok {
		return report.NA
	}
	return q.String()
}

// quantityString renders a status quantity, "0" when missing. Node
// status always carries these, the default only guards partial objects.
func quantityString(list corev1.ResourceList, name corev1.ResourceName) string {
	q, ok := list[name]
	if !ok {
		return "0"
	}
	return q.String()
}
