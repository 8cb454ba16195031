// Package report implements the core of kreq: normalization of cluster
// resource quantity strings and aggregation of container requests and
// node resources into a single snapshot report.
package report

// NA marks an absent resource quantity in a descriptor. Absence means
// "no request set", which is valid cluster state, and normalizes to 0.
const NA = "N/A"

// ContainerSpec is one container's resource requests as delivered by the
// cluster querier. CPU and Memory hold raw quantity strings, NA when the
// request is not declared.
type ContainerSpec struct {
	Namespace string
	Pod       string
	Container string
	NodeName  string
	CPU       string
	Memory    string
}

// ContainerRecord is the aggregated view of one container. Built once
// per container in the snapshot and never mutated afterwards.
type ContainerRecord struct {
	// FullName is the namespace/pod/container composite identity.
	FullName  string
	NodeName  string
	CPURaw    string
	MemoryRaw string
	// CPUMillicores and MemoryMebibytes are the normalized request
	// values; 0 when the request is absent or malformed.
	CPUMillicores   float64
	MemoryMebibytes float64
}

// NodeSpec is one node's resource figures as delivered by the cluster
// querier, quantities still in raw string form.
type NodeSpec struct {
	Name              string
	Labels            map[string]string
	AllocatableCPU    string
	AllocatableMemory string
	CapacityCPU       string
	CapacityMemory    string
}

// NodeResourceRecord holds normalized allocatable and capacity figures
// for one worker node, in millicores and MiB.
type NodeResourceRecord struct {
	Name              string
	AllocatableCPU    float64
	AllocatableMemory float64
	CapacityCPU       float64
	CapacityMemory    float64
}

// NodeUsage is a point-in-time usage reading for one node, present only
// when the metrics API answered.
type NodeUsage struct {
	CPUMillicores   float64
	MemoryMebibytes float64
}
