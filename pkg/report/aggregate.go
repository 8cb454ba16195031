package report

// controlPlaneLabel excludes masters from the node resource view.
const controlPlaneLabel = "node-role.kubernetes.io/control-plane"

// Aggregate folds container descriptors into one record per container
// plus running CPU (millicores) and memory (MiB) totals. It is a pure
// fold: no external state, no failure path, and the record count always
// matches the input count.
func Aggregate(containers []ContainerSpec) ([]ContainerRecord, float64, float64) {
	records := make([]ContainerRecord, 0, len(containers))
	var totalCPU, totalMemory float64

	for _, c := range containers {
		cpu := CPUMillicores(c.CPU)
		memory := MemoryMebibytes(c.Memory)

		records = append(records, ContainerRecord{
			FullName:        c.Namespace + "/" + c.Pod + "/" + c.Container,
			NodeName:        c.NodeName,
			CPURaw:          c.CPU,
			MemoryRaw:       c.Memory,
			CPUMillicores:   cpu,
			MemoryMebibytes: memory,
		})

		totalCPU += cpu
		totalMemory += memory
	}

	return records, totalCPU, totalMemory
}

// AggregateNodes normalizes allocatable and capacity quantities for all
// worker nodes, keyed by node name. Nodes labeled as control-plane are
// excluded regardless of their resource values.
func AggregateNodes(nodes []NodeSpec) map[string]NodeResourceRecord {
	out := make(map[string]NodeResourceRecord)
	for _, n := range nodes {
		if _, ok := n.Labels[controlPlaneLabel]; ok {
			continue
		}
		out[n.Name] = NodeResourceRecord{
			Name:              n.Name,
			AllocatableCPU:    CPUMillicores(n.AllocatableCPU),
			AllocatableMemory: MemoryMebibytes(n.AllocatableMemory),
			CapacityCPU:       CPUMillicores(n.CapacityCPU),
			CapacityMemory:    MemoryMebibytes(n.CapacityMemory),
		}
	}
	return out
}

// NodeTotals sums allocatable and capacity figures across all records.
func NodeTotals(nodes map[string]NodeResourceRecord) (allocCPU, allocMemory, capCPU, capMemory float64) {
	for _, n := range nodes {
		allocCPU += n.AllocatableCPU
		allocMemory += n.AllocatableMemory
		capCPU += n.CapacityCPU
		capMemory += n.CapacityMemory
	}
	return allocCPU, allocMemory, capCPU, capMemory
}
