package report

import (
	"fmt"
	"sort"
	"strings"
)

const (
	reportWidth     = 120
	maxNameColWidth = 80
)

// Render formats a report as a human-readable table.
func Render(rep *Report) string {
	var b strings.Builder

	writeContainerSection(&b, rep)
	if rep.Wide {
		writeNodeSection(&b, rep)
	}
	writeSummary(&b, rep)

	return b.String()
}

func writeContainerSection(b *strings.Builder, rep *Report) {
	title := "KUBERNETES RESOURCES REPORT"
	if rep.Namespace != "" {
		title += fmt.Sprintf(" (namespace: %s)", rep.Namespace)
	}
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("=", reportWidth))

	nameWidth := nameColumnWidth(rep.Containers)

	if rep.Wide {
		fmt.Fprintf(b, "%-*s %-15s %-12s %-12s %10s %12s\n",
			nameWidth, "NAMESPACE/POD/CONTAINER", "NODE", "CPU (orig)", "MEM (orig)", "CPU (m)", "MEM (MiB)")
		fmt.Fprintf(b, "%s\n", strings.Repeat("-", nameWidth+67))
	} else {
		fmt.Fprintf(b, "%-*s %-12s %-12s %10s %12s\n",
			nameWidth, "NAMESPACE/POD/CONTAINER", "CPU (orig)", "MEM (orig)", "CPU (m)", "MEM (MiB)")
		fmt.Fprintf(b, "%s\n", strings.Repeat("-", nameWidth+52))
	}

	for _, c := range sortedByName(rep.Containers) {
		name := truncate(c.FullName, nameWidth)
		if rep.Wide {
			fmt.Fprintf(b, "%-*s %-15s %-12s %-12s %8.0fm %10.1fMi\n",
				nameWidth, name, c.NodeName, c.CPURaw, c.MemoryRaw, c.CPUMillicores, c.MemoryMebibytes)
		} else {
			fmt.Fprintf(b, "%-*s %-12s %-12s %8.0fm %10.1fMi\n",
				nameWidth, name, c.CPURaw, c.MemoryRaw, c.CPUMillicores, c.MemoryMebibytes)
		}
	}
}

func writeNodeSection(b *strings.Builder, rep *Report) {
	fmt.Fprintf(b, "\nNODE RESOURCES:\n%s\n", strings.Repeat("=", reportWidth))

	if len(rep.Nodes) == 0 {
		fmt.Fprintf(b, "No worker node resources found\n")
		return
	}

	fmt.Fprintf(b, "%-20s %-15s %-15s %-15s %-15s\n",
		"NODE NAME", "ALLOC CPU (m)", "ALLOC MEM (MiB)", "TOTAL CPU (m)", "TOTAL MEM (MiB)")
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 80))

	for _, name := range sortedNodeNames(rep.Nodes) {
		n := rep.Nodes[name]
		fmt.Fprintf(b, "%-20s %-15.0f %-15.1f %-15.0f %-15.1f\n",
			truncate(n.Name, 20), n.AllocatableCPU, n.AllocatableMemory, n.CapacityCPU, n.CapacityMemory)
	}

	if len(rep.Usage) > 0 {
		writeUsageSection(b, rep)
	}
}

func writeUsageSection(b *strings.Builder, rep *Report) {
	fmt.Fprintf(b, "\nNODE USAGE:\n")
	fmt.Fprintf(b, "%-20s %-15s %-12s %-15s %-12s\n",
		"NODE NAME", "USED CPU (m)", "CPU UTIL%", "USED MEM (MiB)", "MEM UTIL%")
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 80))

	for _, name := range sortedNodeNames(rep.Nodes) {
		u, ok := rep.Usage[name]
		if !ok {
			continue
		}
		n := rep.Nodes[name]
		fmt.Fprintf(b, "%-20s %-15.0f %-11.1f%% %-15.1f %-11.1f%%\n",
			truncate(name, 20),
			u.CPUMillicores,
			calcPercentage(u.CPUMillicores, n.AllocatableCPU),
			u.MemoryMebibytes,
			calcPercentage(u.MemoryMebibytes, n.AllocatableMemory))
	}
}

func writeSummary(b *strings.Builder, rep *Report) {
	fmt.Fprintf(b, "\nSUMMARY:\n%s\n", strings.Repeat("=", reportWidth))
	fmt.Fprintf(b, "Total Container CPU Requests: %.0fm (%.2f cores)\n", rep.TotalCPU, rep.TotalCPU/milliCPUBase)
	fmt.Fprintf(b, "Total Container Memory Requests: %.1fMiB (%.2fGiB)\n", rep.TotalMemory, rep.TotalMemory/mebiPerGibi)

	if rep.Wide && len(rep.Nodes) > 0 {
		allocCPU, allocMemory, capCPU, capMemory := NodeTotals(rep.Nodes)

		fmt.Fprintf(b, "\nCluster Worker Node Resources:\n")
		fmt.Fprintf(b, "Total Allocatable CPU: %.0fm (%.2f cores)\n", allocCPU, allocCPU/milliCPUBase)
		fmt.Fprintf(b, "Total Allocatable Memory: %.1fMiB (%.2fGiB)\n", allocMemory, allocMemory/mebiPerGibi)
		fmt.Fprintf(b, "Total Node Capacity CPU: %.0fm (%.2f cores)\n", capCPU, capCPU/milliCPUBase)
		fmt.Fprintf(b, "Total Node Capacity Memory: %.1fMiB (%.2fGiB)\n", capMemory, capMemory/mebiPerGibi)

		// utilization is omitted, not zeroed, when nothing is allocatable
		if allocCPU > 0 {
			fmt.Fprintf(b, "\nCPU Request Utilization: %.1f%% of allocatable\n", calcPercentage(rep.TotalCPU, allocCPU))
		}
		if allocMemory > 0 {
			fmt.Fprintf(b, "Memory Request Utilization: %.1f%% of allocatable\n", calcPercentage(rep.TotalMemory, allocMemory))
		}
	}

	fmt.Fprintf(b, "\nContainers processed: %d\n", len(rep.Containers))
}

// nameColumnWidth sizes the identity column to the longest composite
// name, capped at maxNameColWidth.
func nameColumnWidth(records []ContainerRecord) int {
	width := 30
	for _, c := range records {
		if len(c.FullName) > width {
			width = len(c.FullName)
		}
	}
	if width > maxNameColWidth {
		width = maxNameColWidth
	}
	return width
}

// sortedByName returns the records ordered by composite identity without
// touching the input slice.
func sortedByName(records []ContainerRecord) []ContainerRecord {
	out := make([]ContainerRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return out
}

func sortedNodeNames(nodes map[string]NodeResourceRecord) []string {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// calcPercentage calculates percentage with zero check
func calcPercentage(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * 100
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
