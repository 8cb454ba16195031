package report

import (
	"strings"
	"testing"
)

func testReport() *Report {
	containers := []ContainerSpec{
		{Namespace: "kube-system", Pod: "dns", Container: "coredns", NodeName: "worker-1", CPU: "100m", Memory: "70Mi"},
		{Namespace: "default", Pod: "web", Container: "app", NodeName: "worker-2", CPU: "500m", Memory: "128Mi"},
	}
	records, totalCPU, totalMemory := Aggregate(containers)
	return &Report{
		Containers:  records,
		TotalCPU:    totalCPU,
		TotalMemory: totalMemory,
	}
}

func TestRender(t *testing.T) {
	out := Render(testReport())

	if !strings.Contains(out, "KUBERNETES RESOURCES REPORT") {
		t.Errorf("Report should contain the title, got:\n%s", out)
	}
	if !strings.Contains(out, "NAMESPACE/POD/CONTAINER") {
		t.Errorf("Report should contain the container table header, got:\n%s", out)
	}
	if !strings.Contains(out, "Total Container CPU Requests: 600m (0.60 cores)") {
		t.Errorf("Report should contain the CPU total, got:\n%s", out)
	}
	if !strings.Contains(out, "Total Container Memory Requests: 198.0MiB") {
		t.Errorf("Report should contain the memory total, got:\n%s", out)
	}
	if !strings.Contains(out, "Containers processed: 2") {
		t.Errorf("Report should contain the container count, got:\n%s", out)
	}

	// narrow mode carries no node information
	if strings.Contains(out, "NODE RESOURCES") {
		t.Errorf("Narrow report should not contain the node section, got:\n%s", out)
	}
}

func TestRenderSortsByFullName(t *testing.T) {
	out := Render(testReport())

	first := strings.Index(out, "default/web/app")
	second := strings.Index(out, "kube-system/dns/coredns")
	if first == -1 || second == -1 {
		t.Fatalf("Report should contain both composite names, got:\n%s", out)
	}
	if first > second {
		t.Errorf("Rows should be sorted lexicographically by composite name, got:\n%s", out)
	}
}

func TestRenderNamespaceTitle(t *testing.T) {
	rep := testReport()
	rep.Namespace = "default"

	out := Render(rep)
	if !strings.Contains(out, "KUBERNETES RESOURCES REPORT (namespace: default)") {
		t.Errorf("Report title should carry the namespace filter, got:\n%s", out)
	}
}

func TestRenderWide(t *testing.T) {
	rep := testReport()
	rep.Wide = true
	rep.Nodes = map[string]NodeResourceRecord{
		"worker-1": {Name: "worker-1", AllocatableCPU: 3800, AllocatableMemory: 7168, CapacityCPU: 4000, CapacityMemory: 8192},
	}

	out := Render(rep)

	if !strings.Contains(out, "NODE RESOURCES:") {
		t.Errorf("Wide report should contain the node section, got:\n%s", out)
	}
	if !strings.Contains(out, "NODE") {
		t.Errorf("Wide container table should carry the NODE column, got:\n%s", out)
	}
	if !strings.Contains(out, "worker-1") {
		t.Errorf("Node table should list worker-1, got:\n%s", out)
	}
	if !strings.Contains(out, "Total Allocatable CPU: 3800m (3.80 cores)") {
		t.Errorf("Summary should carry node totals, got:\n%s", out)
	}
	if !strings.Contains(out, "CPU Request Utilization:") {
		t.Errorf("Summary should carry the CPU utilization line, got:\n%s", out)
	}
	// no usage data, no usage section
	if strings.Contains(out, "NODE USAGE:") {
		t.Errorf("Usage section should be absent without usage data, got:\n%s", out)
	}
}

func TestRenderWideNoNodes(t *testing.T) {
	rep := testReport()
	rep.Wide = true
	rep.Nodes = map[string]NodeResourceRecord{}

	out := Render(rep)

	if !strings.Contains(out, "No worker node resources found") {
		t.Errorf("Empty node listing should be reported as such, got:\n%s", out)
	}
	// utilization figures are omitted, not reported as zero
	if strings.Contains(out, "CPU Request Utilization:") {
		t.Errorf("Utilization should be omitted without node data, got:\n%s", out)
	}
}

func TestRenderUsageSection(t *testing.T) {
	rep := testReport()
	rep.Wide = true
	rep.Nodes = map[string]NodeResourceRecord{
		"worker-1": {Name: "worker-1", AllocatableCPU: 2000, AllocatableMemory: 4096, CapacityCPU: 2000, CapacityMemory: 4096},
	}
	rep.Usage = map[string]NodeUsage{
		"worker-1": {CPUMillicores: 500, MemoryMebibytes: 1024},
	}

	out := Render(rep)

	if !strings.Contains(out, "NODE USAGE:") {
		t.Errorf("Wide report with usage data should contain the usage section, got:\n%s", out)
	}
	if !strings.Contains(out, "25.0") {
		t.Errorf("Usage section should carry the CPU utilization percentage, got:\n%s", out)
	}
}

func TestNameColumnWidth(t *testing.T) {
	short := []ContainerRecord{{FullName: "a/b/c"}}
	if got := nameColumnWidth(short); got != 30 {
		t.Errorf("Short names should keep the 30-column floor, got %d", got)
	}

	long := []ContainerRecord{{FullName: strings.Repeat("x", 200)}}
	if got := nameColumnWidth(long); got != maxNameColWidth {
		t.Errorf("Width should be capped at %d, got %d", maxNameColWidth, got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this-is-a-long-name", 10, "this-is..."},
	}

	for _, test := range tests {
		if got := truncate(test.input, test.maxLen); got != test.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", test.input, test.maxLen, got, test.expected)
		}
	}
}

func TestCalcPercentage(t *testing.T) {
	if got := calcPercentage(500, 2000); got != 25 {
		t.Errorf("calcPercentage(500, 2000) = %v, expected 25", got)
	}
	if got := calcPercentage(500, 0); got != 0 {
		t.Errorf("calcPercentage with zero total should be 0, got %v", got)
	}
}
