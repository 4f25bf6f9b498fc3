package deps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"ytmeta/internal/services"
)

// Requirement defines an external dependency ytmeta relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	// VersionArgs, when set, are passed to the binary to report its version.
	VersionArgs []string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Version     string
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// ProbeVersions fills in Version for every available status whose requirement
// declares VersionArgs. Probe failures are recorded in Detail and never flip
// availability.
func ProbeVersions(ctx context.Context, runner services.CommandRunner, requirements []Requirement, statuses []Status) {
	if runner == nil {
		runner = services.ExecRunner{}
	}
	for i := range statuses {
		if i >= len(requirements) || !statuses[i].Available || len(requirements[i].VersionArgs) == 0 {
			continue
		}
		result, err := services.RunTool(ctx, runner, statuses[i].Command, requirements[i].VersionArgs...)
		if err != nil {
			statuses[i].Detail = "version probe failed"
			continue
		}
		statuses[i].Version = firstLine(result.Stdout)
	}
}

func firstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
