package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytmeta/internal/deps"
	"ytmeta/internal/preflight"
)

type dependencyReport struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Version     string `json:"version,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

type directoryReport struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

type checkReport struct {
	Ready        bool               `json:"ready"`
	Dependencies []dependencyReport `json:"dependencies"`
	Directories  []directoryReport  `json:"directories"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify external tools and directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			report := buildCheckReport(
				preflight.CheckSystemDeps(cmd.Context(), cfg, ctx.runner),
				preflight.RunAll(cfg),
			)

			if asJSON {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), renderCheckTable(report, colorize))
			}

			if !report.Ready {
				return fmt.Errorf("%d check(s) failed", countFailures(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the check results as JSON")
	return cmd
}

func buildCheckReport(statuses []deps.Status, dirs []preflight.Result) checkReport {
	report := checkReport{
		Ready:        true,
		Dependencies: make([]dependencyReport, 0, len(statuses)),
		Directories:  make([]directoryReport, 0, len(dirs)),
	}
	for _, status := range statuses {
		report.Dependencies = append(report.Dependencies, dependencyReport{
			Name:        status.Name,
			Command:     status.Command,
			Description: status.Description,
			Optional:    status.Optional,
			Available:   status.Available,
			Version:     status.Version,
			Detail:      status.Detail,
		})
		if !status.Available && !status.Optional {
			report.Ready = false
		}
	}
	for _, dir := range dirs {
		report.Directories = append(report.Directories, directoryReport{Name: dir.Name, Passed: dir.Passed, Detail: dir.Detail})
		if !dir.Passed {
			report.Ready = false
		}
	}
	return report
}

func countFailures(report checkReport) int {
	failures := 0
	for _, dep := range report.Dependencies {
		if !dep.Available && !dep.Optional {
			failures++
		}
	}
	for _, dir := range report.Directories {
		if !dir.Passed {
			failures++
		}
	}
	return failures
}

func renderCheckTable(report checkReport, colorize bool) string {
	rows := make([][]string, 0, len(report.Dependencies)+len(report.Directories))
	for _, dep := range report.Dependencies {
		status := paint("OK", ansiGreen, colorize)
		detail := dep.Version
		switch {
		case !dep.Available && dep.Optional:
			status = paint("OPTIONAL", ansiYellow, colorize)
			detail = dep.Detail
		case !dep.Available:
			status = paint("MISSING", ansiRed, colorize)
			detail = dep.Detail
		case dep.Detail != "":
			detail = strings.TrimSpace(strings.Join([]string{dep.Version, dep.Detail}, " "))
		}
		rows = append(rows, []string{dep.Name, status, dep.Command, detail})
	}
	for _, dir := range report.Directories {
		status := paint("OK", ansiGreen, colorize)
		if !dir.Passed {
			status = paint("FAIL", ansiRed, colorize)
		}
		rows = append(rows, []string{dir.Name, status, "", dir.Detail})
	}
	caption := "All checks passed"
	if !report.Ready {
		caption = fmt.Sprintf("%d check(s) failed", countFailures(report))
	}
	return renderTable([]string{"Check", "Status", "Command", "Detail"}, rows, []columnAlignment{alignLeft, alignCenter, alignLeft, alignLeft}, caption)
}
