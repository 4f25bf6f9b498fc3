package logging

import "strings"

const runIDDisplayLen = 8

// FormatSubject builds the run/stage subject string used in console output.
func FormatSubject(runID, stage string) string {
	runID = strings.TrimSpace(runID)
	stage = strings.TrimSpace(stage)
	if len(runID) > runIDDisplayLen {
		runID = runID[:runIDDisplayLen]
	}
	switch {
	case runID != "" && stage != "":
		return "Run " + runID + " (" + stage + ")"
	case runID != "":
		return "Run " + runID
	default:
		return stage
	}
}
