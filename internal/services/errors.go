package services

import (
	"errors"
	"fmt"
	"strings"
)

// Markers for the failure kinds a pipeline stage can report. The typed errors
// below match their marker through errors.Is.
var (
	ErrToolExecution  = errors.New("tool execution error")
	ErrParse          = errors.New("parse error")
	ErrOutputNotFound = errors.New("output not found")
)

// maxStderrDetail bounds how much captured stderr ends up in an error message.
const maxStderrDetail = 4096

// ToolExecutionError reports an external process that exited unsuccessfully.
type ToolExecutionError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolExecutionError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s exited with status %d", displayTool(e.Tool), e.ExitCode)
	if detail := tail(strings.TrimSpace(e.Stderr), maxStderrDetail); detail != "" {
		b.WriteString(": ")
		b.WriteString(detail)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ToolExecutionError) Is(target error) bool { return target == ErrToolExecution }

func (e *ToolExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError reports tool output that is not in the expected structured format.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	source := strings.TrimSpace(e.Source)
	if source == "" {
		source = "tool output"
	}
	if e.Err == nil {
		return fmt.Sprintf("parse %s", source)
	}
	return fmt.Sprintf("parse %s: %v", source, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OutputNotFoundError reports an artifact that is missing after a tool completed.
// Path names the exact file that was expected; Pattern describes a search when
// no single path was known in advance.
type OutputNotFoundError struct {
	Path    string
	Pattern string
}

func (e *OutputNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Path != "" && e.Pattern != "":
		return fmt.Sprintf("no output matching %s in %s", e.Pattern, e.Path)
	case e.Path != "":
		return fmt.Sprintf("output not found: %s", e.Path)
	case e.Pattern != "":
		return fmt.Sprintf("no output matching %s", e.Pattern)
	default:
		return ErrOutputNotFound.Error()
	}
}

func (e *OutputNotFoundError) Is(target error) bool { return target == ErrOutputNotFound }

func displayTool(tool string) string {
	if tool = strings.TrimSpace(tool); tool != "" {
		return tool
	}
	return "external tool"
}

func tail(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	return "..." + value[len(value)-limit:]
}
