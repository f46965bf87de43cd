// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/task"
)

// EmptyMessage is printed when there is nothing to list.
const EmptyMessage = "no tasks found"

// FormatTask formats one task line.
// Format: "{N:>4}  [ ] {TITLE}\n", with "[x]" for completed tasks.
func FormatTask(w io.Writer, num int, t task.Task) {
	box := "[ ]"
	if t.IsCompleted {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeTitle(t.Title))
}

// FormatList formats every task numbered from 1 in list order.
func FormatList(w io.Writer, tasks []task.Task) {
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
