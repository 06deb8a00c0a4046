package ui

import (
	"fmt"
	"strings"

	"github.com/taskline/taskline/internal/parse"
)

// printResult prints one parsed line in a compact field list.
func printResult(res parse.Result) {
	fmt.Println(formatTitle(res.Title))

	printField("status", res.Status)
	printField("priority", res.Priority)
	if res.DueDate != nil {
		printField("due", joinDateTime(res.DueDate.Format("2006-01-02"), res.DueTime))
	}
	if res.ScheduledDate != nil {
		printField("scheduled", joinDateTime(res.ScheduledDate.Format("2006-01-02"), res.ScheduledTime))
	}
	if res.EstimateMinutes > 0 {
		printField("estimate", FormatDuration(res.EstimateMinutes))
	}
	printField("repeat", res.RecurrenceRule)
	printField("contexts", strings.Join(res.Contexts, ", "))
	printField("tags", strings.Join(res.Tags, ", "))
	printField("projects", strings.Join(res.Projects, ", "))
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s %s\n", formatField(fmt.Sprintf("%-10s", name)), value)
}

func joinDateTime(date, clock string) string {
	if clock == "" {
		return date
	}
	return date + " " + clock
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
