package parse

import "time"

// Result is the structured outcome of parsing one input line. Absent
// fields stay at their zero value; nothing here is ever an error.
type Result struct {
	Title string `json:"title"`

	Status   string `json:"status,omitempty"`   // matched status entry id
	Priority string `json:"priority,omitempty"` // matched priority entry id

	DueDate       *time.Time `json:"dueDate,omitempty"` // calendar day, midnight in the parse location
	DueTime       string     `json:"dueTime,omitempty"` // "HH:MM", "" when the phrase had no clock
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	ScheduledTime string     `json:"scheduledTime,omitempty"`

	EstimateMinutes int    `json:"estimateMinutes,omitempty"`
	RecurrenceRule  string `json:"recurrenceRule,omitempty"` // canonical rule ("FREQ=DAILY")

	Contexts []string `json:"contexts,omitempty"` // deduplicated, first-seen order
	Tags     []string `json:"tags,omitempty"`
	Projects []string `json:"projects,omitempty"`
}
