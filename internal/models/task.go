package models

import "time"

const (
	StatusOpen = "open"
)

// Link is an opaque record attached to a task, usually a URL reference.
type Link map[string]any

type Task struct {
	ID           string
	CreatedAt    time.Time
	Title        string
	Status       string
	AssignedDate Date
	Position     int
	Notes        *string
	StartDate    *Date
	EndDate      *Date
	StartTime    *string
	EndTime      *string
	Links        []Link
	Location     *Location
}

// NewTask describes a task to be created. A nil Status becomes
// StatusOpen and nil Notes become an empty string when the task is stored.
type NewTask struct {
	Title        string
	AssignedDate Date
	Position     int
	Status       *string
	Notes        *string
	Links        []Link
}

// TaskUpdate is a sparse set of changes to a task. Only the fields that
// were sent are applied; a field sent as null clears the column.
type TaskUpdate struct {
	Title        Field[string]   `json:"title"`
	Status       Field[string]   `json:"status"`
	Notes        Field[string]   `json:"notes"`
	StartDate    Field[Date]     `json:"start_date"`
	EndDate      Field[Date]     `json:"end_date"`
	StartTime    Field[string]   `json:"start_time"`
	EndTime      Field[string]   `json:"end_time"`
	Links        Field[[]Link]   `json:"links"`
	Location     Field[Location] `json:"location"`
	Position     Field[int]      `json:"position"`
	AssignedDate Field[Date]     `json:"assigned_date"`
}
