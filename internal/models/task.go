package models

import (
	"strings"
)

// Priority represents the importance level of a task.
// Higher values rank first when tasks are sorted.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

// Priorities lists every priority in ascending rank.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// String returns the canonical name of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Rank returns the ordering weight of the priority.
func (p Priority) Rank() int {
	return int(p)
}

// ParsePriority looks up a priority by name, ignoring case.
func ParsePriority(s string) (Priority, error) {
	name := canonicalName(s)
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}
	return 0, &ValidationError{Field: "priority", Value: s}
}

// TaskStatus represents the current status of a task
type TaskStatus int

const (
	StatusNew TaskStatus = iota + 1
	StatusInProgress
	StatusCompleted
)

var statusNames = map[TaskStatus]string{
	StatusNew:        "NEW",
	StatusInProgress: "IN_PROGRESS",
	StatusCompleted:  "COMPLETED",
}

var statusLabels = map[TaskStatus]string{
	StatusNew:        "new",
	StatusInProgress: "in progress",
	StatusCompleted:  "completed",
}

// Statuses lists every status in lifecycle order.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusNew, StatusInProgress, StatusCompleted}
}

// Name returns the canonical name used for persistence.
func (s TaskStatus) Name() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// String returns the display label of the status.
func (s TaskStatus) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "unknown"
}

// ParseStatus looks up a status by name. Matching ignores case and treats
// spaces as underscores, so "in progress" and "IN_PROGRESS" are equivalent.
func ParseStatus(s string) (TaskStatus, error) {
	name := canonicalName(s)
	for st, n := range statusNames {
		if n == name {
			return st, nil
		}
	}
	return 0, &ValidationError{Field: "status", Value: s}
}

// Task is an immutable to-do entry. Stores hand out copies, so changing a
// returned Task never affects stored state.
type Task struct {
	Text     string
	Priority Priority
	Status   TaskStatus
}

// NewTask validates the text, priority and status and builds a Task.
// An empty status means StatusNew.
func NewTask(text, priority, status string) (Task, error) {
	if err := checkText("text", text); err != nil {
		return Task{}, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return Task{}, err
	}

	st := StatusNew
	if status != "" {
		if st, err = ParseStatus(status); err != nil {
			return Task{}, err
		}
	}

	return Task{Text: text, Priority: p, Status: st}, nil
}

func canonicalName(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), " ", "_")
}
