package model

import "strings"

// Task is the domain model for a to-do entry.
// Dates are stored as DD-MM-YYYY text, the same form they are displayed in.
type Task struct {
	Message    string `json:"taskMessage"`
	Deadline   string `json:"deadline"`
	CreatedAt  string `json:"createdAt"`
	IsComplete bool   `json:"isComplete"`
}

// Profile is the user's display name and job title.
type Profile struct {
	Username string `json:"username"`
	Job      string `json:"job"`
}

// Complete reports whether both profile fields hold non-blank text.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Username) != "" && strings.TrimSpace(p.Job) != ""
}
