package models

import (
	"strings"
	"time"
)

// SeniorityLevel is one of the fixed levels a submitter may pick.
type SeniorityLevel string

const (
	SeniorityJunior       SeniorityLevel = "junior"
	SeniorityIntermediate SeniorityLevel = "intermediate"
	SenioritySenior       SeniorityLevel = "senior"
	SeniorityLead         SeniorityLevel = "lead"
	SeniorityDirector     SeniorityLevel = "director"
	SeniorityExecutive    SeniorityLevel = "executive"
)

// Seniority carries either a recognized Level or a free-text Hint, never both.
// The zero value means the submitter gave no hint.
type Seniority struct {
	Level SeniorityLevel
	Hint  string
}

// ParseSeniority maps a raw form value onto a Seniority. Recognized level
// tokens (case-insensitive) become a Level, anything else is kept as a
// free-text hint rather than dropped.
func ParseSeniority(raw string) Seniority {
	trimmed := strings.TrimSpace(raw)
	switch level := SeniorityLevel(strings.ToLower(trimmed)); level {
	case SeniorityJunior, SeniorityIntermediate, SenioritySenior,
		SeniorityLead, SeniorityDirector, SeniorityExecutive:
		return Seniority{Level: level}
	}
	if trimmed != "" {
		return Seniority{Hint: trimmed}
	}
	return Seniority{}
}

// String returns the value persisted in meta.json: the level token, the free
// hint, or "".
func (s Seniority) String() string {
	if s.Level != "" {
		return string(s.Level)
	}
	return s.Hint
}

func (s Seniority) IsSet() bool {
	return s.Level != "" || s.Hint != ""
}

// JobInput is one user submission, immutable for the duration of a request.
type JobInput struct {
	ResumeText     string
	Company        string
	Title          string
	Location       string
	JobDescription string
	Seniority      Seniority
}

// GeneratedPackage is the result of processing one JobInput.
type GeneratedPackage struct {
	FitScore     float64   `json:"fit_score"`
	FitLabel     string    `json:"fit_label"`
	Reasoning    string    `json:"reasoning"`
	CoverLetter  string    `json:"cover_letter"`
	Resume       string    `json:"resume"`
	ShortAnswers [3]string `json:"short_answers"`
	FolderName   string    `json:"folder_name"`
	FolderPath   string    `json:"folder_path"`
	HostFolder   string    `json:"host_folder"`
}

// Meta is the durable projection written as meta.json beside the artifacts.
type Meta struct {
	Company       string  `json:"company"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	SeniorityHint string  `json:"seniority_hint"`
	FitScore      float64 `json:"fit_score"`
	FitLabel      string  `json:"fit_label"`
	Reasoning     string  `json:"reasoning"`
	FolderName    string  `json:"folder_name"`
	HostFolder    string  `json:"host_folder"`
	CreatedAt     string  `json:"created_at"`
}

// JobSummary is one dashboard row, read back from meta.json.
type JobSummary struct {
	Company    string  `json:"company"`
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	FitScore   float64 `json:"fit_score"`
	FitLabel   string  `json:"fit_label"`
	FolderName string  `json:"folder_name"`
	HostFolder string  `json:"host_folder"`
}

// ErrorRecord is one entry of the in-memory recent-error history.
type ErrorRecord struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}
