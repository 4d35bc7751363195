package db

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one career-fair preparation session: a résumé
// upload, an employer scrape, and an analysis over the pair.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	ResumeName  string     `json:"resume_name,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Session status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact kind constants for known artifact types.
const (
	KindResume       = "resume"
	KindResumeText   = "resume_text"
	KindEmployer     = "employer"
	KindEmployerText = "employer_text"
	KindAnalysis     = "analysis"
)

// Artifact represents a stored artifact record.
type Artifact struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	Kind        string    `json:"kind"`
	Content     any       `json:"content,omitempty"`
	TextContent string    `json:"text_content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
