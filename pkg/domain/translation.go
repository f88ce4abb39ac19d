package domain

import (
	"fmt"
	"time"
)

// JobStatus is the lifecycle state of a translation job
type JobStatus string

// translation job statuses
const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
	StatusCancelled  JobStatus = "cancelled"
)

// IsTerminal reports whether no worker may pick the job up again
func (s JobStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// IsValid reports whether s is a known status
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// JobPriority orders queued translation jobs
type JobPriority string

// translation job priorities
const (
	PriorityLow    JobPriority = "low"
	PriorityNormal JobPriority = "normal"
	PriorityHigh   JobPriority = "high"
	PriorityUrgent JobPriority = "urgent"
)

// Rank returns a sortable weight, higher runs first
func (p JobPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IsValid reports whether p is a known priority
func (p JobPriority) IsValid() bool {
	return p.Rank() > 0
}

// DefaultMaxRetries is used when a job is created without max_retries
const DefaultMaxRetries = 3

// TranslationJob translates one article into one or more target languages
type TranslationJob struct {
	ID                int64               `json:"id"`
	ArticleID         int64               `json:"article_id"`
	SourceLanguage    Language            `json:"source_language"`
	TargetLanguages   []Language          `json:"target_languages"`
	Status            JobStatus           `json:"status"`
	Priority          JobPriority         `json:"priority"`
	Progress          int                 `json:"progress"`
	AssignedWorker    string              `json:"assigned_worker,omitempty"`
	RetryCount        int                 `json:"retry_count"`
	MaxRetries        int                 `json:"max_retries"`
	ErrorMessage      string              `json:"error_message,omitempty"`
	TranslatedContent map[Language]string `json:"translated_content,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	StartedAt         *time.Time          `json:"started_at,omitempty"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Validate checks a job before it is enqueued and fills defaults
func (j *TranslationJob) Validate() error {
	if j.ArticleID <= 0 {
		return fmt.Errorf("article id is required: %w", ErrValidation)
	}
	if !j.SourceLanguage.IsSupported() {
		return fmt.Errorf("unsupported source language %q: %w", j.SourceLanguage, ErrValidation)
	}
	if len(j.TargetLanguages) == 0 {
		return fmt.Errorf("at least one target language is required: %w", ErrValidation)
	}
	seen := make(map[Language]bool, len(j.TargetLanguages))
	for _, l := range j.TargetLanguages {
		if !l.IsSupported() {
			return fmt.Errorf("unsupported target language %q: %w", l, ErrValidation)
		}
		if l == j.SourceLanguage {
			return fmt.Errorf("target language %q equals source language: %w", l, ErrValidation)
		}
		if seen[l] {
			return fmt.Errorf("duplicate target language %q: %w", l, ErrValidation)
		}
		seen[l] = true
	}
	if j.Priority == "" {
		j.Priority = PriorityNormal
	}
	if !j.Priority.IsValid() {
		return fmt.Errorf("unknown priority %q: %w", j.Priority, ErrValidation)
	}
	if j.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative: %w", ErrValidation)
	}
	if j.MaxRetries == 0 {
		j.MaxRetries = DefaultMaxRetries
	}
	return nil
}

// TranslationJobFilter narrows translation job listings
type TranslationJobFilter struct {
	Statuses  []JobStatus
	Priority  JobPriority
	ArticleID int64
	Limit     int
}
