package models

import "time"

// CreateChangeRequest contains fields for inserting a new detected
// change in watching state.
type CreateChangeRequest struct {
	PageID          string
	UserID          string
	Element         string
	Scope           string
	BeforeValue     string
	AfterValue      string
	Description     string
	AnalysisID      string
	DetectedAt      time.Time
	MatchConfidence *float64
	MatchRationale  string
}

// UpdateMatchedChangeRequest carries the fields refreshed when a scan
// re-observes an already-watching change.
type UpdateMatchedChangeRequest struct {
	ChangeID        string
	AfterValue      string
	Description     string
	MatchConfidence *float64
	MatchRationale  string
}

// TransitionRequest describes one status transition on a detected
// change. The service applies it as a CAS on (id, expected prior
// status) paired with a lifecycle event insert in the same unit of work.
type TransitionRequest struct {
	ChangeID     string
	FromStatus   string
	ToStatus     string
	Reason       string
	ActorType    string // system | user
	CheckpointID string // set for checkpoint-driven transitions
}

// CreateDeployRequest contains fields for ingesting a deploy webhook.
type CreateDeployRequest struct {
	DeployID      string   `json:"deploy_id"`
	UserID        string   `json:"user_id"`
	RepoID        string   `json:"repo_id"`
	CommitSHA     string   `json:"commit_sha"`
	FullName      string   `json:"full_name"`
	CommitMessage string   `json:"commit_message,omitempty"`
	ChangedFiles  []string `json:"changed_files,omitempty"`
}

// CreateFeedbackRequest contains fields for recording outcome feedback
// on a checkpoint.
type CreateFeedbackRequest struct {
	ChangeID     string `json:"change_id"`
	CheckpointID string `json:"checkpoint_id"`
	UserID       string `json:"user_id"`
	FeedbackType string `json:"feedback_type"` // accurate | inaccurate
	Comment      string `json:"comment,omitempty"`
}
