// internal/model/topic.go
package model

// TopicInfo describes one vocabulary CSV file available for loading.
type TopicInfo struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

type TopicLoadRequest struct {
	Filename string `json:"filename" validate:"required"`
	// ClearExisting wipes every card before loading. Destructive, so it
	// must be set explicitly.
	ClearExisting bool `json:"clear_existing"`
}

// TopicLoadResult is the per-file outcome of a load or sync.
type TopicLoadResult struct {
	Filename string `json:"filename"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Rejected int    `json:"rejected"`
}

// SyncResult aggregates per-file results of a sync-all run. Files that
// failed entirely are reported in Errors instead of aborting the batch.
type SyncResult struct {
	Files  map[string]TopicLoadResult `json:"files"`
	Errors map[string]string          `json:"errors,omitempty"`
}
