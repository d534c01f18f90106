package types

// Version is a retained historical revision of a memory.
type Version struct {
	ID         string         `json:"id"`
	MemoryID   string         `json:"memory_id"`
	Version    int            `json:"version"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	ChangeType string         `json:"change_type,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
}

// VersionDiff is the comparison between two versions of a memory.
type VersionDiff struct {
	VersionID1 string         `json:"version_id_1"`
	VersionID2 string         `json:"version_id_2"`
	Added      []string       `json:"added,omitempty"`
	Removed    []string       `json:"removed,omitempty"`
	Changed    map[string]any `json:"changed,omitempty"`
	Identical  bool           `json:"identical,omitempty"`
}

// RollbackResult reports the outcome of rolling a memory back to an
// earlier version.
type RollbackResult struct {
	MemoryID      string `json:"memory_id"`
	TargetVersion int    `json:"target_version"`
	NewVersion    int    `json:"new_version,omitempty"`
	Content       string `json:"content,omitempty"`
	Success       bool   `json:"success,omitempty"`
}
