package types

// UserStatistics summarizes a single user's memory store.
type UserStatistics struct {
	UserID             string         `json:"user_id,omitempty"`
	TotalMemories      int            `json:"total_memories"`
	TotalConversations int            `json:"total_conversations,omitempty"`
	TotalLinks         int            `json:"total_links,omitempty"`
	StorageBytes       int64          `json:"storage_bytes,omitempty"`
	OldestMemory       string         `json:"oldest_memory,omitempty"`
	NewestMemory       string         `json:"newest_memory,omitempty"`
	ByType             map[string]int `json:"by_type,omitempty"`
}

// GlobalStatistics summarizes the whole deployment, as exposed to the
// account making the call.
type GlobalStatistics struct {
	TotalUsers    int            `json:"total_users,omitempty"`
	TotalMemories int            `json:"total_memories,omitempty"`
	Extra         map[string]any `json:"extra,omitempty"`
}

// GrowthPoint is one day of the memory growth series.
type GrowthPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MemoryGrowth tracks memory creation over a window of days.
type MemoryGrowth struct {
	UserID string        `json:"user_id,omitempty"`
	Days   int           `json:"days,omitempty"`
	Series []GrowthPoint `json:"series,omitempty"`
	Total  int           `json:"total,omitempty"`
}

// AuditLog is one entry of the account audit trail.
type AuditLog struct {
	ID        string         `json:"id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Action    string         `json:"action"`
	Resource  string         `json:"resource,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status  string         `json:"status"`
	Version string         `json:"version,omitempty"`
	Checks  map[string]any `json:"checks,omitempty"`
}
