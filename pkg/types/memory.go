package types

// Memory represents a single unit of stored knowledge owned by a user,
// agent or group namespace.
type Memory struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id,omitempty"`
	AgentID    string         `json:"agent_id,omitempty"`
	GroupID    string         `json:"group_id,omitempty"`
	RunID      string         `json:"run_id,omitempty"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Type       string         `json:"type,omitempty"`
	Score      float64        `json:"score,omitempty"`
	Similarity float64        `json:"similarity,omitempty"`
	Version    int            `json:"version,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
	Related    []Memory       `json:"related,omitempty"`
}

// Relevance returns whichever relevance signal the server populated.
// Search endpoints report either a score or a similarity depending on the
// ranking path taken server-side.
func (m Memory) Relevance() float64 {
	if m.Score != 0 {
		return m.Score
	}
	return m.Similarity
}

// MemoryInput is a memory to be created as part of a batch operation.
type MemoryInput struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SortBy values accepted by advanced search.
const (
	SortByRelevance  = "relevance"
	SortByRecency    = "recency"
	SortByImportance = "importance"
)

// Merge strategies accepted by the merge endpoint.
const (
	MergeCombine          = "combine"
	MergeKeepLatest       = "keep_latest"
	MergeKeepMostRelevant = "keep_most_relevant"
)

// SearchFilters are metadata filters applied to advanced search.
type SearchFilters map[string]any

// ContextResult is the payload of the optimized and enhanced search
// endpoints: a prompt-ready context string plus the memories behind it.
type ContextResult struct {
	Context     string         `json:"context"`
	Memories    []Memory       `json:"memories,omitempty"`
	TokensUsed  int            `json:"tokens_used,omitempty"`
	Compressed  bool           `json:"compressed,omitempty"`
	CacheHit    bool           `json:"cache_hit,omitempty"`
	Performance map[string]any `json:"performance,omitempty"`
}

// DeleteResult reports how many memories a bulk deletion removed.
type DeleteResult struct {
	Deleted bool   `json:"deleted,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
