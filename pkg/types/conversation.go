package types

// Message is a single role-tagged turn in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of messages recorded under a user,
// tagged with the platform it came from.
type Conversation struct {
	ID        string         `json:"id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Messages  []Message      `json:"conversation,omitempty"`
	Platform  string         `json:"platform,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
}

// IsZero reports whether the conversation carries no data, which is how a
// missing conversation is represented to callers.
func (c Conversation) IsZero() bool {
	return c.ID == "" && len(c.Messages) == 0
}

// Summary types accepted by the conversation summarize endpoint.
const (
	SummaryBrief       = "brief"
	SummaryDetailed    = "detailed"
	SummaryTopics      = "topics"
	SummaryActionItems = "action_items"
)

// ConversationSummary is the result of summarizing a conversation.
type ConversationSummary struct {
	Summary     string   `json:"summary,omitempty"`
	SummaryType string   `json:"summary_type,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	ActionItems []string `json:"action_items,omitempty"`
}

// RollingSummary is the server-maintained rolling summary of a user's
// conversations.
type RollingSummary struct {
	UserID    string `json:"user_id,omitempty"`
	Summary   string `json:"summary,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
