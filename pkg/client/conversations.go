package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// RecordConversation stores a full conversation under a user, tagged with
// the platform it came from.
func (c *Client) RecordConversation(ctx context.Context, userID string, conversation []types.Message, platform string, metadata map[string]any) (*types.Conversation, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}
	if len(conversation) == 0 {
		return nil, apierrors.NewValidationError("conversation must not be empty")
	}

	if platform == "" {
		platform = "unknown"
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":      userID,
		"conversation": conversation,
		"platform":     platform,
		"metadata":     metadata,
	}

	recorded := &types.Conversation{}
	if err := c.do(ctx, http.MethodPost, "/conversations/record", nil, body, recorded); err != nil {
		return nil, err
	}
	return recorded, nil
}

// GetConversation retrieves a conversation by ID.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*types.Conversation, error) {
	if err := validate(v.Is(v.String(conversationID, "conversation_id").Not().Blank())); err != nil {
		return nil, err
	}

	conversation := &types.Conversation{}
	if err := c.do(ctx, http.MethodGet, "/conversations/"+conversationID, nil, nil, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// GetUserConversations lists a user's conversations, optionally filtered by
// platform.
func (c *Client) GetUserConversations(ctx context.Context, userID, platform string, limit int) ([]types.Conversation, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if platform != "" {
		query.Set("platform", platform)
	}

	var conversations []types.Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations/user/"+userID, query, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// SummarizeConversation asks the server to summarize a conversation.
func (c *Client) SummarizeConversation(ctx context.Context, conversation []types.Message, summaryType string) (*types.ConversationSummary, error) {
	if len(conversation) == 0 {
		return nil, apierrors.NewValidationError("conversation must not be empty")
	}

	if summaryType == "" {
		summaryType = types.SummaryBrief
	}

	body := map[string]any{
		"conversation": conversation,
		"summary_type": summaryType,
	}

	summary := &types.ConversationSummary{}
	if err := c.do(ctx, http.MethodPost, "/conversations/summarize", nil, body, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetSummary retrieves the rolling summary the server maintains over a
// user's conversations.
func (c *Client) GetSummary(ctx context.Context, userID string) (*types.RollingSummary, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	summary := &types.RollingSummary{}
	if err := c.do(ctx, http.MethodGet, "/memory/summary/"+userID, nil, nil, summary); err != nil {
		return nil, err
	}
	return summary, nil
}
