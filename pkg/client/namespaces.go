package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// Agent and group namespaces partition memory storage and search
// independently of the default per-user space.

// StoreAgentMemory stores a memory scoped to an agent, optionally tagged
// with a run ID.
func (c *Client) StoreAgentMemory(ctx context.Context, userID, agentID, content, runID string, metadata map[string]any) (*types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(agentID, "agent_id").Not().Blank(),
		v.String(content, "content").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":  userID,
		"agent_id": agentID,
		"content":  content,
		"run_id":   runID,
		"metadata": metadata,
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/agents/memories", nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// SearchAgentMemories searches within an agent namespace.
func (c *Client) SearchAgentMemories(ctx context.Context, userID, agentID, query, runID string, limit int) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(agentID, "agent_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	body := map[string]any{
		"user_id":  userID,
		"agent_id": agentID,
		"query":    query,
		"run_id":   runID,
		"limit":    limit,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/agents/memories/search", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// GetAgentMemories lists all memories of an agent namespace.
func (c *Client) GetAgentMemories(ctx context.Context, userID, agentID string, limit int) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(agentID, "agent_id").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}

	query := url.Values{
		"user_id": {userID},
		"limit":   {strconv.Itoa(limit)},
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodGet, "/agents/"+agentID+"/memories", query, nil, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// StoreGroupMemory stores a memory shared by a group.
func (c *Client) StoreGroupMemory(ctx context.Context, userID, groupID, content string, metadata map[string]any) (*types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(groupID, "group_id").Not().Blank(),
		v.String(content, "content").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":  userID,
		"group_id": groupID,
		"content":  content,
		"metadata": metadata,
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/groups/memories", nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// SearchGroupMemories searches within a group namespace.
func (c *Client) SearchGroupMemories(ctx context.Context, userID, groupID, query string, limit int) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(groupID, "group_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	body := map[string]any{
		"user_id":  userID,
		"group_id": groupID,
		"query":    query,
		"limit":    limit,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/groups/memories/search", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// GetGroupContext retrieves the shared context of a group.
func (c *Client) GetGroupContext(ctx context.Context, userID, groupID string, limit int) (*types.ContextResult, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(groupID, "group_id").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}

	query := url.Values{
		"user_id": {userID},
		"limit":   {strconv.Itoa(limit)},
	}

	result := &types.ContextResult{}
	if err := c.do(ctx, http.MethodGet, "/groups/"+groupID+"/context", query, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}
