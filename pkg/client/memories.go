package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// validate converts a failed valgo validation into the client's validation
// error type. Only presence and type are checked here; semantic validation
// is server-side.
func validate(val *v.Validation) error {
	if val.Valid() {
		return nil
	}
	return apierrors.NewValidationError(val.Error().Error())
}

// AddMemory stores a new memory under a user namespace.
func (c *Client) AddMemory(ctx context.Context, userID, content string, metadata map[string]any) (*types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(content, "content").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":  userID,
		"content":  content,
		"metadata": metadata,
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/memories", nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// GetMemory retrieves a memory by ID.
func (c *Client) GetMemory(ctx context.Context, memoryID string) (*types.Memory, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodGet, "/memories/"+memoryID, nil, nil, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// GetUserMemories lists all memories of a user, newest first, capped at
// limit.
func (c *Client) GetUserMemories(ctx context.Context, userID string, limit int) ([]types.Memory, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodGet, "/memories/user/"+userID, query, nil, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// UpdateMemory supersedes the content and/or metadata of a memory. Nil
// arguments leave the corresponding field unchanged.
func (c *Client) UpdateMemory(ctx context.Context, memoryID string, content *string, metadata map[string]any) (*types.Memory, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	body := map[string]any{}
	if content != nil {
		body["content"] = *content
	}
	if metadata != nil {
		body["metadata"] = metadata
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPut, "/memories/"+memoryID, nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// DeleteMemory removes a memory.
func (c *Client) DeleteMemory(ctx context.Context, memoryID string) error {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/memories/"+memoryID, nil, nil, nil)
}

// DeleteAllUserMemories removes every memory of a user.
func (c *Client) DeleteAllUserMemories(ctx context.Context, userID string) (*types.DeleteResult, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	result := &types.DeleteResult{}
	if err := c.do(ctx, http.MethodDelete, "/users/"+userID+"/memories", nil, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateAdvancedMemory stores a memory and links it to existing memories in
// the graph in one call.
func (c *Client) CreateAdvancedMemory(ctx context.Context, userID, content string, metadata map[string]any, linkTo []string) (*types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(content, "content").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}
	if linkTo == nil {
		linkTo = []string{}
	}

	body := map[string]any{
		"user_id":  userID,
		"content":  content,
		"metadata": metadata,
		"link_to":  linkTo,
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/memories/advanced", nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// BatchCreate stores multiple memories in one request. When linkRelated is
// set the server links related memories automatically.
func (c *Client) BatchCreate(ctx context.Context, userID string, memories []types.MemoryInput, linkRelated bool) ([]types.Memory, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}
	if len(memories) == 0 {
		return nil, apierrors.NewValidationError("memories must not be empty")
	}

	body := map[string]any{
		"user_id":      userID,
		"memories":     memories,
		"link_related": linkRelated,
	}

	var created []types.Memory
	if err := c.do(ctx, http.MethodPost, "/memories/batch", nil, body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// MergeMemories merges multiple memories into one using the given strategy.
func (c *Client) MergeMemories(ctx context.Context, memoryIDs []string, strategy string) (*types.Memory, error) {
	if len(memoryIDs) < 2 {
		return nil, apierrors.NewValidationError("at least two memory ids are required to merge")
	}
	if strategy == "" {
		strategy = types.MergeCombine
	}

	body := map[string]any{
		"memory_ids":     memoryIDs,
		"merge_strategy": strategy,
	}

	merged := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/memories/merge", nil, body, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// FindContradictions returns memories that potentially contradict the given
// one, above the similarity threshold.
func (c *Client) FindContradictions(ctx context.Context, memoryID string, similarityThreshold float64) ([]types.Memory, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	query := url.Values{
		"similarity_threshold": {fmt.Sprintf("%g", similarityThreshold)},
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodGet, "/memories/"+memoryID+"/contradictions", query, nil, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// ExtractFromConversation sends a conversation to the server, which
// extracts and stores the key facts as memories.
func (c *Client) ExtractFromConversation(ctx context.Context, userID string, conversation []types.Message) ([]types.Memory, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}
	if len(conversation) == 0 {
		return nil, apierrors.NewValidationError("conversation must not be empty")
	}

	body := map[string]any{
		"user_id":      userID,
		"conversation": conversation,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/conversations/extract", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// ExtractFromContent extracts and stores memories from a single block of
// content.
func (c *Client) ExtractFromContent(ctx context.Context, userID, content string, metadata map[string]any) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(content, "content").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":  userID,
		"content":  content,
		"metadata": metadata,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/memories/extract", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}
