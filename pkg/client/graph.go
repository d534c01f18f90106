package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// LinkMemories creates a directed, typed relationship between two memories.
func (c *Client) LinkMemories(ctx context.Context, memoryID, targetID, relationshipType string) (*types.Link, error) {
	if err := validate(v.Is(
		v.String(memoryID, "memory_id").Not().Blank(),
		v.String(targetID, "target_id").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if relationshipType == "" {
		relationshipType = types.RelRelated
	}

	query := url.Values{
		"target_id":         {targetID},
		"relationship_type": {relationshipType},
	}

	link := &types.Link{}
	if err := c.do(ctx, http.MethodPost, "/memories/"+memoryID+"/link", query, nil, link); err != nil {
		return nil, err
	}
	return link, nil
}

// GetMemoryContext retrieves a memory together with its graph neighborhood
// up to the given depth.
func (c *Client) GetMemoryContext(ctx context.Context, memoryID string, depth int) (*types.MemoryContext, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	if depth <= 0 {
		depth = 2
	}

	query := url.Values{"depth": {strconv.Itoa(depth)}}

	context := &types.MemoryContext{}
	if err := c.do(ctx, http.MethodGet, "/memories/"+memoryID+"/context", query, nil, context); err != nil {
		return nil, err
	}
	return context, nil
}

// FindMemoryPath finds the shortest path between two memories in the graph.
func (c *Client) FindMemoryPath(ctx context.Context, sourceID, targetID string) (*types.MemoryPath, error) {
	if err := validate(v.Is(
		v.String(sourceID, "source_id").Not().Blank(),
		v.String(targetID, "target_id").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	path := &types.MemoryPath{}
	if err := c.do(ctx, http.MethodGet, "/memories/"+sourceID+"/path/"+targetID, nil, nil, path); err != nil {
		return nil, err
	}
	return path, nil
}
