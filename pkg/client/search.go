package client

import (
	"context"
	"net/http"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// SearchOptions tune the basic semantic search endpoint.
type SearchOptions struct {
	Limit          int
	Rerank         bool
	RerankProvider string
	CohereAPIKey   string
	JinaAPIKey     string
}

// AdvancedSearchOptions tune the advanced search endpoint.
type AdvancedSearchOptions struct {
	Limit          int
	Filters        types.SearchFilters
	IncludeRelated bool
	MinScore       float64
	SortBy         string
}

// ContextSearchOptions tune the optimized and enhanced search endpoints,
// which return a prompt-ready context string under a token budget.
type ContextSearchOptions struct {
	MaxTokens      int
	MaxMemories    int
	UseCompression bool
	UseCache       bool
}

// SearchMemories runs a semantic search over a user's memories.
func (c *Client) SearchMemories(ctx context.Context, userID, query string, opts SearchOptions) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		opts.Limit = 5
	}
	if opts.RerankProvider == "" {
		opts.RerankProvider = "auto"
	}

	body := map[string]any{
		"user_id":         userID,
		"query":           query,
		"limit":           opts.Limit,
		"rerank":          opts.Rerank,
		"rerank_provider": opts.RerankProvider,
	}
	if opts.CohereAPIKey != "" {
		body["cohere_api_key"] = opts.CohereAPIKey
	}
	if opts.JinaAPIKey != "" {
		body["jina_api_key"] = opts.JinaAPIKey
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/memories/search", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// SearchAdvanced runs a filtered, scored search, optionally pulling in
// graph-related memories.
func (c *Client) SearchAdvanced(ctx context.Context, userID, query string, opts AdvancedSearchOptions) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		opts.Limit = 5
	}
	if opts.Filters == nil {
		opts.Filters = types.SearchFilters{}
	}
	if opts.SortBy == "" {
		opts.SortBy = types.SortByRelevance
	}

	body := map[string]any{
		"user_id":         userID,
		"query":           query,
		"limit":           opts.Limit,
		"filters":         opts.Filters,
		"include_related": opts.IncludeRelated,
		"min_score":       opts.MinScore,
		"sort_by":         opts.SortBy,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/memories/search/advanced", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// SearchOptimized runs the optimized retrieval path, returning compressed,
// cache-assisted context under a token budget.
func (c *Client) SearchOptimized(ctx context.Context, userID, query string, opts ContextSearchOptions) (*types.ContextResult, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2000
	}
	if opts.MaxMemories <= 0 {
		opts.MaxMemories = 20
	}

	body := map[string]any{
		"user_id":         userID,
		"query":           query,
		"max_tokens":      opts.MaxTokens,
		"max_memories":    opts.MaxMemories,
		"use_compression": opts.UseCompression,
		"use_cache":       opts.UseCache,
	}

	result := &types.ContextResult{}
	if err := c.do(ctx, http.MethodPost, "/memories/search/optimized", nil, body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchEnhanced runs the enhanced retrieval path. Identical shape to
// SearchOptimized, without the cache knob.
func (c *Client) SearchEnhanced(ctx context.Context, userID, query string, opts ContextSearchOptions) (*types.ContextResult, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2000
	}
	if opts.MaxMemories <= 0 {
		opts.MaxMemories = 20
	}

	body := map[string]any{
		"user_id":         userID,
		"query":           query,
		"max_tokens":      opts.MaxTokens,
		"max_memories":    opts.MaxMemories,
		"use_compression": opts.UseCompression,
	}

	result := &types.ContextResult{}
	if err := c.do(ctx, http.MethodPost, "/memories/search/enhanced", nil, body, result); err != nil {
		return nil, err
	}
	return result, nil
}
