package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// GetUserStatistics retrieves statistics for one user's memory store.
func (c *Client) GetUserStatistics(ctx context.Context, userID string) (*types.UserStatistics, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	stats := &types.UserStatistics{}
	if err := c.do(ctx, http.MethodGet, "/users/"+userID+"/statistics", nil, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetGlobalStatistics retrieves deployment-wide statistics.
func (c *Client) GetGlobalStatistics(ctx context.Context) (*types.GlobalStatistics, error) {
	stats := &types.GlobalStatistics{}
	if err := c.do(ctx, http.MethodGet, "/statistics", nil, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUserAnalytics retrieves a user's memory insights.
func (c *Client) GetUserAnalytics(ctx context.Context, userID string) (map[string]any, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	analytics := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/analytics/user-stats/"+userID, nil, nil, &analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}

// GetMemoryGrowth tracks memory creation for a user over a window of days.
func (c *Client) GetMemoryGrowth(ctx context.Context, userID string, days int) (*types.MemoryGrowth, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = 30
	}

	query := url.Values{
		"user_id": {userID},
		"days":    {strconv.Itoa(days)},
	}

	growth := &types.MemoryGrowth{}
	if err := c.do(ctx, http.MethodGet, "/analytics/memory-growth", query, nil, growth); err != nil {
		return nil, err
	}
	return growth, nil
}

// HealthCheck reports the API health status.
func (c *Client) HealthCheck(ctx context.Context) (*types.HealthStatus, error) {
	health := &types.HealthStatus{}
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, health); err != nil {
		return nil, err
	}
	return health, nil
}

// GetMetrics retrieves raw system metrics.
func (c *Client) GetMetrics(ctx context.Context) (map[string]any, error) {
	metrics := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/metrics", nil, nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetMetricsSummary retrieves the aggregated metrics summary.
func (c *Client) GetMetricsSummary(ctx context.Context) (map[string]any, error) {
	summary := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/metrics/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetAuditLogs retrieves audit log entries, optionally filtered by user.
// The endpoint wraps the list in a logs field, which is unwrapped here.
func (c *Client) GetAuditLogs(ctx context.Context, userID string, limit int) ([]types.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if userID != "" {
		query.Set("user_id", userID)
	}

	var wrapped struct {
		Logs []types.AuditLog `json:"logs"`
	}
	if err := c.do(ctx, http.MethodGet, "/audit-logs", query, nil, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Logs, nil
}
