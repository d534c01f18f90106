package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// GetMemoryVersions lists the retained versions of a memory, newest first.
func (c *Client) GetMemoryVersions(ctx context.Context, memoryID string, limit int) ([]types.Version, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var versions []types.Version
	if err := c.do(ctx, http.MethodGet, "/memories/"+memoryID+"/versions", query, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetVersion retrieves a single version by its own ID.
func (c *Client) GetVersion(ctx context.Context, versionID string) (*types.Version, error) {
	if err := validate(v.Is(v.String(versionID, "version_id").Not().Blank())); err != nil {
		return nil, err
	}

	version := &types.Version{}
	if err := c.do(ctx, http.MethodGet, "/versions/"+versionID, nil, nil, version); err != nil {
		return nil, err
	}
	return version, nil
}

// GetVersionHistory lists the version history of a memory within an
// optional version range. Zero bounds mean unbounded.
func (c *Client) GetVersionHistory(ctx context.Context, memoryID string, fromVersion, toVersion int) ([]types.Version, error) {
	if err := validate(v.Is(v.String(memoryID, "memory_id").Not().Blank())); err != nil {
		return nil, err
	}

	query := url.Values{}
	if fromVersion > 0 {
		query.Set("from_version", strconv.Itoa(fromVersion))
	}
	if toVersion > 0 {
		query.Set("to_version", strconv.Itoa(toVersion))
	}

	var history []types.Version
	if err := c.do(ctx, http.MethodGet, "/memories/"+memoryID+"/history", query, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// RollbackMemory restores a memory to an earlier version on behalf of the
// given user.
func (c *Client) RollbackMemory(ctx context.Context, memoryID string, targetVersion int, userID string) (*types.RollbackResult, error) {
	if err := validate(v.Is(
		v.String(memoryID, "memory_id").Not().Blank(),
		v.String(userID, "user_id").Not().Blank(),
		v.Number(targetVersion, "target_version").GreaterThan(0),
	)); err != nil {
		return nil, err
	}

	query := url.Values{"user_id": {userID}}
	body := map[string]any{"target_version": targetVersion}

	result := &types.RollbackResult{}
	if err := c.do(ctx, http.MethodPost, "/memories/"+memoryID+"/rollback", query, body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CompareVersions compares two versions of a memory.
func (c *Client) CompareVersions(ctx context.Context, versionID1, versionID2 string) (*types.VersionDiff, error) {
	if err := validate(v.Is(
		v.String(versionID1, "version_id_1").Not().Blank(),
		v.String(versionID2, "version_id_2").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	query := url.Values{
		"version_id_1": {versionID1},
		"version_id_2": {versionID2},
	}

	diff := &types.VersionDiff{}
	if err := c.do(ctx, http.MethodGet, "/versions/compare", query, nil, diff); err != nil {
		return nil, err
	}
	return diff, nil
}
