package client

import (
	"context"
	"net/http"
	"net/url"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// Export formats supported by the transfer endpoints.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ExportMemories exports all memories of a user in the given format.
func (c *Client) ExportMemories(ctx context.Context, userID, format string) (*types.ExportData, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	if format == "" {
		format = FormatJSON
	}

	query := url.Values{"format": {format}}

	export := &types.ExportData{}
	if err := c.do(ctx, http.MethodGet, "/users/"+userID+"/export", query, nil, export); err != nil {
		return nil, err
	}
	return export, nil
}

// ImportMemories imports previously exported data for a user.
func (c *Client) ImportMemories(ctx context.Context, userID, data, format string) (*types.ImportResult, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(data, "data").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if format == "" {
		format = FormatJSON
	}

	query := url.Values{"format": {format}}
	body := map[string]any{"data": data}

	result := &types.ImportResult{}
	if err := c.do(ctx, http.MethodPost, "/users/"+userID+"/import", query, body, result); err != nil {
		return nil, err
	}
	return result, nil
}
