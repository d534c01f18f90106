package client

import (
	"context"
	"net/http"
	"net/url"

	v "github.com/cohesivestack/valgo"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// ImageInput describes an image memory to store. Exactly one of URL or
// Base64 must be set; the server derives a searchable description when none
// is supplied.
type ImageInput struct {
	URL         string
	Base64      string
	Description string
	Metadata    map[string]any
}

// StoreImage stores an image memory by URL or base64 payload.
func (c *Client) StoreImage(ctx context.Context, userID string, input ImageInput) (*types.Memory, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}
	if input.URL == "" && input.Base64 == "" {
		return nil, apierrors.NewValidationError("either image_url or image_base64 is required")
	}

	if input.Metadata == nil {
		input.Metadata = map[string]any{}
	}

	body := map[string]any{
		"user_id":      userID,
		"image_url":    input.URL,
		"image_base64": input.Base64,
		"description":  input.Description,
		"metadata":     input.Metadata,
	}

	memory := &types.Memory{}
	if err := c.do(ctx, http.MethodPost, "/memories/image", nil, body, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// UploadImage uploads raw image bytes as a multipart form. The user ID
// travels as a query parameter, matching the upload endpoint's contract.
func (c *Client) UploadImage(ctx context.Context, userID string, data []byte, filename string) (*types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(filename, "filename").Not().Blank(),
	)); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apierrors.NewValidationError("image data must not be empty")
	}

	query := url.Values{"user_id": {userID}}

	memory := &types.Memory{}
	if err := c.doMultipart(ctx, "/memories/image/upload", query, "file", filename, data, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// SearchImages searches image memories by their descriptions.
func (c *Client) SearchImages(ctx context.Context, userID, query string, limit int) ([]types.Memory, error) {
	if err := validate(v.Is(
		v.String(userID, "user_id").Not().Blank(),
		v.String(query, "query").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 5
	}

	body := map[string]any{
		"user_id": userID,
		"query":   query,
		"limit":   limit,
	}

	var memories []types.Memory
	if err := c.do(ctx, http.MethodPost, "/memories/image/search", nil, body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// ConciseText asks the server to make text more concise.
func (c *Client) ConciseText(ctx context.Context, text string) (string, error) {
	if err := validate(v.Is(v.String(text, "text").Not().Blank())); err != nil {
		return "", err
	}

	var result struct {
		Text    string `json:"text"`
		Concise string `json:"concise_text"`
	}
	if err := c.do(ctx, http.MethodPost, "/text/conciser", nil, map[string]any{"text": text}, &result); err != nil {
		return "", err
	}

	if result.Concise != "" {
		return result.Concise, nil
	}
	return result.Text, nil
}
