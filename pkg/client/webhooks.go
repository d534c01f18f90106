package client

import (
	"context"
	"net/http"
	"net/url"

	v "github.com/cohesivestack/valgo"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// CreateWebhook registers a webhook for the given event types.
func (c *Client) CreateWebhook(ctx context.Context, webhookURL string, events []string, secret string) (*types.Webhook, error) {
	if err := validate(v.Is(v.String(webhookURL, "url").Not().Blank())); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apierrors.NewValidationError("events must not be empty")
	}

	body := map[string]any{
		"url":    webhookURL,
		"events": events,
	}
	if secret != "" {
		body["secret"] = secret
	}

	webhook := &types.Webhook{}
	if err := c.do(ctx, http.MethodPost, "/webhooks", nil, body, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

// ListWebhooks lists registered webhooks, optionally filtered by user.
func (c *Client) ListWebhooks(ctx context.Context, userID string) ([]types.Webhook, error) {
	query := url.Values{}
	if userID != "" {
		query.Set("user_id", userID)
	}

	var webhooks []types.Webhook
	if err := c.do(ctx, http.MethodGet, "/webhooks", query, nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// GetWebhook retrieves a webhook by ID.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*types.Webhook, error) {
	if err := validate(v.Is(v.String(webhookID, "webhook_id").Not().Blank())); err != nil {
		return nil, err
	}

	webhook := &types.Webhook{}
	if err := c.do(ctx, http.MethodGet, "/webhooks/"+webhookID, nil, nil, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

// UpdateWebhook applies partial changes to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, update types.WebhookUpdate) (*types.Webhook, error) {
	if err := validate(v.Is(v.String(webhookID, "webhook_id").Not().Blank())); err != nil {
		return nil, err
	}

	webhook := &types.Webhook{}
	if err := c.do(ctx, http.MethodPut, "/webhooks/"+webhookID, nil, update, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := validate(v.Is(v.String(webhookID, "webhook_id").Not().Blank())); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/webhooks/"+webhookID, nil, nil, nil)
}

// TestWebhook fires a sample event at a webhook.
func (c *Client) TestWebhook(ctx context.Context, webhookID string) (*types.WebhookTestResult, error) {
	if err := validate(v.Is(v.String(webhookID, "webhook_id").Not().Blank())); err != nil {
		return nil, err
	}

	result := &types.WebhookTestResult{}
	if err := c.do(ctx, http.MethodPost, "/webhooks/"+webhookID+"/test", nil, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}
