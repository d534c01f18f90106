package types

// Webhook is a registered event subscription.
type Webhook struct {
	ID        string   `json:"id,omitempty"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	Secret    string   `json:"secret,omitempty"`
	Active    bool     `json:"active"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// WebhookUpdate carries partial webhook changes. Nil fields are left
// untouched server-side.
type WebhookUpdate struct {
	URL    *string   `json:"url,omitempty"`
	Events *[]string `json:"events,omitempty"`
	Secret *string   `json:"secret,omitempty"`
	Active *bool     `json:"active,omitempty"`
}

// WebhookTestResult is the outcome of firing a sample event at a webhook.
type WebhookTestResult struct {
	WebhookID  string `json:"webhook_id,omitempty"`
	Delivered  bool   `json:"delivered,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}
