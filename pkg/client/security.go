package client

import (
	"context"
	"net/http"
	"net/url"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// SetRetentionPolicy creates a data retention policy at organization or
// user level.
func (c *Client) SetRetentionPolicy(ctx context.Context, policy types.RetentionPolicy) (*types.RetentionPolicy, error) {
	if err := validate(v.Is(
		v.String(policy.DataType, "data_type").Not().Blank(),
		v.Number(policy.RetentionDays, "retention_days").GreaterThan(0),
	)); err != nil {
		return nil, err
	}

	created := &types.RetentionPolicy{}
	if err := c.do(ctx, http.MethodPost, "/security/retention-policies", nil, policy, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyRetentionPolicies applies retention policies, deleting data past its
// retention window. Empty IDs apply everything the caller may act on.
func (c *Client) ApplyRetentionPolicies(ctx context.Context, organizationID, userID string) (*types.RetentionResult, error) {
	query := url.Values{}
	if organizationID != "" {
		query.Set("organization_id", organizationID)
	}
	if userID != "" {
		query.Set("user_id", userID)
	}

	result := &types.RetentionResult{}
	if err := c.do(ctx, http.MethodPost, "/security/apply-retention", query, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExportGDPR exports all data held for a user.
func (c *Client) ExportGDPR(ctx context.Context, userID string) (map[string]any, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	export := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/security/compliance/gdpr/export/"+userID, nil, nil, &export); err != nil {
		return nil, err
	}
	return export, nil
}

// DeleteGDPR deletes all data held for a user.
func (c *Client) DeleteGDPR(ctx context.Context, userID string) (map[string]any, error) {
	if err := validate(v.Is(v.String(userID, "user_id").Not().Blank())); err != nil {
		return nil, err
	}

	result := map[string]any{}
	if err := c.do(ctx, http.MethodDelete, "/security/compliance/gdpr/delete/"+userID, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ComplianceEvent describes an event recorded for compliance auditing.
type ComplianceEvent struct {
	ComplianceType string         `json:"compliance_type"`
	EventType      string         `json:"event_type"`
	UserID         string         `json:"user_id,omitempty"`
	OrganizationID string         `json:"organization_id,omitempty"`
	DataSubjectID  string         `json:"data_subject_id,omitempty"`
	Details        map[string]any `json:"details"`
}

// RecordComplianceEvent records a compliance event.
func (c *Client) RecordComplianceEvent(ctx context.Context, event ComplianceEvent) (map[string]any, error) {
	if err := validate(v.Is(
		v.String(event.ComplianceType, "compliance_type").Not().Blank(),
		v.String(event.EventType, "event_type").Not().Blank(),
	)); err != nil {
		return nil, err
	}

	if event.Details == nil {
		event.Details = map[string]any{}
	}

	result := map[string]any{}
	if err := c.do(ctx, http.MethodPost, "/security/compliance-events", nil, event, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetComplianceReport retrieves the compliance report for an organization.
func (c *Client) GetComplianceReport(ctx context.Context, organizationID, complianceType string) (*types.ComplianceReport, error) {
	if err := validate(v.Is(v.String(organizationID, "organization_id").Not().Blank())); err != nil {
		return nil, err
	}

	query := url.Values{}
	if complianceType != "" {
		query.Set("compliance_type", complianceType)
	}

	report := &types.ComplianceReport{}
	if err := c.do(ctx, http.MethodGet, "/security/compliance/report/"+organizationID, query, nil, report); err != nil {
		return nil, err
	}
	return report, nil
}

// EncryptData encrypts sensitive data server-side.
func (c *Client) EncryptData(ctx context.Context, data string) (*types.EncryptedData, error) {
	if err := validate(v.Is(v.String(data, "data").Not().Blank())); err != nil {
		return nil, err
	}

	result := &types.EncryptedData{}
	if err := c.do(ctx, http.MethodPost, "/security/encrypt", nil, map[string]any{"data": data}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecryptData decrypts previously encrypted data.
func (c *Client) DecryptData(ctx context.Context, encryptedData string) (*types.EncryptedData, error) {
	if err := validate(v.Is(v.String(encryptedData, "encrypted_data").Not().Blank())); err != nil {
		return nil, err
	}

	result := &types.EncryptedData{}
	if err := c.do(ctx, http.MethodPost, "/security/decrypt", nil, map[string]any{"encrypted_data": encryptedData}, result); err != nil {
		return nil, err
	}
	return result, nil
}
