package types

// RetentionPolicy controls how long a class of data is kept.
type RetentionPolicy struct {
	ID             string `json:"id,omitempty"`
	DataType       string `json:"data_type"`
	RetentionDays  int    `json:"retention_days"`
	OrganizationID string `json:"organization_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
	AutoDelete     bool   `json:"auto_delete"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// RetentionResult reports what applying retention policies removed.
type RetentionResult struct {
	DeletedCount    int `json:"deleted_count"`
	PoliciesApplied int `json:"policies_applied"`
}

// ComplianceReport is an organization-level compliance summary.
type ComplianceReport struct {
	OrganizationID string           `json:"organization_id"`
	ComplianceType string           `json:"compliance_type,omitempty"`
	Events         []map[string]any `json:"events,omitempty"`
	GeneratedAt    string           `json:"generated_at,omitempty"`
}

// ExportData is the payload of a user data export.
type ExportData struct {
	UserID   string `json:"user_id,omitempty"`
	Format   string `json:"format"`
	Data     string `json:"data"`
	Count    int    `json:"count,omitempty"`
	Exported string `json:"exported_at,omitempty"`
}

// ImportResult reports what a data import created.
type ImportResult struct {
	Imported int      `json:"imported,omitempty"`
	Count    int      `json:"count,omitempty"`
	Memories []Memory `json:"memories,omitempty"`
}

// EncryptedData carries encrypted or decrypted payloads from the security
// endpoints.
type EncryptedData struct {
	Data          string `json:"data,omitempty"`
	EncryptedData string `json:"encrypted_data,omitempty"`
}
