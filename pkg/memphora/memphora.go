/*
Package memphora is the high-level SDK for the Memphora memory service.
A Memphora instance is bound to one user namespace at construction and
exposes the full documented API surface without requiring the user ID on
every call. The lower-level per-endpoint client lives in pkg/client.
*/
package memphora

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/client"
	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

// Memphora is the high-level SDK facade, bound to a user namespace.
type Memphora struct {
	config *Config
	client *client.Client
	cache  *contextCache
}

// New constructs the SDK. Configuration resolution order: explicit option,
// environment variable (MEMPHORA_USER_ID, MEMPHORA_API_KEY,
// MEMPHORA_API_URL), documented default, construction failure.
func New(opts ...Option) (*Memphora, error) {
	config, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	clientOpts := config.ClientOpts
	if config.HTTPClient != nil {
		clientOpts = append(clientOpts, client.WithHTTPClient(config.HTTPClient))
	}

	m := &Memphora{
		config: config,
		client: client.New(config.APIURL, config.APIKey, clientOpts...),
	}

	if config.EnableCache {
		cache, err := newContextCache()
		if err != nil {
			return nil, err
		}
		m.cache = cache
	}

	log.Debug("Memphora SDK initialized", "user_id", config.UserID, "api_url", m.client.BaseURL())
	return m, nil
}

// UserID returns the user namespace the facade is bound to.
func (m *Memphora) UserID() string { return m.config.UserID }

// Client exposes the underlying REST client for endpoints that need
// explicit namespace control.
func (m *Memphora) Client() *client.Client { return m.client }

// Store stores a memory verbatim under the bound user.
func (m *Memphora) Store(ctx context.Context, content string, metadata map[string]any) (*types.Memory, error) {
	return m.client.AddMemory(ctx, m.config.UserID, content, metadata)
}

// Search runs a semantic search over the bound user's memories.
func (m *Memphora) Search(ctx context.Context, query string, limit int) ([]types.Memory, error) {
	return m.client.SearchMemories(ctx, m.config.UserID, query, client.SearchOptions{Limit: limit})
}

// SearchReranked runs a semantic search with external reranking enabled.
func (m *Memphora) SearchReranked(ctx context.Context, query string, limit int, provider string) ([]types.Memory, error) {
	return m.client.SearchMemories(ctx, m.config.UserID, query, client.SearchOptions{
		Limit:          limit,
		Rerank:         true,
		RerankProvider: provider,
	})
}

// SearchAdvanced runs a filtered, scored search.
func (m *Memphora) SearchAdvanced(ctx context.Context, query string, opts client.AdvancedSearchOptions) ([]types.Memory, error) {
	return m.client.SearchAdvanced(ctx, m.config.UserID, query, opts)
}

// SearchOptimized runs the optimized retrieval path under a token budget.
func (m *Memphora) SearchOptimized(ctx context.Context, query string, opts client.ContextSearchOptions) (*types.ContextResult, error) {
	return m.client.SearchOptimized(ctx, m.config.UserID, query, opts)
}

// SearchEnhanced runs the enhanced retrieval path.
func (m *Memphora) SearchEnhanced(ctx context.Context, query string, opts client.ContextSearchOptions) (*types.ContextResult, error) {
	return m.client.SearchEnhanced(ctx, m.config.UserID, query, opts)
}

// GetContext fetches the memories relevant to a query and formats them as
// a prompt-ready block. A failed search degrades to an empty context.
func (m *Memphora) GetContext(ctx context.Context, query string, limit int) (string, error) {
	if limit <= 0 {
		limit = 5
	}

	if m.cache != nil {
		if cached, ok := m.cache.get(query); ok {
			log.Debug("context cache hit", "query", query)
			return cached, nil
		}
	}

	memories, err := m.client.SearchMemories(ctx, m.config.UserID, query, client.SearchOptions{Limit: limit})
	if err != nil {
		return "", err
	}

	formatted := FormatContext(memories)

	if m.cache != nil && formatted != "" {
		m.cache.set(query, formatted)
	}

	return formatted, nil
}

// FormatContext renders memories as the standard context block injected
// into prompts.
func FormatContext(memories []types.Memory) string {
	if len(memories) == 0 {
		return ""
	}

	builder := &strings.Builder{}
	builder.WriteString("Relevant context from past conversations:")

	for _, memory := range memories {
		builder.WriteString("\n- ")
		builder.WriteString(memory.Content)
	}

	return builder.String()
}

// GetOptimizedContext returns the formatted context string of the optimized
// retrieval path, honoring the configured compression default.
func (m *Memphora) GetOptimizedContext(ctx context.Context, query string) (string, error) {
	result, err := m.client.SearchOptimized(ctx, m.config.UserID, query, client.ContextSearchOptions{
		MaxTokens:      m.config.MaxTokens,
		UseCompression: m.config.AutoCompress,
		UseCache:       true,
	})
	if err != nil {
		return "", err
	}
	return result.Context, nil
}

// GetEnhancedContext returns the formatted context string of the enhanced
// retrieval path.
func (m *Memphora) GetEnhancedContext(ctx context.Context, query string) (string, error) {
	result, err := m.client.SearchEnhanced(ctx, m.config.UserID, query, client.ContextSearchOptions{
		MaxTokens:      m.config.MaxTokens,
		UseCompression: m.config.AutoCompress,
	})
	if err != nil {
		return "", err
	}
	return result.Context, nil
}

// StoreConversation records one user/assistant exchange and lets the
// server extract the key facts as memories.
func (m *Memphora) StoreConversation(ctx context.Context, userMessage, assistantReply string) error {
	conversation := []types.Message{
		{Role: "user", Content: userMessage},
		{Role: "assistant", Content: assistantReply},
	}

	_, err := m.client.ExtractFromConversation(ctx, m.config.UserID, conversation)
	return err
}

// Extract extracts and stores memories from a single block of content.
func (m *Memphora) Extract(ctx context.Context, content string, metadata map[string]any) ([]types.Memory, error) {
	return m.client.ExtractFromContent(ctx, m.config.UserID, content, metadata)
}

// Clear deletes every memory of the bound user.
func (m *Memphora) Clear(ctx context.Context) (*types.DeleteResult, error) {
	return m.client.DeleteAllUserMemories(ctx, m.config.UserID)
}

// GetMemory retrieves a memory by ID.
func (m *Memphora) GetMemory(ctx context.Context, memoryID string) (*types.Memory, error) {
	return m.client.GetMemory(ctx, memoryID)
}

// UpdateMemory supersedes a memory's content and/or metadata.
func (m *Memphora) UpdateMemory(ctx context.Context, memoryID string, content *string, metadata map[string]any) (*types.Memory, error) {
	return m.client.UpdateMemory(ctx, memoryID, content, metadata)
}

// DeleteMemory removes a memory.
func (m *Memphora) DeleteMemory(ctx context.Context, memoryID string) error {
	return m.client.DeleteMemory(ctx, memoryID)
}

// ListMemories lists the bound user's memories.
func (m *Memphora) ListMemories(ctx context.Context, limit int) ([]types.Memory, error) {
	if limit <= 0 {
		limit = 100
	}
	return m.client.GetUserMemories(ctx, m.config.UserID, limit)
}

// StoreLinked stores a memory and links it to existing memories.
func (m *Memphora) StoreLinked(ctx context.Context, content string, metadata map[string]any, linkTo []string) (*types.Memory, error) {
	return m.client.CreateAdvancedMemory(ctx, m.config.UserID, content, metadata, linkTo)
}

// BatchStore stores multiple memories in one request.
func (m *Memphora) BatchStore(ctx context.Context, memories []types.MemoryInput, linkRelated bool) ([]types.Memory, error) {
	return m.client.BatchCreate(ctx, m.config.UserID, memories, linkRelated)
}

// Merge merges multiple memories into one.
func (m *Memphora) Merge(ctx context.Context, memoryIDs []string, strategy string) (*types.Memory, error) {
	return m.client.MergeMemories(ctx, memoryIDs, strategy)
}

// FindContradictions finds memories that potentially contradict the given
// one.
func (m *Memphora) FindContradictions(ctx context.Context, memoryID string, threshold float64) ([]types.Memory, error) {
	if threshold <= 0 {
		threshold = 0.7
	}
	return m.client.FindContradictions(ctx, memoryID, threshold)
}

// Link creates a typed relationship between two memories.
func (m *Memphora) Link(ctx context.Context, memoryID, targetID, relationshipType string) (*types.Link, error) {
	return m.client.LinkMemories(ctx, memoryID, targetID, relationshipType)
}

// FindPath finds the shortest path between two memories in the graph.
func (m *Memphora) FindPath(ctx context.Context, sourceID, targetID string) (*types.MemoryPath, error) {
	return m.client.FindMemoryPath(ctx, sourceID, targetID)
}

// GetContextForMemory retrieves the graph neighborhood of a memory.
func (m *Memphora) GetContextForMemory(ctx context.Context, memoryID string, depth int) (*types.MemoryContext, error) {
	return m.client.GetMemoryContext(ctx, memoryID, depth)
}

// GetRelatedMemories returns the memories directly related to the given
// one, capped at limit.
func (m *Memphora) GetRelatedMemories(ctx context.Context, memoryID string, limit int) ([]types.Memory, error) {
	context, err := m.client.GetMemoryContext(ctx, memoryID, 1)
	if err != nil {
		return nil, err
	}

	related := context.RelatedMemories
	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// GetVersions lists the retained versions of a memory.
func (m *Memphora) GetVersions(ctx context.Context, memoryID string, limit int) ([]types.Version, error) {
	return m.client.GetMemoryVersions(ctx, memoryID, limit)
}

// GetVersionHistory lists version history within an optional range.
func (m *Memphora) GetVersionHistory(ctx context.Context, memoryID string, fromVersion, toVersion int) ([]types.Version, error) {
	return m.client.GetVersionHistory(ctx, memoryID, fromVersion, toVersion)
}

// Rollback restores a memory to an earlier version.
func (m *Memphora) Rollback(ctx context.Context, memoryID string, targetVersion int) (*types.RollbackResult, error) {
	return m.client.RollbackMemory(ctx, memoryID, targetVersion, m.config.UserID)
}

// CompareVersions compares two versions of a memory.
func (m *Memphora) CompareVersions(ctx context.Context, versionID1, versionID2 string) (*types.VersionDiff, error) {
	return m.client.CompareVersions(ctx, versionID1, versionID2)
}

// RecordConversation stores a full conversation.
func (m *Memphora) RecordConversation(ctx context.Context, conversation []types.Message, platform string, metadata map[string]any) (*types.Conversation, error) {
	return m.client.RecordConversation(ctx, m.config.UserID, conversation, platform, metadata)
}

// GetConversation retrieves a conversation by ID. A missing conversation
// yields a zero Conversation and no error.
func (m *Memphora) GetConversation(ctx context.Context, conversationID string) (types.Conversation, error) {
	conversation, err := m.client.GetConversation(ctx, conversationID)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return types.Conversation{}, nil
		}
		return types.Conversation{}, err
	}
	return *conversation, nil
}

// GetConversations lists the bound user's conversations.
func (m *Memphora) GetConversations(ctx context.Context, platform string, limit int) ([]types.Conversation, error) {
	return m.client.GetUserConversations(ctx, m.config.UserID, platform, limit)
}

// GetSummary retrieves the rolling summary of the user's conversations.
func (m *Memphora) GetSummary(ctx context.Context) (*types.RollingSummary, error) {
	return m.client.GetSummary(ctx, m.config.UserID)
}

// SummarizeConversation summarizes a conversation.
func (m *Memphora) SummarizeConversation(ctx context.Context, conversation []types.Message, summaryType string) (*types.ConversationSummary, error) {
	return m.client.SummarizeConversation(ctx, conversation, summaryType)
}

// StoreAgentMemory stores a memory scoped to an agent namespace.
func (m *Memphora) StoreAgentMemory(ctx context.Context, agentID, content, runID string, metadata map[string]any) (*types.Memory, error) {
	return m.client.StoreAgentMemory(ctx, m.config.UserID, agentID, content, runID, metadata)
}

// SearchAgentMemories searches within an agent namespace.
func (m *Memphora) SearchAgentMemories(ctx context.Context, agentID, query, runID string, limit int) ([]types.Memory, error) {
	return m.client.SearchAgentMemories(ctx, m.config.UserID, agentID, query, runID, limit)
}

// GetAgentMemories lists all memories of an agent namespace.
func (m *Memphora) GetAgentMemories(ctx context.Context, agentID string, limit int) ([]types.Memory, error) {
	return m.client.GetAgentMemories(ctx, m.config.UserID, agentID, limit)
}

// StoreGroupMemory stores a memory shared by a group.
func (m *Memphora) StoreGroupMemory(ctx context.Context, groupID, content string, metadata map[string]any) (*types.Memory, error) {
	return m.client.StoreGroupMemory(ctx, m.config.UserID, groupID, content, metadata)
}

// SearchGroupMemories searches within a group namespace.
func (m *Memphora) SearchGroupMemories(ctx context.Context, groupID, query string, limit int) ([]types.Memory, error) {
	return m.client.SearchGroupMemories(ctx, m.config.UserID, groupID, query, limit)
}

// GetGroupContext retrieves the shared context of a group.
func (m *Memphora) GetGroupContext(ctx context.Context, groupID string, limit int) (*types.ContextResult, error) {
	return m.client.GetGroupContext(ctx, m.config.UserID, groupID, limit)
}

// StoreImage stores an image memory by URL or base64 payload.
func (m *Memphora) StoreImage(ctx context.Context, input client.ImageInput) (*types.Memory, error) {
	return m.client.StoreImage(ctx, m.config.UserID, input)
}

// UploadImage uploads raw image bytes.
func (m *Memphora) UploadImage(ctx context.Context, data []byte, filename string) (*types.Memory, error) {
	return m.client.UploadImage(ctx, m.config.UserID, data, filename)
}

// SearchImages searches image memories by their descriptions.
func (m *Memphora) SearchImages(ctx context.Context, query string, limit int) ([]types.Memory, error) {
	return m.client.SearchImages(ctx, m.config.UserID, query, limit)
}

// Concise asks the server to make text more concise.
func (m *Memphora) Concise(ctx context.Context, text string) (string, error) {
	return m.client.ConciseText(ctx, text)
}

// Export exports all memories of the bound user.
func (m *Memphora) Export(ctx context.Context, format string) (*types.ExportData, error) {
	return m.client.ExportMemories(ctx, m.config.UserID, format)
}

// Import imports previously exported data.
func (m *Memphora) Import(ctx context.Context, data, format string) (*types.ImportResult, error) {
	return m.client.ImportMemories(ctx, m.config.UserID, data, format)
}

// Health reports the API health status.
func (m *Memphora) Health(ctx context.Context) (*types.HealthStatus, error) {
	return m.client.HealthCheck(ctx)
}

// GetStatistics retrieves statistics for the bound user's memory store.
func (m *Memphora) GetStatistics(ctx context.Context) (*types.UserStatistics, error) {
	return m.client.GetUserStatistics(ctx, m.config.UserID)
}

// GetUserAnalytics retrieves the bound user's memory insights.
func (m *Memphora) GetUserAnalytics(ctx context.Context) (map[string]any, error) {
	return m.client.GetUserAnalytics(ctx, m.config.UserID)
}

// GetMemoryGrowth tracks memory creation over a window of days.
func (m *Memphora) GetMemoryGrowth(ctx context.Context, days int) (*types.MemoryGrowth, error) {
	return m.client.GetMemoryGrowth(ctx, m.config.UserID, days)
}

// GetAuditLogs retrieves the bound user's audit trail.
func (m *Memphora) GetAuditLogs(ctx context.Context, limit int) ([]types.AuditLog, error) {
	return m.client.GetAuditLogs(ctx, m.config.UserID, limit)
}

// GetMetrics retrieves raw system metrics.
func (m *Memphora) GetMetrics(ctx context.Context) (map[string]any, error) {
	return m.client.GetMetrics(ctx)
}

// GetMetricsSummary retrieves the aggregated metrics summary.
func (m *Memphora) GetMetricsSummary(ctx context.Context) (map[string]any, error) {
	return m.client.GetMetricsSummary(ctx)
}

// CreateWebhook registers a webhook.
func (m *Memphora) CreateWebhook(ctx context.Context, url string, events []string, secret string) (*types.Webhook, error) {
	return m.client.CreateWebhook(ctx, url, events, secret)
}

// ListWebhooks lists the bound user's webhooks.
func (m *Memphora) ListWebhooks(ctx context.Context) ([]types.Webhook, error) {
	return m.client.ListWebhooks(ctx, m.config.UserID)
}

// GetWebhook retrieves a webhook by ID.
func (m *Memphora) GetWebhook(ctx context.Context, webhookID string) (*types.Webhook, error) {
	return m.client.GetWebhook(ctx, webhookID)
}

// UpdateWebhook applies partial changes to a webhook.
func (m *Memphora) UpdateWebhook(ctx context.Context, webhookID string, update types.WebhookUpdate) (*types.Webhook, error) {
	return m.client.UpdateWebhook(ctx, webhookID, update)
}

// DeleteWebhook removes a webhook.
func (m *Memphora) DeleteWebhook(ctx context.Context, webhookID string) error {
	return m.client.DeleteWebhook(ctx, webhookID)
}

// TestWebhook fires a sample event at a webhook.
func (m *Memphora) TestWebhook(ctx context.Context, webhookID string) (*types.WebhookTestResult, error) {
	return m.client.TestWebhook(ctx, webhookID)
}

// ExportGDPR exports all data held for the bound user.
func (m *Memphora) ExportGDPR(ctx context.Context) (map[string]any, error) {
	return m.client.ExportGDPR(ctx, m.config.UserID)
}

// DeleteGDPR deletes all data held for the bound user.
func (m *Memphora) DeleteGDPR(ctx context.Context) (map[string]any, error) {
	return m.client.DeleteGDPR(ctx, m.config.UserID)
}

// SetRetentionPolicy creates a user-level retention policy.
func (m *Memphora) SetRetentionPolicy(ctx context.Context, dataType string, retentionDays int, organizationID string, autoDelete bool) (*types.RetentionPolicy, error) {
	return m.client.SetRetentionPolicy(ctx, types.RetentionPolicy{
		DataType:       dataType,
		RetentionDays:  retentionDays,
		OrganizationID: organizationID,
		UserID:         m.config.UserID,
		AutoDelete:     autoDelete,
	})
}

// ApplyRetentionPolicies applies retention policies for the bound user.
func (m *Memphora) ApplyRetentionPolicies(ctx context.Context, organizationID string) (*types.RetentionResult, error) {
	return m.client.ApplyRetentionPolicies(ctx, organizationID, m.config.UserID)
}

// GetComplianceReport retrieves an organization's compliance report.
func (m *Memphora) GetComplianceReport(ctx context.Context, organizationID, complianceType string) (*types.ComplianceReport, error) {
	return m.client.GetComplianceReport(ctx, organizationID, complianceType)
}

// RecordComplianceEvent records a compliance event for the bound user.
func (m *Memphora) RecordComplianceEvent(ctx context.Context, complianceType, eventType, organizationID, dataSubjectID string, details map[string]any) (map[string]any, error) {
	return m.client.RecordComplianceEvent(ctx, client.ComplianceEvent{
		ComplianceType: complianceType,
		EventType:      eventType,
		UserID:         m.config.UserID,
		OrganizationID: organizationID,
		DataSubjectID:  dataSubjectID,
		Details:        details,
	})
}

// Encrypt encrypts sensitive data server-side.
func (m *Memphora) Encrypt(ctx context.Context, data string) (*types.EncryptedData, error) {
	return m.client.EncryptData(ctx, data)
}

// Decrypt decrypts previously encrypted data.
func (m *Memphora) Decrypt(ctx context.Context, encryptedData string) (*types.EncryptedData, error) {
	return m.client.DecryptData(ctx, encryptedData)
}
