package types

// Relationship types accepted by the link endpoint.
const (
	RelRelated     = "related"
	RelContradicts = "contradicts"
	RelSupports    = "supports"
	RelExtends     = "extends"
)

// Link is a directed, typed relationship between two memories.
type Link struct {
	SourceID         string         `json:"source_id"`
	TargetID         string         `json:"target_id"`
	RelationshipType string         `json:"relationship_type"`
	Properties       map[string]any `json:"properties,omitempty"`
}

// MemoryContext is the neighborhood of a memory in the graph, up to the
// requested depth.
type MemoryContext struct {
	Memory          Memory   `json:"memory"`
	RelatedMemories []Memory `json:"related_memories"`
	Depth           int      `json:"depth,omitempty"`
}

// MemoryPath is the shortest path between two memories in the graph.
type MemoryPath struct {
	Path   []Memory `json:"path"`
	Length int      `json:"length,omitempty"`
	Found  bool     `json:"found,omitempty"`
}
