package extractor

import (
	"context"

	"superclaims/internal/domain"
)

// Extractor turns the raw text of one classified document into its structured
// variant. On failure it returns a document with every field null together
// with the error, so the caller can keep the degraded document in the record.
type Extractor interface {
	DocType() domain.DocType
	Extract(ctx context.Context, text, sourceFile string) (domain.ExtractedDocument, error)
}

// Registry is the read-only dispatch table from doc type to extractor.
// Populate it at construction; it needs no synchronization afterwards.
type Registry struct {
	extractors map[domain.DocType]Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[domain.DocType]Extractor)}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(e Extractor) {
	r.extractors[e.DocType()] = e
}

// Get returns the extractor for a doc type, or nil if none is registered.
func (r *Registry) Get(t domain.DocType) Extractor {
	return r.extractors[t]
}
