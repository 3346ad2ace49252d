package validator

import (
	"log"

	"superclaims/internal/domain"
)

// Engine runs completeness and consistency checks over the aggregated
// documents of one claim.
type Engine struct {
	registry *Registry
	required []domain.DocType
}

// NewEngine creates a validation engine. required is the set of document
// types a complete claim must contain.
func NewEngine(registry *Registry, required []domain.DocType) *Engine {
	if len(required) == 0 {
		required = domain.RequiredDocTypes
	}
	return &Engine{registry: registry, required: required}
}

// Validate checks completeness and runs every registered consistency rule.
// A document whose core fields are all null counts as missing, not present.
func (e *Engine) Validate(docs []domain.ExtractedDocument) domain.ValidationResult {
	present := make(map[domain.DocType]bool, len(docs))
	for _, doc := range docs {
		if doc.HasCoreFields() {
			present[doc.DocumentType()] = true
		}
	}

	missing := make([]domain.DocType, 0, len(e.required))
	for _, t := range e.required {
		if !present[t] {
			missing = append(missing, t)
		}
	}

	claim := NewClaimView(docs)
	discrepancies := make([]domain.Discrepancy, 0, 4)
	for _, rule := range e.registry.All() {
		if d := rule.Check(claim); d != nil {
			discrepancies = append(discrepancies, *d)
		}
	}

	log.Printf("validator.Engine: %d documents checked: missing=%d, discrepancies=%d",
		len(docs), len(missing), len(discrepancies))

	return domain.ValidationResult{
		MissingDocuments: missing,
		Discrepancies:    discrepancies,
	}
}
