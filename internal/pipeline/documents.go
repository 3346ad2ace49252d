package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"superclaims/internal/domain"
	"superclaims/internal/extractor"
)

// DocumentBuildStage fans out type-specific extraction over the classified
// documents and aggregates the results back into upload order. Extractor
// calls for different documents share no state and run concurrently; the
// indexed result slices re-impose a deterministic order regardless of
// completion order.
type DocumentBuildStage struct {
	registry    *extractor.Registry
	concurrency int
}

// NewDocumentBuildStage creates the extraction fan-out stage.
func NewDocumentBuildStage(registry *extractor.Registry, concurrency int) *DocumentBuildStage {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &DocumentBuildStage{registry: registry, concurrency: concurrency}
}

// Run returns a new record with the extracted documents merged in. Unknown
// documents are skipped: their problem was already reported at classification.
// A failed extraction contributes a degraded all-null document plus an error
// entry and never blocks sibling extractions.
func (s *DocumentBuildStage) Run(ctx context.Context, rec domain.ProcessingRecord) domain.ProcessingRecord {
	results := make([]domain.ExtractedDocument, len(rec.Classified))
	failures := make([]string, len(rec.Classified))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, cd := range rec.Classified {
		if cd.DocType == domain.DocTypeUnknown {
			continue
		}
		ext := s.registry.Get(cd.DocType)
		if ext == nil {
			log.Printf("pipeline.DocumentBuildStage: no extractor registered for %q", cd.DocType)
			continue
		}

		g.Go(func() error {
			doc, err := ext.Extract(gctx, cd.Text, cd.SourceFile)
			results[i] = doc
			if err != nil {
				log.Printf("pipeline.DocumentBuildStage: %v", err)
				failures[i] = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait() // workers report failures as data, never as group errors

	// Aggregate by original index so concurrent completion order never leaks
	// into the response.
	docs := make([]domain.ExtractedDocument, 0, len(results))
	var errs []string
	for i := range results {
		if results[i] != nil {
			docs = append(docs, results[i])
		}
		if failures[i] != "" {
			errs = append(errs, failures[i])
		}
	}

	return rec.WithDocuments(docs, errs)
}
