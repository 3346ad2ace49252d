package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/port"
)

// ClassificationStage assigns a document-type label to each raw text via the
// LLM collaborator. Documents are never dropped here: anything that cannot
// be labeled is tagged unknown so validation can still report it.
type ClassificationStage struct {
	llm          port.LLMClient
	snippetChars int
}

// NewClassificationStage creates the classification stage. snippetChars
// limits how much document text is sent to the classifier.
func NewClassificationStage(client port.LLMClient, snippetChars int) *ClassificationStage {
	if snippetChars <= 0 {
		snippetChars = 2000
	}
	return &ClassificationStage{llm: client, snippetChars: snippetChars}
}

// Run returns a new record with one ClassifiedDocument per RawText, in order.
func (s *ClassificationStage) Run(ctx context.Context, rec domain.ProcessingRecord) domain.ProcessingRecord {
	classified := make([]domain.ClassifiedDocument, 0, len(rec.RawTexts))
	var errs []string

	for _, raw := range rec.RawTexts {
		// Files the extraction stage already degraded skip the LLM call.
		if raw.ExtractionError != "" {
			classified = append(classified, domain.ClassifiedDocument{
				SourceFile: raw.SourceFile,
				DocType:    domain.DocTypeUnknown,
			})
			continue
		}

		prompt := extractor.BuildClassificationPrompt(raw.SourceFile, snippet(raw.Text, s.snippetChars))
		reply, err := s.llm.Complete(ctx, prompt, port.ModeLabel)
		if err != nil {
			log.Printf("pipeline.ClassificationStage: %s: %v", raw.SourceFile, err)
			classified = append(classified, domain.ClassifiedDocument{
				SourceFile:          raw.SourceFile,
				Text:                raw.Text,
				DocType:             domain.DocTypeUnknown,
				ClassificationError: err.Error(),
			})
			errs = append(errs, fmt.Sprintf("%s: classification failed: %v", raw.SourceFile, err))
			continue
		}

		docType, ok := parseLabel(reply)
		if !ok {
			log.Printf("pipeline.ClassificationStage: %s: unparseable label %q", raw.SourceFile, reply)
			classified = append(classified, domain.ClassifiedDocument{
				SourceFile:          raw.SourceFile,
				Text:                raw.Text,
				DocType:             domain.DocTypeUnknown,
				ClassificationError: fmt.Sprintf("unparseable classification label: %q", reply),
			})
			errs = append(errs, fmt.Sprintf("%s: unparseable classification label: %q", raw.SourceFile, reply))
			continue
		}

		classified = append(classified, domain.ClassifiedDocument{
			SourceFile: raw.SourceFile,
			Text:       raw.Text,
			DocType:    docType,
		})
	}

	return rec.WithClassified(classified, errs)
}

// parseLabel interprets the classifier reply as exactly one label token.
func parseLabel(reply string) (domain.DocType, bool) {
	token := strings.ToLower(strings.Trim(strings.TrimSpace(reply), "\"'`."))
	docType, ok := domain.KnownDocTypes[token]
	return docType, ok
}

// snippet cuts text to at most limit bytes, backing off to a rune boundary so
// the cut never sends a split multi-byte character to the classifier.
func snippet(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
