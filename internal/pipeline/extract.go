package pipeline

import (
	"context"
	"fmt"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

// TextExtractionStage converts each uploaded file into raw text via the
// PDF/OCR collaborator. Output preserves input length and order; a failed
// file yields an empty RawText with its extraction error recorded.
type TextExtractionStage struct {
	extractor port.TextExtractor
}

// NewTextExtractionStage creates the text extraction stage.
func NewTextExtractionStage(extractor port.TextExtractor) *TextExtractionStage {
	return &TextExtractionStage{extractor: extractor}
}

// Run returns a new record with one RawText per uploaded file.
func (s *TextExtractionStage) Run(ctx context.Context, rec domain.ProcessingRecord, files []domain.UploadedFile) domain.ProcessingRecord {
	texts := make([]domain.RawText, 0, len(files))
	var errs []string

	for _, file := range files {
		text, err := s.extractor.ExtractText(ctx, file.Content)
		if err != nil {
			log.Printf("pipeline.TextExtractionStage: %s: %v", file.Name, err)
			texts = append(texts, domain.RawText{
				SourceFile:      file.Name,
				ExtractionError: err.Error(),
			})
			errs = append(errs, fmt.Sprintf("%s: text extraction failed: %v", file.Name, err))
			continue
		}
		texts = append(texts, domain.RawText{SourceFile: file.Name, Text: text})
	}

	return rec.WithRawTexts(texts, errs)
}
