package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"superclaims/internal/domain"
)

// Extractor implements port.TextExtractor for PDF content. It validates the
// file structure with pdfcpu, then pulls embedded text page by page. Scanned
// pages without embedded text contribute nothing; a document whose pages are
// all image-only yields domain.ErrNoTextContent.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractText(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pageCount, err := api.PageCount(bytes.NewReader(content), nil)
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}

	reader, err := ltpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var parts []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("pdftext.Extractor: page %d text extraction failed: %v", pageNum, err)
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", pageNum, pageText))
	}

	fullText := strings.Join(parts, "\n\n")
	if strings.TrimSpace(fullText) == "" {
		return "", fmt.Errorf("%w (%d pages)", domain.ErrNoTextContent, pageCount)
	}

	log.Printf("pdftext.Extractor: extracted %d characters from %d pages", len(fullText), pageCount)
	return fullText, nil
}
