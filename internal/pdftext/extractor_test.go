package pdftext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"superclaims/internal/pdftext"
)

func TestExtractText_RejectsNonPDFContent(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractText(context.Background(), []byte("plain text, not a PDF"))
	assert.Error(t, err)
}

func TestExtractText_RejectsEmptyContent(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractText(context.Background(), nil)
	assert.Error(t, err)
}

func TestExtractText_HonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdftext.NewExtractor().ExtractText(ctx, []byte("irrelevant"))
	assert.ErrorIs(t, err, context.Canceled)
}
