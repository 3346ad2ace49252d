package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"superclaims/internal/domain"
	"superclaims/internal/pipeline"
	"superclaims/mocks"
)

func TestTextExtractionStage_AllSucceed(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText", mock.Anything, []byte("b1")).Return("bill text", nil)
	extractor.On("ExtractText", mock.Anything, []byte("d1")).Return("discharge text", nil)

	stage := pipeline.NewTextExtractionStage(extractor)
	rec := stage.Run(context.Background(), domain.ProcessingRecord{}, []domain.UploadedFile{
		{Name: "bill.pdf", Content: []byte("b1")},
		{Name: "discharge.pdf", Content: []byte("d1")},
	})

	assert.Equal(t, []domain.RawText{
		{SourceFile: "bill.pdf", Text: "bill text"},
		{SourceFile: "discharge.pdf", Text: "discharge text"},
	}, rec.RawTexts)
	assert.Empty(t, rec.Errors)
}

func TestTextExtractionStage_FailedFileDegrades(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText", mock.Anything, []byte("good")).Return("some text", nil)
	extractor.On("ExtractText", mock.Anything, []byte("bad")).Return("", errors.New("malformed xref table"))

	stage := pipeline.NewTextExtractionStage(extractor)
	rec := stage.Run(context.Background(), domain.ProcessingRecord{}, []domain.UploadedFile{
		{Name: "good.pdf", Content: []byte("good")},
		{Name: "corrupt.pdf", Content: []byte("bad")},
	})

	// One RawText per input, in input order, even for the failed file.
	assert.Len(t, rec.RawTexts, 2)
	assert.Equal(t, "good.pdf", rec.RawTexts[0].SourceFile)
	assert.Equal(t, "corrupt.pdf", rec.RawTexts[1].SourceFile)
	assert.Empty(t, rec.RawTexts[1].Text)
	assert.Contains(t, rec.RawTexts[1].ExtractionError, "malformed xref table")

	assert.Len(t, rec.Errors, 1)
	assert.Contains(t, rec.Errors[0], "corrupt.pdf: text extraction failed")
}
