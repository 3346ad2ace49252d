package port

import "context"

// TextExtractor is the PDF/OCR collaborator boundary. Any error is
// per-document: the pipeline degrades the affected file and continues.
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}
