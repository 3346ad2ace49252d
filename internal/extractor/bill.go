package extractor

import (
	"context"
	"fmt"

	"superclaims/internal/domain"
	"superclaims/internal/llm"
	"superclaims/internal/port"
)

// BillExtractor extracts structured data from medical bill documents.
type BillExtractor struct {
	llm port.LLMClient
}

// NewBillExtractor creates a bill extractor backed by the given LLM client.
func NewBillExtractor(client port.LLMClient) *BillExtractor {
	return &BillExtractor{llm: client}
}

func (e *BillExtractor) DocType() domain.DocType { return domain.DocTypeBill }

func (e *BillExtractor) Extract(ctx context.Context, text, sourceFile string) (domain.ExtractedDocument, error) {
	doc := &domain.BillDocument{Type: domain.DocTypeBill, SourceFile: sourceFile}

	reply, err := e.llm.Complete(ctx, BuildBillPrompt(text), port.ModeJSON)
	if err != nil {
		return doc, fmt.Errorf("bill extraction for %s: %w", sourceFile, err)
	}

	var fields struct {
		HospitalName  *string  `json:"hospital_name"`
		TotalAmount   *float64 `json:"total_amount"`
		DateOfService *string  `json:"date_of_service"`
		BillNumber    *string  `json:"bill_number"`
	}
	if err := llm.DecodeJSON(reply, &fields); err != nil {
		return doc, fmt.Errorf("bill extraction for %s: %w", sourceFile, err)
	}

	doc.HospitalName = fields.HospitalName
	doc.TotalAmount = fields.TotalAmount
	doc.DateOfService = fields.DateOfService
	doc.BillNumber = fields.BillNumber
	return doc, nil
}
