package extractor

import (
	"context"
	"fmt"

	"superclaims/internal/domain"
	"superclaims/internal/llm"
	"superclaims/internal/port"
)

// IDCardExtractor extracts structured data from insurance ID card documents.
type IDCardExtractor struct {
	llm port.LLMClient
}

// NewIDCardExtractor creates an ID card extractor backed by the given LLM client.
func NewIDCardExtractor(client port.LLMClient) *IDCardExtractor {
	return &IDCardExtractor{llm: client}
}

func (e *IDCardExtractor) DocType() domain.DocType { return domain.DocTypeIDCard }

func (e *IDCardExtractor) Extract(ctx context.Context, text, sourceFile string) (domain.ExtractedDocument, error) {
	doc := &domain.IDCardDocument{Type: domain.DocTypeIDCard, SourceFile: sourceFile}

	reply, err := e.llm.Complete(ctx, BuildIDCardPrompt(text), port.ModeJSON)
	if err != nil {
		return doc, fmt.Errorf("id card extraction for %s: %w", sourceFile, err)
	}

	var fields struct {
		PolicyNumber     *string `json:"policy_number"`
		InsuredName      *string `json:"insured_name"`
		Validity         *string `json:"validity"`
		InsuranceCompany *string `json:"insurance_company"`
	}
	if err := llm.DecodeJSON(reply, &fields); err != nil {
		return doc, fmt.Errorf("id card extraction for %s: %w", sourceFile, err)
	}

	doc.PolicyNumber = fields.PolicyNumber
	doc.InsuredName = fields.InsuredName
	doc.Validity = fields.Validity
	doc.InsuranceCompany = fields.InsuranceCompany
	return doc, nil
}
