package extractor

import (
	"context"
	"fmt"

	"superclaims/internal/domain"
	"superclaims/internal/llm"
	"superclaims/internal/port"
)

// DischargeExtractor extracts structured data from discharge summary documents.
type DischargeExtractor struct {
	llm port.LLMClient
}

// NewDischargeExtractor creates a discharge summary extractor backed by the given LLM client.
func NewDischargeExtractor(client port.LLMClient) *DischargeExtractor {
	return &DischargeExtractor{llm: client}
}

func (e *DischargeExtractor) DocType() domain.DocType { return domain.DocTypeDischargeSummary }

func (e *DischargeExtractor) Extract(ctx context.Context, text, sourceFile string) (domain.ExtractedDocument, error) {
	doc := &domain.DischargeSummaryDocument{Type: domain.DocTypeDischargeSummary, SourceFile: sourceFile}

	reply, err := e.llm.Complete(ctx, BuildDischargePrompt(text), port.ModeJSON)
	if err != nil {
		return doc, fmt.Errorf("discharge summary extraction for %s: %w", sourceFile, err)
	}

	var fields struct {
		PatientName   *string `json:"patient_name"`
		Diagnosis     *string `json:"diagnosis"`
		AdmissionDate *string `json:"admission_date"`
		DischargeDate *string `json:"discharge_date"`
		Treatment     *string `json:"treatment"`
		DoctorName    *string `json:"doctor_name"`
	}
	if err := llm.DecodeJSON(reply, &fields); err != nil {
		return doc, fmt.Errorf("discharge summary extraction for %s: %w", sourceFile, err)
	}

	doc.PatientName = fields.PatientName
	doc.Diagnosis = fields.Diagnosis
	doc.AdmissionDate = fields.AdmissionDate
	doc.DischargeDate = fields.DischargeDate
	doc.Treatment = fields.Treatment
	doc.DoctorName = fields.DoctorName
	return doc, nil
}
