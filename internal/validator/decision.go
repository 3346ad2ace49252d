package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"superclaims/internal/domain"
	"superclaims/internal/llm"
	"superclaims/internal/port"
)

const defaultConfidence = 0.5

// DecisionMaker asks the LLM collaborator for a final claim decision and
// enforces the local decision policy over whatever the model returns.
type DecisionMaker struct {
	llm port.LLMClient
}

// NewDecisionMaker creates a DecisionMaker backed by the given LLM client.
func NewDecisionMaker(client port.LLMClient) *DecisionMaker {
	return &DecisionMaker{llm: client}
}

// Decide produces the final ClaimDecision. It never fails the claim: a
// transport fault or unparseable reply yields needs_review, and a non-empty
// missing-document set can never yield approved regardless of model output.
func (d *DecisionMaker) Decide(ctx context.Context, docs []domain.ExtractedDocument, validation domain.ValidationResult) domain.ClaimDecision {
	prompt := buildDecisionPrompt(docs, validation)

	reply, err := d.llm.Complete(ctx, prompt, port.ModeJSON)
	if err != nil {
		log.Printf("validator.DecisionMaker: decision call failed: %v", err)
		return enforcePolicy(domain.ClaimDecision{
			Status:          domain.DecisionNeedsReview,
			Reason:          "decision service unavailable; claim requires manual review",
			ConfidenceScore: 0,
		}, validation)
	}

	var parsed struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
		// Raw so a non-numeric confidence degrades alone instead of
		// discarding the whole reply.
		ConfidenceScore json.RawMessage `json:"confidence_score"`
	}
	if err := llm.DecodeJSON(reply, &parsed); err != nil {
		log.Printf("validator.DecisionMaker: unparseable decision reply: %v", err)
		return enforcePolicy(domain.ClaimDecision{
			Status:          domain.DecisionNeedsReview,
			Reason:          "decision reply could not be parsed; claim requires manual review",
			ConfidenceScore: 0,
		}, validation)
	}

	reason := strings.TrimSpace(parsed.Reason)
	if reason == "" {
		reason = "no reason provided by decision service"
	}

	return enforcePolicy(domain.ClaimDecision{
		Status:          domain.ParseDecisionStatus(parsed.Status),
		Reason:          reason,
		ConfidenceScore: parseConfidence(parsed.ConfidenceScore),
	}, validation)
}

// parseConfidence reads a confidence score that may be absent, null or not a
// number at all. Anything unusable defaults rather than failing the decision.
func parseConfidence(raw json.RawMessage) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return defaultConfidence
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		log.Printf("validator.DecisionMaker: non-numeric confidence_score %s, using default", raw)
		return defaultConfidence
	}
	return clamp01(f)
}

// enforcePolicy applies the hard local override: missing mandatory documents
// are an unconditional rejection criterion, never delegated to the model.
func enforcePolicy(decision domain.ClaimDecision, validation domain.ValidationResult) domain.ClaimDecision {
	if len(validation.MissingDocuments) == 0 || decision.Status != domain.DecisionApproved {
		return decision
	}
	names := make([]string, len(validation.MissingDocuments))
	for i, t := range validation.MissingDocuments {
		names[i] = string(t)
	}
	decision.Status = domain.DecisionRejected
	decision.Reason = fmt.Sprintf("missing required documents (%s); %s", strings.Join(names, ", "), decision.Reason)
	return decision
}

func buildDecisionPrompt(docs []domain.ExtractedDocument, validation domain.ValidationResult) string {
	docsJSON, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		docsJSON = []byte("[]")
	}
	validationJSON, err := json.MarshalIndent(validation, "", "  ")
	if err != nil {
		validationJSON = []byte("{}")
	}

	return fmt.Sprintf(`You are a medical insurance claim adjudication expert.

Review the extracted claim documents and the validation findings, then decide on claim approval.

Extracted Documents:
%s

Validation Findings (missing documents and cross-document discrepancies):
%s

Decision guidance:
- Approve only if all required documents are present and there are no material discrepancies.
- Reject when required documents are missing or the discrepancies undermine the claim.
- Use needs_review when the evidence is incomplete or ambiguous.

Respond ONLY with valid JSON, no markdown formatting, no code fences, no explanation:
{
  "status": "approved or rejected or needs_review",
  "reason": "detailed explanation for the decision",
  "confidence_score": 0.95
}`, docsJSON, validationJSON)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
