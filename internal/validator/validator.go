package validator

import (
	"superclaims/internal/domain"
)

// Rule is the interface for a single cross-document consistency rule.
// A rule yields at most one discrepancy; when its inputs are missing the
// rule is inapplicable and yields none.
type Rule interface {
	RuleKey() string
	Field() string
	Check(claim *ClaimView) *domain.Discrepancy
}

// ClaimView is the per-type projection of an aggregated document list that
// consistency rules operate on. Only the first document of each type is
// considered; duplicates of a type are a review concern, not a rule input.
type ClaimView struct {
	Bill      *domain.BillDocument
	Discharge *domain.DischargeSummaryDocument
	IDCard    *domain.IDCardDocument
}

// NewClaimView projects the aggregated documents into a ClaimView.
func NewClaimView(docs []domain.ExtractedDocument) *ClaimView {
	view := &ClaimView{}
	for _, doc := range docs {
		switch d := doc.(type) {
		case *domain.BillDocument:
			if view.Bill == nil {
				view.Bill = d
			}
		case *domain.DischargeSummaryDocument:
			if view.Discharge == nil {
				view.Discharge = d
			}
		case *domain.IDCardDocument:
			if view.IDCard == nil {
				view.IDCard = d
			}
		}
	}
	return view
}
