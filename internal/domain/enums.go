package domain

// DocType labels a classified claim document.
type DocType string

const (
	DocTypeBill             DocType = "bill"
	DocTypeDischargeSummary DocType = "discharge_summary"
	DocTypeIDCard           DocType = "id_card"
	DocTypeUnknown          DocType = "unknown"
)

// KnownDocTypes maps classifier label tokens to DocType.
var KnownDocTypes = map[string]DocType{
	"bill":              DocTypeBill,
	"discharge_summary": DocTypeDischargeSummary,
	"id_card":           DocTypeIDCard,
	"unknown":           DocTypeUnknown,
}

// RequiredDocTypes is the default set of document types a complete claim must contain.
var RequiredDocTypes = []DocType{DocTypeBill, DocTypeDischargeSummary, DocTypeIDCard}

// DecisionStatus is the outcome of claim adjudication.
type DecisionStatus string

const (
	DecisionApproved    DecisionStatus = "approved"
	DecisionRejected    DecisionStatus = "rejected"
	DecisionNeedsReview DecisionStatus = "needs_review"
)

// ParseDecisionStatus maps a model-returned status string to a DecisionStatus.
// Anything unrecognized maps to needs_review rather than failing the claim.
func ParseDecisionStatus(s string) DecisionStatus {
	switch DecisionStatus(s) {
	case DecisionApproved, DecisionRejected, DecisionNeedsReview:
		return DecisionStatus(s)
	default:
		return DecisionNeedsReview
	}
}
