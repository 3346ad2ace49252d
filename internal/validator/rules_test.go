package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superclaims/internal/domain"
	"superclaims/internal/validator"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func findRule(t *testing.T, key string) validator.Rule {
	t.Helper()
	for _, r := range validator.ConsistencyRules(30) {
		if r.RuleKey() == key {
			return r
		}
	}
	t.Fatalf("no rule registered for key %q", key)
	return nil
}

func claimView(bill *domain.BillDocument, discharge *domain.DischargeSummaryDocument, card *domain.IDCardDocument) *validator.ClaimView {
	var docs []domain.ExtractedDocument
	if bill != nil {
		docs = append(docs, bill)
	}
	if discharge != nil {
		docs = append(docs, discharge)
	}
	if card != nil {
		docs = append(docs, card)
	}
	return validator.NewClaimView(docs)
}

func TestNameMatchRule(t *testing.T) {
	rule := findRule(t, "xd.patient_name.match")

	t.Run("mismatch_detected", func(t *testing.T) {
		claim := claimView(nil,
			&domain.DischargeSummaryDocument{PatientName: strPtr("John Doe")},
			&domain.IDCardDocument{InsuredName: strPtr("jane doe")},
		)
		d := rule.Check(claim)
		require.NotNil(t, d)
		assert.Equal(t, "patient_name", d.Field)
	})

	t.Run("case_and_whitespace_variants_match", func(t *testing.T) {
		claim := claimView(nil,
			&domain.DischargeSummaryDocument{PatientName: strPtr("John Doe")},
			&domain.IDCardDocument{InsuredName: strPtr("  John   Doe ")},
		)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("missing_name_inapplicable", func(t *testing.T) {
		claim := claimView(nil,
			&domain.DischargeSummaryDocument{},
			&domain.IDCardDocument{InsuredName: strPtr("John Doe")},
		)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("missing_document_inapplicable", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{PatientName: strPtr("John Doe")}, nil)
		assert.Nil(t, rule.Check(claim))
	})
}

func TestAdmissionBeforeDischargeRule(t *testing.T) {
	rule := findRule(t, "xd.dates.admission_before_discharge")

	t.Run("ordered_dates_pass", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{
			AdmissionDate: strPtr("2024-04-01"),
			DischargeDate: strPtr("2024-04-10"),
		}, nil)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("equal_dates_pass", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{
			AdmissionDate: strPtr("2024-04-10"),
			DischargeDate: strPtr("2024-04-10"),
		}, nil)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("reversed_dates_fail", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{
			AdmissionDate: strPtr("2024-04-12"),
			DischargeDate: strPtr("2024-04-10"),
		}, nil)
		d := rule.Check(claim)
		require.NotNil(t, d)
		assert.Equal(t, "admission_date", d.Field)
	})

	t.Run("missing_date_inapplicable", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{
			DischargeDate: strPtr("2024-04-10"),
		}, nil)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("unparseable_date_inapplicable", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{
			AdmissionDate: strPtr("April 1st"),
			DischargeDate: strPtr("2024-04-10"),
		}, nil)
		assert.Nil(t, rule.Check(claim))
	})
}

func TestDischargeNearServiceRule(t *testing.T) {
	rule := findRule(t, "xd.dates.discharge_near_service")

	t.Run("within_window_passes", func(t *testing.T) {
		claim := claimView(
			&domain.BillDocument{DateOfService: strPtr("2024-04-20")},
			&domain.DischargeSummaryDocument{DischargeDate: strPtr("2024-04-10")},
			nil,
		)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("service_before_discharge_within_window_passes", func(t *testing.T) {
		claim := claimView(
			&domain.BillDocument{DateOfService: strPtr("2024-04-05")},
			&domain.DischargeSummaryDocument{DischargeDate: strPtr("2024-04-10")},
			nil,
		)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("outside_window_fails", func(t *testing.T) {
		claim := claimView(
			&domain.BillDocument{DateOfService: strPtr("2024-07-01")},
			&domain.DischargeSummaryDocument{DischargeDate: strPtr("2024-04-10")},
			nil,
		)
		d := rule.Check(claim)
		require.NotNil(t, d)
		assert.Equal(t, "date_of_service", d.Field)
	})

	t.Run("missing_bill_inapplicable", func(t *testing.T) {
		claim := claimView(nil, &domain.DischargeSummaryDocument{DischargeDate: strPtr("2024-04-10")}, nil)
		assert.Nil(t, rule.Check(claim))
	})
}

func TestAmountRule(t *testing.T) {
	rule := findRule(t, "xd.amount.positive")

	t.Run("positive_passes", func(t *testing.T) {
		claim := claimView(&domain.BillDocument{TotalAmount: f64Ptr(12500)}, nil, nil)
		assert.Nil(t, rule.Check(claim))
	})

	t.Run("zero_fails", func(t *testing.T) {
		claim := claimView(&domain.BillDocument{TotalAmount: f64Ptr(0)}, nil, nil)
		d := rule.Check(claim)
		require.NotNil(t, d)
		assert.Equal(t, "total_amount", d.Field)
	})

	t.Run("negative_fails", func(t *testing.T) {
		claim := claimView(&domain.BillDocument{TotalAmount: f64Ptr(-50)}, nil, nil)
		assert.NotNil(t, rule.Check(claim))
	})

	t.Run("absent_inapplicable", func(t *testing.T) {
		claim := claimView(&domain.BillDocument{}, nil, nil)
		assert.Nil(t, rule.Check(claim))
	})
}
