package validator

import (
	"fmt"
	"strings"
	"time"

	"superclaims/internal/domain"
)

// consistencyRule checks one cross-document constraint.
type consistencyRule struct {
	ruleKey string
	field   string
	check   func(*ClaimView) *domain.Discrepancy
}

func (r *consistencyRule) RuleKey() string { return r.ruleKey }
func (r *consistencyRule) Field() string   { return r.field }
func (r *consistencyRule) Check(claim *ClaimView) *domain.Discrepancy {
	return r.check(claim)
}

// ConsistencyRules returns all cross-document consistency rules.
// dateToleranceDays is the allowance between discharge date and the bill's
// service date, since the service date may be the statement date.
func ConsistencyRules(dateToleranceDays int) []Rule {
	tolerance := time.Duration(dateToleranceDays) * 24 * time.Hour

	return []Rule{
		&consistencyRule{
			ruleKey: "xd.patient_name.match", field: "patient_name",
			check: func(c *ClaimView) *domain.Discrepancy {
				if c.Discharge == nil || c.Discharge.PatientName == nil ||
					c.IDCard == nil || c.IDCard.InsuredName == nil {
					return nil
				}
				patient := normalizeName(*c.Discharge.PatientName)
				insured := normalizeName(*c.IDCard.InsuredName)
				if strings.EqualFold(patient, insured) {
					return nil
				}
				return &domain.Discrepancy{
					Field: "patient_name",
					Description: fmt.Sprintf("patient name on discharge summary (%q) does not match insured name on ID card (%q)",
						*c.Discharge.PatientName, *c.IDCard.InsuredName),
				}
			},
		},
		&consistencyRule{
			ruleKey: "xd.dates.admission_before_discharge", field: "admission_date",
			check: func(c *ClaimView) *domain.Discrepancy {
				if c.Discharge == nil {
					return nil
				}
				admission, okA := parseDate(c.Discharge.AdmissionDate)
				discharge, okD := parseDate(c.Discharge.DischargeDate)
				if !okA || !okD {
					return nil
				}
				if !admission.After(discharge) {
					return nil
				}
				return &domain.Discrepancy{
					Field: "admission_date",
					Description: fmt.Sprintf("admission date %s is after discharge date %s",
						*c.Discharge.AdmissionDate, *c.Discharge.DischargeDate),
				}
			},
		},
		&consistencyRule{
			ruleKey: "xd.dates.discharge_near_service", field: "date_of_service",
			check: func(c *ClaimView) *domain.Discrepancy {
				if c.Discharge == nil || c.Bill == nil {
					return nil
				}
				discharge, okD := parseDate(c.Discharge.DischargeDate)
				service, okS := parseDate(c.Bill.DateOfService)
				if !okD || !okS {
					return nil
				}
				gap := service.Sub(discharge)
				if gap < 0 {
					gap = -gap
				}
				if gap <= tolerance {
					return nil
				}
				return &domain.Discrepancy{
					Field: "date_of_service",
					Description: fmt.Sprintf("bill service date %s is more than %d days from discharge date %s",
						*c.Bill.DateOfService, dateToleranceDays, *c.Discharge.DischargeDate),
				}
			},
		},
		&consistencyRule{
			ruleKey: "xd.amount.positive", field: "total_amount",
			check: func(c *ClaimView) *domain.Discrepancy {
				if c.Bill == nil || c.Bill.TotalAmount == nil {
					return nil
				}
				if *c.Bill.TotalAmount > 0 {
					return nil
				}
				return &domain.Discrepancy{
					Field:       "total_amount",
					Description: fmt.Sprintf("bill total amount %.2f is not a positive number", *c.Bill.TotalAmount),
				}
			},
		},
	}
}

// normalizeName collapses runs of whitespace so spacing variants compare equal.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// parseDate parses an ISO date. A missing or unparseable date makes the
// calling rule inapplicable rather than raising a discrepancy.
func parseDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
