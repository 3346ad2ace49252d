package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/port"
	"superclaims/mocks"
)

func TestBillExtractor_ParsesFencedReply(t *testing.T) {
	client := new(mocks.MockLLMClient)
	client.On("Complete", mock.Anything, mock.Anything, port.ModeJSON).
		Return("```json\n{\"hospital_name\": \"ABC Hospital\", \"total_amount\": 12500.50, \"date_of_service\": \"2024-04-10\", \"bill_number\": null}\n```", nil)

	doc, err := extractor.NewBillExtractor(client).Extract(context.Background(), "bill text", "bill.pdf")
	require.NoError(t, err)

	bill, ok := doc.(*domain.BillDocument)
	require.True(t, ok)
	assert.Equal(t, "bill.pdf", bill.SourceFile)
	require.NotNil(t, bill.HospitalName)
	assert.Equal(t, "ABC Hospital", *bill.HospitalName)
	require.NotNil(t, bill.TotalAmount)
	assert.Equal(t, 12500.50, *bill.TotalAmount)
	assert.Nil(t, bill.BillNumber)
	assert.True(t, bill.HasCoreFields())
}

func TestBillExtractor_TransportErrorReturnsDegradedDocument(t *testing.T) {
	client := new(mocks.MockLLMClient)
	client.On("Complete", mock.Anything, mock.Anything, port.ModeJSON).
		Return("", errors.New("deadline exceeded"))

	doc, err := extractor.NewBillExtractor(client).Extract(context.Background(), "bill text", "bill.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bill extraction for bill.pdf")

	// The degraded document still carries its type and source.
	require.NotNil(t, doc)
	assert.Equal(t, domain.DocTypeBill, doc.DocumentType())
	assert.Equal(t, "bill.pdf", doc.Source())
	assert.False(t, doc.HasCoreFields())
}

func TestBillExtractor_MalformedReplyReturnsDegradedDocument(t *testing.T) {
	client := new(mocks.MockLLMClient)
	client.On("Complete", mock.Anything, mock.Anything, port.ModeJSON).
		Return("I could not find structured data here.", nil)

	doc, err := extractor.NewBillExtractor(client).Extract(context.Background(), "bill text", "bill.pdf")
	require.Error(t, err)
	require.NotNil(t, doc)
	assert.False(t, doc.HasCoreFields())
}

func TestDischargeExtractor_ParsesReply(t *testing.T) {
	client := new(mocks.MockLLMClient)
	client.On("Complete", mock.Anything, mock.Anything, port.ModeJSON).
		Return(`{"patient_name": "John Doe", "diagnosis": "appendicitis", "admission_date": "2024-04-01", "discharge_date": "2024-04-10", "treatment": null, "doctor_name": null}`, nil)

	doc, err := extractor.NewDischargeExtractor(client).Extract(context.Background(), "text", "discharge.pdf")
	require.NoError(t, err)

	summary, ok := doc.(*domain.DischargeSummaryDocument)
	require.True(t, ok)
	require.NotNil(t, summary.PatientName)
	assert.Equal(t, "John Doe", *summary.PatientName)
	require.NotNil(t, summary.AdmissionDate)
	assert.Equal(t, "2024-04-01", *summary.AdmissionDate)
	assert.Nil(t, summary.Treatment)
}

func TestIDCardExtractor_ParsesReply(t *testing.T) {
	client := new(mocks.MockLLMClient)
	client.On("Complete", mock.Anything, mock.Anything, port.ModeJSON).
		Return(`{"policy_number": "POL-123", "insured_name": "John Doe", "validity": null, "insurance_company": "Acme Insurance"}`, nil)

	doc, err := extractor.NewIDCardExtractor(client).Extract(context.Background(), "text", "card.pdf")
	require.NoError(t, err)

	card, ok := doc.(*domain.IDCardDocument)
	require.True(t, ok)
	require.NotNil(t, card.PolicyNumber)
	assert.Equal(t, "POL-123", *card.PolicyNumber)
	assert.Nil(t, card.Validity)
}

func TestRegistry_Dispatch(t *testing.T) {
	client := new(mocks.MockLLMClient)

	registry := extractor.NewRegistry()
	registry.Register(extractor.NewBillExtractor(client))
	registry.Register(extractor.NewIDCardExtractor(client))

	assert.NotNil(t, registry.Get(domain.DocTypeBill))
	assert.NotNil(t, registry.Get(domain.DocTypeIDCard))
	assert.Nil(t, registry.Get(domain.DocTypeDischargeSummary))
	assert.Nil(t, registry.Get(domain.DocTypeUnknown))
}
