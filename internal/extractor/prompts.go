package extractor

import "fmt"

// BuildClassificationPrompt returns the prompt that assigns a document-type
// label to one document. The reply must be a single label token.
func BuildClassificationPrompt(filename, snippet string) string {
	return fmt.Sprintf(`You are a medical document classification expert.

Analyze the following document text and filename, then classify it into ONE of these types:
- "bill": Medical bills, invoices, or payment receipts
- "discharge_summary": Hospital discharge summaries or medical reports
- "id_card": Insurance ID cards or policy documents
- "unknown": Any other document type

Filename: %s

Document Text:
%s

Respond with ONLY the label token, nothing else. One of: bill, discharge_summary, id_card, unknown`, filename, snippet)
}

// BuildBillPrompt returns the extraction prompt for medical bill documents.
func BuildBillPrompt(text string) string {
	return fmt.Sprintf(`You are a medical billing data extraction expert.

Extract structured information from this medical bill document.

Document Text:
%s

Respond ONLY with valid JSON, no markdown formatting, no code fences, no explanation:
{
  "hospital_name": "extracted name or null",
  "total_amount": numeric_value_or_null,
  "date_of_service": "YYYY-MM-DD or null",
  "bill_number": "extracted number or null"
}

If any field cannot be found, use null. Never invent a value. Be precise with dates and amounts.`, text)
}

// BuildDischargePrompt returns the extraction prompt for discharge summary documents.
func BuildDischargePrompt(text string) string {
	return fmt.Sprintf(`You are a medical records data extraction expert.

Extract structured information from this discharge summary document.

Document Text:
%s

Respond ONLY with valid JSON, no markdown formatting, no code fences, no explanation:
{
  "patient_name": "extracted name or null",
  "diagnosis": "extracted diagnosis or null",
  "admission_date": "YYYY-MM-DD or null",
  "discharge_date": "YYYY-MM-DD or null",
  "treatment": "treatment summary or null",
  "doctor_name": "doctor name or null"
}

If any field cannot be found, use null. Never invent a value. Be precise with dates and medical terms.`, text)
}

// BuildIDCardPrompt returns the extraction prompt for insurance ID card documents.
func BuildIDCardPrompt(text string) string {
	return fmt.Sprintf(`You are an insurance document data extraction expert.

Extract structured information from this insurance ID card or policy document.

Document Text:
%s

Respond ONLY with valid JSON, no markdown formatting, no code fences, no explanation:
{
  "policy_number": "extracted number or null",
  "insured_name": "extracted name or null",
  "validity": "validity period or null",
  "insurance_company": "company name or null"
}

If any field cannot be found, use null. Never invent a value.`, text)
}
