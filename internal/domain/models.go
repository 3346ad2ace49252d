package domain

// UploadedFile is one file of a claim batch as received at intake.
type UploadedFile struct {
	Name    string
	Content []byte
}

// RawText is the text extracted from one uploaded file. ExtractionError is
// set instead of Text when the PDF collaborator failed for that file.
type RawText struct {
	SourceFile      string `json:"source_file"`
	Text            string `json:"text"`
	ExtractionError string `json:"extraction_error,omitempty"`
}

// ClassifiedDocument is a RawText with its assigned document type.
type ClassifiedDocument struct {
	SourceFile          string  `json:"source_file"`
	Text                string  `json:"text"`
	DocType             DocType `json:"doc_type"`
	ClassificationError string  `json:"classification_error,omitempty"`
}

// ExtractedDocument is the closed set of structured per-type documents.
// Adding a document type means adding a variant plus an extractor
// registration, nothing else.
type ExtractedDocument interface {
	DocumentType() DocType
	Source() string
	// HasCoreFields reports whether at least one core field was extracted.
	// A document with none counts as missing for completeness checks.
	HasCoreFields() bool
}

// BillDocument is the structured form of a medical bill.
type BillDocument struct {
	Type          DocType  `json:"type"`
	SourceFile    string   `json:"source_file"`
	HospitalName  *string  `json:"hospital_name"`
	TotalAmount   *float64 `json:"total_amount"`
	DateOfService *string  `json:"date_of_service"`
	BillNumber    *string  `json:"bill_number"`
}

func (d *BillDocument) DocumentType() DocType { return DocTypeBill }
func (d *BillDocument) Source() string        { return d.SourceFile }
func (d *BillDocument) HasCoreFields() bool {
	return d.HospitalName != nil || d.TotalAmount != nil || d.DateOfService != nil || d.BillNumber != nil
}

// DischargeSummaryDocument is the structured form of a hospital discharge summary.
type DischargeSummaryDocument struct {
	Type          DocType `json:"type"`
	SourceFile    string  `json:"source_file"`
	PatientName   *string `json:"patient_name"`
	Diagnosis     *string `json:"diagnosis"`
	AdmissionDate *string `json:"admission_date"`
	DischargeDate *string `json:"discharge_date"`
	Treatment     *string `json:"treatment"`
	DoctorName    *string `json:"doctor_name"`
}

func (d *DischargeSummaryDocument) DocumentType() DocType { return DocTypeDischargeSummary }
func (d *DischargeSummaryDocument) Source() string        { return d.SourceFile }
func (d *DischargeSummaryDocument) HasCoreFields() bool {
	return d.PatientName != nil || d.Diagnosis != nil || d.AdmissionDate != nil ||
		d.DischargeDate != nil || d.Treatment != nil || d.DoctorName != nil
}

// IDCardDocument is the structured form of an insurance ID card or policy document.
type IDCardDocument struct {
	Type             DocType `json:"type"`
	SourceFile       string  `json:"source_file"`
	PolicyNumber     *string `json:"policy_number"`
	InsuredName      *string `json:"insured_name"`
	Validity         *string `json:"validity"`
	InsuranceCompany *string `json:"insurance_company"`
}

func (d *IDCardDocument) DocumentType() DocType { return DocTypeIDCard }
func (d *IDCardDocument) Source() string        { return d.SourceFile }
func (d *IDCardDocument) HasCoreFields() bool {
	return d.PolicyNumber != nil || d.InsuredName != nil || d.Validity != nil || d.InsuranceCompany != nil
}

// ProcessingRecord is the aggregate state threaded through the pipeline.
// Stages never mutate a record in place: each With* method returns a copy so
// partial results from earlier stages stay inspectable when a later stage
// degrades a document.
type ProcessingRecord struct {
	RawTexts   []RawText
	Classified []ClassifiedDocument
	Documents  []ExtractedDocument
	Errors     []string
}

// WithRawTexts returns a copy of the record with raw texts and any new errors set.
func (r ProcessingRecord) WithRawTexts(texts []RawText, errs []string) ProcessingRecord {
	next := r.clone()
	next.RawTexts = texts
	next.Errors = append(next.Errors, errs...)
	return next
}

// WithClassified returns a copy of the record with classifications and any new errors set.
func (r ProcessingRecord) WithClassified(classified []ClassifiedDocument, errs []string) ProcessingRecord {
	next := r.clone()
	next.Classified = classified
	next.Errors = append(next.Errors, errs...)
	return next
}

// WithDocuments returns a copy of the record with extracted documents and any new errors set.
func (r ProcessingRecord) WithDocuments(docs []ExtractedDocument, errs []string) ProcessingRecord {
	next := r.clone()
	next.Documents = docs
	next.Errors = append(next.Errors, errs...)
	return next
}

func (r ProcessingRecord) clone() ProcessingRecord {
	return ProcessingRecord{
		RawTexts:   append([]RawText(nil), r.RawTexts...),
		Classified: append([]ClassifiedDocument(nil), r.Classified...),
		Documents:  append([]ExtractedDocument(nil), r.Documents...),
		Errors:     append([]string(nil), r.Errors...),
	}
}

// Discrepancy is one detected inconsistency between documents of the same claim.
type Discrepancy struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationResult holds completeness and consistency findings for a claim.
type ValidationResult struct {
	MissingDocuments []DocType     `json:"missing_documents"`
	Discrepancies    []Discrepancy `json:"discrepancies"`
}

// ClaimDecision is the final adjudication outcome.
type ClaimDecision struct {
	Status          DecisionStatus `json:"status"`
	Reason          string         `json:"reason"`
	ConfidenceScore float64        `json:"confidence_score"`
}

// ClaimResult is the external response produced when the pipeline reaches Done.
type ClaimResult struct {
	Documents     []ExtractedDocument `json:"documents"`
	Validation    ValidationResult    `json:"validation"`
	ClaimDecision ClaimDecision       `json:"claim_decision"`
	Errors        []string            `json:"errors"`
}
