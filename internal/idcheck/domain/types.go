package domain

// ExtractedFields is the flat record of text fields produced by the upstream
// extraction service. Any field may be absent or empty; absence is a normal
// value, not an error, and no field is guaranteed to be well-formed.
type ExtractedFields map[string]string

// Field names present in every extraction record.
const (
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldFullName       = "full_name"
	FieldDocumentNumber = "document_number"
	FieldDateOfBirth    = "date_of_birth"
	FieldIssueDate      = "issue_date"
	FieldExpiryDate     = "expiry_date"
	FieldGender         = "gender"
	FieldAddress        = "address"
	FieldNationality    = "nationality"
	FieldMRZ            = "mrz"
	FieldCountryCode    = "country_code"
	FieldDocumentTitle  = "document_title"
)

// Get returns the value for key, or "" when the field is absent.
func (f ExtractedFields) Get(key string) string {
	return f[key]
}

// Has reports whether the field is present and non-empty.
func (f ExtractedFields) Has(key string) bool {
	return f[key] != ""
}

// DocumentType identifies a supported jurisdiction/document combination.
type DocumentType string

const (
	// Canadian provinces
	DocumentTypeOntarioDL       DocumentType = "ontario_drivers_license"
	DocumentTypeOntarioHealth   DocumentType = "ontario_health_card"
	DocumentTypeOntarioPhotoID  DocumentType = "ontario_photo_card"
	DocumentTypeBCDL            DocumentType = "bc_drivers_license"
	DocumentTypeAlbertaDL       DocumentType = "alberta_drivers_license"
	DocumentTypeQuebecDL        DocumentType = "quebec_drivers_license"
	DocumentTypeManitobaDL      DocumentType = "manitoba_drivers_license"
	DocumentTypeSaskatchewanDL  DocumentType = "saskatchewan_drivers_license"
	DocumentTypeNovaScotiaDL    DocumentType = "nova_scotia_drivers_license"
	DocumentTypeNewBrunswickDL  DocumentType = "new_brunswick_drivers_license"
	DocumentTypePEIDL           DocumentType = "pei_drivers_license"
	DocumentTypeNewfoundlandDL  DocumentType = "newfoundland_drivers_license"
	// Canadian territories
	DocumentTypeNWTDL     DocumentType = "nwt_drivers_license"
	DocumentTypeNunavutDL DocumentType = "nunavut_drivers_license"
	DocumentTypeYukonDL   DocumentType = "yukon_drivers_license"
	// Canadian federal documents
	DocumentTypeCanadianPassport DocumentType = "canadian_passport"
	DocumentTypeCanadaPRCard     DocumentType = "canada_pr_card"
	// United States
	DocumentTypeUSDL           DocumentType = "us_drivers_license"
	DocumentTypeCaliforniaDL   DocumentType = "california_drivers_license"
	DocumentTypeTexasDL        DocumentType = "texas_drivers_license"
	DocumentTypeUSPassport     DocumentType = "us_passport"
	// Country passports
	DocumentTypeUKPassport        DocumentType = "uk_passport"
	DocumentTypeIndiaPassport     DocumentType = "india_passport"
	DocumentTypeAustraliaPassport DocumentType = "australia_passport"
	DocumentTypeGermanyPassport   DocumentType = "germany_passport"
	DocumentTypeFrancePassport    DocumentType = "france_passport"
	DocumentTypeNigeriaPassport   DocumentType = "nigeria_passport"
	DocumentTypeChinaPassport     DocumentType = "china_passport"
	DocumentTypeColombiaPassport  DocumentType = "colombia_passport"
	DocumentTypeUkrainePassport   DocumentType = "ukraine_passport"
	// Fallbacks
	DocumentTypeGenericPassport DocumentType = "generic_passport"
	DocumentTypeGenericPhotoID  DocumentType = "generic_photo_id"
	DocumentTypeGenericID       DocumentType = "generic_id"
	DocumentTypeUnknown         DocumentType = "unknown"
)

// DocumentTypeInfo is the detection result for one extraction record.
// It is created once per request by the detector and never mutated.
type DocumentTypeInfo struct {
	DocumentType     DocumentType `json:"document_type"`
	Confidence       float64      `json:"confidence"`
	Country          string       `json:"country,omitempty"`
	StateProvince    string       `json:"state_province,omitempty"`
	DocumentName     string       `json:"document_name"`
	DetectedFeatures []string     `json:"detected_features"`
}

// ValidationStatus is the outcome of a single validation check.
type ValidationStatus string

const (
	StatusPassed  ValidationStatus = "passed"
	StatusFailed  ValidationStatus = "failed"
	StatusWarning ValidationStatus = "warning"
	StatusSkipped ValidationStatus = "skipped"
)

// ValidatorResult is the write-once outcome of one validator invocation.
type ValidatorResult struct {
	ValidatorName   string                 `json:"validator_name"`
	Status          ValidationStatus       `json:"status"`
	Message         string                 `json:"message"`
	Details         map[string]interface{} `json:"details,omitempty"`
	ExecutionTimeMs float64                `json:"execution_time_ms"`
}

// ValidationSummary aggregates a batch of validator results.
// It is derived fresh per request and never persisted.
type ValidationSummary struct {
	OverallStatus   ValidationStatus `json:"overall_status"`
	ValidationScore float64          `json:"validation_score"`
	TotalChecks     int              `json:"total_checks"`
	PassedChecks    int              `json:"passed_checks"`
	FailedChecks    int              `json:"failed_checks"`
	WarningChecks   int              `json:"warning_checks"`
	SkippedChecks   int              `json:"skipped_checks"`
}

// FakeDocumentResult is the independent specimen/forgery verdict. It is
// reported alongside, not inside, the validation summary.
type FakeDocumentResult struct {
	IsFake          bool     `json:"is_fake"`
	Confidence      float64  `json:"confidence"`
	Reasons         []string `json:"reasons"`
	ChecksPerformed []string `json:"checks_performed"`
}
