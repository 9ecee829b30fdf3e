package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// DataConsistencyValidator cross-checks the date fields against each other.
// It deliberately does not enforce a minimum age at issue; passports are
// issued to infants.
type DataConsistencyValidator struct{}

func NewDataConsistencyValidator() *DataConsistencyValidator { return &DataConsistencyValidator{} }

func (v *DataConsistencyValidator) Name() string { return "data_consistency" }

func (v *DataConsistencyValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDateOfBirth, domain.FieldExpiryDate}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		dob, dobOK := ParseDate(fields.Get(domain.FieldDateOfBirth))
		expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
		issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))

		if !dobOK {
			warnings = append(warnings, fmt.Sprintf("Could not parse date of birth: %s", fields.Get(domain.FieldDateOfBirth)))
		}
		if !expOK {
			warnings = append(warnings, fmt.Sprintf("Could not parse expiry date: %s", fields.Get(domain.FieldExpiryDate)))
		}

		now := time.Now()
		if dobOK {
			age := ageAt(dob, now)
			details["age"] = age
			if age > 150 {
				issues = append(issues, fmt.Sprintf("Implausible age: %d years", age))
			}
			if issOK && !issue.After(dob) {
				issues = append(issues, "Issue date is not after date of birth")
			}
		}
		if issOK && issue.After(now) {
			issues = append(issues, "Issue date is in the future")
		}
		if issOK && expOK {
			if !expiry.After(issue) {
				issues = append(issues, "Expiry date is not after issue date")
			} else {
				validity := yearsBetween(issue, expiry)
				details["validity_years"] = validity
				if validity > 50 {
					issues = append(issues, fmt.Sprintf("Implausible validity period: %.1f years", validity))
				}
			}
		}
		return resolve(issues, warnings, "Dates are mutually consistent", details)
	})
}

// DocumentExpiryValidator checks that the document is currently valid.
type DocumentExpiryValidator struct{}

func NewDocumentExpiryValidator() *DocumentExpiryValidator { return &DocumentExpiryValidator{} }

func (v *DocumentExpiryValidator) Name() string { return "document_expiry" }

func (v *DocumentExpiryValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldExpiryDate}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate))
		if !ok {
			return domain.StatusWarning,
				fmt.Sprintf("Could not parse expiry date: %s", fields.Get(domain.FieldExpiryDate)),
				map[string]interface{}{"raw_expiry_date": fields.Get(domain.FieldExpiryDate)}
		}
		now := time.Now()
		details := map[string]interface{}{"expiry_date": expiry.Format("2006-01-02")}
		if expiry.Before(now) {
			daysExpired := int(now.Sub(expiry).Hours() / 24)
			details["days_expired"] = daysExpired
			return domain.StatusFailed, fmt.Sprintf("Document expired %d days ago", daysExpired), details
		}
		daysRemaining := int(expiry.Sub(now).Hours() / 24)
		details["days_remaining"] = daysRemaining
		if daysRemaining <= 30 {
			return domain.StatusWarning, fmt.Sprintf("Document expires in %d days", daysRemaining), details
		}
		return domain.StatusPassed, "Document is not expired", details
	})
}

// AgeValidator enforces a configurable minimum holder age.
type AgeValidator struct {
	minimumAge int
}

func NewAgeValidator(minimumAge int) *AgeValidator {
	if minimumAge <= 0 {
		minimumAge = 18
	}
	return &AgeValidator{minimumAge: minimumAge}
}

func (v *AgeValidator) Name() string { return "age_validation" }

func (v *AgeValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDateOfBirth}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth))
		if !ok {
			return domain.StatusWarning,
				fmt.Sprintf("Could not parse date of birth: %s", fields.Get(domain.FieldDateOfBirth)),
				map[string]interface{}{"raw_date_of_birth": fields.Get(domain.FieldDateOfBirth)}
		}
		age := ageAt(dob, time.Now())
		details := map[string]interface{}{"age": age, "minimum_age": v.minimumAge}
		if age < v.minimumAge {
			return domain.StatusFailed, fmt.Sprintf("Holder is %d, below minimum age %d", age, v.minimumAge), details
		}
		return domain.StatusPassed, fmt.Sprintf("Holder is %d, meets minimum age %d", age, v.minimumAge), details
	})
}

// knownFormat pairs a jurisdiction label with its document number pattern for
// the informational format check. Most specific formats first; the generic
// alphanumeric pattern is the catch-all.
type knownFormat struct {
	name    string
	pattern *regexp.Regexp
}

var knownFormats = []knownFormat{
	{"ontario_drivers_license", regexp.MustCompile(`^[A-Z]\d{4}-?\d{5}-?\d{5}$`)},
	{"ontario_health_card", regexp.MustCompile(`^\d{10}[A-Z]{2}$`)},
	{"quebec_drivers_license", regexp.MustCompile(`^[A-Z]\d{4}-?\d{6}-?\d{2}$`)},
	{"nova_scotia_drivers_license", regexp.MustCompile(`^[A-Z]{5}\d{9}$`)},
	{"newfoundland_drivers_license", regexp.MustCompile(`^[A-Z]\d{9}$`)},
	{"manitoba_drivers_license", regexp.MustCompile(`^[A-Z]{4}\d{6}$`)},
	{"canadian_passport", regexp.MustCompile(`^[A-Z]{2}\d{6}$`)},
	{"california_drivers_license", regexp.MustCompile(`^[A-Z]\d{7}$`)},
	{"china_passport", regexp.MustCompile(`^[EGD]\d{8}$`)},
	{"us_passport", regexp.MustCompile(`^(?:[A-Z]\d{8}|\d{9})$`)},
	{"uk_passport", regexp.MustCompile(`^\d{9}$`)},
	{"texas_drivers_license", regexp.MustCompile(`^\d{8}$`)},
	{"alberta_drivers_license", regexp.MustCompile(`^\d{6}-?\d{3}$`)},
	{"new_brunswick_drivers_license", regexp.MustCompile(`^\d{7}$`)},
	{"bc_drivers_license", regexp.MustCompile(`^\d{6,7}$`)},
	{"territorial_drivers_license", regexp.MustCompile(`^\d{6}$`)},
	{"generic_id", regexp.MustCompile(`^[A-Z0-9]{4,14}$`)},
}

// DocumentFormatValidator matches the document number against known
// jurisdiction formats. A match is informational only; a miss is a warning,
// not a failure, since the table is not exhaustive.
type DocumentFormatValidator struct{}

func NewDocumentFormatValidator() *DocumentFormatValidator { return &DocumentFormatValidator{} }

func (v *DocumentFormatValidator) Name() string { return "document_format" }

func (v *DocumentFormatValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		raw := fields.Get(domain.FieldDocumentNumber)
		for _, f := range knownFormats {
			if f.pattern.MatchString(number) || f.pattern.MatchString(raw) {
				return domain.StatusPassed,
					fmt.Sprintf("Document number matches %s format", f.name),
					map[string]interface{}{"matched_format": f.name}
			}
		}
		return domain.StatusWarning,
			"Document number does not match any known format",
			map[string]interface{}{"document_number": raw}
	})
}

// FaceMatchingValidator is an extension point. No selfie channel is wired, so
// the check always reports SKIPPED.
type FaceMatchingValidator struct{}

func NewFaceMatchingValidator() *FaceMatchingValidator { return &FaceMatchingValidator{} }

func (v *FaceMatchingValidator) Name() string { return "face_matching" }

func (v *FaceMatchingValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	start := time.Now()
	return domain.ValidatorResult{
		ValidatorName:   v.Name(),
		Status:          domain.StatusSkipped,
		Message:         "Face matching requires a reference photo, none provided",
		Details:         map[string]interface{}{"reason": "no_reference_photo"},
		ExecutionTimeMs: elapsedMs(start),
	}
}
