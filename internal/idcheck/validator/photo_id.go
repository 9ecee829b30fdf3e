package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var ontarioPhotoIDFormat = regexp.MustCompile(`^\d{9}$`)

// OntarioPhotoIDValidator checks Ontario photo cards, the non-driver
// identification card: nine digits, 5 year term.
type OntarioPhotoIDValidator struct{}

func NewOntarioPhotoIDValidator() *OntarioPhotoIDValidator { return &OntarioPhotoIDValidator{} }

func (v *OntarioPhotoIDValidator) Name() string { return "ontario_photo_card" }

func (v *OntarioPhotoIDValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !ontarioPhotoIDFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Ontario photo card format (9 digits)")
			return resolve(issues, warnings, "", details)
		}

		if fields.Has(domain.FieldIssueDate) && fields.Has(domain.FieldExpiryDate) {
			issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
			expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
			if issOK && expOK {
				validity := yearsBetween(issue, expiry)
				details["validity_years"] = validity
				if !withinTolerance(validity, 5, 0.5) {
					warnings = append(warnings, fmt.Sprintf("Validity period %.1f years is not the standard 5 year term", validity))
				}
			}
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok && expiry.Before(time.Now()) {
				issues = append(issues, "Photo card is expired")
			}
		}

		return resolve(issues, warnings, "Valid Ontario photo card", details)
	})
}
