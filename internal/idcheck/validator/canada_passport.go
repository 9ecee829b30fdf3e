package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var canadianPassportFormat = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)

var modernPassportEra = time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)

// CanadianPassportValidator checks Canadian passports: two letters and six
// digits, issued for 5 years to holders under 16 at issue and 10 years
// otherwise.
type CanadianPassportValidator struct{}

func NewCanadianPassportValidator() *CanadianPassportValidator {
	return &CanadianPassportValidator{}
}

func (v *CanadianPassportValidator) Name() string { return "canadian_passport" }

func (v *CanadianPassportValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !canadianPassportFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Canadian passport format (2 letters + 6 digits)")
			return resolve(issues, warnings, "", details)
		}

		issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
		expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
		dob, dobOK := ParseDate(fields.Get(domain.FieldDateOfBirth))

		if issOK && issue.Before(modernPassportEra) {
			warnings = append(warnings, "Issue date predates the modern Canadian passport format")
		}

		if issOK && expOK {
			validity := yearsBetween(issue, expiry)
			details["validity_years"] = validity
			if dobOK {
				ageAtIssue := ageAt(dob, issue)
				details["age_at_issue"] = ageAtIssue
				expected := 10.0
				if ageAtIssue < 16 {
					expected = 5.0
				}
				if !withinTolerance(validity, expected, 0.5) {
					issues = append(issues, fmt.Sprintf("Validity period %.1f years does not match expected %.0f years for holder aged %d at issue", validity, expected, ageAtIssue))
				}
			} else if !withinTolerance(validity, 5, 0.5) && !withinTolerance(validity, 10, 0.5) {
				issues = append(issues, fmt.Sprintf("Validity period %.1f years is not a standard 5 or 10 year term", validity))
			}
		}

		if expOK {
			now := time.Now()
			if expiry.Before(now) {
				issues = append(issues, "Passport is expired")
			} else if expiry.Sub(now) < 180*24*time.Hour {
				warnings = append(warnings, "Passport expires within 180 days, below common travel validity requirements")
			}
		}

		return resolve(issues, warnings, "Valid Canadian passport", details)
	})
}

// CanadaPRCardValidator checks permanent resident cards, which share the
// passport number layout. PR cards are issued on 5 year terms.
type CanadaPRCardValidator struct{}

func NewCanadaPRCardValidator() *CanadaPRCardValidator { return &CanadaPRCardValidator{} }

func (v *CanadaPRCardValidator) Name() string { return "canada_pr_card" }

func (v *CanadaPRCardValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !canadianPassportFormat.MatchString(number) {
			issues = append(issues, "Document number does not match PR card format (2 letters + 6 digits)")
			return resolve(issues, warnings, "", details)
		}

		issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
		expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
		if issOK && expOK {
			validity := yearsBetween(issue, expiry)
			details["validity_years"] = validity
			if !withinTolerance(validity, 5, 0.5) {
				warnings = append(warnings, fmt.Sprintf("Validity period %.1f years is not the standard 5 year PR card term", validity))
			}
		}

		if expOK && expiry.Before(time.Now()) {
			issues = append(issues, "PR card is expired")
		}

		return resolve(issues, warnings, "Valid Canada permanent resident card", details)
	})
}
