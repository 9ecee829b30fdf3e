package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var (
	novaScotiaDLFormat   = regexp.MustCompile(`^[A-Z]{5}\d{9}$`)
	newfoundlandDLFormat = regexp.MustCompile(`^[A-Z]\d{9}$`)
)

// NovaScotiaDLValidator checks Nova Scotia licences: five letters followed by
// nine digits.
type NovaScotiaDLValidator struct{}

func NewNovaScotiaDLValidator() *NovaScotiaDLValidator { return &NovaScotiaDLValidator{} }

func (v *NovaScotiaDLValidator) Name() string { return "nova_scotia_drivers_license" }

func (v *NovaScotiaDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !novaScotiaDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Nova Scotia format (5 letters + 9 digits)")
			return resolve(issues, warnings, "", details)
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok {
				if expiry.Before(time.Now()) {
					issues = append(issues, "Licence is expired")
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("Could not parse expiry date: %s", fields.Get(domain.FieldExpiryDate)))
			}
		}

		return resolve(issues, warnings, "Valid Nova Scotia driver's license", details)
	})
}

// NewfoundlandDLValidator checks Newfoundland and Labrador licences: a letter
// matching the last-name initial followed by nine digits.
type NewfoundlandDLValidator struct{}

func NewNewfoundlandDLValidator() *NewfoundlandDLValidator { return &NewfoundlandDLValidator{} }

func (v *NewfoundlandDLValidator) Name() string { return "newfoundland_drivers_license" }

func (v *NewfoundlandDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !newfoundlandDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Newfoundland format (letter + 9 digits)")
			return resolve(issues, warnings, "", details)
		}

		if ln := lastName(fields); ln != "" {
			if initial := nameInitial(ln); initial != "" && initial != number[:1] {
				issues = append(issues, fmt.Sprintf("First letter %s does not match last name initial %s", number[:1], initial))
			} else {
				details["last_name_initial_match"] = true
			}
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok {
				if expiry.Before(time.Now()) {
					issues = append(issues, "Licence is expired")
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("Could not parse expiry date: %s", fields.Get(domain.FieldExpiryDate)))
			}
		}

		return resolve(issues, warnings, "Valid Newfoundland driver's license", details)
	})
}
