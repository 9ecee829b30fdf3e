package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var quebecDLFormat = regexp.MustCompile(`^[A-Z]\d{12}$`)

// QuebecDLValidator checks SAAQ licences: a letter followed by twelve digits,
// with the letter matching the last-name initial. SAAQ issues licences on 4
// or 8 year terms.
type QuebecDLValidator struct{}

func NewQuebecDLValidator() *QuebecDLValidator { return &QuebecDLValidator{} }

func (v *QuebecDLValidator) Name() string { return "quebec_drivers_license" }

func (v *QuebecDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !quebecDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Quebec format (letter + 12 digits)")
			return resolve(issues, warnings, "", details)
		}

		if ln := lastName(fields); ln != "" {
			if initial := nameInitial(ln); initial != "" && initial != number[:1] {
				issues = append(issues, fmt.Sprintf("First letter %s does not match last name initial %s", number[:1], initial))
			} else {
				details["last_name_initial_match"] = true
			}
		}

		if fields.Has(domain.FieldIssueDate) && fields.Has(domain.FieldExpiryDate) {
			issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
			expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
			if issOK && expOK {
				validity := yearsBetween(issue, expiry)
				details["validity_years"] = validity
				if !withinTolerance(validity, 4, 0.5) && !withinTolerance(validity, 8, 0.5) {
					warnings = append(warnings, fmt.Sprintf("Validity period %.1f years is not a standard 4 or 8 year term", validity))
				}
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

		return resolve(issues, warnings, "Valid Quebec driver's license", details)
	})
}

func withinTolerance(value, target, tolerance float64) bool {
	diff := value - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
