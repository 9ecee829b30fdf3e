package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var albertaDLFormat = regexp.MustCompile(`^\d{9}$`)

// AlbertaDLValidator checks Alberta operator's licences. Numbers are nine
// digits, printed as 6 digits, hyphen, 3 digits. Alberta issues learner
// licences at 14, the lowest minimum age in the country.
type AlbertaDLValidator struct{}

func NewAlbertaDLValidator() *AlbertaDLValidator { return &AlbertaDLValidator{} }

func (v *AlbertaDLValidator) Name() string { return "alberta_drivers_license" }

func (v *AlbertaDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !albertaDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Alberta format (9 digits)")
			return resolve(issues, warnings, "", details)
		}

		if fields.Has(domain.FieldDateOfBirth) {
			if dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth)); ok {
				age := ageAt(dob, time.Now())
				details["age"] = age
				if age < 14 {
					issues = append(issues, fmt.Sprintf("Holder is %d, below Alberta minimum licensing age 14", age))
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("Could not parse date of birth: %s", fields.Get(domain.FieldDateOfBirth)))
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

		return resolve(issues, warnings, "Valid Alberta driver's license", details)
	})
}
