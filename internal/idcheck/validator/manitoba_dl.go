package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var manitobaDLFormat = regexp.MustCompile(`^[A-Z]{4}\d{6}$`)

// ManitobaDLValidator checks Manitoba licences: four letters followed by six
// digits. The letter prefix is derived from the holder's name but the
// derivation is not published, so a mismatch on the first letter is only a
// warning.
type ManitobaDLValidator struct{}

func NewManitobaDLValidator() *ManitobaDLValidator { return &ManitobaDLValidator{} }

func (v *ManitobaDLValidator) Name() string { return "manitoba_drivers_license" }

func (v *ManitobaDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !manitobaDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Manitoba format (4 letters + 6 digits)")
			return resolve(issues, warnings, "", details)
		}

		if ln := lastName(fields); ln != "" {
			if initial := nameInitial(ln); initial != "" && initial != number[:1] {
				warnings = append(warnings, fmt.Sprintf("Prefix %s does not start with last name initial %s", number[:4], initial))
			} else {
				details["prefix_initial_match"] = true
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

		return resolve(issues, warnings, "Valid Manitoba driver's license", details)
	})
}
