package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

var (
	ontarioHealthFormat = regexp.MustCompile(`^(\d{10})([A-Z]{2})$`)
	plainHealthNumber   = regexp.MustCompile(`^\d{10}$`)
)

// Version code letters exclude I, O, Q, U to avoid confusion with digits.
const healthVersionLetters = "ABCDEFGHJKLMNPRSTVWXYZ"

// OntarioHealthCardValidator checks the 10-digit health number against the
// Luhn mod-10 checksum and validates the two-letter version code.
type OntarioHealthCardValidator struct{}

func NewOntarioHealthCardValidator() *OntarioHealthCardValidator {
	return &OntarioHealthCardValidator{}
}

func (v *OntarioHealthCardValidator) Name() string { return "ontario_health_card" }

func (v *OntarioHealthCardValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))

		var healthNumber, versionCode string
		switch m := ontarioHealthFormat.FindStringSubmatch(number); {
		case m != nil:
			healthNumber, versionCode = m[1], m[2]
			details["version_code"] = versionCode
		case plainHealthNumber.MatchString(number):
			// Old red and white cards carry no version code. Still issued
			// numbers, but the card itself is long past replacement.
			healthNumber = number
			warnings = append(warnings, "Health card has no version code (old red and white format)")
		default:
			issues = append(issues, "Document number does not match Ontario health card format (10 digits + 2 letters)")
			return resolve(issues, warnings, "", details)
		}
		details["health_number"] = healthNumber

		if !luhnValid(healthNumber) {
			issues = append(issues, "Health number fails Luhn checksum validation")
		} else {
			details["luhn_valid"] = true
		}

		for _, c := range versionCode {
			if !strings.ContainsRune(healthVersionLetters, c) {
				issues = append(issues, fmt.Sprintf("Version code contains invalid letter %c", c))
				break
			}
		}

		if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok {
			days := int(time.Until(expiry).Hours() / 24)
			if days >= 0 && days <= 90 {
				warnings = append(warnings, fmt.Sprintf("Health card due for renewal in %d days", days))
				details["days_until_renewal"] = days
			}
		}

		return resolve(issues, warnings, "Valid Ontario health card", details)
	})
}

// luhnValid runs the mod-10 checksum, doubling every second digit from the
// right.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
