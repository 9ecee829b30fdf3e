package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
	"github.com/veriscan/veriscan-backend/internal/idcheck/verify"
)

var bcDLFormat = regexp.MustCompile(`^\d{6,7}$`)

// trimScanPrefix drops the DL or NDL label that BC scans pick up next to the
// number. Other jurisdictions keep those letters; passports shaped like
// DL123456 are legitimate.
func trimScanPrefix(n string) string {
	for _, prefix := range []string{"NDL:", "DL:", "NDL", "DL"} {
		if strings.HasPrefix(n, prefix) && len(n) > len(prefix) {
			return n[len(prefix):]
		}
	}
	return n
}

// BCDLValidator checks British Columbia driver's licences. Numbers are 6 or
// 7 digits, often scanned with a DL: or NDL: prefix that is stripped before
// the format check. Registry verification requires the holder's last name.
type BCDLValidator struct {
	verifier verify.Client
}

func NewBCDLValidator(verifier verify.Client) *BCDLValidator {
	if verifier == nil {
		verifier = verify.Disabled{}
	}
	return &BCDLValidator{verifier: verifier}
}

func (v *BCDLValidator) Name() string { return "bc_drivers_license" }

func (v *BCDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := trimScanPrefix(cleanNumber(fields.Get(domain.FieldDocumentNumber)))
		if !bcDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match BC format (6-7 digits)")
			return resolve(issues, warnings, "", details)
		}
		details["number_length"] = len(number)

		if fields.Has(domain.FieldDateOfBirth) {
			if dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth)); ok {
				age := ageAt(dob, time.Now())
				details["age"] = age
				if age < 16 {
					issues = append(issues, fmt.Sprintf("Holder is %d, below BC minimum licensing age 16", age))
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

		if v.verifier.Enabled() {
			ln := lastName(fields)
			if ln == "" {
				warnings = append(warnings, "Registry verification skipped: last name not available")
			} else {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				result := v.verifier.VerifyLicense(ctx, verify.JurisdictionBC, number, ln)
				details["registry_check"] = string(result.Status)
				switch result.Status {
				case verify.StatusValid:
				case verify.StatusInvalid:
					issues = append(issues, "Licence not found in BC registry")
				case verify.StatusError:
					warnings = append(warnings, fmt.Sprintf("Registry verification unavailable: %s", result.Message))
				}
			}
		}

		return resolve(issues, warnings, "Valid BC driver's license", details)
	})
}
