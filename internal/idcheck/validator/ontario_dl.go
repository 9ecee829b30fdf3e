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

var ontarioDLFormat = regexp.MustCompile(`^[A-Z]\d{14}$`)

// OntarioDLValidator checks Ontario driver's licence structure: the first
// letter matches the last-name initial and the last six digits encode the
// holder's date of birth as YYMMDD, with 50 added to the month for female
// holders. Expiry falls on the holder's birthday. Whether the document is
// currently expired is left to the generic expiry check.
type OntarioDLValidator struct {
	verifier verify.Client
}

func NewOntarioDLValidator(verifier verify.Client) *OntarioDLValidator {
	if verifier == nil {
		verifier = verify.Disabled{}
	}
	return &OntarioDLValidator{verifier: verifier}
}

func (v *OntarioDLValidator) Name() string { return "ontario_drivers_license" }

func (v *OntarioDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !ontarioDLFormat.MatchString(number) {
			issues = append(issues, "Document number does not match Ontario format (letter + 14 digits)")
			return resolve(issues, warnings, "", details)
		}

		if ln := lastName(fields); ln != "" {
			if initial := nameInitial(ln); initial != "" && initial != number[:1] {
				issues = append(issues, fmt.Sprintf("First letter %s does not match last name initial %s", number[:1], initial))
			} else {
				details["last_name_initial_match"] = true
			}
		}

		if fields.Has(domain.FieldDateOfBirth) {
			v.checkEncodedBirthDate(fields, number, details, &issues, &warnings)
		}

		if fields.Has(domain.FieldExpiryDate) && fields.Has(domain.FieldDateOfBirth) {
			expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
			dob, dobOK := ParseDate(fields.Get(domain.FieldDateOfBirth))
			if expOK && dobOK {
				if sameMonthDay(expiry, dob) {
					details["expiry_on_birthday"] = true
				} else {
					warnings = append(warnings, "Expiry date does not fall on the holder's birthday")
				}
			}
		}

		if v.verifier.Enabled() {
			v.checkRegistry(fields, details, &issues, &warnings)
		}

		return resolve(issues, warnings, "Valid Ontario driver's license", details)
	})
}

// checkEncodedBirthDate decodes the trailing YYMMDD digits. The century is
// chosen so the holder is not born in the future. When gender is unknown both
// the plain and the +50 female encoding are accepted.
func (v *OntarioDLValidator) checkEncodedBirthDate(fields domain.ExtractedFields, number string, details map[string]interface{}, issues, warnings *[]string) {
	dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth))
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("Could not parse date of birth: %s", fields.Get(domain.FieldDateOfBirth)))
		return
	}
	encoded := number[len(number)-6:]
	gender := strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldGender)))

	plain := fmt.Sprintf("%02d%02d%02d", dob.Year()%100, int(dob.Month()), dob.Day())
	female := fmt.Sprintf("%02d%02d%02d", dob.Year()%100, int(dob.Month())+50, dob.Day())

	var match bool
	switch {
	case strings.HasPrefix(gender, "f"):
		match = encoded == female
	case strings.HasPrefix(gender, "m"):
		match = encoded == plain
	default:
		match = encoded == plain || encoded == female
	}
	if match {
		details["encoded_birth_date_match"] = true
		return
	}
	*issues = append(*issues, fmt.Sprintf("Last 6 digits %s do not encode the date of birth", encoded))
}

func (v *OntarioDLValidator) checkRegistry(fields domain.ExtractedFields, details map[string]interface{}, issues, warnings *[]string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result := v.verifier.VerifyLicense(ctx, verify.JurisdictionOntario, fields.Get(domain.FieldDocumentNumber), lastName(fields))
	details["registry_check"] = string(result.Status)
	switch result.Status {
	case verify.StatusValid:
		// confirmed
	case verify.StatusInvalid:
		*issues = append(*issues, "Licence not found in Ontario registry")
	case verify.StatusError:
		*warnings = append(*warnings, fmt.Sprintf("Registry verification unavailable: %s", result.Message))
	}
}
