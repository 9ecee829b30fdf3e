package validator

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// usStateFormat describes one state's licence rules for the generic US
// validator.
type usStateFormat struct {
	pattern    *regexp.Regexp
	desc       string
	minimumAge int
}

var usStateFormats = map[string]usStateFormat{
	"california":   {regexp.MustCompile(`^[A-Z]\d{7}$`), "letter + 7 digits", 16},
	"texas":        {regexp.MustCompile(`^\d{8}$`), "8 digits", 16},
	"florida":      {regexp.MustCompile(`^[A-Z]\d{12}$`), "letter + 12 digits", 16},
	"new york":     {regexp.MustCompile(`^\d{9}$`), "9 digits", 16},
	"illinois":     {regexp.MustCompile(`^[A-Z]\d{11}$`), "letter + 11 digits", 16},
	"pennsylvania": {regexp.MustCompile(`^\d{8}$`), "8 digits", 16},
	"ohio":         {regexp.MustCompile(`^[A-Z]{2}\d{6}$`), "2 letters + 6 digits", 16},
	"georgia":      {regexp.MustCompile(`^\d{9}$`), "9 digits", 16},
	"michigan":     {regexp.MustCompile(`^[A-Z]\d{12}$`), "letter + 12 digits", 16},
	"arizona":      {regexp.MustCompile(`^[A-Z]\d{8}$`), "letter + 8 digits", 16},
	"washington":   {regexp.MustCompile(`^[A-Z0-9]{12}$`), "12 alphanumeric", 16},
	"new jersey":   {regexp.MustCompile(`^[A-Z]\d{14}$`), "letter + 14 digits", 17},
}

// CaliforniaDLValidator checks California licences: a letter plus seven
// digits. DMV ties the letter to the holder's name only loosely, so an
// initial mismatch is a warning. Expiry falls on the holder's birthday.
type CaliforniaDLValidator struct{}

func NewCaliforniaDLValidator() *CaliforniaDLValidator { return &CaliforniaDLValidator{} }

func (v *CaliforniaDLValidator) Name() string { return "california_drivers_license" }

func (v *CaliforniaDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !usStateFormats["california"].pattern.MatchString(number) {
			issues = append(issues, "Document number does not match California format (letter + 7 digits)")
			return resolve(issues, warnings, "", details)
		}

		if ln := lastName(fields); ln != "" {
			if initial := nameInitial(ln); initial != "" && initial != number[:1] {
				warnings = append(warnings, fmt.Sprintf("First letter %s does not match last name initial %s", number[:1], initial))
			} else {
				details["last_name_initial_match"] = true
			}
		}

		if fields.Has(domain.FieldExpiryDate) && fields.Has(domain.FieldDateOfBirth) {
			expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
			dob, dobOK := ParseDate(fields.Get(domain.FieldDateOfBirth))
			if expOK && dobOK && !sameMonthDay(expiry, dob) {
				warnings = append(warnings, "Expiry date does not fall on the holder's birthday")
			}
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok && expiry.Before(time.Now()) {
				issues = append(issues, "Licence is expired")
			}
		}

		return resolve(issues, warnings, "Valid California driver's license", details)
	})
}

// TexasDLValidator checks Texas licences: eight digits.
type TexasDLValidator struct{}

func NewTexasDLValidator() *TexasDLValidator { return &TexasDLValidator{} }

func (v *TexasDLValidator) Name() string { return "texas_drivers_license" }

func (v *TexasDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !usStateFormats["texas"].pattern.MatchString(number) {
			issues = append(issues, "Document number does not match Texas format (8 digits)")
			return resolve(issues, warnings, "", details)
		}

		if fields.Has(domain.FieldDateOfBirth) {
			if dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth)); ok {
				age := ageAt(dob, time.Now())
				details["age"] = age
				if age < 16 {
					issues = append(issues, fmt.Sprintf("Holder is %d, below Texas minimum licensing age 16", age))
				}
			}
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok && expiry.Before(time.Now()) {
				issues = append(issues, "Licence is expired")
			}
		}

		return resolve(issues, warnings, "Valid Texas driver's license", details)
	})
}

// USDLValidator is the fallback for states without a dedicated validator. It
// tries to place the number against the known state table; when the issuing
// state cannot be determined a table match is informational only.
type USDLValidator struct{}

func NewUSDLValidator() *USDLValidator { return &USDLValidator{} }

func (v *USDLValidator) Name() string { return "us_drivers_license" }

func (v *USDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		var matched []string
		for state, f := range usStateFormats {
			if f.pattern.MatchString(number) {
				matched = append(matched, state)
			}
		}
		sort.Strings(matched)
		if len(matched) == 0 {
			warnings = append(warnings, "Document number does not match any known US state format")
		} else {
			details["candidate_states"] = matched
		}

		if fields.Has(domain.FieldDateOfBirth) {
			if dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth)); ok {
				age := ageAt(dob, time.Now())
				details["age"] = age
				if age < 16 {
					issues = append(issues, fmt.Sprintf("Holder is %d, below the common US minimum licensing age 16", age))
				}
			}
		}

		if fields.Has(domain.FieldExpiryDate) {
			if expiry, ok := ParseDate(fields.Get(domain.FieldExpiryDate)); ok && expiry.Before(time.Now()) {
				issues = append(issues, "Licence is expired")
			}
		}

		return resolve(issues, warnings, "Valid US driver's license", details)
	})
}
