package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// passportRules captures one country's passport issuance rules: the number
// format and the validity term split at the age where adult terms begin.
type passportRules struct {
	name          string
	country       string
	alpha3        string
	format        *regexp.Regexp
	formatDesc    string
	minorValidity float64
	adultValidity float64
	adultAge      int
}

var passportRulesByName = map[string]passportRules{
	"us_passport": {
		name: "us_passport", country: "United States", alpha3: "USA",
		format: regexp.MustCompile(`^(?:[A-Z]\d{8}|\d{9})$`), formatDesc: "letter + 8 digits or 9 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 16,
	},
	"uk_passport": {
		name: "uk_passport", country: "United Kingdom", alpha3: "GBR",
		format: regexp.MustCompile(`^\d{9}$`), formatDesc: "9 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 16,
	},
	"india_passport": {
		name: "india_passport", country: "India", alpha3: "IND",
		format: regexp.MustCompile(`^[A-Z]\d{7}$`), formatDesc: "letter + 7 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 18,
	},
	"australia_passport": {
		name: "australia_passport", country: "Australia", alpha3: "AUS",
		format: regexp.MustCompile(`^[A-Z]{1,2}\d{7}$`), formatDesc: "1-2 letters + 7 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 16,
	},
	"germany_passport": {
		name: "germany_passport", country: "Germany", alpha3: "DEU",
		format: regexp.MustCompile(`^[A-Z0-9]{9}$`), formatDesc: "9 alphanumeric",
		minorValidity: 6, adultValidity: 10, adultAge: 24,
	},
	"france_passport": {
		name: "france_passport", country: "France", alpha3: "FRA",
		format: regexp.MustCompile(`^\d{2}[A-Z]{2}\d{5}$`), formatDesc: "2 digits + 2 letters + 5 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 18,
	},
	"nigeria_passport": {
		name: "nigeria_passport", country: "Nigeria", alpha3: "NGA",
		format: regexp.MustCompile(`^[A-Z]\d{8}$`), formatDesc: "letter + 8 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 18,
	},
	"china_passport": {
		name: "china_passport", country: "China", alpha3: "CHN",
		format: regexp.MustCompile(`^[EGD]\d{8}$`), formatDesc: "E, G or D + 8 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 16,
	},
	"colombia_passport": {
		name: "colombia_passport", country: "Colombia", alpha3: "COL",
		format: regexp.MustCompile(`^[A-Z]{2}\d{6}$`), formatDesc: "2 letters + 6 digits",
		minorValidity: 5, adultValidity: 10, adultAge: 18,
	},
	"ukraine_passport": {
		name: "ukraine_passport", country: "Ukraine", alpha3: "UKR",
		format: regexp.MustCompile(`^[A-Z]{2}\d{6}$`), formatDesc: "2 letters + 6 digits",
		minorValidity: 4, adultValidity: 10, adultAge: 18,
	},
}

// CountryPassportValidator applies one country's passport rules.
type CountryPassportValidator struct {
	rules passportRules
}

// NewCountryPassportValidator returns the validator for the named country
// passport, or nil when no dedicated rules exist.
func NewCountryPassportValidator(name string) *CountryPassportValidator {
	rules, ok := passportRulesByName[name]
	if !ok {
		return nil
	}
	return &CountryPassportValidator{rules: rules}
}

func (v *CountryPassportValidator) Name() string { return v.rules.name }

func (v *CountryPassportValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !v.rules.format.MatchString(number) {
			issues = append(issues, fmt.Sprintf("Document number does not match %s passport format (%s)", v.rules.country, v.rules.formatDesc))
			return resolve(issues, warnings, "", details)
		}

		if code := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldCountryCode))); code != "" && code != v.rules.alpha3 {
			warnings = append(warnings, fmt.Sprintf("Country code %s does not match expected %s", code, v.rules.alpha3))
		}

		issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
		expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
		dob, dobOK := ParseDate(fields.Get(domain.FieldDateOfBirth))

		if issOK && expOK {
			validity := yearsBetween(issue, expiry)
			details["validity_years"] = validity
			if dobOK {
				ageAtIssue := ageAt(dob, issue)
				details["age_at_issue"] = ageAtIssue
				expected := v.rules.adultValidity
				if ageAtIssue < v.rules.adultAge {
					expected = v.rules.minorValidity
				}
				if !withinTolerance(validity, expected, 0.5) {
					warnings = append(warnings, fmt.Sprintf("Validity period %.1f years does not match expected %.0f years for holder aged %d at issue", validity, expected, ageAtIssue))
				}
			} else if !withinTolerance(validity, v.rules.minorValidity, 0.5) && !withinTolerance(validity, v.rules.adultValidity, 0.5) {
				warnings = append(warnings, fmt.Sprintf("Validity period %.1f years is not a standard %s passport term", validity, v.rules.country))
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

		return resolve(issues, warnings, fmt.Sprintf("Valid %s passport", v.rules.country), details)
	})
}

var genericPassportFormat = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// GenericPassportValidator is the fallback for countries without dedicated
// rules. It checks only structural plausibility: a recognized ISO alpha-3
// country code, an alphanumeric number of sane length, and a validity span
// between 1 and 12 years.
type GenericPassportValidator struct{}

func NewGenericPassportValidator() *GenericPassportValidator { return &GenericPassportValidator{} }

func (v *GenericPassportValidator) Name() string { return "generic_passport" }

func (v *GenericPassportValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !genericPassportFormat.MatchString(number) {
			issues = append(issues, "Document number is not 6-12 alphanumeric characters")
		}

		code := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldCountryCode)))
		if code == "" {
			// Fall back to the printed nationality when the MRZ code is
			// missing.
			code = domain.CountryCodes[strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldNationality)))]
		}
		if code != "" {
			if _, ok := domain.ISOAlpha3[code]; !ok {
				warnings = append(warnings, fmt.Sprintf("Country code %s is not a recognized ISO alpha-3 code", code))
			} else {
				details["country_code"] = code
			}
		}

		issue, issOK := ParseDate(fields.Get(domain.FieldIssueDate))
		expiry, expOK := ParseDate(fields.Get(domain.FieldExpiryDate))
		if issOK && expOK {
			validity := yearsBetween(issue, expiry)
			details["validity_years"] = validity
			if validity < 1 || validity > 12 {
				warnings = append(warnings, fmt.Sprintf("Validity period %.1f years is outside the plausible 1-12 year band", validity))
			}
		}

		return resolve(issues, warnings, "Passport structure is plausible", details)
	})
}
