package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// NumericDLValidator covers the jurisdictions whose licence number is a plain
// digit string. One instance per jurisdiction, configured from the table
// below.
type NumericDLValidator struct {
	name         string
	jurisdiction string
	format       *regexp.Regexp
	formatDesc   string
	minimumAge   int
}

func newNumericDL(name, jurisdiction string, format *regexp.Regexp, formatDesc string, minimumAge int) *NumericDLValidator {
	return &NumericDLValidator{
		name:         name,
		jurisdiction: jurisdiction,
		format:       format,
		formatDesc:   formatDesc,
		minimumAge:   minimumAge,
	}
}

func NewSaskatchewanDLValidator() *NumericDLValidator {
	return newNumericDL("saskatchewan_drivers_license", "Saskatchewan", regexp.MustCompile(`^\d{8}$`), "8 digits", 16)
}

func NewNewBrunswickDLValidator() *NumericDLValidator {
	return newNumericDL("new_brunswick_drivers_license", "New Brunswick", regexp.MustCompile(`^\d{7}$`), "7 digits", 16)
}

func NewPEIDLValidator() *NumericDLValidator {
	return newNumericDL("pei_drivers_license", "Prince Edward Island", regexp.MustCompile(`^\d{1,6}$`), "1-6 digits", 16)
}

func NewNWTDLValidator() *NumericDLValidator {
	return newNumericDL("nwt_drivers_license", "Northwest Territories", regexp.MustCompile(`^\d{6}$`), "6 digits", 15)
}

func NewNunavutDLValidator() *NumericDLValidator {
	return newNumericDL("nunavut_drivers_license", "Nunavut", regexp.MustCompile(`^\d{6}$`), "6 digits", 15)
}

func NewYukonDLValidator() *NumericDLValidator {
	return newNumericDL("yukon_drivers_license", "Yukon", regexp.MustCompile(`^\d{6}$`), "6 digits", 15)
}

func (v *NumericDLValidator) Name() string { return v.name }

func (v *NumericDLValidator) Validate(fields domain.ExtractedFields) domain.ValidatorResult {
	return run(v.Name(), fields, []string{domain.FieldDocumentNumber}, func() (domain.ValidationStatus, string, map[string]interface{}) {
		var issues, warnings []string
		details := map[string]interface{}{}

		number := cleanNumber(fields.Get(domain.FieldDocumentNumber))
		if !v.format.MatchString(number) {
			issues = append(issues, fmt.Sprintf("Document number does not match %s format (%s)", v.jurisdiction, v.formatDesc))
			return resolve(issues, warnings, "", details)
		}

		if fields.Has(domain.FieldDateOfBirth) {
			if dob, ok := ParseDate(fields.Get(domain.FieldDateOfBirth)); ok {
				age := ageAt(dob, time.Now())
				details["age"] = age
				if age < v.minimumAge {
					issues = append(issues, fmt.Sprintf("Holder is %d, below %s minimum licensing age %d", age, v.jurisdiction, v.minimumAge))
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

		return resolve(issues, warnings, fmt.Sprintf("Valid %s driver's license", v.jurisdiction), details)
	})
}
