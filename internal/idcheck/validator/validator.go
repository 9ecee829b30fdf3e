// Package validator implements the document validation checks. Every check
// satisfies the Validator interface and reports one ValidatorResult; checks
// never return errors, they fold internal problems into the result status.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// Validator is a single named validation check over extracted fields.
// Implementations are stateless between calls and safe for concurrent use.
type Validator interface {
	Name() string
	Validate(fields domain.ExtractedFields) domain.ValidatorResult
}

// run wraps a check body with timing and skip handling. required lists the
// fields that must be present; when any is missing the check reports SKIPPED
// without invoking body.
func run(name string, fields domain.ExtractedFields, required []string, body func() (domain.ValidationStatus, string, map[string]interface{})) domain.ValidatorResult {
	start := time.Now()
	if skipped, missing := missingFields(fields, required); skipped {
		return domain.ValidatorResult{
			ValidatorName:   name,
			Status:          domain.StatusSkipped,
			Message:         fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			Details:         map[string]interface{}{"missing_fields": missing},
			ExecutionTimeMs: elapsedMs(start),
		}
	}
	status, message, details := body()
	return domain.ValidatorResult{
		ValidatorName:   name,
		Status:          status,
		Message:         message,
		Details:         details,
		ExecutionTimeMs: elapsedMs(start),
	}
}

func missingFields(fields domain.ExtractedFields, required []string) (bool, []string) {
	var missing []string
	for _, name := range required {
		if !fields.Has(name) {
			missing = append(missing, name)
		}
	}
	return len(missing) > 0, missing
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// resolve folds accumulated issues and warnings into a final status. Issues
// take precedence over warnings; with neither the check passed.
func resolve(issues, warnings []string, passedMessage string, details map[string]interface{}) (domain.ValidationStatus, string, map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	if len(issues) > 0 {
		details["issues"] = issues
		if len(warnings) > 0 {
			details["warnings"] = warnings
		}
		return domain.StatusFailed, strings.Join(issues, "; "), details
	}
	if len(warnings) > 0 {
		details["warnings"] = warnings
		return domain.StatusWarning, strings.Join(warnings, "; "), details
	}
	return domain.StatusPassed, passedMessage, details
}

// cleanNumber strips whitespace and hyphens from a document number and
// upper-cases it.
func cleanNumber(number string) string {
	n := strings.ToUpper(strings.TrimSpace(number))
	n = strings.ReplaceAll(n, " ", "")
	return strings.ReplaceAll(n, "-", "")
}

// lastName returns the holder's last name, preferring the dedicated field and
// falling back to the full name. Full names in "LAST, FIRST" form take the
// part before the comma; otherwise the final whitespace token is used.
func lastName(fields domain.ExtractedFields) string {
	if v := strings.TrimSpace(fields.Get(domain.FieldLastName)); v != "" {
		return v
	}
	full := strings.TrimSpace(fields.Get(domain.FieldFullName))
	if full == "" {
		return ""
	}
	if idx := strings.Index(full, ","); idx > 0 {
		return strings.TrimSpace(full[:idx])
	}
	parts := strings.Fields(full)
	return parts[len(parts)-1]
}

var nonAlpha = regexp.MustCompile(`[^A-Za-z]`)

// nameInitial returns the upper-cased first letter of the name, ignoring
// leading punctuation from OCR noise.
func nameInitial(name string) string {
	cleaned := nonAlpha.ReplaceAllString(name, "")
	if cleaned == "" {
		return ""
	}
	return strings.ToUpper(cleaned[:1])
}
