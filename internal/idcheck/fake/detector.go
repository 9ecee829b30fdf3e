// Package fake scores extracted fields for specimen and forgery indicators.
// The detector is a pure heuristic layer: it never blocks validation, it only
// reports a confidence verdict alongside it.
package fake

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// Per-signal weights. Each heuristic contributes a fixed amount so tests can
// assert exact contributions, not just the final verdict.
const (
	specimenKeywordWeight   = 0.5
	fakeNamePairWeight      = 1.0
	fakeNameSubstringWeight = 0.7
	fakeSingleNameWeight    = 0.8
	repeatedCharNameWeight  = 0.5
	knownSpecimenNumWeight  = 1.0
	allSameDigitWeight      = 0.9
	sequentialExactWeight   = 0.9
	sequentialHighWeight    = 0.7
	sequentialMedWeight     = 0.5
	suspiciousDateWeight    = 0.6
	suspiciousYearWeight    = 0.4
	implausibleYearWeight   = 0.5
	mrzSpecimenWeight       = 1.0
	mrzRepeatedWeight       = 0.7
	fakeAddressWeight       = 0.8
)

// Verdict thresholds.
const (
	confidenceDivisor   = 2.0
	fakeConfidenceFloor = 0.4
	fakeScoreFloor      = 0.8
)

var specimenKeywords = []string{
	"specimen", "sample", "void", "example", "muster", "test card",
	"not valid", "invalid", "echantillon", "spécimen", "muestra", "ejemplo",
}

var fakeNamePairs = [][2]string{
	{"john", "doe"}, {"jane", "doe"}, {"john", "smith"}, {"jane", "smith"},
	{"juan", "perez"}, {"max", "mustermann"}, {"erika", "mustermann"},
	{"anita", "walker"}, {"joe", "bloggs"}, {"john", "public"},
	{"mary", "major"}, {"richard", "roe"},
}

var fakeSingleNames = []string{
	"specimen", "sample", "test", "void", "example", "mustermann", "anonymous",
}

var knownSpecimenNumbers = []string{
	"5584486674", "123456789", "000000000", "111111111", "999999999",
}

var suspiciousDates = []string{
	"1900-01-01", "1901-01-01", "1911-11-11", "2000-01-01", "1970-01-01",
	"9999-12-31",
}

var suspiciousBirthYears = map[int]struct{}{1900: {}, 1901: {}, 1911: {}}

var fakeAddressPatterns = []string{
	"123 main", "123 fake", "1234 main", "any street", "anytown",
	"springfield", "123 sesame", "nowhere",
}

// Detector runs the specimen heuristics. It is stateless and safe for
// concurrent use.
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

// Detect scores the fields against all six heuristic checks and folds the
// weighted sum into a verdict.
func (d *Detector) Detect(fields domain.ExtractedFields) domain.FakeDocumentResult {
	total := 0.0
	reasons := []string{}
	checks := []string{}

	for _, check := range []struct {
		name string
		fn   func(domain.ExtractedFields) (float64, []string)
	}{
		{"specimen_keywords", checkSpecimenKeywords},
		{"fake_names", checkFakeNames},
		{"document_number_patterns", checkDocumentNumber},
		{"suspicious_dates", checkSuspiciousDates},
		{"mrz_anomalies", checkMRZ},
		{"fake_addresses", checkFakeAddress},
	} {
		score, rs := check.fn(fields)
		total += score
		reasons = append(reasons, rs...)
		checks = append(checks, check.name)
	}

	confidence := total / confidenceDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}
	return domain.FakeDocumentResult{
		IsFake:          confidence >= fakeConfidenceFloor || total >= fakeScoreFloor,
		Confidence:      confidence,
		Reasons:         reasons,
		ChecksPerformed: checks,
	}
}

func checkSpecimenKeywords(fields domain.ExtractedFields) (float64, []string) {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if value != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, strings.ToLower(fields[key]))
	}
	text := strings.Join(parts, " ")

	// Score per distinct keyword, not per field it appears in.
	var found []string
	for _, kw := range specimenKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return 0, nil
	}
	score := float64(len(found)) * specimenKeywordWeight
	if score > 1.0 {
		score = 1.0
	}
	return score, []string{fmt.Sprintf("Specimen keywords found: %s", strings.Join(found, ", "))}
}

func checkFakeNames(fields domain.ExtractedFields) (float64, []string) {
	first := strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldFirstName)))
	last := strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldLastName)))
	if first == "" && last == "" {
		full := strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldFullName)))
		if idx := strings.Index(full, ","); idx > 0 {
			last = strings.TrimSpace(full[:idx])
			first = strings.TrimSpace(full[idx+1:])
		} else if parts := strings.Fields(full); len(parts) >= 2 {
			first = parts[0]
			last = parts[len(parts)-1]
		} else if len(parts) == 1 {
			first = parts[0]
		}
	}
	if first == "" && last == "" {
		return 0, nil
	}

	for _, pair := range fakeNamePairs {
		if first == pair[0] && last == pair[1] {
			return fakeNamePairWeight, []string{fmt.Sprintf("Name matches known placeholder %s %s", pair[0], pair[1])}
		}
	}
	for _, pair := range fakeNamePairs {
		if first != "" && last != "" && strings.Contains(first, pair[0]) && strings.Contains(last, pair[1]) {
			return fakeNameSubstringWeight, []string{fmt.Sprintf("Name contains known placeholder %s %s", pair[0], pair[1])}
		}
	}
	for _, marker := range fakeSingleNames {
		if first == marker || last == marker {
			return fakeSingleNameWeight, []string{fmt.Sprintf("Name contains placeholder token %q", marker)}
		}
	}

	score := 0.0
	var reasons []string
	for _, name := range []string{first, last} {
		if hasRepeatedChars(name) {
			score += repeatedCharNameWeight
			reasons = append(reasons, fmt.Sprintf("Name %q is built from repeated characters", name))
		}
	}
	return score, reasons
}

// hasRepeatedChars flags names of 4+ characters drawn from at most 2 distinct
// characters. Legitimate short names like "Bo" or "Ng" stay exempt.
func hasRepeatedChars(name string) bool {
	if len(name) < 4 {
		return false
	}
	distinct := map[rune]struct{}{}
	for _, c := range name {
		distinct[c] = struct{}{}
	}
	return len(distinct) <= 2
}

func checkDocumentNumber(fields domain.ExtractedFields) (float64, []string) {
	raw := strings.TrimSpace(fields.Get(domain.FieldDocumentNumber))
	if raw == "" {
		return 0, nil
	}
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(raw, "-", ""), " ", ""))

	digits := digitsOf(cleaned)
	// Compare the digit run as a whole so real numbers that merely contain a
	// specimen sequence are not flagged.
	digitRun := digitString(digits)
	for _, known := range knownSpecimenNumbers {
		if digitRun == known {
			return knownSpecimenNumWeight, []string{fmt.Sprintf("Document number matches known specimen number %s", known)}
		}
	}

	// Sequence heuristics only apply to pure digit numbers of 5+ digits; a
	// letter prefix means the digits are one component of a larger format.
	if len(cleaned) >= 5 && len(digits) == len(cleaned) {
		if allSame(digits) {
			return allSameDigitWeight, []string{"Document number digits are all identical"}
		}
		ratio, exact := sequentialRatio(digits)
		switch {
		case exact:
			return sequentialExactWeight, []string{"Document number digits form an exact sequence"}
		case ratio >= 0.7:
			return sequentialHighWeight, []string{"Document number digits are mostly sequential"}
		case ratio >= 0.5:
			return sequentialMedWeight, []string{"Document number digits are partly sequential"}
		}
	}
	return 0, nil
}

func digitString(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func digitsOf(s string) []int {
	var out []int
	for _, c := range s {
		if c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}
	return out
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// sequentialRatio counts ascending and descending transitions separately and
// returns the larger fraction, plus whether that direction covers every pair.
// Counting the two directions together would call alternating digits like
// 121212 a perfect sequence.
func sequentialRatio(digits []int) (float64, bool) {
	if len(digits) < 2 {
		return 0, false
	}
	asc, desc := 0, 0
	for i := 1; i < len(digits); i++ {
		switch digits[i] - digits[i-1] {
		case 1:
			asc++
		case -1:
			desc++
		}
	}
	best := asc
	if desc > best {
		best = desc
	}
	ratio := float64(best) / float64(len(digits)-1)
	return ratio, best == len(digits)-1
}

func checkSuspiciousDates(fields domain.ExtractedFields) (float64, []string) {
	score := 0.0
	var reasons []string
	for _, field := range []string{domain.FieldDateOfBirth, domain.FieldIssueDate, domain.FieldExpiryDate} {
		value := strings.TrimSpace(fields.Get(field))
		if value == "" {
			continue
		}
		for _, sus := range suspiciousDates {
			if value == sus {
				score += suspiciousDateWeight
				reasons = append(reasons, fmt.Sprintf("Placeholder date %s in %s", value, field))
			}
		}
	}
	if dob := fields.Get(domain.FieldDateOfBirth); len(dob) >= 4 {
		if year, ok := parseYear(dob[:4]); ok {
			if _, sus := suspiciousBirthYears[year]; sus {
				score += suspiciousYearWeight
				reasons = append(reasons, fmt.Sprintf("Placeholder birth year %d", year))
			}
			if year > 0 && year < 1920 {
				score += implausibleYearWeight
				reasons = append(reasons, fmt.Sprintf("Implausible birth year %d", year))
			}
		}
	}
	return score, reasons
}

func parseYear(s string) (int, bool) {
	year := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	return year, true
}

func checkMRZ(fields domain.ExtractedFields) (float64, []string) {
	mrz := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldMRZ)))
	if mrz == "" {
		return 0, nil
	}
	for _, marker := range []string{"SPECIMEN", "SAMPLE"} {
		if strings.Contains(mrz, marker) {
			return mrzSpecimenWeight, []string{fmt.Sprintf("MRZ contains %s marker", marker)}
		}
	}
	// Repeated name tokens in the MRZ name segment point at filler text.
	tokens := strings.FieldsFunc(mrz, func(c rune) bool { return c == '<' || c == ' ' })
	seen := map[string]int{}
	for _, t := range tokens {
		if len(t) < 3 {
			continue
		}
		seen[t]++
		if seen[t] >= 3 {
			return mrzRepeatedWeight, []string{fmt.Sprintf("MRZ repeats token %q", t)}
		}
	}
	return 0, nil
}

func checkFakeAddress(fields domain.ExtractedFields) (float64, []string) {
	address := strings.ToLower(strings.TrimSpace(fields.Get(domain.FieldAddress)))
	if address == "" {
		return 0, nil
	}
	for _, pattern := range fakeAddressPatterns {
		if strings.Contains(address, pattern) {
			return fakeAddressWeight, []string{fmt.Sprintf("Address matches placeholder pattern %q", pattern)}
		}
	}
	return 0, nil
}
