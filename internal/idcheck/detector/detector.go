// Package detector classifies extracted fields into a document type. The
// classifier is a three stage cascade: keyword and context matching, document
// number format fallback, and weighted pattern scoring. It never fails; the
// worst case is an unknown type at confidence zero.
package detector

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// Stage confidence levels.
const (
	confidenceKeywordStrong    = 0.9
	confidenceStateMapped      = 0.85
	confidenceStateUnmapped    = 0.8
	confidencePassportNoCode   = 0.75
	confidenceGenericPhotoID   = 0.7
	confidenceNumberFormat     = 0.7
	confidencePassportLastGasp = 0.6
	scoringThreshold           = 0.3
)

// Stage 3 scoring weights.
const (
	formatMatchWeight    = 0.4
	keywordWeight        = 0.15
	keywordWeightCap     = 0.45
	ontarioAddressWeight = 0.15
)

var (
	passportKeywords = []string{"passport", "passeport", "pasaporte"}
	dlKeywords       = []string{"driver's licence", "driver licence", "driver's license", "driver license", "permis de conduire", "operator's licence", "driving licence", "d.l."}
	healthKeywords   = []string{"health card", "health", "sante", "santé", "carte sante", "ohip"}
	photoIDKeywords  = []string{"photo card", "photo id", "carte-photo", "identification card"}
	prKeywords       = []string{"permanent resident", "resident permanent", "pr card", "carte de resident"}
)

var ontarioPostalCode = regexp.MustCompile(`\b[KLMNP]\d[A-Z]\s?\d[A-Z]\d\b`)

// Detector assigns a document type with confidence and supporting evidence.
// It is stateless and safe for concurrent use.
type Detector struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Detector {
	return &Detector{logger: logger}
}

// Detect runs the cascade over the fields. Identical input always produces
// an identical result.
func (d *Detector) Detect(fields domain.ExtractedFields) domain.DocumentTypeInfo {
	text := combinedText(fields)

	if info, ok := d.detectByKeywords(fields, text); ok {
		d.logger.Debug().Str("stage", "keywords").Str("document_type", string(info.DocumentType)).Float64("confidence", info.Confidence).Strs("features", info.DetectedFeatures).Msg("document type detected")
		return info
	}
	if info, ok := d.detectByNumberFormat(fields); ok {
		d.logger.Debug().Str("stage", "number_format").Str("document_type", string(info.DocumentType)).Float64("confidence", info.Confidence).Msg("document type detected")
		return info
	}
	info := d.detectByScoring(fields, text)
	d.logger.Debug().Str("stage", "scoring").Str("document_type", string(info.DocumentType)).Float64("confidence", info.Confidence).Strs("features", info.DetectedFeatures).Msg("document type detected")
	return info
}

// fieldTextOrder fixes the concatenation order of the extraction record.
// Walking the map directly would let substring matches that span a field
// boundary come and go between calls on the same input.
var fieldTextOrder = []string{
	domain.FieldFirstName, domain.FieldLastName, domain.FieldFullName,
	domain.FieldDocumentNumber, domain.FieldDateOfBirth, domain.FieldIssueDate,
	domain.FieldExpiryDate, domain.FieldGender, domain.FieldAddress,
	domain.FieldNationality, domain.FieldMRZ, domain.FieldCountryCode,
	domain.FieldDocumentTitle,
}

func combinedText(fields domain.ExtractedFields) string {
	known := make(map[string]bool, len(fieldTextOrder))
	var parts []string
	for _, key := range fieldTextOrder {
		known[key] = true
		if v := fields[key]; v != "" {
			parts = append(parts, strings.ToLower(v))
		}
	}
	var extras []string
	for key, v := range fields {
		if !known[key] && v != "" {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		parts = append(parts, strings.ToLower(fields[key]))
	}
	return " " + strings.Join(parts, " ") + " "
}

func containsAny(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}

// detectByKeywords is stage one. Category precedence matters: PR cards carry
// "Canada" headers and must be tested before passports; photo cards and
// health cards both mention identification and must be tested before the
// driver's licence branch sees them.
func (d *Detector) detectByKeywords(fields domain.ExtractedFields, text string) (domain.DocumentTypeInfo, bool) {
	title := strings.ToLower(fields.Get(domain.FieldDocumentTitle))
	canadaContext := strings.Contains(text, "canada") || strings.Contains(text, "canadian")

	prKeyword, prHit := containsAny(text, prKeywords)
	if !prHit && strings.Contains(text, "permanent") {
		prKeyword, prHit = "permanent", true
	}
	if !prHit {
		prKeyword, prHit = containsAny(title, prKeywords)
	}
	if prHit && canadaContext {
		return typeInfo(domain.DocumentTypeCanadaPRCard, confidenceKeywordStrong, []string{"keyword:" + prKeyword, "context:canada"}), true
	}

	_, passportHit := containsAny(text, passportKeywords)
	_, passportTitleHit := containsAny(title, passportKeywords)
	_, dlHit := containsAny(text, dlKeywords)

	if kw, ok := containsAny(text, photoIDKeywords); ok && !passportHit && !dlHit {
		if province := detectProvince(text); province == "Ontario" {
			return typeInfo(domain.DocumentTypeOntarioPhotoID, confidenceKeywordStrong, []string{"keyword:" + kw, "province:ontario"}), true
		}
		return typeInfo(domain.DocumentTypeGenericPhotoID, confidenceGenericPhotoID, []string{"keyword:" + kw}), true
	}

	if kw, ok := containsAny(text, healthKeywords); ok && !passportHit {
		if detectProvince(text) == "Ontario" || strings.Contains(text, "ohip") {
			return typeInfo(domain.DocumentTypeOntarioHealth, confidenceKeywordStrong, []string{"keyword:" + kw, "province:ontario"}), true
		}
	}

	if dlHit && !passportHit {
		if info, ok := d.resolveDriversLicence(text); ok {
			return info, true
		}
	}

	if passportHit || passportTitleHit {
		return d.resolvePassport(fields, text, canadaContext), true
	}

	return domain.DocumentTypeInfo{}, false
}

func (d *Detector) resolveDriversLicence(text string) (domain.DocumentTypeInfo, bool) {
	if province := detectProvince(text); province != "" {
		if docType, ok := provinceDLTypes[province]; ok {
			return typeInfo(docType, confidenceKeywordStrong, []string{"keyword:driver", "province:" + strings.ToLower(province)}), true
		}
	}
	if state := detectUSState(text); state != "" {
		if docType, ok := stateDLTypes[state]; ok {
			return typeInfo(docType, confidenceStateMapped, []string{"keyword:driver", "state:" + state}), true
		}
		info := typeInfo(domain.DocumentTypeUSDL, confidenceStateUnmapped, []string{"keyword:driver", "state:" + state})
		info.StateProvince = state
		return info, true
	}
	return domain.DocumentTypeInfo{}, false
}

func (d *Detector) resolvePassport(fields domain.ExtractedFields, text string, canadaContext bool) domain.DocumentTypeInfo {
	code := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldCountryCode)))
	if code != "" {
		if docType, ok := domain.PassportTypeByAlpha3[code]; ok {
			return typeInfo(docType, confidenceKeywordStrong, []string{"keyword:passport", "country_code:" + code})
		}
		if _, ok := domain.ISOAlpha3[code]; ok {
			info := typeInfo(domain.DocumentTypeGenericPassport, confidenceStateMapped, []string{"keyword:passport", "country_code:" + code})
			info.Country = code
			return info
		}
	}
	// Without a country code the confidence stays low, but the issuing
	// country printed on the document still picks the type.
	if token, docType, ok := passportCountryByName(text); ok {
		return typeInfo(docType, confidencePassportNoCode, []string{"keyword:passport", "country_name:" + token})
	}
	if canadaContext {
		return typeInfo(domain.DocumentTypeCanadianPassport, confidencePassportNoCode, []string{"keyword:passport", "context:canada"})
	}
	return typeInfo(domain.DocumentTypeGenericPassport, confidencePassportNoCode, []string{"keyword:passport"})
}

// detectByNumberFormat is stage two: match the raw document number against
// the per-type format table in a fixed, most specific first order.
func (d *Detector) detectByNumberFormat(fields domain.ExtractedFields) (domain.DocumentTypeInfo, bool) {
	number := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldDocumentNumber)))
	if number == "" {
		return domain.DocumentTypeInfo{}, false
	}
	compact := strings.ReplaceAll(strings.ReplaceAll(number, "-", ""), " ", "")
	for _, docType := range domain.NumberFormatFallback() {
		pattern := domain.DocumentPatterns[docType]
		if pattern.NumberFormat == nil {
			continue
		}
		if pattern.NumberFormat.MatchString(number) || pattern.NumberFormat.MatchString(compact) {
			info := typeInfo(docType, confidenceNumberFormat, []string{"number_format:" + string(docType)})
			if docType == domain.DocumentTypeOntarioDL && encodesDateOfBirth(compact, fields.Get(domain.FieldDateOfBirth)) {
				info.Confidence = confidenceKeywordStrong
				info.DetectedFeatures = append(info.DetectedFeatures, "dob_encoding_match")
			}
			return info, true
		}
	}
	return domain.DocumentTypeInfo{}, false
}

// detectByScoring is stage three: score every known type on format match,
// keyword hits, and the Ontario address bonus, then keep the best candidate.
func (d *Detector) detectByScoring(fields domain.ExtractedFields, text string) domain.DocumentTypeInfo {
	number := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldDocumentNumber)))
	address := strings.ToLower(fields.Get(domain.FieldAddress))

	var bestType domain.DocumentType
	bestScore := 0.0
	var bestFeatures []string

	candidates := make([]domain.DocumentType, 0, len(domain.DocumentPatterns))
	for docType := range domain.DocumentPatterns {
		candidates = append(candidates, docType)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	for _, docType := range candidates {
		pattern := domain.DocumentPatterns[docType]
		score := 0.0
		var features []string

		if number != "" && pattern.NumberFormat != nil && pattern.NumberFormat.MatchString(number) {
			score += formatMatchWeight
			features = append(features, "format_match")
		}

		keywordScore := 0.0
		for _, kw := range pattern.Keywords {
			if strings.Contains(text, kw) {
				keywordScore += keywordWeight
				features = append(features, "keyword:"+kw)
			}
		}
		if keywordScore > keywordWeightCap {
			keywordScore = keywordWeightCap
		}
		score += keywordScore

		if docType == domain.DocumentTypeOntarioDL && hasOntarioIndicator(address, text) {
			score += ontarioAddressWeight
			features = append(features, "ontario_address")
		}

		d.logger.Trace().Str("candidate", string(docType)).Float64("score", score).Strs("features", features).Msg("scoring candidate")

		if score > bestScore {
			bestType, bestScore, bestFeatures = docType, score, features
		}
	}

	if bestScore >= scoringThreshold {
		info := typeInfo(bestType, bestScore, bestFeatures)
		return info
	}

	// Last resort: a passport keyword plus a resolvable country code still
	// beats giving up entirely.
	if _, ok := containsAny(text, passportKeywords); ok {
		code := strings.ToUpper(strings.TrimSpace(fields.Get(domain.FieldCountryCode)))
		if _, known := domain.ISOAlpha3[code]; known {
			info := typeInfo(domain.DocumentTypeGenericPassport, confidencePassportLastGasp, []string{"keyword:passport", "country_code:" + code})
			info.Country = code
			return info
		}
	}

	return domain.DocumentTypeInfo{
		DocumentType: domain.DocumentTypeUnknown,
		Confidence:   0.0,
		DocumentName: "Unknown Document",
	}
}

// passportCountryTokens fixes the iteration order over
// domain.PassportCountryTypes: longer tokens first, ties broken
// lexicographically, so multi-word country names are tested before any
// shorter token they contain.
var passportCountryTokens = func() []string {
	tokens := make([]string, 0, len(domain.PassportCountryTypes))
	for token := range domain.PassportCountryTypes {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}()

// passportCountryByName resolves a passport's country from the issuing
// country name printed on the document.
func passportCountryByName(text string) (string, domain.DocumentType, bool) {
	for _, token := range passportCountryTokens {
		if strings.Contains(text, token) {
			return token, domain.PassportCountryTypes[token], true
		}
	}
	return "", "", false
}

// encodesDateOfBirth reports whether the last six digits of an Ontario
// licence number encode the date of birth as YYMMDD, allowing the +50 month
// offset used for female holders. A match is strong corroborating evidence.
func encodesDateOfBirth(compact, dob string) bool {
	if len(compact) < 6 || len(dob) < 10 {
		return false
	}
	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return false
	}
	encoded := compact[len(compact)-6:]
	plain := fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
	female := fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month())+50, t.Day())
	return encoded == plain || encoded == female
}

var ontarioIndicators = []string{
	"ontario", " on ", ", on", "on,", "toronto", "ottawa", "mississauga",
}

func hasOntarioIndicator(address, text string) bool {
	for _, indicator := range ontarioIndicators {
		if strings.Contains(address, indicator) || strings.Contains(text, indicator) {
			return true
		}
	}
	return ontarioPostalCode.MatchString(strings.ToUpper(address))
}

func typeInfo(docType domain.DocumentType, confidence float64, features []string) domain.DocumentTypeInfo {
	pattern, ok := domain.DocumentPatterns[docType]
	name := pattern.Name
	if !ok {
		name = fmt.Sprintf("Document (%s)", docType)
	}
	return domain.DocumentTypeInfo{
		DocumentType:     docType,
		Confidence:       confidence,
		Country:          pattern.Country,
		StateProvince:    pattern.StateProvince,
		DocumentName:     name,
		DetectedFeatures: features,
	}
}
