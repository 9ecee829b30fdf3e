package domain

import "regexp"

// DocumentPattern describes the recognizable surface of one document type:
// its number format, the keywords that appear on the physical document, and
// the jurisdiction it belongs to.
type DocumentPattern struct {
	Name          string
	Country       string
	StateProvince string
	NumberFormat  *regexp.Regexp
	Keywords      []string
}

// DocumentPatterns maps every supported document type to its pattern. The
// table drives both detection scoring and the generic format validator.
var DocumentPatterns = map[DocumentType]DocumentPattern{
	DocumentTypeOntarioDL: {
		Name:          "Ontario Driver's License",
		Country:       "Canada",
		StateProvince: "Ontario",
		NumberFormat:  regexp.MustCompile(`^[A-Z]\d{4}-\d{5}-\d{5}$`),
		Keywords:      []string{"ontario", "driver's licence", "driver licence", "permis de conduire", "d.l.", "class g"},
	},
	DocumentTypeOntarioHealth: {
		Name:          "Ontario Health Card",
		Country:       "Canada",
		StateProvince: "Ontario",
		NumberFormat:  regexp.MustCompile(`^\d{10}[A-Z]{2}$`),
		Keywords:      []string{"health", "sante", "ontario health", "carte sante", "ohip"},
	},
	DocumentTypeOntarioPhotoID: {
		Name:          "Ontario Photo Card",
		Country:       "Canada",
		StateProvince: "Ontario",
		NumberFormat:  regexp.MustCompile(`^\d{9}$`),
		Keywords:      []string{"photo card", "carte-photo", "ontario photo"},
	},
	DocumentTypeBCDL: {
		Name:          "British Columbia Driver's License",
		Country:       "Canada",
		StateProvince: "British Columbia",
		NumberFormat:  regexp.MustCompile(`^(DL:?\s?)?\d{6,7}$`),
		Keywords:      []string{"british columbia", "colombie-britannique", "bc driver"},
	},
	DocumentTypeAlbertaDL: {
		Name:          "Alberta Driver's License",
		Country:       "Canada",
		StateProvince: "Alberta",
		NumberFormat:  regexp.MustCompile(`^\d{6}-?\d{3}$`),
		Keywords:      []string{"alberta", "operator's licence", "alberta driver"},
	},
	DocumentTypeQuebecDL: {
		Name:          "Quebec Driver's License",
		Country:       "Canada",
		StateProvince: "Quebec",
		NumberFormat:  regexp.MustCompile(`^[A-Z]\d{4}-?\d{6}-?\d{2}$`),
		Keywords:      []string{"quebec", "québec", "permis de conduire", "saaq"},
	},
	DocumentTypeManitobaDL: {
		Name:          "Manitoba Driver's License",
		Country:       "Canada",
		StateProvince: "Manitoba",
		NumberFormat:  regexp.MustCompile(`^[A-Z]{2}-?[A-Z]{2}-?[A-Z]{2}-?[A-Z]\d{3}[A-Z]{2}$`),
		Keywords:      []string{"manitoba", "manitoba driver"},
	},
	DocumentTypeSaskatchewanDL: {
		Name:          "Saskatchewan Driver's License",
		Country:       "Canada",
		StateProvince: "Saskatchewan",
		NumberFormat:  regexp.MustCompile(`^\d{8}$`),
		Keywords:      []string{"saskatchewan", "sgi"},
	},
	DocumentTypeNovaScotiaDL: {
		Name:          "Nova Scotia Driver's License",
		Country:       "Canada",
		StateProvince: "Nova Scotia",
		NumberFormat:  regexp.MustCompile(`^[A-Z]{5}\d{9}$`),
		Keywords:      []string{"nova scotia", "nouvelle-ecosse"},
	},
	DocumentTypeNewBrunswickDL: {
		Name:          "New Brunswick Driver's License",
		Country:       "Canada",
		StateProvince: "New Brunswick",
		NumberFormat:  regexp.MustCompile(`^\d{7}$`),
		Keywords:      []string{"new brunswick", "nouveau-brunswick"},
	},
	DocumentTypePEIDL: {
		Name:          "Prince Edward Island Driver's License",
		Country:       "Canada",
		StateProvince: "Prince Edward Island",
		NumberFormat:  regexp.MustCompile(`^\d{1,6}$`),
		Keywords:      []string{"prince edward island", "ile-du-prince-edouard"},
	},
	DocumentTypeNewfoundlandDL: {
		Name:          "Newfoundland and Labrador Driver's License",
		Country:       "Canada",
		StateProvince: "Newfoundland and Labrador",
		NumberFormat:  regexp.MustCompile(`^[A-Z]\d{9}$`),
		Keywords:      []string{"newfoundland", "labrador", "terre-neuve"},
	},
	DocumentTypeNWTDL: {
		Name:          "Northwest Territories Driver's License",
		Country:       "Canada",
		StateProvince: "Northwest Territories",
		NumberFormat:  regexp.MustCompile(`^\d{6}$`),
		Keywords:      []string{"northwest territories", "territoires du nord-ouest"},
	},
	DocumentTypeNunavutDL: {
		Name:          "Nunavut Driver's License",
		Country:       "Canada",
		StateProvince: "Nunavut",
		NumberFormat:  regexp.MustCompile(`^\d{6}$`),
		Keywords:      []string{"nunavut"},
	},
	DocumentTypeYukonDL: {
		Name:          "Yukon Driver's License",
		Country:       "Canada",
		StateProvince: "Yukon",
		NumberFormat:  regexp.MustCompile(`^\d{6}$`),
		Keywords:      []string{"yukon"},
	},
	DocumentTypeCanadianPassport: {
		Name:         "Canadian Passport",
		Country:      "Canada",
		NumberFormat: regexp.MustCompile(`^[A-Z]{2}\d{6}$`),
		Keywords:     []string{"passport", "passeport", "canada", "canadian"},
	},
	DocumentTypeCanadaPRCard: {
		Name:         "Canada Permanent Resident Card",
		Country:      "Canada",
		NumberFormat: regexp.MustCompile(`^[A-Z]{2}\d{6}$`),
		Keywords:     []string{"permanent resident", "resident permanent", "pr card", "immigration"},
	},
	DocumentTypeUSDL: {
		Name:         "US Driver's License",
		Country:      "United States",
		NumberFormat: regexp.MustCompile(`^[A-Z0-9]{1,14}$`),
		Keywords:     []string{"driver license", "driver's license", "usa", "dmv"},
	},
	DocumentTypeCaliforniaDL: {
		Name:          "California Driver's License",
		Country:       "United States",
		StateProvince: "California",
		NumberFormat:  regexp.MustCompile(`^[A-Z]\d{7}$`),
		Keywords:      []string{"california", "dmv", "california driver"},
	},
	DocumentTypeTexasDL: {
		Name:          "Texas Driver's License",
		Country:       "United States",
		StateProvince: "Texas",
		NumberFormat:  regexp.MustCompile(`^\d{8}$`),
		Keywords:      []string{"texas", "texas driver", "dps"},
	},
	DocumentTypeUSPassport: {
		Name:         "US Passport",
		Country:      "United States",
		NumberFormat: regexp.MustCompile(`^(?:[A-Z]\d{8}|\d{9})$`),
		Keywords:     []string{"passport", "united states", "usa", "department of state"},
	},
	DocumentTypeUKPassport: {
		Name:         "UK Passport",
		Country:      "United Kingdom",
		NumberFormat: regexp.MustCompile(`^\d{9}$`),
		Keywords:     []string{"passport", "united kingdom", "british", "hm passport office"},
	},
	DocumentTypeIndiaPassport: {
		Name:         "India Passport",
		Country:      "India",
		NumberFormat: regexp.MustCompile(`^[A-Z]\d{7}$`),
		Keywords:     []string{"passport", "india", "republic of india", "bharat"},
	},
	DocumentTypeAustraliaPassport: {
		Name:         "Australia Passport",
		Country:      "Australia",
		NumberFormat: regexp.MustCompile(`^[A-Z]{1,2}\d{7}$`),
		Keywords:     []string{"passport", "australia", "australian"},
	},
	DocumentTypeGermanyPassport: {
		Name:         "Germany Passport",
		Country:      "Germany",
		NumberFormat: regexp.MustCompile(`^[A-Z0-9]{9}$`),
		Keywords:     []string{"passport", "reisepass", "germany", "deutschland", "bundesrepublik"},
	},
	DocumentTypeFrancePassport: {
		Name:         "France Passport",
		Country:      "France",
		NumberFormat: regexp.MustCompile(`^\d{2}[A-Z]{2}\d{5}$`),
		Keywords:     []string{"passport", "passeport", "france", "republique francaise"},
	},
	DocumentTypeNigeriaPassport: {
		Name:         "Nigeria Passport",
		Country:      "Nigeria",
		NumberFormat: regexp.MustCompile(`^[A-Z]\d{8}$`),
		Keywords:     []string{"passport", "nigeria", "federal republic of nigeria"},
	},
	DocumentTypeChinaPassport: {
		Name:         "China Passport",
		Country:      "China",
		NumberFormat: regexp.MustCompile(`^[EGD]\d{8}$`),
		Keywords:     []string{"passport", "china", "people's republic of china"},
	},
	DocumentTypeColombiaPassport: {
		Name:         "Colombia Passport",
		Country:      "Colombia",
		NumberFormat: regexp.MustCompile(`^[A-Z]{2}\d{6}$`),
		Keywords:     []string{"passport", "pasaporte", "colombia", "republica de colombia"},
	},
	DocumentTypeUkrainePassport: {
		Name:         "Ukraine Passport",
		Country:      "Ukraine",
		NumberFormat: regexp.MustCompile(`^[A-Z]{2}\d{6}$`),
		Keywords:     []string{"passport", "ukraine", "ukraina"},
	},
	DocumentTypeGenericPassport: {
		Name:         "Passport",
		NumberFormat: regexp.MustCompile(`^[A-Z0-9]{6,9}$`),
		Keywords:     []string{"passport", "passeport", "pasaporte"},
	},
	DocumentTypeGenericPhotoID: {
		Name:     "Photo ID Card",
		Keywords: []string{"photo card", "identification", "photo id"},
	},
}

// numberFormatFallback is the ordered list of document types checked when a
// record has a document number but no usable keyword evidence. Order matters:
// more specific formats come before formats that would also match their input
// (the Canadian passport pattern matches Ukraine and Colombia numbers too).
var numberFormatFallback = []DocumentType{
	DocumentTypeOntarioDL,
	DocumentTypeOntarioHealth,
	DocumentTypeQuebecDL,
	DocumentTypeNovaScotiaDL,
	DocumentTypeNewfoundlandDL,
	DocumentTypeCanadianPassport,
	DocumentTypeAlbertaDL,
	DocumentTypeSaskatchewanDL,
	DocumentTypeNewBrunswickDL,
	DocumentTypeBCDL,
}

// NumberFormatFallback returns the stage-two detection order.
func NumberFormatFallback() []DocumentType {
	return numberFormatFallback
}

// CountryCodes maps lowercase country names to ISO 3166-1 alpha-3 codes,
// used by passport validators to cross-check MRZ country codes.
var CountryCodes = map[string]string{
	"canada":         "CAN",
	"united states":  "USA",
	"united kingdom": "GBR",
	"india":          "IND",
	"australia":      "AUS",
	"germany":        "DEU",
	"france":         "FRA",
	"nigeria":        "NGA",
	"china":          "CHN",
	"colombia":       "COL",
	"ukraine":        "UKR",
}

// PassportCountryTypes maps country-name tokens found on a passport to the
// dedicated passport document type for that country.
var PassportCountryTypes = map[string]DocumentType{
	"canada":         DocumentTypeCanadianPassport,
	"canadian":       DocumentTypeCanadianPassport,
	"united states":  DocumentTypeUSPassport,
	"usa":            DocumentTypeUSPassport,
	"united kingdom": DocumentTypeUKPassport,
	"british":        DocumentTypeUKPassport,
	"india":          DocumentTypeIndiaPassport,
	"australia":      DocumentTypeAustraliaPassport,
	"germany":        DocumentTypeGermanyPassport,
	"deutschland":    DocumentTypeGermanyPassport,
	"france":         DocumentTypeFrancePassport,
	"nigeria":        DocumentTypeNigeriaPassport,
	"china":          DocumentTypeChinaPassport,
	"colombia":       DocumentTypeColombiaPassport,
	"ukraine":        DocumentTypeUkrainePassport,
}
