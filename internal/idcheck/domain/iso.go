package domain

// ISOAlpha3 is the set of recognized ISO 3166-1 alpha-3 country codes.
var ISOAlpha3 = map[string]struct{}{}

func init() {
	for _, code := range []string{
		"AFG", "ALB", "ARE", "ARG", "AUS", "AUT", "BEL", "BGD", "BRA", "CAN",
		"CHE", "CHL", "CHN", "COL", "CZE", "DEU", "DNK", "EGY", "ESP", "FIN",
		"FRA", "GBR", "GHA", "GRC", "HKG", "HUN", "IDN", "IND", "IRL", "IRN",
		"IRQ", "ISR", "ITA", "JAM", "JPN", "KEN", "KOR", "LKA", "MEX", "MYS",
		"NGA", "NLD", "NOR", "NPL", "NZL", "PAK", "PER", "PHL", "POL", "PRT",
		"ROU", "RUS", "SAU", "SGP", "SWE", "THA", "TUR", "TWN", "UKR", "USA",
		"VEN", "VNM", "ZAF", "ZWE",
	} {
		ISOAlpha3[code] = struct{}{}
	}
}

// PassportTypeByAlpha3 maps country codes to the dedicated passport type,
// where one exists.
var PassportTypeByAlpha3 = map[string]DocumentType{
	"CAN": DocumentTypeCanadianPassport,
	"USA": DocumentTypeUSPassport,
	"GBR": DocumentTypeUKPassport,
	"IND": DocumentTypeIndiaPassport,
	"AUS": DocumentTypeAustraliaPassport,
	"DEU": DocumentTypeGermanyPassport,
	"FRA": DocumentTypeFrancePassport,
	"NGA": DocumentTypeNigeriaPassport,
	"CHN": DocumentTypeChinaPassport,
	"COL": DocumentTypeColombiaPassport,
	"UKR": DocumentTypeUkrainePassport,
}
