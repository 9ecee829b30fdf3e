package detector

import (
	"strings"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// Full province names checked before abbreviations so that short tokens like
// " on " cannot shadow an explicit "Ontario".
var provinceNames = []struct {
	token    string
	province string
}{
	{"british columbia", "British Columbia"},
	{"colombie-britannique", "British Columbia"},
	{"new brunswick", "New Brunswick"},
	{"nouveau-brunswick", "New Brunswick"},
	{"newfoundland", "Newfoundland and Labrador"},
	{"terre-neuve", "Newfoundland and Labrador"},
	{"northwest territories", "Northwest Territories"},
	{"territoires du nord-ouest", "Northwest Territories"},
	{"nova scotia", "Nova Scotia"},
	{"nouvelle-ecosse", "Nova Scotia"},
	{"prince edward island", "Prince Edward Island"},
	{"ile-du-prince-edouard", "Prince Edward Island"},
	{"saskatchewan", "Saskatchewan"},
	{"ontario", "Ontario"},
	{"alberta", "Alberta"},
	{"manitoba", "Manitoba"},
	{"nunavut", "Nunavut"},
	{"quebec", "Quebec"},
	{"québec", "Quebec"},
	{"yukon", "Yukon"},
}

var provinceAbbrevs = []struct {
	token    string
	province string
}{
	{" on ", "Ontario"},
	{", on", "Ontario"},
	{" bc ", "British Columbia"},
	{", bc", "British Columbia"},
	{" ab ", "Alberta"},
	{", ab", "Alberta"},
	{" qc ", "Quebec"},
	{", qc", "Quebec"},
	{" mb ", "Manitoba"},
	{", mb", "Manitoba"},
	{" sk ", "Saskatchewan"},
	{", sk", "Saskatchewan"},
	{" ns ", "Nova Scotia"},
	{", ns", "Nova Scotia"},
	{" nb ", "New Brunswick"},
	{", nb", "New Brunswick"},
	{" pe ", "Prince Edward Island"},
	{", pe", "Prince Edward Island"},
	{" nl ", "Newfoundland and Labrador"},
	{"ndl", "Newfoundland and Labrador"},
	{" nt ", "Northwest Territories"},
	{" nu ", "Nunavut"},
	{" yt ", "Yukon"},
}

var provinceDLTypes = map[string]domain.DocumentType{
	"Ontario":                   domain.DocumentTypeOntarioDL,
	"British Columbia":          domain.DocumentTypeBCDL,
	"Alberta":                   domain.DocumentTypeAlbertaDL,
	"Quebec":                    domain.DocumentTypeQuebecDL,
	"Manitoba":                  domain.DocumentTypeManitobaDL,
	"Saskatchewan":              domain.DocumentTypeSaskatchewanDL,
	"Nova Scotia":               domain.DocumentTypeNovaScotiaDL,
	"New Brunswick":             domain.DocumentTypeNewBrunswickDL,
	"Prince Edward Island":      domain.DocumentTypePEIDL,
	"Newfoundland and Labrador": domain.DocumentTypeNewfoundlandDL,
	"Northwest Territories":     domain.DocumentTypeNWTDL,
	"Nunavut":                   domain.DocumentTypeNunavutDL,
	"Yukon":                     domain.DocumentTypeYukonDL,
}

// detectProvince finds a Canadian province in the combined document text.
func detectProvince(text string) string {
	for _, p := range provinceNames {
		if strings.Contains(text, p.token) {
			return p.province
		}
	}
	for _, p := range provinceAbbrevs {
		if strings.Contains(text, p.token) {
			return p.province
		}
	}
	return ""
}

var usStateNames = []string{
	"california", "texas", "florida", "new york", "illinois", "pennsylvania",
	"ohio", "georgia", "michigan", "arizona", "washington", "new jersey",
	"massachusetts", "virginia", "colorado", "oregon", "nevada", "minnesota",
}

// stateDLTypes holds the states with dedicated validators. Other recognized
// states fall back to the generic US licence type.
var stateDLTypes = map[string]domain.DocumentType{
	"california": domain.DocumentTypeCaliforniaDL,
	"texas":      domain.DocumentTypeTexasDL,
}

func detectUSState(text string) string {
	for _, state := range usStateNames {
		if strings.Contains(text, state) {
			return state
		}
	}
	return ""
}
