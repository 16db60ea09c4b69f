package models

// JurisdictionInfo describes a supported legal system.
type JurisdictionInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Jurisdictions is the canonical closed set of supported jurisdiction codes.
var Jurisdictions = map[string]JurisdictionInfo{
	"US-CA": {
		Code:        "US-CA",
		Name:        "California, USA",
		Description: "California state law and regulations",
	},
	"US-NY": {
		Code:        "US-NY",
		Name:        "New York, USA",
		Description: "New York state law and regulations",
	},
	"US-TX": {
		Code:        "US-TX",
		Name:        "Texas, USA",
		Description: "Texas state law and regulations",
	},
	"US-FL": {
		Code:        "US-FL",
		Name:        "Florida, USA",
		Description: "Florida state law and regulations",
	},
	"US-FEDERAL": {
		Code:        "US-FEDERAL",
		Name:        "Federal USA",
		Description: "Federal US law and regulations",
	},
	"UK": {
		Code:        "UK",
		Name:        "United Kingdom",
		Description: "UK law and regulations",
	},
	"CA": {
		Code:        "CA",
		Name:        "Canada",
		Description: "Canadian law and regulations",
	},
	"AU": {
		Code:        "AU",
		Name:        "Australia",
		Description: "Australian law and regulations",
	},
	"GENERAL": {
		Code:        "GENERAL",
		Name:        "General/International",
		Description: "General legal principles and international law",
	},
}

// IsValidJurisdiction reports whether code is in the canonical set.
func IsValidJurisdiction(code string) bool {
	_, ok := Jurisdictions[code]
	return ok
}

// JurisdictionName resolves a code to its display name, falling back to the
// code itself for safety.
func JurisdictionName(code string) string {
	if info, ok := Jurisdictions[code]; ok {
		return info.Name
	}
	return code
}
