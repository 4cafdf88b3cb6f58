package domain

import "strings"

// RegionZone is a coarse geographic grouping used between exact-country and global content.
type RegionZone string

const (
	RegionGCCEU    RegionZone = "GCC_EU"
	RegionMENA     RegionZone = "MENA"
	RegionAPAC     RegionZone = "APAC"
	RegionAmericas RegionZone = "AMERICAS"
	RegionGlobal   RegionZone = "GLOBAL"
)

var countryRegions = map[string]RegionZone{
	// Gulf Cooperation Council
	"SA": RegionGCCEU,
	"AE": RegionGCCEU,
	"KW": RegionGCCEU,
	"QA": RegionGCCEU,
	"BH": RegionGCCEU,
	"OM": RegionGCCEU,
	// Europe
	"GB": RegionGCCEU,
	"DE": RegionGCCEU,
	"FR": RegionGCCEU,
	"IT": RegionGCCEU,
	"ES": RegionGCCEU,
	"NL": RegionGCCEU,
	"BE": RegionGCCEU,
	"CH": RegionGCCEU,
	"AT": RegionGCCEU,
	"SE": RegionGCCEU,
	"IE": RegionGCCEU,
	"PT": RegionGCCEU,
	"PL": RegionGCCEU,
	// Middle East and North Africa
	"EG": RegionMENA,
	"JO": RegionMENA,
	"LB": RegionMENA,
	"IQ": RegionMENA,
	"MA": RegionMENA,
	"TN": RegionMENA,
	"DZ": RegionMENA,
	"LY": RegionMENA,
	"SD": RegionMENA,
	"YE": RegionMENA,
	"PS": RegionMENA,
	"TR": RegionMENA,
	// Asia Pacific
	"CN": RegionAPAC,
	"JP": RegionAPAC,
	"KR": RegionAPAC,
	"IN": RegionAPAC,
	"SG": RegionAPAC,
	"MY": RegionAPAC,
	"ID": RegionAPAC,
	"PH": RegionAPAC,
	"TH": RegionAPAC,
	"VN": RegionAPAC,
	"PK": RegionAPAC,
	"AU": RegionAPAC,
	"NZ": RegionAPAC,
	// Americas
	"US": RegionAmericas,
	"CA": RegionAmericas,
	"MX": RegionAmericas,
	"BR": RegionAmericas,
	"AR": RegionAmericas,
	"CL": RegionAmericas,
	"CO": RegionAmericas,
	"PE": RegionAmericas,
}

// RegionForCountry maps an ISO country code to its region. Unmapped codes and the
// global wildcard resolve to RegionGlobal.
func RegionForCountry(code string) RegionZone {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return RegionGlobal
	}
	if zone, ok := countryRegions[code]; ok {
		return zone
	}
	return RegionGlobal
}

// IsGlobalCountry reports whether the code is empty or the global wildcard.
func IsGlobalCountry(code string) bool {
	code = strings.TrimSpace(code)
	return code == "" || strings.EqualFold(code, CountryGlobal)
}
