// Package usmap loads US state boundary shapefiles and produces the
// projected, relocated feature collection used for national choropleths.
package usmap

import (
	"sort"
	"strings"
)

// FIPSCodes maps state postal abbreviation to 2-digit FIPS code for all 50 states + DC.
var FIPSCodes = map[string]string{
	"AL": "01", "AK": "02", "AZ": "04", "AR": "05", "CA": "06",
	"CO": "08", "CT": "09", "DE": "10", "DC": "11", "FL": "12",
	"GA": "13", "HI": "15", "ID": "16", "IL": "17", "IN": "18",
	"IA": "19", "KS": "20", "KY": "21", "LA": "22", "ME": "23",
	"MD": "24", "MA": "25", "MI": "26", "MN": "27", "MS": "28",
	"MO": "29", "MT": "30", "NE": "31", "NV": "32", "NH": "33",
	"NJ": "34", "NM": "35", "NY": "36", "NC": "37", "ND": "38",
	"OH": "39", "OK": "40", "OR": "41", "PA": "42", "RI": "44",
	"SC": "45", "SD": "46", "TN": "47", "TX": "48", "UT": "49",
	"VT": "50", "VA": "51", "WA": "53", "WV": "54", "WI": "55",
	"WY": "56",
}

// StateNames maps postal abbreviation to census display name.
var StateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DE": "Delaware", "DC": "District of Columbia", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana",
	"NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire",
	"NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

// territoryFIPS is the fixed exclusion set of island-area region codes
// that never appear on the national frame.
var territoryFIPS = map[string]bool{
	"60": true, // American Samoa
	"64": true, // Federated States of Micronesia
	"66": true, // Guam
	"68": true, // Marshall Islands
	"69": true, // Northern Mariana Islands
	"70": true, // Palau
	"72": true, // Puerto Rico
	"74": true, // U.S. Minor Outlying Islands
	"78": true, // U.S. Virgin Islands
}

const (
	// FIPS codes for the two relocated states and the federal district.
	fipsAlaska = "02"
	fipsHawaii = "15"
	fipsDC     = "11"
)

// postalByFIPS is a reverse lookup from FIPS code to postal abbreviation.
var postalByFIPS map[string]string

// postalByName is a reverse lookup from normalized display name to postal abbreviation.
var postalByName map[string]string

func init() {
	postalByFIPS = make(map[string]string, len(FIPSCodes))
	for abbr, fips := range FIPSCodes {
		postalByFIPS[fips] = abbr
	}
	postalByName = make(map[string]string, len(StateNames))
	for abbr, name := range StateNames {
		postalByName[NormalizeName(name)] = abbr
	}
}

// NormalizeName canonicalizes a state display name for join-key matching:
// lowercased, whitespace trimmed and collapsed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// PostalFromFIPS returns the postal abbreviation for a FIPS code.
func PostalFromFIPS(fips string) (string, bool) {
	abbr, ok := postalByFIPS[fips]
	return abbr, ok
}

// PostalFromName returns the postal abbreviation for a display name,
// matched on the normalized form.
func PostalFromName(name string) (string, bool) {
	abbr, ok := postalByName[NormalizeName(name)]
	return abbr, ok
}

// IsTerritory reports whether a FIPS code is in the island-area exclusion set.
func IsTerritory(fips string) bool {
	return territoryFIPS[fips]
}

// TerritoryFIPS returns the sorted exclusion set.
func TerritoryFIPS() []string {
	codes := make([]string, 0, len(territoryFIPS))
	for fips := range territoryFIPS {
		codes = append(codes, fips)
	}
	sort.Strings(codes)
	return codes
}

// AllPostal returns sorted postal abbreviations for the 50 states + DC.
func AllPostal() []string {
	abbrs := make([]string, 0, len(FIPSCodes))
	for abbr := range FIPSCodes {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)
	return abbrs
}
