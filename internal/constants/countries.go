package constants

// countryCodes is the fixed set of ISO 3166-1 alpha-2 codes an airport may
// carry. Airports outside this set are rejected at write time.
var countryCodes = map[string]struct{}{
	"AE": {}, "AR": {}, "AT": {}, "AU": {}, "BE": {}, "BR": {}, "CA": {},
	"CH": {}, "CL": {}, "CN": {}, "CO": {}, "CZ": {}, "DE": {}, "DK": {},
	"EG": {}, "ES": {}, "FI": {}, "FR": {}, "GB": {}, "GR": {}, "HK": {},
	"HU": {}, "ID": {}, "IE": {}, "IL": {}, "IN": {}, "IS": {}, "IT": {},
	"JP": {}, "KE": {}, "KR": {}, "MA": {}, "MX": {}, "MY": {}, "NG": {},
	"NL": {}, "NO": {}, "NZ": {}, "PE": {}, "PH": {}, "PL": {}, "PT": {},
	"QA": {}, "RO": {}, "RU": {}, "SA": {}, "SE": {}, "SG": {}, "TH": {},
	"TR": {}, "TW": {}, "UA": {}, "US": {}, "VN": {}, "ZA": {},
}

// IsValidCountry reports whether code belongs to the supported enumeration
func IsValidCountry(code string) bool {
	_, ok := countryCodes[code]
	return ok
}
