package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPI       RequestSource = "API"
	RequestSourceWebClient RequestSource = "WEB_CLIENT"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixTourList   CachePrefix = "TOUR_LIST"
	CachePrefixTourDetail CachePrefix = "TOUR_"
	CachePrefixAirports   CachePrefix = "AIRPORT_LIST"
	CachePrefixBadges     CachePrefix = "BADGE_LIST"
)

const (
	// CallsignMaxLen is the canonical stored-data limit for PIREP callsigns
	CallsignMaxLen = 12
	// RemarkMaxLen bounds both pilot comments and reviewer notes
	RemarkMaxLen = 100
	// AirportCodeLen is the fixed length of an ICAO-style airport code
	AirportCodeLen = 4
)
