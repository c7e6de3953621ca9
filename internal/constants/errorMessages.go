package constants

const (
	MsgNoEligibleLeg     = "No leg available for submission right now"
	MsgPirepNotFound     = "PIREP not found"
	MsgTourNotFound      = "Tour not found"
	MsgAirportNotFound   = "Airport not found"
	MsgBadgeNotFound     = "Badge not found"
	MsgAirportReferenced = "Airport is referenced by one or more tour legs"
	MsgAlreadyReviewed   = "PIREP has already been reviewed"
	MsgSubmitRetry       = "Submission clashed with a concurrent request, please retry"
	MsgEmailTaken        = "Email is already registered to another account"
	MsgNeedAdmin         = "Unauthorized. Need admin perms"
)
