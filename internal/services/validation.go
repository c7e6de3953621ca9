package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/models/dtos"
)

var (
	callsignPattern    = regexp.MustCompile(`^[A-Za-z0-9]{1,12}$`)
	airportCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}$`)
)

// validateCallsign enforces the canonical stored-data limit: 1-12
// alphanumeric characters
func validateCallsign(callsign string) error {
	if !callsignPattern.MatchString(callsign) {
		return common.NewInvalidInput("callsign", "callsign must be 1-12 alphanumeric characters")
	}
	return nil
}

// validateRemark bounds optional comment / review note fields. The limit is
// in characters, not bytes, matching the varchar column length.
func validateRemark(field string, remark *string) error {
	if remark != nil && utf8.RuneCountInString(*remark) > constants.RemarkMaxLen {
		return common.NewInvalidInput(field, field+" must be at most 100 characters")
	}
	return nil
}

// validateAirportCode enforces the 4-character uppercase alphanumeric format
func validateAirportCode(field, code string) error {
	if !airportCodePattern.MatchString(code) {
		return common.NewInvalidInput(field, field+" must be a 4-character uppercase alphanumeric code")
	}
	return nil
}

// validateTourRequest checks title presence and the per-tour leg invariants:
// valid airport formats, positive 1-based orders, no duplicate order values
func validateTourRequest(req *dtos.TourUpsertRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return common.NewInvalidInput("title", "title is required")
	}

	seen := make(map[int]bool, len(req.Legs))
	for _, leg := range req.Legs {
		if err := validateAirportCode("departure", leg.Departure); err != nil {
			return err
		}
		if err := validateAirportCode("arrival", leg.Arrival); err != nil {
			return err
		}
		if leg.Order < 1 {
			return common.NewInvalidInput("order", "leg order must be a positive integer")
		}
		if seen[leg.Order] {
			return common.NewInvalidInput("order", "leg order values must be unique within a tour")
		}
		seen[leg.Order] = true
		if err := validateRemark("description", leg.Description); err != nil {
			return err
		}
	}
	return nil
}
