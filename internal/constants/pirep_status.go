package constants

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// PirepStatus mirrors the Postgres ENUM 'pirep_status'
type PirepStatus string

const (
	PirepPending  PirepStatus = "pending"
	PirepApproved PirepStatus = "approved"
	PirepRejected PirepStatus = "rejected"
)

// ErrInvalidPirepStatus is returned for status names outside the enum
var ErrInvalidPirepStatus = errors.New("invalid pirep status")

// ParsePirepStatus constructs a PirepStatus from its name
func ParsePirepStatus(name string) (PirepStatus, error) {
	switch s := PirepStatus(name); s {
	case PirepPending, PirepApproved, PirepRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPirepStatus, name)
	}
}

// IsTerminal reports whether the status admits no further transition
func (s PirepStatus) IsTerminal() bool {
	return s == PirepApproved || s == PirepRejected
}

func (s PirepStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *PirepStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = PirepStatus(v)
	case []byte:
		*s = PirepStatus(v)
	default:
		return fmt.Errorf("PirepStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s PirepStatus) Value() (driver.Value, error) { return string(s), nil }
