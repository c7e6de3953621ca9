package constants

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, name := range []string{"user", "moderator", "admin", "owner"} {
		role, err := ParseRole(name)
		if err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", name, err)
		}
		if role.String() != name {
			t.Errorf("ParseRole(%q) = %q", name, role)
		}
	}

	for _, name := range []string{"", "superuser", "Admin", "ADMIN"} {
		if _, err := ParseRole(name); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", name, err)
		}
	}
}

func TestRoleHierarchy(t *testing.T) {
	if !RoleOwner.IsAtLeast(RoleAdmin) {
		t.Error("owner should outrank admin")
	}
	if !RoleAdmin.IsAtLeast(RoleAdmin) {
		t.Error("IsAtLeast should be inclusive")
	}
	if !RoleModerator.IsLessThan(RoleAdmin) {
		t.Error("moderator should rank below admin")
	}
	if RoleAdmin.IsLessThan(RoleAdmin) {
		t.Error("IsLessThan should be strict")
	}
	if !RoleUser.Equals(RoleUser) {
		t.Error("Equals should hold for the same role")
	}
}

func TestRoleLevel_UnknownRanksBelowUser(t *testing.T) {
	corrupt := Role("banana")
	if corrupt.Level() != -1 {
		t.Errorf("Unknown role level = %d, expected -1", corrupt.Level())
	}
	if corrupt.IsAtLeast(RoleUser) {
		t.Error("Unknown role must never pass a role gate")
	}
}

func TestParsePirepStatus(t *testing.T) {
	for _, name := range []string{"pending", "approved", "rejected"} {
		status, err := ParsePirepStatus(name)
		if err != nil {
			t.Errorf("ParsePirepStatus(%q) returned error: %v", name, err)
		}
		if status.String() != name {
			t.Errorf("ParsePirepStatus(%q) = %q", name, status)
		}
	}

	if _, err := ParsePirepStatus("denied"); !errors.Is(err, ErrInvalidPirepStatus) {
		t.Errorf("Expected ErrInvalidPirepStatus, got %v", err)
	}
}

func TestPirepStatusIsTerminal(t *testing.T) {
	if PirepPending.IsTerminal() {
		t.Error("pending is not terminal")
	}
	if !PirepApproved.IsTerminal() || !PirepRejected.IsTerminal() {
		t.Error("approved and rejected are terminal")
	}
}
