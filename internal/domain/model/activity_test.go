package model

import "testing"

func TestActivityHasParticipant(t *testing.T) {
	a := Activity{
		Description:     "Chess strategy and tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}

	if !a.HasParticipant("michael@mergington.edu") {
		t.Error("expected michael@mergington.edu to be a participant")
	}
	if a.HasParticipant("nobody@mergington.edu") {
		t.Error("did not expect nobody@mergington.edu to be a participant")
	}
}

func TestActivityHasParticipantEmpty(t *testing.T) {
	a := Activity{Participants: []string{}}
	if a.HasParticipant("anyone@mergington.edu") {
		t.Error("empty roster should have no participants")
	}
}

func TestActivityClone(t *testing.T) {
	a := Activity{
		Description:     "Tennis lessons",
		Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 10,
		Participants:    []string{"lucas@mergington.edu"},
	}

	c := a.Clone()
	if c.Description != a.Description || c.Schedule != a.Schedule || c.MaxParticipants != a.MaxParticipants {
		t.Error("clone should copy scalar fields")
	}
	if len(c.Participants) != 1 || c.Participants[0] != "lucas@mergington.edu" {
		t.Fatalf("clone roster mismatch: %v", c.Participants)
	}

	// Mutating the clone must not affect the original.
	c.Participants[0] = "other@mergington.edu"
	if a.Participants[0] != "lucas@mergington.edu" {
		t.Error("clone shares the roster slice with the original")
	}
}

func TestActivityCloneNilParticipants(t *testing.T) {
	a := Activity{Description: "Drama"}

	c := a.Clone()
	if c.Participants == nil {
		t.Error("clone should normalize a nil roster to an empty slice")
	}
	if len(c.Participants) != 0 {
		t.Errorf("expected empty roster, got %v", c.Participants)
	}
}
