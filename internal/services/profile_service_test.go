package services

import (
	"errors"
	"testing"

	"github.com/jobfolio/jobhub/internal/models"
)

func TestSaveProfile_ReplacesExisting(t *testing.T) {
	s := NewProfileService(newTestDB(t))

	err := s.SaveProfile(&models.UserProfile{
		Name:     "Joey",
		Email:    "joey@example.com",
		Phone:    "555-0100",
		Projects: "FTP client in Java",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Saving again under the same name replaces the row in full — fields
	// left blank in the new submission become blank in the store.
	err = s.SaveProfile(&models.UserProfile{
		Name:  "Joey",
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	names, err := s.ListProfileNames()
	if err != nil {
		t.Fatalf("ListProfileNames: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("have %d profiles, want 1", len(names))
	}

	p, err := s.GetProfile("Joey")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Email != "new@example.com" {
		t.Errorf("email = %q, want new@example.com", p.Email)
	}
	if p.Phone != "" || p.Projects != "" {
		t.Errorf("old fields should be replaced, got phone=%q projects=%q", p.Phone, p.Projects)
	}
}

func TestSaveProfile_RequiresName(t *testing.T) {
	s := NewProfileService(newTestDB(t))
	if err := s.SaveProfile(&models.UserProfile{Email: "x@y.com"}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	s := NewProfileService(newTestDB(t))
	_, err := s.GetProfile("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListProfileNames_Sorted(t *testing.T) {
	s := NewProfileService(newTestDB(t))
	for _, n := range []string{"Zoe", "Amy", "Mia"} {
		if err := s.SaveProfile(&models.UserProfile{Name: n}); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	names, err := s.ListProfileNames()
	if err != nil {
		t.Fatalf("ListProfileNames: %v", err)
	}
	want := []string{"Amy", "Mia", "Zoe"}
	if len(names) != len(want) {
		t.Fatalf("have %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
