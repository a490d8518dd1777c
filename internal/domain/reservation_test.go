package domain

import (
	"strings"
	"testing"
)

func TestNewConfirmationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := NewConfirmationCode()
		if err != nil {
			t.Fatalf("NewConfirmationCode: %v", err)
		}
		if len(code) != ConfirmationCodeLength {
			t.Fatalf("len(%q) = %d, want %d", code, len(code), ConfirmationCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(confirmationAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("codes are not random")
	}
}

func TestNewReservationID(t *testing.T) {
	id := NewReservationID()
	if !strings.HasPrefix(id, "res_") {
		t.Errorf("id = %q, want res_ prefix", id)
	}
	if id == NewReservationID() && id == NewReservationID() {
		t.Error("ids are not unique")
	}
}

func TestParticipantHasEvent(t *testing.T) {
	p := Participant{Email: "a@b.c", EventIDs: []string{"1", "2"}}
	if !p.HasEvent("2") {
		t.Error("expected registered event to be found")
	}
	if p.HasEvent("3") {
		t.Error("unexpected match")
	}
}
