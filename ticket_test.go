package ithub

import "testing"

func TestParseTicketStatus(t *testing.T) {
	got, err := ParseTicketStatus("WAITING_FOR_PARTS")
	if err != nil || got != WaitingForParts {
		t.Errorf("ParseTicketStatus = %q, %v", got, err)
	}
	if _, err := ParseTicketStatus("waiting"); err == nil {
		t.Error("lowercase input must not parse")
	}
}

func TestParseTicketPriority(t *testing.T) {
	got, err := ParseTicketPriority("CRITICAL")
	if err != nil || got != Critical {
		t.Errorf("ParseTicketPriority = %q, %v", got, err)
	}
	if _, err := ParseTicketPriority("URGENT"); err == nil {
		t.Error("unknown priority must not parse")
	}
}

func TestTicketNumber(t *testing.T) {
	if got := ticketNumber(1003); got != "T-1003" {
		t.Errorf("ticketNumber(1003) = %q, want T-1003", got)
	}
}
