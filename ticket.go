package ithub

import (
	"fmt"
	"time"
)

// TicketStatus labels a repair ticket's position on the service-desk
// board. The workflow is deliberately permissive: any status may move to
// any other status, the board is labeled, not enforced.
type TicketStatus string

const (
	Open            TicketStatus = "OPEN"
	InProgress      TicketStatus = "IN_PROGRESS"
	WaitingForParts TicketStatus = "WAITING_FOR_PARTS"
	Resolved        TicketStatus = "RESOLVED"
	Closed          TicketStatus = "CLOSED"
)

// TicketStatuses lists all statuses in board order.
var TicketStatuses = []TicketStatus{Open, InProgress, WaitingForParts, Resolved, Closed}

// ParseTicketStatus parses a string into a TicketStatus.
func ParseTicketStatus(s string) (TicketStatus, error) {
	for _, st := range TicketStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown ticket status: %q", s)
}

// TicketPriority ranks how urgent a ticket is.
type TicketPriority string

const (
	Low      TicketPriority = "LOW"
	Medium   TicketPriority = "MEDIUM"
	High     TicketPriority = "HIGH"
	Critical TicketPriority = "CRITICAL"
)

// TicketPriorities lists all priorities from least to most urgent.
var TicketPriorities = []TicketPriority{Low, Medium, High, Critical}

// ParseTicketPriority parses a string into a TicketPriority.
func ParseTicketPriority(s string) (TicketPriority, error) {
	for _, p := range TicketPriorities {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown ticket priority: %q", s)
}

// Ticket is a tracked repair/service request. TicketNumber is assigned
// once at creation and never changes; UpdatedAt is refreshed on every
// mutation and is never before CreatedAt.
type Ticket struct {
	ID               string         `json:"id"`
	TicketNumber     string         `json:"ticketNumber"`
	CustomerName     string         `json:"customerName"`
	ContactNumber    string         `json:"contactNumber"`
	DeviceType       string         `json:"deviceType"`
	DeviceModel      string         `json:"deviceModel"`
	IssueDescription string         `json:"issueDescription"`
	Status           TicketStatus   `json:"status"`
	Priority         TicketPriority `json:"priority"`
	AssignedTo       string         `json:"assignedTo,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	Notes            string         `json:"notes,omitempty"`
	EstimatedCost    Money          `json:"estimatedCost"`
	Diagnosis        string         `json:"diagnosis,omitempty"`
}

// ticketNumber formats the display code for a counter value.
func ticketNumber(seq int) string { return fmt.Sprintf("T-%d", seq) }
