package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// TicketBoardMarkdown renders the service-desk board grouped by status,
// in board order.
func TicketBoardMarkdown(tickets []ithub.Ticket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Service Desk")

	for _, status := range ithub.TicketStatuses {
		var rows [][]string
		for _, t := range tickets {
			if t.Status != status {
				continue
			}
			rows = append(rows, []string{
				t.TicketNumber,
				t.CustomerName,
				t.DeviceType + " " + t.DeviceModel,
				t.IssueDescription,
				string(t.Priority),
				day(t.UpdatedAt),
			})
		}
		if len(rows) == 0 {
			continue
		}
		doc.H2(string(status))
		doc.Table(md.TableSet{
			Header: []string{"Ticket", "Customer", "Device", "Issue", "Priority", "Updated"},
			Rows:   rows,
		})
	}

	doc.Build()
	return buf.String()
}

// TicketMarkdown renders one ticket in full.
func TicketMarkdown(t ithub.Ticket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — %s", t.TicketNumber, t.CustomerName))

	rows := [][]string{
		{"Status", string(t.Status)},
		{"Priority", string(t.Priority)},
		{"Contact", t.ContactNumber},
		{"Device", t.DeviceType + " " + t.DeviceModel},
		{"Issue", t.IssueDescription},
		{"Created", day(t.CreatedAt)},
		{"Updated", day(t.UpdatedAt)},
	}
	if t.AssignedTo != "" {
		rows = append(rows, []string{"Assigned to", t.AssignedTo})
	}
	if t.Diagnosis != "" {
		rows = append(rows, []string{"Diagnosis", t.Diagnosis})
	}
	if !t.EstimatedCost.IsZero() {
		rows = append(rows, []string{"Estimated cost", t.EstimatedCost.String()})
	}
	if t.Notes != "" {
		rows = append(rows, []string{"Notes", t.Notes})
	}
	doc.Table(md.TableSet{Header: []string{"Field", "Value"}, Rows: rows})

	doc.Build()
	return buf.String()
}
