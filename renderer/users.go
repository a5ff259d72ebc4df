package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// UsersMarkdown renders the user reference list.
func UsersMarkdown(users []ithub.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Users")

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Username, u.Name, string(u.Role)})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Username", "Name", "Role"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
