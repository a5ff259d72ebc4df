// Package renderer turns domain structs into markdown strings for the
// terminal surfaces. It never mutates the aggregate.
package renderer

import (
	"time"
)

// dateFmt is how timestamps appear in tables.
const dateFmt = "2006-01-02"

func day(t time.Time) string { return t.Local().Format(dateFmt) }
