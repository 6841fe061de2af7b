// Package render turns boundary values into their fixed textual form.
// Consumers parse these lines, so the layout is a compatibility contract:
// YYYY-MM-DD HH:MM:SS.mmm, eight lines, day/week/month/year order.
package render

import (
	"strings"
	"time"

	"github.com/ydelafollye/calendar-range-exporter-go/pkg/timeutil"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// Timestamp formats t with millisecond precision.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// RangeSet renders the eight boundary lines for rs.
func RangeSet(rs timeutil.RangeSet) string {
	var b strings.Builder
	writeRange(&b, "day", rs.Day)
	writeRange(&b, "week", rs.Week)
	writeRange(&b, "month", rs.Month)
	writeRange(&b, "year", rs.Year)
	return b.String()
}

func writeRange(b *strings.Builder, period string, r timeutil.Range) {
	b.WriteString("Start of ")
	b.WriteString(period)
	b.WriteString(": ")
	b.WriteString(Timestamp(r.Start))
	b.WriteByte('\n')
	b.WriteString("End of ")
	b.WriteString(period)
	b.WriteString(": ")
	b.WriteString(Timestamp(r.End))
	b.WriteByte('\n')
}
