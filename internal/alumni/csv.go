package alumni

import (
	"fmt"
	"strings"
	"time"
)

// csvHeader matches the export contract; consumers rely on this column order.
const csvHeader = "Name,Email,Phone,Batch,Department,Company,Position"

// ExportCSV serializes the records to the directory export format. Name,
// company and position are always double-quoted because they routinely carry
// commas; the remaining columns are written raw. Embedded quotes are doubled.
// encoding/csv is not used here: it quotes minimally, and the export contract
// pins the always-quoted columns.
func ExportCSV(records []Record) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s",
			quote(r.Name),
			r.Email,
			r.Phone,
			r.Batch,
			r.Department,
			quote(r.Company),
			quote(r.Position),
		))
	}
	return b.String()
}

// ExportFilename returns alumni_data_<ISO-date>.csv for the given time.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("alumni_data_%s.csv", now.UTC().Format("2006-01-02"))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
