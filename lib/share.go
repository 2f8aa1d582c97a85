package lib

import (
	"fmt"
	"strings"
	"time"
)

// ShareSummaryMaxRecords keeps shared summaries short enough to paste into
// a chat message.
const ShareSummaryMaxRecords = 10

// BuildShareSummary renders a plain-text summary of where things stand
// with one person: their balance line followed by their most recent
// records, newest first. The output is what gets copied to the clipboard,
// so it carries no terminal markup.
func BuildShareSummary(person string, rs RecordSet, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("udhaar: %v, as of %v\n", person, now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("%v\n", FormatBalanceLabel(ComputeBalance(rs))))

	for i := range rs {
		if i >= ShareSummaryMaxRecords {
			sb.WriteString(fmt.Sprintf("and %v more\n", len(rs)-ShareSummaryMaxRecords))

			break
		}

		line := fmt.Sprintf("%v  %v  %v  %v",
			rs[i].Timestamp.Format("2006-01-02"),
			FormatAsCurrency(rs[i].Amount.Decimal),
			rs[i].Status,
			rs[i].Mode,
		)

		if rs[i].LabelText() != "" {
			line = fmt.Sprintf("%v  (%v)", line, rs[i].LabelText())
		}

		sb.WriteString(line + "\n")
	}

	return sb.String()
}
