package lib

import (
	"fmt"
	"strings"
	"testing"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareSummary(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	chai := testRecord(t, "Rohit", "120", c.ModeUPI, c.StatusIPaid)
	chai.Timestamp = now.Add(-24 * time.Hour)
	chai.SetLabel("chai")

	lunch := testRecord(t, "Rohit", "200", c.ModeCash, c.StatusTheyPaid)
	lunch.Timestamp = now.Add(-48 * time.Hour)

	got := BuildShareSummary("Rohit", RecordSet{chai, lunch}, now)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "udhaar: Rohit, as of 2026-08-24", lines[0])
	assert.Equal(t, "You owe ₹80", lines[1])
	assert.Contains(t, lines[2], "2026-08-23")
	assert.Contains(t, lines[2], "₹120")
	assert.Contains(t, lines[2], "(chai)")
	assert.Contains(t, lines[3], "They Paid")
	assert.NotContains(t, lines[3], "(", "records without a label get no parenthetical")
}

func TestBuildShareSummaryTruncates(t *testing.T) {
	now := time.Now()
	rs := RecordSet{}

	for i := 0; i < ShareSummaryMaxRecords+2; i++ {
		rs = append(rs, testRecord(t, "Rohit", fmt.Sprintf("%v", i+1), c.ModeUPI, c.StatusIPaid))
	}

	got := BuildShareSummary("Rohit", rs, now)

	assert.Contains(t, got, "and 2 more")
	// header + balance + max records + the "and more" line
	assert.Len(t, strings.Split(strings.TrimRight(got, "\n"), "\n"), ShareSummaryMaxRecords+3)
}

func TestBuildShareSummaryCarriesNoMarkup(t *testing.T) {
	rs := RecordSet{testRecord(t, "Rohit", "120", c.ModeUPI, c.StatusIPaid)}

	got := BuildShareSummary("Rohit", rs, time.Now())
	assert.NotContains(t, got, "[", "clipboard text must not contain tview color tags")
}
