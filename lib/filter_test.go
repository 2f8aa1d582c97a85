package lib

import (
	"testing"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFilterSet(t *testing.T) RecordSet {
	t.Helper()

	chai := testRecord(t, "Rohit", "120", c.ModeUPI, c.StatusIPaid)
	chai.SetLabel("chai")

	auto := testRecord(t, "Priya", "99.50", c.ModeCash, c.StatusTheyPaid)
	auto.SetLabel("auto fare")

	lunch := testRecord(t, "Aman", "450", c.ModeUPI, c.StatusSplit)

	return RecordSet{chai, auto, lunch}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	rs := testFilterSet(t)

	got := Filter(rs, "")
	require.Len(t, got, len(rs))

	for i := range rs {
		assert.Equal(t, rs[i].ID, got[i].ID, "order must be preserved")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string // matched person names, in order
	}{
		{name: "person exact case", query: "Rohit", want: []string{"Rohit"}},
		{name: "person lowercase", query: "rohit", want: []string{"Rohit"}},
		{name: "person uppercase", query: "ROHIT", want: []string{"Rohit"}},
		{name: "label", query: "fare", want: []string{"Priya"}},
		{name: "amount", query: "120", want: []string{"Rohit"}},
		{name: "fractional amount", query: "99.5", want: []string{"Priya"}},
		{name: "mode", query: "upi", want: []string{"Rohit", "Aman"}},
		{name: "substring of person", query: "ya", want: []string{"Priya"}},
		{name: "no match", query: "samosa", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testFilterSet(t), tt.query)

			people := []string{}
			for i := range got {
				people = append(people, got[i].Person)
			}

			assert.Equal(t, tt.want, people)
		})
	}
}

func TestFilterMissingLabelMatchesAsEmpty(t *testing.T) {
	// a record without a label must not panic or match label queries
	r := testRecord(t, "Aman", "450", c.ModeUPI, c.StatusSplit)
	require.Nil(t, r.Label)

	got := Filter(RecordSet{r}, "chai")
	assert.Empty(t, got)

	got = Filter(RecordSet{r}, "aman")
	assert.Len(t, got, 1)
}
