package lib

import (
	"testing"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agedRecord(t *testing.T, person string, age time.Duration, now time.Time) PaymentRecord {
	t.Helper()

	r := testRecord(t, person, "100", c.ModeUPI, c.StatusIPaid)
	r.Timestamp = now.Add(-age)

	return r
}

func TestFindNudgeCandidate(t *testing.T) {
	now := time.Now()
	day := 24 * time.Hour

	tests := []struct {
		name string
		ages []time.Duration
		want int // index of the expected candidate, -1 for none
	}{
		{name: "empty set", ages: nil, want: -1},
		{name: "four days qualifies", ages: []time.Duration{4 * day}, want: 0},
		{name: "two days is too fresh", ages: []time.Duration{2 * day}, want: -1},
		{name: "eight days is too stale", ages: []time.Duration{8 * day}, want: -1},
		{name: "exactly three days is excluded", ages: []time.Duration{3 * day}, want: -1},
		{name: "exactly seven days is excluded", ages: []time.Duration{7 * day}, want: -1},
		{name: "just past three days qualifies", ages: []time.Duration{3*day + time.Hour}, want: 0},
		{name: "first match in list order wins", ages: []time.Duration{day, 4 * day, 5 * day}, want: 1},
		{name: "skips non-qualifying head", ages: []time.Duration{8 * day, 6 * day}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := RecordSet{}
			for i, age := range tt.ages {
				rs = append(rs, agedRecord(t, string(rune('A'+i)), age, now))
			}

			got, ok := FindNudgeCandidate(rs, now)
			if tt.want < 0 {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, rs[tt.want].ID, got.ID)
		})
	}
}
