package lib

import (
	"time"

	c "github.com/udhaar-dev/udhaar/constants"
)

// FindNudgeCandidate scans the set in order and returns the first record
// old enough to be worth chasing up but not so old that a reminder feels
// stale: strictly more than 3 and strictly less than 7 days. The set is
// newest-first, so ties resolve to the most recently added record. The
// second return value is false when nothing qualifies.
func FindNudgeCandidate(rs RecordSet, now time.Time) (PaymentRecord, bool) {
	for i := range rs {
		age := float64(now.Sub(rs[i].Timestamp).Milliseconds()) / c.MillisecondsPerDay
		if age > c.NudgeMinAgeDays && age < c.NudgeMaxAgeDays {
			return rs[i], true
		}
	}

	return PaymentRecord{}, false
}
