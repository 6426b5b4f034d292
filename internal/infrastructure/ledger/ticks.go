package ledger

import (
	"fmt"
	"strconv"
	"time"
)

// The Ledger stamps documents with 100-nanosecond ticks counted from
// 0001-01-01T00:00:00Z, serialized as a decimal string zero-padded to at
// least 17 digits.

const (
	ticksPerSecond = 10_000_000

	// Seconds from 0001-01-01T00:00:00Z to the Unix epoch.
	epochOffsetSeconds = 62135596800
)

// DateToTicks converts a timestamp to the Ledger's tick string.
func DateToTicks(t time.Time) string {
	ticks := (t.Unix()+epochOffsetSeconds)*ticksPerSecond + int64(t.Nanosecond()/100)
	return fmt.Sprintf("%017d", ticks)
}

// TicksToDate converts a tick string back to a UTC timestamp.
func TicksToDate(s string) (time.Time, error) {
	ticks, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ticks %q: %w", s, err)
	}
	if ticks < 0 {
		return time.Time{}, fmt.Errorf("negative ticks %q", s)
	}
	sec := ticks/ticksPerSecond - epochOffsetSeconds
	nsec := (ticks % ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC(), nil
}
