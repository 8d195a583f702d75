package utils

import "time"

// NowMillis returns the current time as epoch milliseconds, the canonical
// timestamp representation for every stored record.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ToMillis converts a time to epoch milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds back to a local time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
