package generator

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex maps a date to an index in [0, n) via HMAC-SHA256(salt, date key).
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Daily returns the word of the day from words.
func Daily(words []string, date time.Time, salt string) string {
	if len(words) == 0 {
		return ""
	}
	return words[DailyIndex(date, salt, len(words))]
}
