package mapper

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// exchangeTime is a parsed exchange timestamp: a millisecond-resolution
// calendar time plus the microsecond remainder (0-999) encoded in the
// source string beyond millisecond precision.
type exchangeTime struct {
	ts    time.Time
	micro int
}

// parseExchangeTime parses an ISO-8601 exchange timestamp string.
// The second return value reports validity: a timestamp is valid only when
// it parses and its epoch millisecond value is non-negative. Coinbase
// occasionally emits a zero/epoch-origin time string on otherwise valid
// messages, which lands in the negative range and must trigger the
// caller's fallback chain.
func parseExchangeTime(s string) (exchangeTime, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return exchangeTime{}, false
	}
	et := exchangeTime{
		ts:    t.Truncate(time.Millisecond).UTC(),
		micro: microRemainder(s),
	}
	if t.UnixMilli() < 0 {
		return et, false
	}
	return et, true
}

// microRemainder extracts the sub-millisecond component of the fractional
// seconds in a timestamp string, e.g. "...T00:00:00.123456Z" -> 456.
// Timestamps with millisecond precision or less yield 0.
func microRemainder(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	frac := s[dot+1:]
	end := 0
	for end < len(frac) && frac[end] >= '0' && frac[end] <= '9' {
		end++
	}
	frac = frac[:end]
	if len(frac) > 6 {
		frac = frac[:6]
	}
	for len(frac) < 6 {
		frac += "0"
	}
	micros, err := strconv.Atoi(frac)
	if err != nil {
		return 0
	}
	return micros % 1000
}

// ParseTimestamp parses an exchange timestamp string into a
// millisecond-resolution time and its microsecond remainder. The ok result
// reports validity as defined by parseExchangeTime.
func ParseTimestamp(s string) (ts time.Time, micro int, ok bool) {
	et, ok := parseExchangeTime(s)
	return et.ts, et.micro, ok
}

// toFloat parses a string-encoded decimal, yielding NaN for malformed input.
func toFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
