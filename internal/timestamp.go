package internal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timestampPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}))?,[\s\p{Zs}]*(\d{1,2}):(\d{2})(?::(\d{2}))?[\s\p{Zs}]*([aApP][mM])$`)

// TimestampNormalizer parses export timestamps into time values.
// Dates are read day-first unless configured otherwise.
type TimestampNormalizer struct {
	dayFirst    bool
	defaultYear int
}

// NormalizerOption configures a TimestampNormalizer
type NormalizerOption func(*TimestampNormalizer)

// WithDayFirst selects D/M (true) or M/D (false) ordering
func WithDayFirst(dayFirst bool) NormalizerOption {
	return func(n *TimestampNormalizer) {
		n.dayFirst = dayFirst
	}
}

// WithDefaultYear sets the year used for timestamps exported without one
func WithDefaultYear(year int) NormalizerOption {
	return func(n *TimestampNormalizer) {
		n.defaultYear = year
	}
}

// NewTimestampNormalizer creates a day-first normalizer that fills missing
// years with the current year.
func NewTimestampNormalizer(opts ...NormalizerOption) *TimestampNormalizer {
	n := &TimestampNormalizer{
		dayFirst:    true,
		defaultYear: time.Now().Year(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Parse converts a raw timestamp. ok is false when the string is malformed or
// names an impossible date; Parse never panics.
func (n *TimestampNormalizer) Parse(raw string) (t time.Time, ok bool) {
	m := timestampPattern.FindStringSubmatch(strings.TrimSpace(NormalizeSpaces(raw)))
	if m == nil {
		return time.Time{}, false
	}

	day, month := atoi(m[1]), atoi(m[2])
	if !n.dayFirst {
		day, month = month, day
	}

	year := n.defaultYear
	if m[3] != "" {
		year = expandYear(atoi(m[3]))
	}

	hour, minute := atoi(m[4]), atoi(m[5])
	second := 0
	if m[6] != "" {
		second = atoi(m[6])
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return time.Time{}, false
	}
	if hour < 1 || hour > 12 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	hour %= 12
	if strings.EqualFold(m[7], "pm") {
		hour += 12
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), true
}

// ParseAll parses every raw timestamp. Entries that fail are nil in the
// result and counted in unparsed; the count is logged, never raised.
func (n *TimestampNormalizer) ParseAll(raws []string) (parsed []*time.Time, unparsed int) {
	parsed = make([]*time.Time, len(raws))
	for i, raw := range raws {
		t, ok := n.Parse(raw)
		if !ok {
			unparsed++
			LogDebug("Unparsable timestamp %q", raw)
			continue
		}
		parsed[i] = &t
	}

	if unparsed > 0 {
		LogWarn("Unparsed timestamps: %d (of %d)", unparsed, len(raws))
	} else {
		LogDebug("Unparsed timestamps: %d (of %d)", unparsed, len(raws))
	}
	return parsed, unparsed
}

// expandYear maps a two-digit year onto 1969..2068
func expandYear(yy int) int {
	if yy < 69 {
		return 2000 + yy
	}
	return 1900 + yy
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
