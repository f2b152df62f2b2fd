package internal

import (
	"fmt"
	"time"
)

const (
	// GroupNotification is the sender of messages that carry no "Name: " prefix
	// (membership changes, encryption notices and the like).
	GroupNotification = "group_notification"

	// Overall is the sender filter that selects the whole conversation.
	Overall = "Overall"

	// DefaultMediaPlaceholder is the body the export writes in place of an attachment.
	DefaultMediaPlaceholder = "<Media omitted>"
)

// Weekdays lists weekday names Monday first. Row order of every weekday table.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// HourBuckets lists the 24 hour-bucket labels ordered by start hour.
var HourBuckets = func() [24]string {
	var buckets [24]string
	for h := range buckets {
		buckets[h] = HourBucket(h)
	}
	return buckets
}()

// Record is a single message parsed out of a transcript
type Record struct {
	Index        int        `json:"index" yaml:"index"`
	RawTimestamp string     `json:"raw_timestamp" yaml:"raw_timestamp"`
	Timestamp    *time.Time `json:"timestamp" yaml:"timestamp"`
	Sender       string     `json:"sender" yaml:"sender"`
	Body         string     `json:"body" yaml:"body"`
	Calendar     *Calendar  `json:"calendar" yaml:"calendar"`
}

// Calendar holds the fields derived from a record's timestamp. A record whose
// timestamp could not be parsed has a nil Calendar.
type Calendar struct {
	Year        int    `json:"year" yaml:"year"`
	MonthNumber int    `json:"month_number" yaml:"month_number"`
	MonthName   string `json:"month_name" yaml:"month_name"`
	DayOfMonth  int    `json:"day_of_month" yaml:"day_of_month"`
	Date        string `json:"date" yaml:"date"`
	WeekdayName string `json:"weekday_name" yaml:"weekday_name"`
	Hour        int    `json:"hour" yaml:"hour"`
	Minute      int    `json:"minute" yaml:"minute"`
	HourBucket  string `json:"hour_bucket" yaml:"hour_bucket"`
}

// NewCalendar derives calendar fields from t
func NewCalendar(t time.Time) *Calendar {
	return &Calendar{
		Year:        t.Year(),
		MonthNumber: int(t.Month()),
		MonthName:   t.Month().String(),
		DayOfMonth:  t.Day(),
		Date:        t.Format("2006-01-02"),
		WeekdayName: t.Weekday().String(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		HourBucket:  HourBucket(t.Hour()),
	}
}

// WeekdayIndex returns the Monday-first row of the calendar's weekday.
func (c *Calendar) WeekdayIndex() int {
	return WeekdayIndex(c.WeekdayName)
}

// HourBucket returns the "H-H+1" label for hour; 23 wraps to "23-00".
func HourBucket(hour int) string {
	if hour == 23 {
		return "23-00"
	}
	return fmt.Sprintf("%d-%d", hour, hour+1)
}

// WeekdayIndex returns the Monday-first position of a weekday name, or -1.
func WeekdayIndex(name string) int {
	for i, d := range Weekdays {
		if d == name {
			return i
		}
	}
	return -1
}

// IsMedia reports whether body is the media placeholder
func IsMedia(body, placeholder string) bool {
	if placeholder == "" {
		placeholder = DefaultMediaPlaceholder
	}
	return body == placeholder
}

// RecordSet is the structured result of parsing one transcript
type RecordSet struct {
	Records []Record     `json:"records" yaml:"records"`
	Summary ParseSummary `json:"summary" yaml:"summary"`
}

// Len returns the number of records
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Records)
}

// ParseSummary reports how parsing went
type ParseSummary struct {
	Records          int  `json:"records" yaml:"records"`
	UnparsedDates    int  `json:"unparsed_timestamps" yaml:"unparsed_timestamps"`
	PreambleSkipped  bool `json:"preamble_skipped" yaml:"preamble_skipped"`
	SystemMessages   int  `json:"system_messages" yaml:"system_messages"`
	DistinctSenders  int  `json:"distinct_senders" yaml:"distinct_senders"`
	MultilineRecords int  `json:"multiline_records" yaml:"multiline_records"`
}
