package internal

import "time"

// CreateTestRecord creates a record with a parsed timestamp
func CreateTestRecord(index int, sender, body string, ts time.Time) Record {
	t := ts
	return Record{
		Index:        index,
		RawTimestamp: ts.Format("2/1/06, 3:04 PM"),
		Timestamp:    &t,
		Sender:       sender,
		Body:         body,
		Calendar:     NewCalendar(ts),
	}
}

// CreateTestUnparsedRecord creates a record whose timestamp failed to parse
func CreateTestUnparsedRecord(index int, sender, body string) Record {
	return Record{
		Index:        index,
		RawTimestamp: "31/2/24, 10:00 AM",
		Sender:       sender,
		Body:         body,
	}
}

// CreateTestRecordSet creates a small conversation spanning two months
func CreateTestRecordSet() *RecordSet {
	base := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC) // Monday
	records := []Record{
		CreateTestRecord(0, GroupNotification, "Alice created group \"Trip\"", base),
		CreateTestRecord(1, "Alice", "Hello everyone 😀😀", base.Add(5*time.Minute)),
		CreateTestRecord(2, "Bob", "hello alice, see https://example.com", base.Add(10*time.Minute)),
		CreateTestRecord(3, "Bob", DefaultMediaPlaceholder, base.Add(24*time.Hour)),
		CreateTestRecord(4, "Alice", "trip trip plans 😀 👍", base.Add(32*24*time.Hour+13*time.Hour)),
		CreateTestUnparsedRecord(5, "Carol", "late hello"),
	}
	return &RecordSet{
		Records: records,
		Summary: ParseSummary{
			Records:         len(records),
			UnparsedDates:   1,
			SystemMessages:  1,
			DistinctSenders: 3,
		},
	}
}
