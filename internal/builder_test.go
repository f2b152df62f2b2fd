package internal

import (
	"testing"

	"github.com/iksnae/chatstat/testutil"
)

func TestBuildRecords_Scenario(t *testing.T) {
	set := BuildRecords(testutil.ScenarioTranscript, nil)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	want := []struct{ sender, body string }{
		{"Alice", "Hello"},
		{"Bob", DefaultMediaPlaceholder},
	}
	for i, w := range want {
		rec := set.Records[i]
		if rec.Sender != w.sender || rec.Body != w.body {
			t.Errorf("record %d = (%q, %q), want (%q, %q)", i, rec.Sender, rec.Body, w.sender, w.body)
		}
		if rec.Index != i {
			t.Errorf("record %d Index = %d", i, rec.Index)
		}
	}

	got := FetchStats(Overall, set.Records, "")
	if got != (Stats{Messages: 2, Words: 1, Media: 1, Links: 0}) {
		t.Errorf("FetchStats() = %+v, want {2 1 1 0}", got)
	}
}

func TestBuildRecords_Sample(t *testing.T) {
	set := BuildRecords(testutil.SampleTranscript, NewTimestampNormalizer())

	want := ParseSummary{
		Records:          6,
		UnparsedDates:    0,
		PreambleSkipped:  true,
		SystemMessages:   1,
		DistinctSenders:  3,
		MultilineRecords: 1,
	}
	if set.Summary != want {
		t.Errorf("Summary = %+v, want %+v", set.Summary, want)
	}

	if set.Records[0].Sender != GroupNotification {
		t.Errorf("first record sender = %q, want %q", set.Records[0].Sender, GroupNotification)
	}
	if body := set.Records[4].Body; body != "first line\nsecond line 👍" {
		t.Errorf("multi-line body = %q", body)
	}

	last := set.Records[5]
	if last.Calendar == nil {
		t.Fatal("last record should have a calendar")
	}
	if last.Calendar.Date != "2024-02-03" || last.Calendar.WeekdayName != "Saturday" || last.Calendar.HourBucket != "0-1" {
		t.Errorf("calendar = %+v, want 2024-02-03 Saturday 0-1", last.Calendar)
	}
}

func TestBuildRecords_UnparsedTimestampKept(t *testing.T) {
	text := "31/2/24, 10:00 AM - A: x\n1/1/24, 10:00 AM - B: y\n"
	set := BuildRecords(text, NewTimestampNormalizer())

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if set.Summary.UnparsedDates != 1 {
		t.Errorf("UnparsedDates = %d, want 1", set.Summary.UnparsedDates)
	}
	first := set.Records[0]
	if first.Timestamp != nil || first.Calendar != nil {
		t.Errorf("unparsed record should have nil timestamp and calendar, got %+v", first)
	}
	if first.RawTimestamp != "31/2/24, 10:00 AM" {
		t.Errorf("RawTimestamp = %q", first.RawTimestamp)
	}
	if set.Records[1].Calendar == nil {
		t.Error("valid record should have a calendar")
	}
}

func TestBuildRecords_Empty(t *testing.T) {
	for _, text := range []string{"", "no messages here\n"} {
		set := BuildRecords(text, nil)
		if set.Len() != 0 {
			t.Errorf("BuildRecords(%q) Len() = %d, want 0", text, set.Len())
		}
		if len(Senders(set.Records)) != 1 {
			t.Errorf("Senders() = %v, want only Overall", Senders(set.Records))
		}
	}
}
