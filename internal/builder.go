package internal

import "strings"

// BuildRecords parses a raw transcript into its record set. Every timestamp
// boundary yields exactly one record, in input order; records whose timestamp
// cannot be parsed stay in the set with a nil Timestamp and Calendar.
func BuildRecords(text string, normalizer *TimestampNormalizer) *RecordSet {
	if normalizer == nil {
		normalizer = NewTimestampNormalizer()
	}

	split := SplitTranscript(text)
	timestamps := split.Timestamps()
	parsed, unparsed := normalizer.ParseAll(timestamps)

	set := &RecordSet{
		Records: make([]Record, 0, split.Len()),
		Summary: ParseSummary{
			Records:         split.Len(),
			UnparsedDates:   unparsed,
			PreambleSkipped: strings.TrimSpace(split.Preamble) != "",
		},
	}

	senders := make(map[string]struct{})
	for i, block := range split.Blocks {
		sender, body := ExtractSender(block)
		rec := Record{
			Index:        i,
			RawTimestamp: timestamps[i],
			Timestamp:    parsed[i],
			Sender:       sender,
			Body:         body,
		}
		if rec.Timestamp != nil {
			rec.Calendar = NewCalendar(*rec.Timestamp)
		}

		if sender == GroupNotification {
			set.Summary.SystemMessages++
		} else {
			senders[sender] = struct{}{}
		}
		if strings.Contains(body, "\n") {
			set.Summary.MultilineRecords++
		}
		set.Records = append(set.Records, rec)
	}
	set.Summary.DistinctSenders = len(senders)

	if set.Len() == 0 {
		LogInfo("No message timestamps found in transcript")
	} else {
		LogDebug("Parsed %d record(s) from %d sender(s)", set.Len(), len(senders))
	}
	return set
}
