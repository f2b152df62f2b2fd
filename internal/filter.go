package internal

import "sort"

// IsOverall reports whether sender selects the whole conversation
func IsOverall(sender string) bool {
	return sender == "" || sender == Overall
}

// FilterBySender returns a copy of the records sent by sender. Overall
// returns a copy of every record. An unknown sender yields an empty slice.
func FilterBySender(records []Record, sender string) []Record {
	if IsOverall(sender) {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}

	out := make([]Record, 0)
	for _, rec := range records {
		if rec.Sender == sender {
			out = append(out, rec)
		}
	}
	return out
}

// Senders returns the filter choices for a record set: Overall first, then
// every distinct non-system sender in ascending order.
func Senders(records []Record) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, rec := range records {
		if rec.Sender == GroupNotification {
			continue
		}
		if _, ok := seen[rec.Sender]; ok {
			continue
		}
		seen[rec.Sender] = struct{}{}
		names = append(names, rec.Sender)
	}
	sort.Strings(names)

	return append([]string{Overall}, names...)
}

// HasSender reports whether sender is Overall or appears in records
func HasSender(records []Record, sender string) bool {
	if IsOverall(sender) {
		return true
	}
	for _, rec := range records {
		if rec.Sender == sender {
			return true
		}
	}
	return false
}
