package internal

import (
	"fmt"
	"sort"
	"time"
)

// MonthlyPoint is one month of the monthly timeline
type MonthlyPoint struct {
	Year        int    `json:"year" yaml:"year"`
	MonthNumber int    `json:"month_number" yaml:"month_number"`
	MonthName   string `json:"month_name" yaml:"month_name"`
	Label       string `json:"time" yaml:"time"`
	Messages    int    `json:"messages" yaml:"messages"`
}

// DailyPoint is one day of the daily timeline
type DailyPoint struct {
	Date     string `json:"date" yaml:"date"`
	Messages int    `json:"messages" yaml:"messages"`
}

// MonthlyTimeline counts messages per calendar month in chronological order,
// labelled "MonthName-Year". Months without messages are absent. Records
// without a timestamp have no month and are not counted.
func MonthlyTimeline(sender string, records []Record) []MonthlyPoint {
	counts := make(map[int]int)
	for _, rec := range FilterBySender(records, sender) {
		if rec.Calendar == nil {
			continue
		}
		counts[rec.Calendar.Year*100+rec.Calendar.MonthNumber]++
	}

	keys := sortedKeys(counts)
	points := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		year, month := key/100, key%100
		name := time.Month(month).String()
		points = append(points, MonthlyPoint{
			Year:        year,
			MonthNumber: month,
			MonthName:   name,
			Label:       fmt.Sprintf("%s-%d", name, year),
			Messages:    counts[key],
		})
	}
	return points
}

// DailyTimeline counts messages per calendar date in chronological order
func DailyTimeline(sender string, records []Record) []DailyPoint {
	counts := make(map[string]int)
	for _, rec := range FilterBySender(records, sender) {
		if rec.Calendar == nil {
			continue
		}
		counts[rec.Calendar.Date]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	// ISO dates with four-digit years sort chronologically
	sort.Strings(dates)

	points := make([]DailyPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, DailyPoint{Date: d, Messages: counts[d]})
	}
	return points
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
