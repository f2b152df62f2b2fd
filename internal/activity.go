package internal

// CategoryCount is one row of a categorical histogram
type CategoryCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Heatmap is the weekday x hour-bucket message matrix. Rows run Monday to
// Sunday and columns by bucket start hour 0 to 23; empty cells are zero.
type Heatmap struct {
	Rows    [7]string  `json:"rows" yaml:"rows"`
	Columns [24]string `json:"columns" yaml:"columns"`
	Cells   [7][24]int `json:"cells" yaml:"cells"`
}

// Max returns the largest cell value
func (h Heatmap) Max() int {
	peak := 0
	for _, row := range h.Cells {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// Total returns the sum of all cells
func (h Heatmap) Total() int {
	sum := 0
	for _, row := range h.Cells {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// WeekActivity counts messages per weekday, busiest first
func WeekActivity(sender string, records []Record) []CategoryCount {
	return calendarHistogram(sender, records, func(c *Calendar) string {
		return c.WeekdayName
	})
}

// MonthActivity counts messages per month name, busiest first
func MonthActivity(sender string, records []Record) []CategoryCount {
	return calendarHistogram(sender, records, func(c *Calendar) string {
		return c.MonthName
	})
}

func calendarHistogram(sender string, records []Record, key func(*Calendar) string) []CategoryCount {
	c := newCounter()
	for _, rec := range FilterBySender(records, sender) {
		if rec.Calendar == nil {
			continue
		}
		c.add(key(rec.Calendar))
	}

	out := make([]CategoryCount, 0, c.len())
	for _, kc := range c.mostCommon(0) {
		out = append(out, CategoryCount{Name: kc.key, Count: kc.count})
	}
	return out
}

// ActivityHeatmap pivots messages into a full 7x24 weekday by hour grid
func ActivityHeatmap(sender string, records []Record) Heatmap {
	h := Heatmap{Rows: Weekdays, Columns: HourBuckets}
	for _, rec := range FilterBySender(records, sender) {
		if rec.Calendar == nil {
			continue
		}
		row := rec.Calendar.WeekdayIndex()
		if row < 0 {
			continue
		}
		h.Cells[row][rec.Calendar.Hour]++
	}
	return h
}
