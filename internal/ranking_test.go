package internal

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"
)

func TestMostBusySenders(t *testing.T) {
	records := CreateTestRecordSet().Records

	got := MostBusySenders(records, DefaultTopSenders)

	wantTop := []SenderCount{{"Alice", 2}, {"Bob", 2}, {GroupNotification, 1}, {"Carol", 1}}
	if !reflect.DeepEqual(got.Top, wantTop) {
		t.Errorf("Top = %v, want %v", got.Top, wantTop)
	}

	wantShares := []SenderShare{{"Alice", 33.33}, {"Bob", 33.33}, {GroupNotification, 16.67}, {"Carol", 16.67}}
	if !reflect.DeepEqual(got.Shares, wantShares) {
		t.Errorf("Shares = %v, want %v", got.Shares, wantShares)
	}

	sum := 0.0
	for _, s := range got.Shares {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 0.02 {
		t.Errorf("shares sum to %v, want 100", sum)
	}
}

func TestMostBusySenders_Limit(t *testing.T) {
	records := CreateTestRecordSet().Records

	tests := []struct {
		n       int
		wantTop int
	}{
		{n: 2, wantTop: 2},
		{n: 0, wantTop: 0},
		{n: -1, wantTop: 0},
		{n: 10, wantTop: 4},
	}
	for _, tt := range tests {
		got := MostBusySenders(records, tt.n)
		if len(got.Top) != tt.wantTop {
			t.Errorf("MostBusySenders(n=%d) Top = %d rows, want %d", tt.n, len(got.Top), tt.wantTop)
		}
		if len(got.Shares) != 4 {
			t.Errorf("MostBusySenders(n=%d) Shares = %d rows, want 4", tt.n, len(got.Shares))
		}
	}
}

func TestMostBusySenders_Empty(t *testing.T) {
	got := MostBusySenders(nil, 5)
	if len(got.Top) != 0 || len(got.Shares) != 0 {
		t.Errorf("MostBusySenders(nil) = %+v, want empty", got)
	}
}

func TestMostBusySenders_SharesSumTo100(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantShares []float64
	}{
		{
			name:       "seven equal senders",
			counts:     []int{1, 1, 1, 1, 1, 1, 1},
			wantShares: []float64{14.29, 14.29, 14.29, 14.29, 14.28, 14.28, 14.28},
		},
		{
			name:       "thirds",
			counts:     []int{1, 1, 1},
			wantShares: []float64{33.34, 33.33, 33.33},
		},
		{
			name:       "uneven",
			counts:     []int{5, 3, 3},
			wantShares: []float64{45.46, 27.27, 27.27},
		},
		{
			name:       "single sender",
			counts:     []int{4},
			wantShares: []float64{100},
		},
	}

	base := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []Record
			for i, n := range tt.counts {
				for j := 0; j < n; j++ {
					records = append(records, CreateTestRecord(len(records), fmt.Sprintf("S%d", i), "hi", base))
				}
			}

			got := MostBusySenders(records, DefaultTopSenders)

			hundredths := 0
			for i, s := range got.Shares {
				if s.Percent != tt.wantShares[i] {
					t.Errorf("Shares[%d] = %v (%s), want %v", i, s.Percent, s.Sender, tt.wantShares[i])
				}
				hundredths += int(math.Round(s.Percent * 100))
			}
			if hundredths != 10000 {
				t.Errorf("shares sum to %d hundredths, want 10000", hundredths)
			}
		})
	}
}

func TestApportion(t *testing.T) {
	tests := []struct {
		counts []int
		total  int
		want   []int
	}{
		{counts: []int{2, 2, 1, 1}, total: 10000, want: []int{3333, 3333, 1667, 1667}},
		{counts: []int{1, 1, 1}, total: 100, want: []int{34, 33, 33}},
		{counts: []int{0, 0}, total: 100, want: []int{0, 0}},
		{counts: nil, total: 100, want: []int{}},
	}
	for _, tt := range tests {
		if got := apportion(tt.counts, tt.total); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("apportion(%v, %d) = %v, want %v", tt.counts, tt.total, got, tt.want)
		}
	}
}
