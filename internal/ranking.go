package internal

import "sort"

// DefaultTopSenders is the length of the busiest-senders table
const DefaultTopSenders = 5

// SenderCount is a sender and their message count
type SenderCount struct {
	Sender   string `json:"name" yaml:"name"`
	Messages int    `json:"messages" yaml:"messages"`
}

// SenderShare is a sender's share of all messages, in percent
type SenderShare struct {
	Sender  string  `json:"name" yaml:"name"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Ranking holds the busiest senders and every sender's share
type Ranking struct {
	Top    []SenderCount `json:"top" yaml:"top"`
	Shares []SenderShare `json:"shares" yaml:"shares"`
}

// MostBusySenders ranks senders over the whole record set. Top holds the n
// busiest; Shares holds every sender (the system sender included) with two
// decimals, summing to exactly 100. Both are ordered by count descending,
// ties in first-seen order.
func MostBusySenders(records []Record, n int) Ranking {
	if n < 0 {
		n = 0
	}
	c := newCounter()
	for _, rec := range records {
		c.add(rec.Sender)
	}

	ranked := c.mostCommon(0)
	ranking := Ranking{
		Top:    make([]SenderCount, 0, min(n, len(ranked))),
		Shares: make([]SenderShare, 0, len(ranked)),
	}
	counts := make([]int, len(ranked))
	for i, kc := range ranked {
		if i < n {
			ranking.Top = append(ranking.Top, SenderCount{Sender: kc.key, Messages: kc.count})
		}
		counts[i] = kc.count
	}
	for i, hundredths := range apportion(counts, 10000) {
		ranking.Shares = append(ranking.Shares, SenderShare{
			Sender:  ranked[i].key,
			Percent: float64(hundredths) / 100,
		})
	}
	return ranking
}

// apportion splits total units across counts by the largest remainder
// method. The result sums to total; ties on the remainder go to the
// earlier entry.
func apportion(counts []int, total int) []int {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	out := make([]int, len(counts))
	if sum == 0 {
		return out
	}

	remainders := make([]int, len(counts))
	assigned := 0
	for i, c := range counts {
		out[i] = c * total / sum
		remainders[i] = c * total % sum
		assigned += out[i]
	}

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, i := range order[:total-assigned] {
		out[i]++
	}
	return out
}
