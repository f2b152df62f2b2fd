package internal

import "sort"

// counter counts keys and remembers the order in which they were first seen.
// Sorted output is by count descending, ties broken by first-seen order, so
// repeated runs over the same input always agree.
type counter struct {
	index  map[string]int
	keys   []string
	counts []int
}

type keyCount struct {
	key   string
	count int
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string) {
	c.addN(key, 1)
}

func (c *counter) addN(key string, n int) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.counts = append(c.counts, 0)
	}
	c.counts[i] += n
}

func (c *counter) len() int {
	return len(c.keys)
}

func (c *counter) total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// mostCommon returns up to limit entries; limit <= 0 returns all of them.
func (c *counter) mostCommon(limit int) []keyCount {
	items := make([]keyCount, len(c.keys))
	for i, k := range c.keys {
		items[i] = keyCount{key: k, count: c.counts[i]}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].count > items[j].count
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
