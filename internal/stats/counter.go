package stats

import "sort"

// counter counts names while remembering first-encountered order, so
// rankings and max picks stay stable across runs on the same input.
type counter struct {
	entries []counterEntry
	index   map[string]int
}

type counterEntry struct {
	Name  string
	Count int
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(name string) {
	if i, ok := c.index[name]; ok {
		c.entries[i].Count++
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, counterEntry{Name: name, Count: 1})
}

// ranked returns entries sorted by count descending; equal counts keep
// encounter order.
func (c *counter) ranked() []counterEntry {
	out := make([]counterEntry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// max returns the most frequent name; the earliest-seen wins ties.
func (c *counter) max() (string, bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	best := c.entries[0]
	for _, e := range c.entries[1:] {
		if e.Count > best.Count {
			best = e
		}
	}
	return best.Name, true
}
