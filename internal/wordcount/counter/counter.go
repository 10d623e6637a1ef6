// Package counter computes exact-match occurrence counts of search terms
// over a token sequence. The result is an ordered mapping: one entry per
// distinct term, keyed in first-seen order of the input terms.
package counter

// Entry is one term and its accumulated count.
type Entry struct {
	Term  string
	Count int
}

// Counts is an ordered term→count mapping. Entries keep the first-seen order
// of the terms they were built from; re-listing a duplicate term neither
// moves its entry nor resets its count.
type Counts struct {
	entries []Entry
	index   map[string]int
}

// Count scans tokens once per listed term and credits every exactly-equal
// token to that term's entry. Matching is case-sensitive with no
// normalisation. A term absent from tokens keeps a count of zero. A term
// listed more than once keeps a single entry at its first position but is
// credited once per listing, so the total can exceed the number of matching
// tokens.
func Count(terms []string, tokens []string) *Counts {
	c := &Counts{
		entries: make([]Entry, 0, len(terms)),
		index:   make(map[string]int, len(terms)),
	}
	for _, term := range terms {
		i, exists := c.index[term]
		if !exists {
			i = len(c.entries)
			c.index[term] = i
			c.entries = append(c.entries, Entry{Term: term})
		}
		for _, tok := range tokens {
			if tok == term {
				c.entries[i].Count++
			}
		}
	}
	return c
}

// CountSingle returns the exact-match count of a single term.
func CountSingle(term string, tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if tok == term {
			n++
		}
	}
	return n
}

// Entries returns the mapping in key order. The slice is a copy; the Counts
// value itself is never mutated after Count returns.
func (c *Counts) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the count for term and whether the term is present.
func (c *Counts) Get(term string) (int, bool) {
	i, ok := c.index[term]
	if !ok {
		return 0, false
	}
	return c.entries[i].Count, true
}

// Len returns the number of distinct terms.
func (c *Counts) Len() int {
	return len(c.entries)
}

// Total returns the sum of all counts.
func (c *Counts) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}
