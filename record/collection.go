// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

// Collection maps unique headers to sequences. Iteration follows the order
// in which each header was first set; setting an existing header replaces
// its sequence in place.
type Collection struct {
	index   map[string]int
	records []Record
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{index: make(map[string]int)}
}

// Set adds r to the collection, overwriting the sequence of any record
// with the same header.
func (c *Collection) Set(r Record) {
	if i, ok := c.index[r.Header]; ok {
		c.records[i].Sequence = r.Sequence
		return
	}
	c.index[r.Header] = len(c.records)
	c.records = append(c.records, r)
}

// Clone returns a copy of c that shares no state with it.
func (c *Collection) Clone() *Collection {
	n := &Collection{
		index:   make(map[string]int, len(c.index)),
		records: make([]Record, len(c.records)),
	}
	copy(n.records, c.records)
	for h, i := range c.index {
		n.index[h] = i
	}
	return n
}

// Get returns the sequence stored for header and whether it was present.
func (c *Collection) Get(header string) (string, bool) {
	i, ok := c.index[header]
	if !ok {
		return "", false
	}
	return c.records[i].Sequence, true
}

// Len returns the number of distinct headers in the collection.
func (c *Collection) Len() int { return len(c.records) }

// Do calls fn for each record in iteration order.
func (c *Collection) Do(fn func(i int, r Record)) {
	for i, r := range c.records {
		fn(i, r)
	}
}

// Map returns the collection as a plain header to sequence map.
func (c *Collection) Map() map[string]string {
	m := make(map[string]string, len(c.records))
	for _, r := range c.records {
		m[r.Header] = r.Sequence
	}
	return m
}
