package leaderboard

import (
	"strings"

	"scoreboard/core"
)

// Node holds one record and the link to its successor.
type Node struct {
	record core.Record
	next   *Node
}

// Record returns the record stored at the node.
func (n *Node) Record() core.Record { return n.record }

// Next returns the successor, or nil at the tail.
func (n *Node) Next() *Node { return n.next }

func (n *Node) String() string { return n.record.String() }

// OrderedChain is a singly linked list of records. When built with
// InsertSorted, records are kept in non-increasing score order and a new
// record lands after every record whose score is >= its own.
//
// head owns the chain; tail is an alias of its last node for O(1) access
// to the back. size == 0 iff head == nil iff tail == nil.
//
// OrderedChain is not safe for concurrent use.
type OrderedChain struct {
	head *Node
	tail *Node
	size int
}

func NewOrderedChain() *OrderedChain { return &OrderedChain{} }

func (c *OrderedChain) Size() int { return c.size }

func (c *OrderedChain) IsEmpty() bool { return c.size == 0 }

// First returns the head record, or false if the chain is empty.
func (c *OrderedChain) First() (core.Record, bool) {
	if c.IsEmpty() {
		return core.Record{}, false
	}
	return c.head.record, true
}

// Last returns the tail record, or false if the chain is empty.
func (c *OrderedChain) Last() (core.Record, bool) {
	if c.IsEmpty() {
		return core.Record{}, false
	}
	return c.tail.record, true
}

// AddFirst links r in front of the current head.
func (c *OrderedChain) AddFirst(r core.Record) {
	c.head = &Node{record: r, next: c.head}
	if c.tail == nil {
		c.tail = c.head
	}
	c.size++
}

// AddLast links r after the current tail.
func (c *OrderedChain) AddLast(r core.Record) {
	n := &Node{record: r}
	if c.IsEmpty() {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

// RemoveFirst detaches the head and returns its record.
func (c *OrderedChain) RemoveFirst() (core.Record, bool) {
	if c.IsEmpty() {
		return core.Record{}, false
	}
	n := c.head
	c.head = n.next
	c.size--
	if c.head == nil {
		c.tail = nil
	}
	n.next = nil
	return n.record, true
}

// RemoveLast detaches the tail and returns its record. Without back links
// this walks the whole chain to find the tail's predecessor.
func (c *OrderedChain) RemoveLast() (core.Record, bool) {
	if c.IsEmpty() {
		return core.Record{}, false
	}
	if c.size == 1 {
		return c.RemoveFirst()
	}
	prev := c.head
	for prev.next != c.tail {
		prev = prev.next
	}
	removed := c.tail
	prev.next = nil
	c.tail = prev
	c.size--
	return removed.record, true
}

// InsertSorted places r after the run of records scoring >= r.Score.
// A record scoring strictly above the head becomes the new head; one
// equal to the head never displaces it and joins the end of the tie run.
func (c *OrderedChain) InsertSorted(r core.Record) {
	if c.IsEmpty() || r.Score > c.head.record.Score {
		c.AddFirst(r)
		return
	}
	// head.Score >= r.Score holds here and for every node prev visits.
	prev := c.head
	for prev.next != nil && prev.next.record.Score >= r.Score {
		prev = prev.next
	}
	n := &Node{record: r, next: prev.next}
	prev.next = n
	if n.next == nil {
		c.tail = n
	}
	c.size++
}

// Find returns the first node whose record equals target, or nil.
func (c *OrderedChain) Find(target core.Record) *Node {
	for n := c.head; n != nil; n = n.next {
		if n.record.Equal(target) {
			return n
		}
	}
	return nil
}

// Rank returns the 1-based position of the first record equal to target.
func (c *OrderedChain) Rank(target core.Record) (int, bool) {
	pos := 1
	for n := c.head; n != nil; n = n.next {
		if n.record.Equal(target) {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// Delete unlinks the first node whose record equals target and returns
// the removed record, or false if nothing matched.
func (c *OrderedChain) Delete(target core.Record) (core.Record, bool) {
	if c.IsEmpty() {
		return core.Record{}, false
	}
	if c.head.record.Equal(target) {
		return c.RemoveFirst()
	}
	prev := c.head
	for cur := prev.next; cur != nil; prev, cur = cur, cur.next {
		if !cur.record.Equal(target) {
			continue
		}
		if cur == c.tail {
			return c.RemoveLast()
		}
		prev.next = cur.next
		cur.next = nil
		c.size--
		return cur.record, true
	}
	return core.Record{}, false
}

// Records returns a head-to-tail copy of every record.
func (c *OrderedChain) Records() []core.Record {
	return c.TopN(c.size)
}

// TopN returns up to n records from the head.
func (c *OrderedChain) TopN(n int) []core.Record {
	if n <= 0 {
		return nil
	}
	if n > c.size {
		n = c.size
	}
	out := make([]core.Record, 0, n)
	for cur := c.head; cur != nil && len(out) < n; cur = cur.next {
		out = append(out, cur.record)
	}
	return out
}

// Equal reports whether both chains hold equal records in the same order.
func (c *OrderedChain) Equal(other *OrderedChain) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for a, b := c.head, other.head; a != nil; a, b = a.next, b.next {
		if !a.record.Equal(b.record) {
			return false
		}
	}
	return true
}

// String renders the chain head to tail, e.g. "(Carter, 1000) (Carol, 126)".
func (c *OrderedChain) String() string {
	var sb strings.Builder
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}

var _ Board = (*OrderedChain)(nil)
