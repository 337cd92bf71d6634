package types

import (
	"errors"
	"strings"
)

// node is a singly linked cell holding one value.
type node[T any] struct {
	value T
	next  *node[T]
}

// chain is a singly linked list with head and tail pointers. It is the
// storage shared by GhostList and GhostView and carries no ownership.
type chain[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// pushBack appends v at the tail in O(1).
func (c *chain[T]) pushBack(v T) {
	n := &node[T]{value: v}
	if c.head == nil {
		c.head = n
		c.tail = n
	} else {
		c.tail.next = n
		c.tail = n
	}
	c.size++
}

// remove unlinks the first node holding v. It reports whether a node was
// removed.
func (c *chain[T]) remove(v T) bool {
	var prev *node[T]
	for curr := c.head; curr != nil; curr = curr.next {
		if curr.value != v {
			prev = curr
			continue
		}
		if prev == nil {
			c.head = curr.next
		} else {
			prev.next = curr.next
		}
		if c.tail == curr {
			c.tail = prev
		}
		c.size--
		return true
	}
	return false
}

// contains reports whether any node holds v.
func (c *chain[T]) contains(v T) bool {
	for curr := c.head; curr != nil; curr = curr.next {
		if curr.value == v {
			return true
		}
	}
	return false
}

// each calls fn for every value in order until fn returns false.
func (c *chain[T]) each(fn func(T) bool) {
	for curr := c.head; curr != nil; curr = curr.next {
		if !fn(curr.value) {
			return
		}
	}
}

// values returns the values in order.
func (c *chain[T]) values() []T {
	out := make([]T, 0, c.size)
	c.each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// reset drops every node.
func (c *chain[T]) reset() {
	c.head = nil
	c.tail = nil
	c.size = 0
}

// insertByLikelihood inserts v into c keeping values in descending order of
// likelihood. A value whose likelihood equals an existing entry goes
// immediately before it.
func insertByLikelihood[T comparable](c *chain[T], v T, likelihood func(T) float64) {
	n := &node[T]{value: v}
	c.size++

	if c.head == nil {
		c.head = n
		c.tail = n
		return
	}

	key := likelihood(v)
	if key >= likelihood(c.head.value) {
		n.next = c.head
		c.head = n
		return
	}

	curr := c.head
	for curr.next != nil && likelihood(curr.next.value) > key {
		curr = curr.next
	}
	n.next = curr.next
	curr.next = n
	if n.next == nil {
		c.tail = n
	}
}

func ghostLikelihood(g *Ghost) float64 { return g.likelihood }

// renderGhosts writes one "  - {...}" line per ghost.
func renderGhosts(c *chain[*Ghost]) string {
	var b strings.Builder
	c.each(func(g *Ghost) bool {
		b.WriteString("  - ")
		b.WriteString(g.String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// GhostList is an owning list of ghosts. The building's master list is a
// GhostList; tearing it down releases every ghost it holds.
type GhostList struct {
	nodes chain[*Ghost]
}

// Append adds g at the tail. A nil ghost is ignored.
func (l *GhostList) Append(g *Ghost) {
	if l == nil || g == nil {
		return
	}
	l.nodes.pushBack(g)
}

// InsertSorted adds g in descending likelihood order, new before equal.
// A nil ghost is ignored.
func (l *GhostList) InsertSorted(g *Ghost) {
	if l == nil || g == nil {
		return
	}
	insertByLikelihood(&l.nodes, g, ghostLikelihood)
}

// Len returns the number of ghosts in the list.
func (l *GhostList) Len() int { return l.nodes.size }

// Contains reports whether g is in the list.
func (l *GhostList) Contains(g *Ghost) bool { return l.nodes.contains(g) }

// Ghosts returns the ghosts in list order.
func (l *GhostList) Ghosts() []*Ghost { return l.nodes.values() }

// Each calls fn for every ghost in order until fn returns false.
func (l *GhostList) Each(fn func(*Ghost) bool) { l.nodes.each(fn) }

// Render concatenates the rendering of every ghost in list order.
func (l *GhostList) Render() string { return renderGhosts(&l.nodes) }

// Teardown releases every ghost and drops every node. The list is empty
// afterwards. A ghost that was already released is reported but does not
// stop the teardown.
func (l *GhostList) Teardown() error {
	if l == nil {
		return nil
	}
	var errs []error
	l.nodes.each(func(g *Ghost) bool {
		if err := g.release(); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	l.nodes.reset()
	return errors.Join(errs...)
}

// GhostView is a non-owning list of ghosts kept in descending likelihood
// order. A room's roster is a GhostView. Clearing it drops nodes only; the
// ghosts stay valid.
type GhostView struct {
	nodes chain[*Ghost]
}

// InsertSorted adds g in descending likelihood order, new before equal.
// A nil ghost is ignored.
func (v *GhostView) InsertSorted(g *Ghost) {
	if v == nil || g == nil {
		return
	}
	insertByLikelihood(&v.nodes, g, ghostLikelihood)
}

// Remove drops the node referencing g. It reports whether g was present.
func (v *GhostView) Remove(g *Ghost) bool {
	if v == nil || g == nil {
		return false
	}
	return v.nodes.remove(g)
}

// Len returns the number of ghosts in the view.
func (v *GhostView) Len() int { return v.nodes.size }

// Contains reports whether g is in the view.
func (v *GhostView) Contains(g *Ghost) bool { return v.nodes.contains(g) }

// Ghosts returns the ghosts in view order.
func (v *GhostView) Ghosts() []*Ghost { return v.nodes.values() }

// Each calls fn for every ghost in order until fn returns false.
func (v *GhostView) Each(fn func(*Ghost) bool) { v.nodes.each(fn) }

// Render concatenates the rendering of every ghost in view order.
func (v *GhostView) Render() string { return renderGhosts(&v.nodes) }

// Clear drops every node without touching the ghosts.
func (v *GhostView) Clear() {
	if v == nil {
		return
	}
	v.nodes.reset()
}
