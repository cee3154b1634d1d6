package dataset

import (
	"iter"
	"slices"
)

// Opt is an optional scalar field. The zero value is absent.
type Opt[V any] struct {
	v  V
	ok bool
}

// Some returns a present Opt holding v.
func Some[V any](v V) Opt[V] {
	return Opt[V]{v: v, ok: true}
}

// Get returns the value and whether it is present.
func (o Opt[V]) Get() (V, bool) {
	return o.v, o.ok
}

// IsZero reports whether the field is absent.
func (o Opt[V]) IsZero() bool {
	return !o.ok
}

func (o Opt[V]) value() any { return o.v }

// someString is Some for text fields: the empty string is absent.
func someString(s string) Opt[string] {
	if s == "" {
		return Opt[string]{}
	}
	return Some(s)
}

// List is an ordered sequence field. Element i applies to data point i.
// The zero value is an empty list; a List is never nil from the caller's
// point of view.
type List[V any] struct {
	items []V
}

// Set replaces the contents with a copy of vs. No arguments leaves the list
// empty.
func (l *List[V]) Set(vs ...V) {
	l.items = append(l.items[:0:0], vs...)
}

// Add appends v. It always writes to a fresh array, so a List copied by
// value never observes elements added to the other.
func (l *List[V]) Add(v V) {
	l.items = append(slices.Clip(l.items), v)
}

// Items returns a copy of the elements in order. The result is never nil.
func (l List[V]) Items() []V {
	out := make([]V, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates over index/element pairs without copying.
func (l List[V]) All() iter.Seq2[int, V] {
	return slices.All(l.items)
}

// Len returns the number of elements.
func (l List[V]) Len() int {
	return len(l.items)
}

// IsZero reports whether the list is empty.
func (l List[V]) IsZero() bool {
	return len(l.items) == 0
}

func (l List[V]) value() any { return l.Items() }
