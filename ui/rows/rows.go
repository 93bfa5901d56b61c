// Package rows holds the row collection behind the results list.
//
// A Rows value is immutable once built. CloneWithRows derives the next
// collection from the previous one and records which positions changed, so
// the list only re-renders rows that are not identical to what it drew last.
package rows

// ChangeFunc reports whether a row differs from the row previously rendered
// at the same position.
type ChangeFunc[T any] func(prev, next T) bool

// Rows is an ordered, diff-tracked snapshot of caller items.
type Rows[T comparable] struct {
	items      []T
	changed    []bool
	hasChanged ChangeFunc[T]
}

// New creates an empty collection. A nil hasChanged compares rows by identity.
func New[T comparable](hasChanged ChangeFunc[T]) *Rows[T] {
	if hasChanged == nil {
		hasChanged = func(prev, next T) bool { return prev != next }
	}
	return &Rows[T]{hasChanged: hasChanged}
}

// CloneWithRows builds a new collection over items, diffed against r.
// The receiver is left untouched.
func (r *Rows[T]) CloneWithRows(items []T) *Rows[T] {
	next := &Rows[T]{
		items:      make([]T, len(items)),
		changed:    make([]bool, len(items)),
		hasChanged: r.hasChanged,
	}
	copy(next.items, items)

	for i, item := range next.items {
		if i >= len(r.items) {
			next.changed[i] = true
			continue
		}
		next.changed[i] = r.hasChanged(r.items[i], item)
	}
	return next
}

// Len returns the number of rows.
func (r *Rows[T]) Len() int {
	return len(r.items)
}

// At returns the row at index i. It panics if i is out of range.
func (r *Rows[T]) At(i int) T {
	return r.items[i]
}

// First returns the first row, or false if the collection is empty.
func (r *Rows[T]) First() (T, bool) {
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	return r.items[0], true
}

// RowShouldUpdate reports whether row i differs from the previous collection.
func (r *Rows[T]) RowShouldUpdate(i int) bool {
	if i < 0 || i >= len(r.changed) {
		return false
	}
	return r.changed[i]
}

// ChangedRows returns the indices of rows that need re-rendering.
func (r *Rows[T]) ChangedRows() []int {
	var idx []int
	for i, c := range r.changed {
		if c {
			idx = append(idx, i)
		}
	}
	return idx
}

// Items returns a copy of the rows.
func (r *Rows[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}
