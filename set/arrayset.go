package set

import (
	"io"

	"github.com/denismitr/arraykit/buffer"
	"github.com/denismitr/arraykit/utils"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ArraySet is a set of unique values stored contiguously in a growable
// array, in insertion order. Removing a member and inserting it again puts
// it at the end, as if it had never been a member. Lookups are linear
// scans, which beats hashing for the small sets this is meant for.
type ArraySet[T comparable] struct {
	buf *buffer.Buffer[T]
}

var _ Set[int] = (*ArraySet[int])(nil)

func NewArraySet[T comparable]() *ArraySet[T] {
	return NewArraySetWithCapacity[T](buffer.DefaultCapacity)
}

// NewArraySetWithCapacity pre-allocates room for the expected number of
// members. An invalid capacity falls back to the buffer default.
func NewArraySetWithCapacity[T comparable](capacity int) *ArraySet[T] {
	return &ArraySet[T]{
		buf: buffer.New[T](capacity),
	}
}

// FromSlice builds a set of the distinct values in items, keeping the order
// of first occurrence.
func FromSlice[T comparable](items []T) *ArraySet[T] {
	s := NewArraySetWithCapacity[T](len(items))
	s.InsertSlice(items)
	return s
}

func (s *ArraySet[T]) Len() int {
	return s.buf.Len()
}

func (s *ArraySet[T]) IsEmpty() bool {
	return s.buf.IsEmpty()
}

func (s *ArraySet[T]) Has(item T) bool {
	return slices.Contains(s.buf.Slice(), item)
}

// Insert adds item as the newest member. It reports whether the set
// actually changed; inserting an existing member changes nothing.
func (s *ArraySet[T]) Insert(item T) (modified bool) {
	if s.Has(item) {
		return false
	}

	s.buf.Append(item)
	return true
}

// Remove deletes item, keeping the relative order of the remaining members.
// It reports whether item was a member.
func (s *ArraySet[T]) Remove(item T) bool {
	i := slices.Index(s.buf.Slice(), item)
	if i < 0 {
		return false
	}

	s.buf.RemoveAt(i)
	return true
}

func (s *ArraySet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *ArraySet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// Clear logically empties the set. Allocated capacity is kept.
func (s *ArraySet[T]) Clear() {
	s.buf.Reset()
}

// IsSubsetOf reports whether every member of s is also a member of other.
// The empty set is a subset of every set, including itself.
func (s *ArraySet[T]) IsSubsetOf(other *ArraySet[T]) bool {
	if s.IsEmpty() {
		return true
	}
	if s.Len() > other.Len() {
		return false
	}

	for _, item := range s.buf.Slice() {
		if !other.Has(item) {
			return false
		}
	}

	return true
}

// Union returns a new independent set holding every member of s or other or
// both. Members shared by both operands come first, then those only in s,
// then those only in other.
func (s *ArraySet[T]) Union(other *ArraySet[T]) *ArraySet[T] {
	result := NewArraySetWithCapacity[T](s.Len() + other.Len())
	result.InsertSet(s.Intersect(other))
	result.InsertSet(s.Subtract(other))
	result.InsertSet(other.Subtract(s))
	return result
}

// Intersect returns a new independent set of the members present in both
// s and other.
func (s *ArraySet[T]) Intersect(other *ArraySet[T]) *ArraySet[T] {
	result := NewArraySet[T]()
	for _, item := range s.buf.Slice() {
		if other.Has(item) {
			result.Insert(item)
		}
	}

	return result
}

// Subtract returns a new independent set of the members of s that are not
// members of other.
func (s *ArraySet[T]) Subtract(other *ArraySet[T]) *ArraySet[T] {
	result := NewArraySet[T]()
	for _, item := range s.buf.Slice() {
		if !other.Has(item) {
			result.Insert(item)
		}
	}

	return result
}

// Clone returns an independent copy with the same members in the same
// membership order.
func (s *ArraySet[T]) Clone() *ArraySet[T] {
	return &ArraySet[T]{buf: s.buf.Clone()}
}

func (s *ArraySet[T]) Items() []T {
	return s.buf.Items()
}

// DumpTo writes the members in membership order, separated by two spaces.
func (s *ArraySet[T]) DumpTo(w io.Writer) error {
	return s.buf.DumpTo(w)
}

// Equal reports whether a and b contain exactly the same members,
// regardless of membership order.
func Equal[T comparable](a, b *ArraySet[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	return a.IsSubsetOf(b) && b.IsSubsetOf(a)
}

// Min returns the smallest member of s, or false for an empty set.
func Min[T constraints.Ordered](s *ArraySet[T]) (T, bool) {
	if s.IsEmpty() {
		return utils.GetZero[T](), false
	}

	min := s.buf.At(0)
	for _, item := range s.buf.Slice() {
		if item < min {
			min = item
		}
	}

	return min, true
}

// Max returns the largest member of s, or false for an empty set.
func Max[T constraints.Ordered](s *ArraySet[T]) (T, bool) {
	if s.IsEmpty() {
		return utils.GetZero[T](), false
	}

	max := s.buf.At(0)
	for _, item := range s.buf.Slice() {
		if item > max {
			max = item
		}
	}

	return max, true
}
