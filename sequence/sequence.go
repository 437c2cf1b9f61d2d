package sequence

import (
	"context"
	"io"

	"github.com/denismitr/arraykit/buffer"
)

// Sequence is an ordered, mutable collection with a movable cursor. The
// cursor marks the current item; insertions happen relative to it and the
// inserted element always becomes current. Unlike a set, element order is
// significant and duplicates are allowed.
//
// Cursor state is explicit: either some index in [0, Len) is current, or no
// item is current at all. Advancing past the last element leaves the
// sequence with no current item.
type Sequence[T any] struct {
	buf    *buffer.Buffer[T]
	cur    int
	hasCur bool
}

func New[T any]() *Sequence[T] {
	return NewWithCapacity[T](buffer.DefaultCapacity)
}

// NewWithCapacity creates an empty sequence with no current item. An
// invalid capacity falls back to the buffer default.
func NewWithCapacity[T any](capacity int) *Sequence[T] {
	return &Sequence[T]{
		buf: buffer.New[T](capacity),
	}
}

// FromSlice builds a sequence of the given items in order, with the cursor
// on the first item.
func FromSlice[T any](items []T) *Sequence[T] {
	s := NewWithCapacity[T](len(items))
	for _, item := range items {
		s.Attach(item)
	}
	s.Start()
	return s
}

func (s *Sequence[T]) Len() int {
	return s.buf.Len()
}

func (s *Sequence[T]) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// HasCurrent reports whether a current item exists.
func (s *Sequence[T]) HasCurrent() bool {
	return s.hasCur
}

// Current returns the current item. It panics when no current item exists;
// callers must check HasCurrent first.
func (s *Sequence[T]) Current() T {
	if !s.hasCur {
		panic("sequence: no current item")
	}

	return s.buf.At(s.cur)
}

// Start moves the cursor to the front of the sequence. An empty sequence
// is left with no current item.
func (s *Sequence[T]) Start() {
	s.cur = 0
	s.hasCur = !s.buf.IsEmpty()
}

// Advance moves the cursor one position toward the end. Advancing from the
// last item leaves the sequence with no current item. It panics when no
// current item exists.
func (s *Sequence[T]) Advance() {
	if !s.hasCur {
		panic("sequence: no current item")
	}

	if s.cur == s.buf.Len()-1 {
		s.hasCur = false
		s.cur = 0
		return
	}

	s.cur++
}

// Insert places entry immediately before the current item, or at the front
// when no current item exists. The entry becomes the current item.
func (s *Sequence[T]) Insert(entry T) {
	pos := 0
	if s.hasCur {
		pos = s.cur
	}

	s.buf.InsertAt(pos, entry)
	s.cur = pos
	s.hasCur = true
}

// Attach places entry immediately after the current item, or at the end
// when no current item exists. The entry becomes the current item.
func (s *Sequence[T]) Attach(entry T) {
	pos := s.buf.Len()
	if s.hasCur {
		pos = s.cur + 1
	}

	s.buf.InsertAt(pos, entry)
	s.cur = pos
	s.hasCur = true
}

// RemoveCurrent deletes the current item, closing the gap. The element that
// follows it becomes current, or no item is current when the removed item
// was last. It panics when no current item exists.
func (s *Sequence[T]) RemoveCurrent() {
	if !s.hasCur {
		panic("sequence: no current item")
	}

	s.buf.RemoveAt(s.cur)
	if s.cur == s.buf.Len() {
		s.hasCur = false
		s.cur = 0
	}
}

// Clone returns an independent sequence with the same contents and cursor
// state.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{
		buf:    s.buf.Clone(),
		cur:    s.cur,
		hasCur: s.hasCur,
	}
}

// CopyFrom replaces the receiver's contents and cursor state with a deep
// copy of src. The receiver's capacity is grown when src does not fit but
// is never shrunk.
func (s *Sequence[T]) CopyFrom(src *Sequence[T]) {
	if s == src {
		return
	}

	s.buf.CopyFrom(src.buf)
	s.cur = src.cur
	s.hasCur = src.hasCur
}

// Each streams the elements front to back, independent of the cursor. The
// channel closes when the sequence is exhausted or ctx is cancelled.
// The sequence must not be mutated until the channel is drained.
func (s *Sequence[T]) Each(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		for i := 0; i < s.buf.Len(); i++ {
			select {
			case resultCh <- s.buf.At(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

func (s *Sequence[T]) Items() []T {
	return s.buf.Items()
}

// DumpTo writes the elements in sequence order, separated by two spaces.
func (s *Sequence[T]) DumpTo(w io.Writer) error {
	return s.buf.DumpTo(w)
}
