package buffer

import (
	"fmt"
	"io"

	"github.com/denismitr/arraykit/utils"
	"github.com/pkg/errors"
)

// DefaultCapacity is the smallest capacity a Buffer is ever allocated with.
const DefaultCapacity = 1

// Buffer is a partially filled growable array: storage of fixed allocated
// capacity plus a count of the logically valid prefix. Slots [0, used) hold
// meaningful values, slots [used, cap) do not. Each Buffer exclusively owns
// its storage.
type Buffer[T any] struct {
	data []T
	used int
}

// New creates an empty Buffer with the given capacity. A capacity below 1
// is replaced with DefaultCapacity.
func New[T any](initialCapacity int) *Buffer[T] {
	if initialCapacity < DefaultCapacity {
		initialCapacity = DefaultCapacity
	}

	return &Buffer[T]{
		data: make([]T, initialCapacity),
	}
}

func (b *Buffer[T]) Len() int {
	return b.used
}

func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.used == 0
}

// At returns the element at index i. It panics when i is outside [0, Len).
func (b *Buffer[T]) At(i int) T {
	b.mustBeValid(i)
	return b.data[i]
}

// Put overwrites the element at index i. It panics when i is outside [0, Len).
func (b *Buffer[T]) Put(i int, v T) {
	b.mustBeValid(i)
	b.data[i] = v
}

// Append writes v after the last valid element, growing storage first when
// the buffer is full.
func (b *Buffer[T]) Append(v T) {
	if b.used == len(b.data) {
		b.Resize(grownCapacity(len(b.data)))
	}

	b.data[b.used] = v
	b.used++
}

// InsertAt places v at index i, shifting elements [i, Len) right by one.
// i may equal Len, in which case InsertAt behaves like Append. It panics
// when i is outside [0, Len].
func (b *Buffer[T]) InsertAt(i int, v T) {
	if i < 0 || i > b.used {
		panic(fmt.Sprintf("buffer: insert index %d out of range [0, %d]", i, b.used))
	}

	if b.used == len(b.data) {
		b.Resize(grownCapacity(len(b.data)))
	}

	copy(b.data[i+1:b.used+1], b.data[i:b.used])
	b.data[i] = v
	b.used++
}

// RemoveAt deletes the element at index i, shifting elements (i, Len) left
// by one so relative order is preserved. It panics when i is outside [0, Len).
func (b *Buffer[T]) RemoveAt(i int) {
	b.mustBeValid(i)

	copy(b.data[i:b.used-1], b.data[i+1:b.used])
	b.used--
	b.data[b.used] = utils.GetZero[T]()
}

// Resize reallocates storage to newCapacity slots. A newCapacity too small
// to hold the current contents is clamped to Len, and never below
// DefaultCapacity. The valid prefix is preserved unchanged; the old storage
// is replaced only once the new storage holds it.
func (b *Buffer[T]) Resize(newCapacity int) {
	if newCapacity < b.used {
		newCapacity = b.used
	}
	if newCapacity < DefaultCapacity {
		newCapacity = DefaultCapacity
	}

	newData := make([]T, newCapacity)
	copy(newData, b.data[:b.used])
	b.data = newData
}

// Reset logically empties the buffer. Capacity is unaffected.
func (b *Buffer[T]) Reset() {
	for i := 0; i < b.used; i++ {
		b.data[i] = utils.GetZero[T]()
	}
	b.used = 0
}

// Clone returns an independent buffer with the same contents and capacity.
func (b *Buffer[T]) Clone() *Buffer[T] {
	dst := &Buffer[T]{
		data: make([]T, len(b.data)),
		used: b.used,
	}
	copy(dst.data, b.data[:b.used])
	return dst
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// The receiver's capacity is grown when src does not fit but is never shrunk.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) {
	if b == src {
		return
	}

	if len(b.data) < src.used {
		b.Resize(src.used)
	}

	copy(b.data, src.data[:src.used])
	for i := src.used; i < b.used; i++ {
		b.data[i] = utils.GetZero[T]()
	}
	b.used = src.used
}

// Slice returns the valid prefix backed by the buffer's own storage.
// The view is invalidated by any subsequent mutation.
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.used]
}

// Items returns a fresh copy of the valid prefix.
func (b *Buffer[T]) Items() []T {
	items := make([]T, b.used)
	copy(items, b.data[:b.used])
	return items
}

// DumpTo renders the valid prefix to w as values separated by two spaces.
// An empty buffer writes nothing.
func (b *Buffer[T]) DumpTo(w io.Writer) error {
	for i := 0; i < b.used; i++ {
		sep := "  "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%v", sep, b.data[i]); err != nil {
			return errors.Wrap(err, "buffer: dump failed")
		}
	}
	return nil
}

func (b *Buffer[T]) mustBeValid(i int) {
	if i < 0 || i >= b.used {
		panic(fmt.Sprintf("buffer: index %d out of range [0, %d)", i, b.used))
	}
}

func grownCapacity(oldCapacity int) int {
	return oldCapacity + oldCapacity/4 + 1
}
