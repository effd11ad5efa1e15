// Package document provides the in-memory byte buffer edited by vedit and the
// row/column translation over it.
package document

import (
	"errors"
	"fmt"
)

// minCapacity is the smallest backing allocation a Document keeps.
const minCapacity = 16

var (
	// ErrOutOfRange is returned when an insert offset lies outside the content.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrStorageExhausted is returned when the backing storage cannot grow.
	// The buffer is left untouched, but callers must treat it as fatal.
	ErrStorageExhausted = errors.New("document storage exhausted")
)

// Option configures a Document.
type Option func(*Document)

// WithLimit caps the backing capacity in bytes. Zero means unlimited.
func WithLimit(n int) Option {
	return func(d *Document) {
		d.limit = n
	}
}

// Document owns the mutable byte content of one edited file.
//
// Content lives in data[:length]; len(data) is the allocated capacity.
// The line index is patched on every mutation so row lookups never rescan.
type Document struct {
	data     []byte
	length   int
	limit    int
	revision uint64
	lines    *lineIndex
}

// New creates a document holding a copy of content. With a limit, the
// initial capacity never exceeds it unless content alone is larger; use Open
// to reject such content.
func New(content []byte, opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}

	capacity := max(minCapacity, len(content))
	if d.limit > 0 {
		capacity = max(min(capacity, d.limit), len(content))
	}
	d.data = make([]byte, capacity)
	copy(d.data, content)
	d.length = len(content)
	d.lines = newLineIndex(d.data[:d.length])
	return d
}

// Open is New for loaded content: it fails with ErrStorageExhausted when
// content does not fit the limit.
func Open(content []byte, opts ...Option) (*Document, error) {
	d := New(content, opts...)
	if d.limit > 0 && len(content) > d.limit {
		return nil, fmt.Errorf("%d bytes exceed the %d byte limit: %w", len(content), d.limit, ErrStorageExhausted)
	}
	return d, nil
}

// Len returns the number of content bytes.
func (d *Document) Len() int {
	return d.length
}

// Cap returns the allocated capacity.
func (d *Document) Cap() int {
	return len(d.data)
}

// Revision returns a counter bumped by every successful mutation.
func (d *Document) Revision() uint64 {
	return d.revision
}

// Bytes returns the content. The slice aliases internal storage and is only
// valid until the next mutation.
func (d *Document) Bytes() []byte {
	return d.data[:d.length]
}

// String returns a copy of the content.
func (d *Document) String() string {
	return string(d.data[:d.length])
}

// LineCount returns the number of newline bytes in the content.
func (d *Document) LineCount() int {
	return d.lines.newlines()
}

// InsertAt stores b at offset, shifting everything at and after offset right.
func (d *Document) InsertAt(offset int, b byte) error {
	if offset < 0 || offset > d.length {
		return fmt.Errorf("insert at %d (length %d): %w", offset, d.length, ErrOutOfRange)
	}
	if d.length == len(d.data) {
		if err := d.grow(); err != nil {
			return err
		}
	}

	copy(d.data[offset+1:d.length+1], d.data[offset:d.length])
	d.data[offset] = b
	d.length++
	d.lines.inserted(offset, b)
	d.revision++
	return nil
}

// DeleteAt removes the byte at offset. It reports false and does nothing when
// the document is empty or offset does not address a byte.
func (d *Document) DeleteAt(offset int) bool {
	if d.length == 0 || offset < 0 || offset >= d.length {
		return false
	}

	b := d.data[offset]
	copy(d.data[offset:d.length-1], d.data[offset+1:d.length])
	d.length--
	d.data[d.length] = 0
	d.lines.deleted(offset, b)
	d.revision++
	d.shrink()
	return true
}

// grow doubles the capacity. The document is unchanged when it fails.
func (d *Document) grow() error {
	newCap := max(len(d.data)*2, minCapacity)
	if d.limit > 0 {
		if len(d.data) >= d.limit {
			return fmt.Errorf("grow beyond %d bytes: %w", d.limit, ErrStorageExhausted)
		}
		newCap = min(newCap, d.limit)
	}

	data := make([]byte, newCap)
	copy(data, d.data[:d.length])
	d.data = data
	return nil
}

// shrink halves the capacity once the content uses less than half of it.
func (d *Document) shrink() {
	if len(d.data) <= minCapacity || d.length >= len(d.data)/2 {
		return
	}
	newCap := max(len(d.data)/2, minCapacity)
	data := make([]byte, newCap)
	copy(data, d.data[:d.length])
	d.data = data
}
