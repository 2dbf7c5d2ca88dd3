// Package codegen assembles the CodeFile artifact (spec.md §3): an ordered
// container of declarations plus an import set, built incrementally by the
// Declaration, Encoder and Decoder Emitters (components E/F/G) and handed
// off as text for the external pretty-printer/writer to place on disk.
//
// Grounded on allenday-protobuf3-solidity/generator/writeable_buffer.go's
// WriteableBuffer (P/P0/Indent/Unindent/String), used here unmodified in
// shape since the indentation-tracking buffer problem is identical across
// target languages.
package codegen

import (
	"bytes"
	"fmt"
)

// Buffer is an indentation-tracking text accumulator for one emitted file's
// body (everything after the import block, which ImportSet renders
// separately since it must be sorted and deduplicated only once the whole
// file is known).
type Buffer struct {
	buf    bytes.Buffer
	indent string
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// P writes one indented line. With a single string argument it is written
// verbatim; with more, the first argument is used as a fmt.Sprintf format
// string.
func (b *Buffer) P(args ...interface{}) {
	b.buf.WriteString(b.indent)
	switch len(args) {
	case 0:
	case 1:
		if s, ok := args[0].(string); ok {
			b.buf.WriteString(s)
		} else {
			fmt.Fprintf(&b.buf, "%v", args[0])
		}
	default:
		format, ok := args[0].(string)
		if !ok {
			panic("codegen: Buffer.P first argument must be a format string when called with more than one argument")
		}
		fmt.Fprintf(&b.buf, format, args[1:]...)
	}
	b.buf.WriteByte('\n')
}

// P0 writes a blank line.
func (b *Buffer) P0() {
	b.buf.WriteByte('\n')
}

// Indent increases the indentation level by one tab stop.
func (b *Buffer) Indent() { b.indent += "  " }

// Unindent decreases the indentation level by one tab stop.
func (b *Buffer) Unindent() {
	if len(b.indent) >= 2 {
		b.indent = b.indent[:len(b.indent)-2]
	}
}

// String returns the accumulated body text.
func (b *Buffer) String() string { return b.buf.String() }
