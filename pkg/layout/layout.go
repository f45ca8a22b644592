// Package layout implements fixed-offset binary layouts.
//
// A Layout is an ordered list of fixed-width fields. Every value encoded with a layout occupies
// exactly Len bytes: a boolean is a single 0x00/0x01 byte, an identifier is 32 raw bytes and an
// unsigned integer is 8 bytes little-endian. There are no length prefixes or tags, so a layout
// fits a pre-allocated storage slot of the same size.
//
// Decoding reads only the leading Len bytes of the source, so a caller may pass a whole account
// data buffer. Encoding writes only the leading Len bytes of the destination and leaves the rest
// untouched.
package layout

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
)

var (
	// ErrBufferTooShort is returned when a source or destination is smaller than the layout.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrInvalidEncoding is returned when a flag byte holds a value other than 0 or 1.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// FieldType is the wire shape of a field.
type FieldType uint8

const (
	Bool FieldType = iota + 1
	Identifier
	UInt64
)

// Width returns the byte size of the field type.
func (t FieldType) Width() int {
	switch t {
	case Bool:
		return 1
	case Identifier:
		return codec.IdentifierLength
	case UInt64:
		return 8
	default:
		return 0
	}
}

func (t FieldType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Identifier:
		return "identifier"
	case UInt64:
		return "u64"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Field is a named fixed-width field.
type Field struct {
	Name string
	Type FieldType
}

// Layout is an ordered list of fields with precomputed offsets.
type Layout struct {
	name    string
	fields  []Field
	offsets []int
	size    int
}

// New creates a layout. It panics on a field with unknown type or a duplicated name,
// since layouts are declared as package level values.
func New(name string, fields ...Field) *Layout {
	l := &Layout{
		name:    name,
		fields:  make([]Field, len(fields)),
		offsets: make([]int, len(fields)),
	}
	seen := make(map[string]struct{}, len(fields))
	for i, field := range fields {
		if field.Type.Width() == 0 {
			panic(fmt.Sprintf("layout %s: field %s has unknown type %d", name, field.Name, field.Type))
		}
		if _, ok := seen[field.Name]; ok {
			panic(fmt.Sprintf("layout %s: duplicate field %s", name, field.Name))
		}
		seen[field.Name] = struct{}{}
		l.fields[i] = field
		l.offsets[i] = l.size
		l.size += field.Type.Width()
	}
	return l
}

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Len returns the fixed byte length.
func (l *Layout) Len() int { return l.size }

// Fields returns a copy of the fields in wire order.
func (l *Layout) Fields() []Field {
	result := make([]Field, len(l.fields))
	copy(result, l.fields)
	return result
}

// Offset returns the byte offset of the named field.
func (l *Layout) Offset(name string) (int, bool) {
	for i, field := range l.fields {
		if field.Name == name {
			return l.offsets[i], true
		}
	}
	return 0, false
}

// CheckLen returns ErrBufferTooShort if size is smaller than the layout.
func (l *Layout) CheckLen(size int) error {
	if size < l.size {
		return errors.Wrapf(ErrBufferTooShort, "%s requires %d bytes but received %d", l.name, l.size, size)
	}
	return nil
}

// NewReader checks src once against the layout and returns a cursor over its leading window.
func (l *Layout) NewReader(src []byte) (Reader, error) {
	if err := l.CheckLen(len(src)); err != nil {
		return Reader{}, err
	}
	return Reader{layout: l, src: src[:l.size]}, nil
}

// NewWriter checks dst once against the layout and returns a cursor over its leading window.
// Bytes after the window are never written.
func (l *Layout) NewWriter(dst []byte) (Writer, error) {
	if err := l.CheckLen(len(dst)); err != nil {
		return Writer{}, err
	}
	return Writer{layout: l, dst: dst[:l.size]}, nil
}

// next returns the window of the field at index and panics if it is not of type t.
func (l *Layout) next(index int, t FieldType, buf []byte) []byte {
	if index >= len(l.fields) {
		panicf("layout %s: read past the last field", l.name)
	}
	field := l.fields[index]
	if field.Type != t {
		panicf("layout %s: field %s is %s, not %s", l.name, field.Name, field.Type, t)
	}
	offset := l.offsets[index]
	return buf[offset : offset+field.Type.Width()]
}

func (l *Layout) finish(index int) {
	if index != len(l.fields) {
		panicf("layout %s: %d of %d fields visited", l.name, index, len(l.fields))
	}
}

// Reader reads the fields of a layout in wire order.
// The first invalid value is kept and returned by Finish; later reads return zero values.
type Reader struct {
	layout *Layout
	src    []byte
	index  int
	err    error
}

func (r *Reader) Bool() bool {
	window := r.layout.next(r.index, Bool, r.src)
	field := r.layout.fields[r.index]
	r.index++
	if r.err != nil {
		return false
	}
	val, err := readBool(window)
	if err != nil {
		r.err = errors.Wrapf(err, "%s.%s", r.layout.name, field.Name)
	}
	return val
}

func (r *Reader) Identifier() codec.Identifier {
	window := r.layout.next(r.index, Identifier, r.src)
	r.index++
	var id codec.Identifier
	if r.err == nil {
		copy(id[:], window)
	}
	return id
}

func (r *Reader) UInt64() uint64 {
	window := r.layout.next(r.index, UInt64, r.src)
	r.index++
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(window)
}

// Finish returns the first decoding error. It panics if some fields were not read.
func (r *Reader) Finish() error {
	r.layout.finish(r.index)
	return r.err
}

// Writer writes the fields of a layout in wire order.
type Writer struct {
	layout *Layout
	dst    []byte
	index  int
}

func (w *Writer) Bool(val bool) {
	window := w.layout.next(w.index, Bool, w.dst)
	w.index++
	if val {
		window[0] = 0x01
	} else {
		window[0] = 0x00
	}
}

func (w *Writer) Identifier(val codec.Identifier) {
	window := w.layout.next(w.index, Identifier, w.dst)
	w.index++
	copy(window, val[:])
}

func (w *Writer) UInt64(val uint64) {
	window := w.layout.next(w.index, UInt64, w.dst)
	w.index++
	binary.LittleEndian.PutUint64(window, val)
}

// Finish panics if some fields were not written.
func (w *Writer) Finish() {
	w.layout.finish(w.index)
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func readBool(window []byte) (bool, error) {
	switch window[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidEncoding, "flag byte 0x%02x", window[0])
	}
}
