// Package nbt encodes the subset of Minecraft's Named Binary Tag format
// needed to store generated chunks.
package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// Tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
)

// Writer streams big-endian NBT to an io.Writer. The first write error is
// kept and every later call is a no-op; check Err once at the end.
type Writer struct {
	w       io.Writer
	err     error
	scratch [8]byte
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

func (w *Writer) raw(p []byte) {
	if w.err == nil {
		_, w.err = w.w.Write(p)
	}
}

func (w *Writer) u8(v byte) {
	w.scratch[0] = v
	w.raw(w.scratch[:1])
}

func (w *Writer) u16(v uint16) {
	binary.BigEndian.PutUint16(w.scratch[:2], v)
	w.raw(w.scratch[:2])
}

func (w *Writer) u32(v uint32) {
	binary.BigEndian.PutUint32(w.scratch[:4], v)
	w.raw(w.scratch[:4])
}

func (w *Writer) u64(v uint64) {
	binary.BigEndian.PutUint64(w.scratch[:8], v)
	w.raw(w.scratch[:8])
}

func (w *Writer) str(s string) {
	w.u16(uint16(len(s)))
	if s != "" {
		w.raw([]byte(s))
	}
}

func (w *Writer) header(tag byte, name string) {
	w.u8(tag)
	w.str(name)
}

// BeginCompound opens a compound. List elements use an empty name.
func (w *Writer) BeginCompound(name string) { w.header(TagCompound, name) }

// EndCompound closes the innermost compound.
func (w *Writer) EndCompound() { w.u8(TagEnd) }

// BeginList opens a list of count elements of type elem. Elements follow
// without headers; compounds are opened with BeginCompound("").
func (w *Writer) BeginList(name string, elem byte, count int32) {
	w.header(TagList, name)
	w.u8(elem)
	w.u32(uint32(count))
}

func (w *Writer) WriteTagByte(name string, v byte) {
	w.header(TagByte, name)
	w.u8(v)
}

func (w *Writer) WriteShort(name string, v int16) {
	w.header(TagShort, name)
	w.u16(uint16(v))
}

func (w *Writer) WriteInt(name string, v int32) {
	w.header(TagInt, name)
	w.u32(uint32(v))
}

func (w *Writer) WriteLong(name string, v int64) {
	w.header(TagLong, name)
	w.u64(uint64(v))
}

func (w *Writer) WriteFloat(name string, v float32) {
	w.header(TagFloat, name)
	w.u32(math.Float32bits(v))
}

func (w *Writer) WriteDouble(name string, v float64) {
	w.header(TagDouble, name)
	w.u64(math.Float64bits(v))
}

func (w *Writer) WriteString(name, v string) {
	w.header(TagString, name)
	w.str(v)
}

func (w *Writer) WriteByteArray(name string, v []byte) {
	w.header(TagByteArray, name)
	w.u32(uint32(len(v)))
	w.raw(v)
}

func (w *Writer) WriteIntArray(name string, v []int32) {
	w.header(TagIntArray, name)
	w.u32(uint32(len(v)))
	for _, n := range v {
		w.u32(uint32(n))
	}
}
