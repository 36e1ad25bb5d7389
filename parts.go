package keyz

import (
	"encoding"

	"github.com/google/uuid"
)

// Part is a value that can become a piece of a key. AppendKey appends the
// value's canonical encoding to buf and returns the extended buffer, the same
// way append does. It must not fail and must not retain buf.
//
// Any type can take part in keys by implementing Part.
type Part interface {
	AppendKey(buf []byte) []byte
}

// String encodes as its raw UTF-8 bytes, with no length prefix and no
// terminator.
type String string

func (v String) AppendKey(buf []byte) []byte {
	return appendString(buf, string(v))
}

// Bytes encodes as itself.
type Bytes []byte

func (v Bytes) AppendKey(buf []byte) []byte {
	return appendRaw(buf, v)
}

// Uint64 encodes as 8 big-endian bytes.
type Uint64 uint64

func (v Uint64) AppendKey(buf []byte) []byte {
	return appendUint64(buf, uint64(v))
}

// Uint32 encodes as 4 big-endian bytes.
type Uint32 uint32

func (v Uint32) AppendKey(buf []byte) []byte {
	return appendUint32(buf, uint32(v))
}

// Int64 encodes as 8 big-endian bytes with the sign bit flipped, so that
// math.MinInt64 is all zeros and negative values sort before positive ones.
type Int64 int64

func (v Int64) AppendKey(buf []byte) []byte {
	return appendUint64(buf, uint64(v)^(1<<63))
}

// UUID encodes as its 16 raw bytes.
type UUID uuid.UUID

func (v UUID) AppendKey(buf []byte) []byte {
	return appendRaw(buf, v[:])
}

type terminated struct {
	part Part
}

// Terminated makes a variable-length part self-delimiting. The part's bytes
// are escaped (0x00 becomes 0x00 0xFF) and followed by 0x00 0x01, so that
// "a" sorts before "ab" even when more parts follow, and a key can be split
// back at the terminator.
func Terminated(p Part) Part {
	return terminated{p}
}

func (t terminated) AppendKey(buf []byte) []byte {
	raw := t.part.AppendKey(nil)
	return appendEscaped(buf, raw)
}

type desc struct {
	part Part
}

// Desc reverses the sort order of a part by inverting its bytes. This only
// works for parts whose encodings are never prefixes of one another: the
// integer types, UUID, Time, Date and Terminated parts. A bare String "a"
// still sorts before "ab" after inversion.
func Desc(p Part) Part {
	return desc{p}
}

func (d desc) AppendKey(buf []byte) []byte {
	off := len(buf)
	buf = d.part.AppendKey(buf)
	invert(buf[off:])
	return buf
}

// Binary marshals m eagerly and returns its bytes as a part. Unlike the
// built-in parts this can fail, in which case the error is an *EncodeError.
func Binary(m encoding.BinaryMarshaler) (Bytes, error) {
	data, err := m.MarshalBinary()
	if err != nil {
		return nil, encodeErr(m, err)
	}
	return Bytes(data), nil
}

// Text marshals m eagerly and returns its text as a part. Failures are
// reported as *EncodeError.
func Text(m encoding.TextMarshaler) (Bytes, error) {
	data, err := m.MarshalText()
	if err != nil {
		return nil, encodeErr(m, err)
	}
	return Bytes(data), nil
}
