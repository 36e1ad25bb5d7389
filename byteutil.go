package keyz

import "bytes"

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

func appendString(buf []byte, v string) []byte {
	n := len(v)
	off, buf := grow(buf, n)
	copy(buf[off:], v)
	return buf
}

func appendUint64(buf []byte, v uint64) []byte {
	off, buf := grow(buf, 8)
	buf[off+0] = byte(v >> 56)
	buf[off+1] = byte(v >> 48)
	buf[off+2] = byte(v >> 40)
	buf[off+3] = byte(v >> 32)
	buf[off+4] = byte(v >> 24)
	buf[off+5] = byte(v >> 16)
	buf[off+6] = byte(v >> 8)
	buf[off+7] = byte(v)
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	off, buf := grow(buf, 4)
	buf[off+0] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
	return buf
}

const (
	escape      byte = 0x00
	escapedTerm byte = 0x01
	escaped00   byte = 0xFF
)

// appendEscaped writes data with every 0x00 replaced by 0x00 0xFF, followed
// by the 0x00 0x01 terminator. The terminator never occurs inside the
// escaped data, and the result sorts the same way data does.
func appendEscaped(buf []byte, data []byte) []byte {
	for {
		i := bytes.IndexByte(data, escape)
		if i == -1 {
			break
		}
		buf = appendRaw(buf, data[:i])
		buf = append(buf, escape, escaped00)
		data = data[i+1:]
	}
	buf = appendRaw(buf, data)
	return append(buf, escape, escapedTerm)
}

func invert(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
}
