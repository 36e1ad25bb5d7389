package keyz

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// Key is an immutable byte sequence meant to be used as a key in a sorted
// key-value store. Two keys are equal iff their bytes are equal, so Keys can
// be compared with == and used as map keys. The zero value is the empty key.
type Key struct {
	s string
}

var (
	_ Part                  = Key{}
	_ fmt.Stringer          = Key{}
	_ slog.LogValuer        = Key{}
	_ msgpack.CustomEncoder = Key{}
	_ msgpack.CustomDecoder = (*Key)(nil)
)

// Empty returns the key holding zero bytes.
func Empty() Key {
	return Key{}
}

// FromBytes wraps a copy of b. Round-tripping k.Bytes() through FromBytes
// yields a key equal to k.
func FromBytes(b []byte) Key {
	return Key{string(b)}
}

// Join returns a new key made of k's bytes followed by other's bytes.
func (k Key) Join(other Key) Key {
	switch {
	case len(k.s) == 0:
		return other
	case len(other.s) == 0:
		return k
	}
	return Key{k.s + other.s}
}

// Bytes returns a copy of the key's bytes; the caller owns it.
func (k Key) Bytes() []byte {
	return []byte(k.s)
}

// AppendTo appends the key's bytes to buf.
func (k Key) AppendTo(buf []byte) []byte {
	return appendString(buf, k.s)
}

// AppendKey makes a Key usable as a part of another key.
func (k Key) AppendKey(buf []byte) []byte {
	return appendString(buf, k.s)
}

func (k Key) Len() int {
	return len(k.s)
}

func (k Key) IsEmpty() bool {
	return len(k.s) == 0
}

func (k Key) Equal(other Key) bool {
	return k.s == other.s
}

// Compare orders keys byte-wise, the same way bytes.Compare and sorted
// key-value stores do.
func (k Key) Compare(other Key) int {
	return strings.Compare(k.s, other.s)
}

func (k Key) HasPrefix(prefix Key) bool {
	return strings.HasPrefix(k.s, prefix.s)
}

// Next returns the smallest key that sorts after k.
func (k Key) Next() Key {
	return Key{k.s + "\x00"}
}

// PrefixEnd returns the smallest key that sorts after every key starting
// with k, i.e. the exclusive upper bound of a prefix scan. It returns false
// when there is no such key: k is empty or consists of 0xFF bytes only, and
// the scan must run to the end of the keyspace.
func (k Key) PrefixEnd() (Key, bool) {
	end, ok := successor(k.s)
	if !ok {
		return Key{}, false
	}
	return Key{string(end)}, true
}

// String returns the key as a quoted string if it is valid UTF-8, and as hex
// otherwise.
func (k Key) String() string {
	if utf8.ValidString(k.s) {
		return strconv.Quote(k.s)
	}
	return hexstr([]byte(k.s))
}

func (k Key) LogValue() slog.Value {
	return slog.StringValue(k.String())
}

func (k Key) MarshalBinary() ([]byte, error) {
	return k.Bytes(), nil
}

func (k *Key) UnmarshalBinary(data []byte) error {
	k.s = string(data)
	return nil
}

// MarshalText renders the key as lowercase hex, which keeps arbitrary key
// bytes safe inside JSON and other text formats.
func (k Key) MarshalText() ([]byte, error) {
	buf := make([]byte, hex.EncodedLen(len(k.s)))
	hex.Encode(buf, []byte(k.s))
	return buf, nil
}

func (k *Key) UnmarshalText(text []byte) error {
	buf := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(buf, text)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", text, err)
	}
	k.s = string(buf[:n])
	return nil
}

// EncodeMsgpack stores the key as msgpack bin, so keys can be kept inside
// msgpack-encoded values.
func (k Key) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes([]byte(k.s))
}

func (k *Key) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	k.s = string(b)
	return nil
}

// Format supports %s, %q, %v (String) and %x, %X (raw hex of the bytes).
func (k Key) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), []byte(k.s))
	default:
		fmt.Fprint(f, k.String())
	}
}
