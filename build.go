package keyz

// Build concatenates the encodings of parts, left to right, into one key.
// Build() is the empty key and Build(p) is exactly From(p). No separators or
// length prefixes are added between parts.
func Build(parts ...Part) Key {
	if len(parts) == 0 {
		return Key{}
	}
	return Key{string(AppendParts(nil, parts...))}
}

// From converts a single value into a key.
func From(p Part) Key {
	return Key{string(p.AppendKey(nil))}
}

// AppendParts appends the encodings of parts to buf in order and returns the
// extended buffer.
func AppendParts(buf []byte, parts ...Part) []byte {
	for _, p := range parts {
		buf = p.AppendKey(buf)
	}
	return buf
}

// Builder accumulates parts into a key. The zero value is an empty builder
// ready to use. A Builder can be reused after Reset, which keeps its buffer,
// so building many keys in a loop does not allocate per part.
//
// A Builder must not be used from multiple goroutines at once; the Keys it
// returns are independent of it and can be shared freely.
type Builder struct {
	buf []byte
}

// NewBuilder returns a builder with room for capacity bytes.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: ensureCapacity(nil, capacity)}
}

// Add appends parts in order and returns b for chaining.
func (b *Builder) Add(parts ...Part) *Builder {
	b.buf = AppendParts(b.buf, parts...)
	return b
}

// Key returns the key built so far. The builder is unaffected and can keep
// appending.
func (b *Builder) Key() Key {
	return Key{string(b.buf)}
}

func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}
