/*
Package keyz builds composite binary keys for sorted key-value stores
(Bolt, Badger, Pebble and friends) out of typed values.

A Key is an immutable byte sequence. Keys are built by converting each value
into its canonical bytes and concatenating the results in argument order:

	k := keyz.Build(keyz.Date{Year: 2016, Month: time.November, Day: 8}, keyz.String("hello"))
	bucket.Put(k.Bytes(), data)

We implement:

1. Key, an owned byte string that compares with == and sorts with
bytes.Compare.

2. Parts, one Go type per supported source type. A part knows how to append
its encoding to a buffer. Adding a new source type means adding a new type
with an AppendKey method; nothing else changes.

3. Build, Builder and AppendParts, which fold a list of parts left to right.

# Encoding

Nothing is inserted between parts: no separators, no length prefixes.
Build(String("ab"), String("c")) and Build(String("a"), String("bc")) are the
same key. Use fixed-width parts (Uint64, Int64, UUID, Time of a known
precision) or wrap variable-length parts in Terminated when keys must stay
unambiguous or when a shorter component must not sort into the middle of a
longer one.

**Text** and **bytes** are copied verbatim.

**Times** are rendered as RFC 3339 in UTC with an explicit +00:00 offset, so
two values describing the same instant in different zones produce the same
bytes, and lexical order matches chronological order for years 0000-9999.

**Dates** become midnight UTC of that day. NaiveDate values carry no zone and
are assumed to already be in UTC.

**Integers** are fixed-width big-endian; signed values have the sign bit
flipped so that negative numbers sort first.

Keys are encode-only. The package never parses keys back into values.
*/
package keyz
