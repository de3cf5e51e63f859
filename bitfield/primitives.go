package bitfield

import "gtpv1c/gtperr"

// ValueFunc computes a field's value from already-decoded siblings. It
// must not read the field it is attached to and must not mutate any node.
type ValueFunc func() uint64

// LenFunc computes a field's bit length from already-decoded siblings.
type LenFunc func() int

// TransFunc reports whether a field is present on the wire. A transparent
// field consumes and produces zero bits.
type TransFunc func() bool

// Option configures a primitive field at construction time.
type Option func(*options)

type options struct {
	valueFunc ValueFunc
	lenFunc   LenFunc
	transFunc TransFunc
}

// WithValueFunc attaches a computed-value callback, used by UInt at Encode
// time in place of a value set via Set. Buf ignores it.
func WithValueFunc(f ValueFunc) Option { return func(o *options) { o.valueFunc = f } }

// WithLenFunc attaches a computed-length callback, used at both Decode and
// Encode time in place of the field's static bit width.
func WithLenFunc(f LenFunc) Option { return func(o *options) { o.lenFunc = f } }

// WithTransFunc attaches a presence callback, evaluated at both Decode and
// Encode time.
func WithTransFunc(f TransFunc) Option { return func(o *options) { o.transFunc = f } }

// UInt is an unsigned integer field of 1 to 64 bits, packed most-
// significant bit first and possibly spanning byte boundaries.
type UInt struct {
	name  string
	bits  int
	value uint64
	opts  options
}

// NewUInt declares an integer field named name, bits wide.
func NewUInt(name string, bits int, opts ...Option) *UInt {
	u := &UInt{name: name, bits: bits}
	for _, o := range opts {
		o(&u.opts)
	}
	return u
}

func (u *UInt) Name() string { return u.name }

func (u *UInt) Transparent() bool {
	if u.opts.transFunc != nil {
		return u.opts.transFunc()
	}
	return false
}

// bitLen resolves the field's bit width, preferring a computed length.
func (u *UInt) bitLen() int {
	if u.opts.lenFunc != nil {
		return u.opts.lenFunc()
	}
	return u.bits
}

func (u *UInt) Decode(c *Cursor) error {
	if u.Transparent() {
		return nil
	}
	n := u.bitLen()
	v, err := c.ReadBits(n)
	if err != nil {
		return err
	}
	u.value = v
	return nil
}

func (u *UInt) Encode(w *Writer) error {
	if u.Transparent() {
		return nil
	}
	v := u.value
	if u.opts.valueFunc != nil {
		v = u.opts.valueFunc()
	}
	n := u.bitLen()
	if n < 64 && v>>uint(n) != 0 {
		return gtperr.ErrEncode
	}
	return w.WriteBits(v, n)
}

// Value returns the field's current value.
func (u *UInt) Value() uint64 { return u.value }

// Set assigns a static value, used when no ValueFunc is attached.
func (u *UInt) Set(v uint64) { u.value = v }

// Buf is an opaque byte buffer field. Its bit length must be a multiple of
// 8 unless resolved via a LenFunc that itself returns a multiple of 8.
type Buf struct {
	name  string
	bits  int
	value []byte
	opts  options
}

// NewBuf declares a buffer field named name, bits wide (must be a multiple
// of 8, or resolved to one via WithLenFunc).
func NewBuf(name string, bits int, opts ...Option) *Buf {
	b := &Buf{name: name, bits: bits}
	for _, o := range opts {
		o(&b.opts)
	}
	return b
}

func (b *Buf) Name() string { return b.name }

func (b *Buf) Transparent() bool {
	if b.opts.transFunc != nil {
		return b.opts.transFunc()
	}
	return false
}

func (b *Buf) bitLen() int {
	if b.opts.lenFunc != nil {
		return b.opts.lenFunc()
	}
	return b.bits
}

func (b *Buf) Decode(c *Cursor) error {
	if b.Transparent() {
		b.value = nil
		return nil
	}
	n := b.bitLen()
	if n%8 != 0 {
		return gtperr.ErrBufInvalid
	}
	v, err := c.ReadBytes(n / 8)
	if err != nil {
		return err
	}
	b.value = v
	return nil
}

func (b *Buf) Encode(w *Writer) error {
	if b.Transparent() {
		return nil
	}
	v := b.value
	if b.opts.valueFunc != nil {
		// ValueFunc on a Buf is rare; when present it returns the
		// buffer's length in bytes reinterpreted as an integer is
		// meaningless, so Buf ignores valueFunc for content and
		// relies on Set. valueFunc on Buf fields is reserved for
		// future use and intentionally a no-op today.
		_ = v
	}
	n := b.bitLen()
	if n%8 != 0 {
		return gtperr.ErrEncode
	}
	if len(b.value)*8 != n {
		return gtperr.ErrEncode
	}
	return w.WriteBytes(b.value)
}

// Bytes returns the buffer's current content.
func (b *Buf) Bytes() []byte { return b.value }

// Set assigns the buffer's content. The bit length is not re-derived from
// v: Encode fails unless len(v)*8 equals the static width or LenFunc result.
func (b *Buf) Set(v []byte) { b.value = v }

// BufAligned is an opaque buffer whose own content is padded with Pad to
// the next multiple of 4 octets on Encode. Octets outside the field, such
// as an enclosing extension's length and next-type octets, are not counted.
type BufAligned struct {
	Buf
	Pad byte
}

// NewBufAligned declares a padded buffer field. contentBits is the
// unpadded content's bit length; the field pads up to the next multiple of
// 32 bits when encoding and trusts the declared bitLen (from LenFunc) when
// decoding.
func NewBufAligned(name string, contentBits int, pad byte, opts ...Option) *BufAligned {
	ba := &BufAligned{Pad: pad}
	ba.name = name
	ba.bits = contentBits
	for _, o := range opts {
		o(&ba.opts)
	}
	return ba
}

// PaddedLen rounds n bits up to the next multiple of 32 bits (4 octets).
func PaddedLen(n int) int {
	const align = 32
	if n%align == 0 {
		return n
	}
	return n + (align - n%align)
}

func (ba *BufAligned) Encode(w *Writer) error {
	if ba.Transparent() {
		return nil
	}
	content := ba.value
	target := PaddedLen(len(content) * 8)
	padded := make([]byte, target/8)
	copy(padded, content)
	for i := len(content); i < len(padded); i++ {
		padded[i] = ba.Pad
	}
	return w.WriteBytes(padded)
}
