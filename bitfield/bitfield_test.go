package bitfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gtpv1c/bitfield"
	"gtpv1c/gtperr"
)

func TestUIntRoundTrip(t *testing.T) {
	c := bitfield.NewCursor([]byte{0b10110100})
	version := bitfield.NewUInt("version", 3)
	pt := bitfield.NewUInt("pt", 1)
	spare := bitfield.NewUInt("spare", 1)
	e := bitfield.NewUInt("e", 1)
	s := bitfield.NewUInt("s", 1)
	pn := bitfield.NewUInt("pn", 1)
	g := bitfield.NewGroup("flags", version, pt, spare, e, s, pn)

	require.NoError(t, g.Decode(c))
	require.Equal(t, uint64(0b101), version.Value())
	require.Equal(t, uint64(1), pt.Value())
	require.Equal(t, uint64(0), spare.Value())
	require.Equal(t, uint64(1), e.Value())
	require.Equal(t, uint64(0), s.Value())
	require.Equal(t, uint64(0), pn.Value())

	w := bitfield.NewWriter()
	require.NoError(t, g.Encode(w))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0b10110100}, out)
}

func TestUIntTooShort(t *testing.T) {
	c := bitfield.NewCursor([]byte{0xFF})
	u := bitfield.NewUInt("u", 16)
	err := u.Decode(c)
	require.ErrorIs(t, err, gtperr.ErrBufTooShort)
}

func TestBufComputedLength(t *testing.T) {
	length := bitfield.NewUInt("length", 8)
	payload := bitfield.NewBuf("payload", 0, bitfield.WithLenFunc(func() int {
		return int(length.Value()) * 8
	}))
	g := bitfield.NewGroup("tlv", length, payload)

	c := bitfield.NewCursor([]byte{0x03, 0xAA, 0xBB, 0xCC, 0xFF})
	require.NoError(t, g.Decode(c))
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, payload.Bytes())

	length2 := bitfield.NewUInt("length", 8, bitfield.WithValueFunc(func() uint64 {
		return uint64(len(payload.Bytes()))
	}))
	payload2 := bitfield.NewBuf("payload", 24)
	payload2.Set([]byte{0x01, 0x02, 0x03})
	g2 := bitfield.NewGroup("tlv", length2, payload2)
	w := bitfield.NewWriter()
	require.NoError(t, g2.Encode(w))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x01, 0x02, 0x03}, out)
}

func TestTransparentFieldSkipped(t *testing.T) {
	present := false
	field := bitfield.NewUInt("optional", 8, bitfield.WithTransFunc(func() bool { return !present }))
	g := bitfield.NewGroup("g", field)
	c := bitfield.NewCursor([]byte{})
	require.NoError(t, g.Decode(c))
	require.Equal(t, uint64(0), field.Value())

	w := bitfield.NewWriter()
	require.NoError(t, g.Encode(w))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestAltSelectsBranch(t *testing.T) {
	selector := int64(1)
	a := bitfield.NewAlt("body", func() int64 { return selector },
		map[int64]bitfield.Node{
			0: bitfield.NewBuf("zero", 8),
			1: bitfield.NewBuf("one", 16),
		}, nil)

	c := bitfield.NewCursor([]byte{0xAB, 0xCD})
	require.NoError(t, a.Decode(c))
	one, ok := a.Active().(*bitfield.Buf)
	require.True(t, ok)
	require.Equal(t, []byte{0xAB, 0xCD}, one.Bytes())
}

func TestAltInvalidAlternative(t *testing.T) {
	a := bitfield.NewAlt("body", func() int64 { return 9 },
		map[int64]bitfield.Node{0: bitfield.NewBuf("zero", 8)}, nil)
	c := bitfield.NewCursor([]byte{0x00})
	err := a.Decode(c)
	require.ErrorIs(t, err, gtperr.ErrInvalidAlternative)
}

func TestSequenceUntilExhausted(t *testing.T) {
	seq := bitfield.NewSequence("items", func() bitfield.Node {
		return bitfield.NewBuf("item", 8)
	}, nil)
	c := bitfield.NewCursor([]byte{0x01, 0x02, 0x03})
	require.NoError(t, seq.Decode(c))
	require.Equal(t, 3, seq.Len())
}

func TestBufAlignedPadsTo4Octets(t *testing.T) {
	ba := bitfield.NewBufAligned("ext", 16, 0x00)
	ba.Set([]byte{0xAB, 0xCD})
	w := bitfield.NewWriter()
	require.NoError(t, ba.Encode(w))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD, 0x00, 0x00}, out)
}
