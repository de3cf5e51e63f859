package header_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"gtpv1c/gtperr"
	"gtpv1c/header"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodeEchoRequestHeader(t *testing.T) {
	buf := decodeHex(t, "3001000000000000")
	h, offset, err := header.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, uint8(1), h.Version)
	require.True(t, h.PT)
	require.False(t, h.E)
	require.False(t, h.S)
	require.False(t, h.PN)
	require.Equal(t, uint8(1), h.MsgType)
	require.Equal(t, uint16(0), h.Length)
	require.Equal(t, uint32(0), h.TEID)
	require.Equal(t, 8, offset)
}

func TestEncodeRoundTrip(t *testing.T) {
	buf := decodeHex(t, "3001000000000000")
	h, offset, err := header.Decode(buf)
	require.NoError(t, err)
	out, err := h.Encode(buf[offset:])
	require.NoError(t, err)
	require.Equal(t, buf, out)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	buf := decodeHex(t, "32010010000000")
	_, _, err := header.Decode(buf)
	require.Error(t, err)
}

// TestDecodeRejectsExtensionChainPastDeclaredLength covers a buffer whose
// sub-header and extension chain physically consume more bytes than the
// declared Length field claims, while still fitting in the buffer. Decode
// must report ErrBufInvalid rather than return an offset beyond
// Length+8, which would leave callers slicing past the declared message
// boundary.
func TestDecodeRejectsExtensionChainPastDeclaredLength(t *testing.T) {
	buf := decodeHex(t, "34010004000000000000000101000000")
	_, _, err := header.Decode(buf)
	require.ErrorIs(t, err, gtperr.ErrBufInvalid)
}

func TestHeaderWithSequenceAndExtension(t *testing.T) {
	h := &header.Header{
		Version: 1,
		PT:      true,
		E:       true,
		S:       true,
		MsgType: 1,
		TEID:    0x11223344,
		SeqNum:  0x0102,
		Extensions: []header.Extension{
			{Type: header.ExtPDCPPDUNumber, Content: []byte{0x00, 0x2A}},
		},
	}
	out, err := h.Encode(nil)
	require.NoError(t, err)

	dec, offset, err := header.Decode(out)
	require.NoError(t, err)
	require.True(t, dec.E)
	require.True(t, dec.S)
	require.Equal(t, uint16(0x0102), dec.SeqNum)
	require.Len(t, dec.Extensions, 1)
	require.Equal(t, header.ExtPDCPPDUNumber, dec.Extensions[0].Type)
	require.Equal(t, []byte{0x00, 0x2A}, dec.Extensions[0].Content)
	require.Equal(t, len(out), offset)
}
