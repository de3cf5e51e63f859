package ie_test

import (
	"encoding/hex"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gtpv1c/bitfield"
	"gtpv1c/ie"
)

func TestTVRoundTripCause(t *testing.T) {
	w := bitfield.NewWriter()
	require.NoError(t, ie.Encode(w, ie.IE{Type: ie.TypeCause, Payload: &ie.Cause{Resp: true, Value: 0}}))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0x80}, out)

	c := bitfield.NewCursor(out)
	decoded, err := ie.Decode(c)
	require.NoError(t, err)
	require.Equal(t, ie.TypeCause, decoded.Type)
	cause, ok := decoded.Payload.(*ie.Cause)
	require.True(t, ok)
	require.True(t, cause.Resp)
	require.False(t, cause.Reject)
	require.Equal(t, uint8(0), cause.Value)
	require.True(t, cause.Accepted())
	require.Equal(t, "Request accepted", cause.Name())
}

func TestCauseDictSelection(t *testing.T) {
	req := &ie.Cause{Value: 4}
	require.Equal(t, "MS Refuses", req.Name())

	rej := &ie.Cause{Resp: true, Reject: true, Value: 6}
	require.Equal(t, "Version not supported", rej.Name())
	require.True(t, rej.Rejected())

	spare := &ie.Cause{Reject: true, Value: 0}
	require.Nil(t, spare.Dict())
	require.Equal(t, "", spare.Name())
}

func TestTLVRoundTripRaw(t *testing.T) {
	w := bitfield.NewWriter()
	item := ie.IE{Type: ie.TypeAPN, Payload: &ie.Raw{Bytes: []byte("internet")}}
	require.NoError(t, ie.Encode(w, item))
	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, byte(131), out[0])

	c := bitfield.NewCursor(out)
	decoded, err := ie.Decode(c)
	require.NoError(t, err)
	raw, ok := decoded.Payload.(*ie.Raw)
	require.True(t, ok)
	require.Equal(t, "internet", string(raw.Bytes))
}

func TestPeekTypeExtendedEscape(t *testing.T) {
	w := bitfield.NewWriter()
	require.NoError(t, ie.Encode(w, ie.IE{Type: ie.Type(300), Payload: &ie.Raw{Bytes: []byte{0xAA}}}))
	out, err := w.Bytes()
	require.NoError(t, err)

	c := bitfield.NewCursor(out)
	typ, err := ie.PeekType(c)
	require.NoError(t, err)
	require.Equal(t, ie.Type(300), typ)

	decoded, err := ie.Decode(c)
	require.NoError(t, err)
	require.Equal(t, ie.Type(300), decoded.Type)
	require.Equal(t, []byte{0xAA}, decoded.Payload.(*ie.Raw).Bytes)
}

func TestGSNAddressRoundTrip(t *testing.T) {
	g := &ie.GSNAddress{Address: net.ParseIP("10.0.0.1").To4()}
	enc, err := g.Encode()
	require.NoError(t, err)
	require.Len(t, enc, 4)

	dec := &ie.GSNAddress{}
	require.NoError(t, dec.DecodeFrom(enc))
	require.True(t, dec.Address.Equal(net.ParseIP("10.0.0.1")))
}

func TestULIKnownAndUnknownType(t *testing.T) {
	u := &ie.ULI{
		LocationType: ie.ULITypeCGI,
		PLMN:         []byte{0x21, 0x63, 0x54},
		LAC:          []byte{0x00, 0x01},
		CellOrArea:   []byte{0x00, 0x02},
	}
	enc, err := u.Encode()
	require.NoError(t, err)

	dec := &ie.ULI{}
	require.NoError(t, dec.DecodeFrom(enc))
	require.Equal(t, u.PLMN, dec.PLMN)
	require.Equal(t, u.CellOrArea, dec.CellOrArea)

	unknown := &ie.ULI{LocationType: 0x7F, Unknown: []byte{0x01, 0x02, 0x03}}
	enc2, err := unknown.Encode()
	require.NoError(t, err)
	dec2 := &ie.ULI{}
	require.NoError(t, dec2.DecodeFrom(enc2))
	require.Equal(t, []byte{0x01, 0x02, 0x03}, dec2.Unknown)
}

func TestRABSetupInfoPresenceByLength(t *testing.T) {
	notSetUp := &ie.RABSetupInfo{NSAPI: 5}
	enc, err := notSetUp.Encode()
	require.NoError(t, err)
	require.Len(t, enc, 1)

	dec := &ie.RABSetupInfo{}
	require.NoError(t, dec.DecodeFrom(enc))
	require.False(t, dec.SetUp())
	require.Equal(t, uint8(5), dec.NSAPI)

	setUp := &ie.RABSetupInfo{NSAPI: 5}
	setUp.SetTunnel(0xAABBCCDD, net.ParseIP("172.16.0.1").To4())
	enc2, err := setUp.Encode()
	require.NoError(t, err)

	dec2 := &ie.RABSetupInfo{}
	require.NoError(t, dec2.DecodeFrom(enc2))
	require.True(t, dec2.SetUp())
	require.Equal(t, uint32(0xAABBCCDD), dec2.TEIDDataI)
}

// TestMMContextGSMTriplets decodes a literal GSM-Triplets MM Context:
// spare=0x1F/CKSN=3 (byte0 0xFB), SecurityMode=1/NoVectors=1/UsedCipher=2
// (byte1 0x4A), an 8-octet Kc, one 28-octet triplet, a 2-octet DRX
// parameter, and three zero-length trailing fields.
func TestMMContextGSMTriplets(t *testing.T) {
	buf, err := hex.DecodeString("fb4a0102030405060708" +
		strings.Repeat("aa", 28) + "0000000000")
	require.NoError(t, err)

	m := &ie.MMContext{}
	require.NoError(t, m.DecodeFrom(buf))
	require.Equal(t, uint8(3), m.CKSN)
	require.Equal(t, ie.SecurityModeGSMTriplets, m.SecurityMode)
	require.Equal(t, uint8(1), m.NumberOfVectors)
	require.Equal(t, uint8(2), m.UsedCipher)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, m.Kc)
	require.Len(t, m.Vectors, 28)
	require.Nil(t, m.CK)
	require.Nil(t, m.IK)

	enc, err := m.Encode()
	require.NoError(t, err)
	require.Equal(t, buf, enc)
}

// TestMMContextUMTSQuintupletsUsedCipherNoVectors decodes a literal
// UMTSQuintupletsUsedCipher MM Context with NoVectors=0, exercising the
// VectorsLen/vector-block-absent path: spare=0x1F/CKSN=5 (byte0 0xFD),
// SecurityMode=0/NoVectors=0/UsedCipher=1 (byte1 0x01), 16-octet CK,
// 16-octet IK, 2-octet DRX, a 1-octet MS network capability, an empty
// container, and a 1-octet access restriction field.
func TestMMContextUMTSQuintupletsUsedCipherNoVectors(t *testing.T) {
	buf, err := hex.DecodeString(
		"fd01" +
			"101112131415161718191a1b1c1d1e1f" +
			"202122232425262728292a2b2c2d2e2f" +
			"1234" + "01ab" + "00" + "017f")
	require.NoError(t, err)

	m := &ie.MMContext{}
	require.NoError(t, m.DecodeFrom(buf))
	require.Equal(t, uint8(5), m.CKSN)
	require.Equal(t, ie.SecurityModeUMTSQuintupletsUsedCipher, m.SecurityMode)
	require.Equal(t, uint8(0), m.NumberOfVectors)
	require.Equal(t, uint8(1), m.UsedCipher)
	require.Len(t, m.CK, 16)
	require.Equal(t, byte(0x10), m.CK[0])
	require.Len(t, m.IK, 16)
	require.Equal(t, byte(0x20), m.IK[0])
	require.Empty(t, m.Vectors)
	require.Equal(t, [2]byte{0x12, 0x34}, m.DRXParameter)
	require.Equal(t, []byte{0xAB}, m.MSNetworkCapability.Raw)
	require.Empty(t, m.Container.Raw)
	require.Equal(t, []byte{0x7F}, m.AccessRestriction.Raw)

	enc, err := m.Encode()
	require.NoError(t, err)
	require.Equal(t, buf, enc)
}

func TestPDPContextRoundTrip(t *testing.T) {
	p := &ie.PDPContext{
		NSAPI:         5,
		SAPI:          3,
		ContextID:     1,
		PDPTypeOrg:    1,
		PDPTypeNumber: 0x21,
		PDPAddress:    net.ParseIP("10.1.1.1").To4(),
		GSNAddressControl: net.ParseIP("10.2.2.2").To4(),
		GSNAddressUser:    net.ParseIP("10.3.3.3").To4(),
		APN:           []byte("internet"),
		TransactionID: 7,
	}
	enc, err := p.Encode()
	require.NoError(t, err)

	dec := &ie.PDPContext{}
	require.NoError(t, dec.DecodeFrom(enc))
	require.Equal(t, p.NSAPI, dec.NSAPI)
	require.Equal(t, p.APN, dec.APN)
	require.True(t, dec.PDPAddress.Equal(p.PDPAddress))
	require.False(t, dec.HasSecondPDPAddress())
}
