package collab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gtpv1c/collab"
)

func TestBCDRoundTripEvenDigits(t *testing.T) {
	b := &collab.BCD{Digits: "4600013579246105"}
	enc, err := b.Encode()
	require.NoError(t, err)

	dec := &collab.BCD{}
	require.NoError(t, dec.Decode(enc))
	require.Equal(t, b.Digits, dec.Digits)
}

func TestBCDRoundTripOddDigits(t *testing.T) {
	b := &collab.BCD{Digits: "12345"}
	enc, err := b.Encode()
	require.NoError(t, err)
	require.Len(t, enc, 3)

	dec := &collab.BCD{}
	require.NoError(t, dec.Decode(enc))
	require.Equal(t, "12345", dec.Digits)
}

func TestTimerRoundTrip(t *testing.T) {
	tm := &collab.Timer{Unit: collab.TimerUnit1Minute, Value: 12}
	enc, err := tm.Encode()
	require.NoError(t, err)
	require.Len(t, enc, 1)

	dec := &collab.Timer{}
	require.NoError(t, dec.Decode(enc))
	require.Equal(t, collab.TimerUnit1Minute, dec.Unit)
	require.Equal(t, uint8(12), dec.Value)
}

func TestOpaqueRoundTrip(t *testing.T) {
	o := &collab.Opaque{}
	require.NoError(t, o.Decode([]byte{0x01, 0x02, 0x03}))
	enc, err := o.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, enc)
}
