// Package collab holds the external, nested codecs that the GTPv1-C
// information-element layer composes by reference rather than
// reimplementing: BCD digit strings, GPRS timers, and the opaque
// passthrough containers (PCO, TFT, APN, QoS profile, UE network
// capability, MM context quintuplets/triplets) whose internal layout is
// out of scope for this codec.
//
// Adapted from the BCD/timer helpers in the teacher's NAS codec
// (encoding/nas/nas.go), narrowed to the GTPv1-C collaborator contract.
package collab

import "gtpv1c/gtperr"

// Codec is the contract every nested payload collaborator satisfies: a
// symmetric pair of pure functions over a byte buffer, with no knowledge
// of the enclosing IE's framing.
type Codec interface {
	Encode() ([]byte, error)
	Decode(b []byte) error
}

// Opaque is a passthrough collaborator for payloads this codec does not
// interpret: PCO, TFT, APN, QoS Profile, UE Network Capability, MM
// Context quintuplets/triplets, and similar nested containers whose
// internal grammar belongs to another specification.
type Opaque struct {
	Raw []byte
}

func (o *Opaque) Encode() ([]byte, error) { return append([]byte(nil), o.Raw...), nil }

func (o *Opaque) Decode(b []byte) error {
	o.Raw = append([]byte(nil), b...)
	return nil
}

// bcdAlphabet maps a BCD nibble (its index) to its ASCII digit, '*', '#',
// or 'a'..'c'. The filler nibble 0xF has no entry: it terminates an
// odd-length digit string.
var bcdAlphabet = []byte("0123456789*#abc")

// BCD encodes and decodes TBCD digit strings (IMSI, IMEI, MSISDN), one
// digit per nibble, least-significant nibble of each octet first, odd
// lengths padded with the filler nibble 0xF. Grounded on the digit-swap
// logic in the teacher's Str2BCD/BCD2Str helpers in encoding/nas/nas.go.
type BCD struct {
	Digits string
}

func (c *BCD) Decode(b []byte) error {
	var out []byte
	for _, octet := range b {
		lo := octet & 0x0F
		hi := octet >> 4
		if lo == 0x0F {
			break
		}
		out = append(out, digitChar(lo))
		if hi == 0x0F {
			break
		}
		out = append(out, digitChar(hi))
	}
	c.Digits = string(out)
	return nil
}

func digitChar(nibble byte) byte {
	if int(nibble) < len(bcdAlphabet) {
		return bcdAlphabet[nibble]
	}
	return '?'
}

func digitNibble(ch byte) (byte, error) {
	for i, c := range bcdAlphabet {
		if c == ch {
			return byte(i), nil
		}
	}
	return 0, gtperr.ErrEncode
}

func (c *BCD) Encode() ([]byte, error) {
	digits := c.Digits
	if len(digits)%2 != 0 {
		digits += "\xFF" // placeholder, replaced by filler nibble below
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		lo, err := nibbleOf(digits[i])
		if err != nil {
			return nil, err
		}
		var hi byte
		if digits[i+1] == 0xFF {
			hi = 0x0F
		} else {
			hi, err = nibbleOf(digits[i+1])
			if err != nil {
				return nil, err
			}
		}
		out = append(out, lo|(hi<<4))
	}
	return out, nil
}

func nibbleOf(ch byte) (byte, error) {
	if ch == 0xFF {
		return 0x0F, nil
	}
	return digitNibble(ch)
}

// Timer is the GPRS timer value from TS 29.060 §7.7.55-style single-octet
// encoding: 3-bit unit selector, 5-bit value.
type Timer struct {
	Unit  TimerUnit
	Value uint8
}

// TimerUnit enumerates the GPRS timer's unit field.
type TimerUnit uint8

const (
	TimerUnit2Seconds   TimerUnit = 0
	TimerUnit1Minute    TimerUnit = 1
	TimerUnit10Minutes  TimerUnit = 2
	TimerUnit1Hour      TimerUnit = 3
	TimerUnit10Hours    TimerUnit = 4
	TimerUnitInfinite   TimerUnit = 7
)

func (t *Timer) Decode(b []byte) error {
	if len(b) != 1 {
		return gtperr.ErrBufInvalid
	}
	t.Unit = TimerUnit(b[0] >> 5)
	t.Value = b[0] & 0x1F
	return nil
}

func (t *Timer) Encode() ([]byte, error) {
	if t.Value > 0x1F {
		return nil, gtperr.ErrEncode
	}
	return []byte{byte(t.Unit)<<5 | t.Value&0x1F}, nil
}
