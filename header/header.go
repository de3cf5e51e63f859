// Package header implements the GTPv1-C / GTP' header: the fixed 8-octet
// base header, the optional 4-octet sequence/N-PDU/next-extension
// sub-header, and the chain of typed header extensions that follows it.
package header

import (
	"encoding/binary"

	"gtpv1c/bitfield"
	"gtpv1c/gtperr"
)

// Extension type codes defined by TS 29.060 §6.
const (
	ExtMBMSSupportIndication           uint8 = 1
	ExtMSInfoChangeReportingSupport    uint8 = 2
	ExtPDCPPDUNumber                   uint8 = 130
	ExtSuspendRequest                  uint8 = 193
	ExtSuspendResponse                 uint8 = 194
)

// Extension is one link of the header extension chain: a typed, 4-octet-
// aligned content block. Content excludes the leading length octet and
// the trailing next-extension-type octet.
type Extension struct {
	Type    uint8
	Content []byte
}

// totalOctets returns the extension's on-wire length in octets (length
// octet, content, padding, next-extension-type octet), a multiple of 4;
// its length octet carries this value divided by 4.
func (e Extension) totalOctets() int {
	return bitfield.PaddedLen(len(e.Content)*8+16) / 8
}

// Header models the fixed base header plus the optional sub-header. PT
// true selects GTP (TS 29.060); false selects GTP' (TS 32.295).
type Header struct {
	Version uint8
	PT      bool
	Spare   bool
	E       bool
	S       bool
	PN      bool
	MsgType uint8
	Length  uint16
	TEID    uint32

	SeqNum  uint16
	NPDU    uint8

	Extensions []Extension
}

// Decode parses a GTPv1-C/GTP' header (base header, optional sub-header,
// and extension chain) from the front of buf. It returns the header and
// the byte offset at which the information-element block begins.
func Decode(buf []byte) (*Header, int, error) {
	if len(buf) < 8 {
		return nil, 0, gtperr.ErrBufTooShort
	}
	h := &Header{}
	flags := buf[0]
	h.Version = flags >> 5
	h.PT = flags&0x10 != 0
	h.Spare = flags&0x08 != 0
	h.E = flags&0x04 != 0
	h.S = flags&0x02 != 0
	h.PN = flags&0x01 != 0
	h.MsgType = buf[1]
	h.Length = binary.BigEndian.Uint16(buf[2:4])
	h.TEID = binary.BigEndian.Uint32(buf[4:8])

	offset := 8
	boundary := int(h.Length) + 8
	if boundary > len(buf) {
		return nil, 0, gtperr.ErrBufTooShort
	}

	nextExt := uint8(0)
	if h.E || h.S || h.PN {
		if offset+4 > boundary {
			return nil, 0, gtperr.ErrBufInvalid
		}
		if len(buf) < offset+4 {
			return nil, 0, gtperr.ErrBufTooShort
		}
		h.SeqNum = binary.BigEndian.Uint16(buf[offset : offset+2])
		h.NPDU = buf[offset+2]
		nextExt = buf[offset+3]
		offset += 4
	}

	for h.E && nextExt != 0 {
		if offset+1 > boundary {
			return nil, 0, gtperr.ErrBufInvalid
		}
		if len(buf) < offset+1 {
			return nil, 0, gtperr.ErrBufTooShort
		}
		units := int(buf[offset])
		if units == 0 {
			return nil, 0, gtperr.ErrBufInvalid
		}
		total := units * 4
		if offset+total > boundary {
			return nil, 0, gtperr.ErrBufInvalid
		}
		if len(buf) < offset+total {
			return nil, 0, gtperr.ErrBufTooShort
		}
		content := make([]byte, total-2)
		copy(content, buf[offset+1:offset+total-1])
		next := buf[offset+total-1]
		h.Extensions = append(h.Extensions, Extension{Type: nextExt, Content: content})
		nextExt = next
		offset += total
	}

	return h, offset, nil
}

// Encode serialises the header followed by iePayload, computing Length
// from the sub-header, extension chain, and payload lengths.
func (h *Header) Encode(iePayload []byte) ([]byte, error) {
	var flags byte
	flags |= (h.Version & 0x07) << 5
	if h.PT {
		flags |= 0x10
	}
	if h.Spare {
		flags |= 0x08
	}
	if h.E {
		flags |= 0x04
	}
	if h.S {
		flags |= 0x02
	}
	if h.PN {
		flags |= 0x01
	}

	var tail []byte
	hasOpt := h.E || h.S || h.PN
	if hasOpt {
		tail = make([]byte, 4)
		binary.BigEndian.PutUint16(tail[0:2], h.SeqNum)
		tail[2] = h.NPDU
		if len(h.Extensions) > 0 {
			tail[3] = h.Extensions[0].Type
		} else {
			tail[3] = 0
		}
	}

	for i, ext := range h.Extensions {
		total := ext.totalOctets()
		frame := make([]byte, total)
		frame[0] = byte(total / 4)
		copy(frame[1:total-1], ext.Content)
		for j := len(ext.Content); j < total-2; j++ {
			frame[1+j] = 0
		}
		if i+1 < len(h.Extensions) {
			frame[total-1] = h.Extensions[i+1].Type
		} else {
			frame[total-1] = 0
		}
		tail = append(tail, frame...)
	}

	length := len(tail) + len(iePayload)
	if length > 0xFFFF {
		return nil, gtperr.ErrEncode
	}

	out := make([]byte, 8)
	out[0] = flags
	out[1] = h.MsgType
	binary.BigEndian.PutUint16(out[2:4], uint16(length))
	binary.BigEndian.PutUint32(out[4:8], h.TEID)
	out = append(out, tail...)
	out = append(out, iePayload...)
	return out, nil
}

// HasOptionalFields reports whether the sub-header (sequence number,
// N-PDU number, next-extension-type) is present, per the E/S/PN flags.
func (h *Header) HasOptionalFields() bool {
	return h.E || h.S || h.PN
}
