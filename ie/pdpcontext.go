package ie

import (
	"encoding/binary"
	"net"

	"gtpv1c/collab"
	"gtpv1c/gtperr"
)

// PDPContext carries one PDP context's full state during an SGSN-SGSN or
// SGSN-GGSN context transfer (TS 29.060 §7.7.29): activity flags, the
// three QoS profile variants (subscribed, requested, negotiated), sequence
// numbers, control- and user-plane tunnel endpoints, the PDP
// type/address, both GSN addresses, the APN, the transaction identifier,
// and an optional secondary PDP type/address pair.
type PDPContext struct {
	ExtensionActive    bool
	VAA                bool
	AsiActive          bool
	OrderInTI          bool
	NSAPI              uint8
	SAPI               uint8

	QoSSubscribed collab.Opaque
	QoSRequested  collab.Opaque
	QoSNegotiated collab.Opaque

	SequenceNumberDown uint16
	SequenceNumberUp   uint16
	SendNPDUNumber     uint8
	ReceiveNPDUNumber  uint8

	UplinkTEIDControlPlane uint32
	UplinkTEIDDataI        uint32

	ContextID uint8

	PDPTypeOrg    uint8
	PDPTypeNumber uint8
	PDPAddress    net.IP

	GSNAddressControl net.IP
	GSNAddressUser    net.IP

	APN []byte

	TransactionID uint8

	PDPType2Org    uint8
	PDPType2Number uint8
	PDPAddress2    net.IP
	hasSecondPDP   bool
}

func readLenPrefixed(b []byte, offset int) (payload []byte, next int, err error) {
	if len(b) < offset+1 {
		return nil, 0, gtperr.ErrBufInvalid
	}
	n := int(b[offset])
	offset++
	if len(b) < offset+n {
		return nil, 0, gtperr.ErrBufInvalid
	}
	return b[offset : offset+n], offset + n, nil
}

func (p *PDPContext) DecodeFrom(b []byte) error {
	if len(b) < 2 {
		return gtperr.ErrBufInvalid
	}
	p.ExtensionActive = b[0]&0x80 != 0
	p.VAA = b[0]&0x40 != 0
	p.AsiActive = b[0]&0x20 != 0
	p.OrderInTI = b[0]&0x10 != 0
	p.NSAPI = b[0] & 0x0F
	p.SAPI = b[1] & 0x0F

	offset := 2
	var raw []byte
	var err error

	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	if err := p.QoSSubscribed.Decode(raw); err != nil {
		return err
	}
	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	if err := p.QoSRequested.Decode(raw); err != nil {
		return err
	}
	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	if err := p.QoSNegotiated.Decode(raw); err != nil {
		return err
	}

	if len(b) < offset+12 {
		return gtperr.ErrBufInvalid
	}
	p.SequenceNumberDown = binary.BigEndian.Uint16(b[offset : offset+2])
	p.SequenceNumberUp = binary.BigEndian.Uint16(b[offset+2 : offset+4])
	p.SendNPDUNumber = b[offset+4]
	p.ReceiveNPDUNumber = b[offset+5]
	p.UplinkTEIDControlPlane = binary.BigEndian.Uint32(b[offset+6 : offset+10])
	offset += 10
	if len(b) < offset+4 {
		return gtperr.ErrBufInvalid
	}
	p.UplinkTEIDDataI = binary.BigEndian.Uint32(b[offset : offset+4])
	offset += 4

	if len(b) < offset+3 {
		return gtperr.ErrBufInvalid
	}
	p.ContextID = b[offset]
	p.PDPTypeOrg = b[offset+1] & 0x0F
	p.PDPTypeNumber = b[offset+2]
	offset += 3

	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	p.PDPAddress = copyIP(raw)

	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	p.GSNAddressControl = copyIP(raw)

	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	p.GSNAddressUser = copyIP(raw)

	if raw, offset, err = readLenPrefixed(b, offset); err != nil {
		return err
	}
	p.APN = append([]byte(nil), raw...)

	if len(b) < offset+1 {
		return gtperr.ErrBufInvalid
	}
	p.TransactionID = b[offset]
	offset++

	if offset < len(b) {
		if len(b) < offset+2 {
			return gtperr.ErrBufInvalid
		}
		p.PDPType2Org = b[offset] & 0x0F
		p.PDPType2Number = b[offset+1]
		offset += 2
		if raw, offset, err = readLenPrefixed(b, offset); err != nil {
			return err
		}
		p.PDPAddress2 = copyIP(raw)
		p.hasSecondPDP = true
	}
	return nil
}

func copyIP(b []byte) net.IP {
	if len(b) == 0 {
		return nil
	}
	return net.IP(append([]byte(nil), b...))
}

func appendLenPrefixed(out []byte, payload []byte) ([]byte, error) {
	if len(payload) > 0xFF {
		return nil, gtperr.ErrEncode
	}
	out = append(out, byte(len(payload)))
	return append(out, payload...), nil
}

func (p *PDPContext) Encode() ([]byte, error) {
	var out []byte
	flags := byte(p.NSAPI & 0x0F)
	if p.ExtensionActive {
		flags |= 0x80
	}
	if p.VAA {
		flags |= 0x40
	}
	if p.AsiActive {
		flags |= 0x20
	}
	if p.OrderInTI {
		flags |= 0x10
	}
	out = append(out, flags, p.SAPI&0x0F)

	var err error
	for _, q := range []*collab.Opaque{&p.QoSSubscribed, &p.QoSRequested, &p.QoSNegotiated} {
		var body []byte
		body, err = q.Encode()
		if err != nil {
			return nil, err
		}
		if out, err = appendLenPrefixed(out, body); err != nil {
			return nil, err
		}
	}

	tail := make([]byte, 12)
	binary.BigEndian.PutUint16(tail[0:2], p.SequenceNumberDown)
	binary.BigEndian.PutUint16(tail[2:4], p.SequenceNumberUp)
	tail[4] = p.SendNPDUNumber
	tail[5] = p.ReceiveNPDUNumber
	binary.BigEndian.PutUint32(tail[6:10], p.UplinkTEIDControlPlane)
	out = append(out, tail[:10]...)
	teid2 := make([]byte, 4)
	binary.BigEndian.PutUint32(teid2, p.UplinkTEIDDataI)
	out = append(out, teid2...)

	out = append(out, p.ContextID, p.PDPTypeOrg&0x0F, p.PDPTypeNumber)

	if out, err = appendLenPrefixed(out, p.PDPAddress); err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, p.GSNAddressControl); err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, p.GSNAddressUser); err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, p.APN); err != nil {
		return nil, err
	}

	out = append(out, p.TransactionID)

	if p.hasSecondPDP {
		out = append(out, p.PDPType2Org&0x0F, p.PDPType2Number)
		if out, err = appendLenPrefixed(out, p.PDPAddress2); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SetSecondPDPAddress attaches the optional secondary PDP type/address
// pair, marking it present for encoding.
func (p *PDPContext) SetSecondPDPAddress(org, number uint8, addr net.IP) {
	p.PDPType2Org, p.PDPType2Number, p.PDPAddress2 = org, number, addr
	p.hasSecondPDP = true
}

// HasSecondPDPAddress reports whether a secondary PDP type/address pair
// was present.
func (p *PDPContext) HasSecondPDPAddress() bool {
	return p.hasSecondPDP
}
