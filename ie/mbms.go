package ie

import (
	"encoding/binary"
	"net"

	"gtpv1c/gtperr"
)

// MBMSIPMulticastDistrib carries the IP multicast distribution parameters
// for an MBMS bearer (TS 29.060 §7.7.87): the common TEID, the
// distribution and source addresses (each with an address-type/length
// prefix), and a hop counter.
type MBMSIPMulticastDistrib struct {
	CommonTEID          uint32
	DistributionAddrType uint8
	DistributionAddress  net.IP
	SourceAddrType       uint8
	SourceAddress        net.IP
	HopCounter           uint8
}

func (m *MBMSIPMulticastDistrib) DecodeFrom(b []byte) error {
	if len(b) < 4 {
		return gtperr.ErrBufInvalid
	}
	m.CommonTEID = binary.BigEndian.Uint32(b[0:4])
	offset := 4

	var raw []byte

	if len(b) < offset+2 {
		return gtperr.ErrBufInvalid
	}
	m.DistributionAddrType = b[offset]
	offset++
	n := int(b[offset])
	offset++
	if len(b) < offset+n {
		return gtperr.ErrBufInvalid
	}
	raw = b[offset : offset+n]
	m.DistributionAddress = copyIP(raw)
	offset += n

	if len(b) < offset+2 {
		return gtperr.ErrBufInvalid
	}
	m.SourceAddrType = b[offset]
	offset++
	n = int(b[offset])
	offset++
	if len(b) < offset+n {
		return gtperr.ErrBufInvalid
	}
	raw = b[offset : offset+n]
	m.SourceAddress = copyIP(raw)
	offset += n

	if len(b) < offset+1 {
		return gtperr.ErrBufInvalid
	}
	m.HopCounter = b[offset]
	return nil
}

func (m *MBMSIPMulticastDistrib) Encode() ([]byte, error) {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, m.CommonTEID)

	out = append(out, m.DistributionAddrType)
	var err error
	if out, err = appendLenPrefixed(out, m.DistributionAddress); err != nil {
		return nil, err
	}
	out = append(out, m.SourceAddrType)
	if out, err = appendLenPrefixed(out, m.SourceAddress); err != nil {
		return nil, err
	}
	out = append(out, m.HopCounter)
	return out, nil
}
