package ie

import (
	"gtpv1c/bitfield"
	"gtpv1c/gtperr"
)

// User Location Information geographic-location-type codes (TS 29.060
// §7.7.51).
const (
	ULITypeCGI = 0
	ULITypeSAI = 1
	ULITypeRAI = 2
)

// ULI is the User Location Information IE: a type octet selecting which
// of CGI/SAI/RAI framing the following 7 octets carry. Modelled as a
// bitfield.Alt keyed on the type octet, with an opaque Default for any
// other value (§4.5).
type ULI struct {
	LocationType uint8
	PLMN         []byte // 3 octets
	LAC          []byte // 2 octets
	CellOrArea   []byte // 2 octets: CI (CGI), SAC (SAI), or RAC+spare (RAI)
	Unknown      []byte // populated only when LocationType is none of the above
}

func (u *ULI) DecodeFrom(b []byte) error {
	if len(b) < 1 {
		return gtperr.ErrBufInvalid
	}
	u.LocationType = b[0]
	rest := b[1:]

	selector := func() int64 { return int64(u.LocationType) }
	known := bitfield.NewGroup("known",
		bitfield.NewBuf("plmn", 24),
		bitfield.NewBuf("lac", 16),
		bitfield.NewBuf("cellOrArea", 16),
	)
	alt := bitfield.NewAlt("body", selector, map[int64]bitfield.Node{
		ULITypeCGI: known,
		ULITypeSAI: known,
		ULITypeRAI: known,
	}, bitfield.NewBuf("unknown", len(rest)*8))

	c := bitfield.NewCursor(rest)
	if err := alt.Decode(c); err != nil {
		return err
	}

	switch u.LocationType {
	case ULITypeCGI, ULITypeSAI, ULITypeRAI:
		u.PLMN = known.Children()[0].(*bitfield.Buf).Bytes()
		u.LAC = known.Children()[1].(*bitfield.Buf).Bytes()
		u.CellOrArea = known.Children()[2].(*bitfield.Buf).Bytes()
	default:
		u.Unknown = append([]byte(nil), rest...)
	}
	return nil
}

func (u *ULI) Encode() ([]byte, error) {
	out := []byte{u.LocationType}
	switch u.LocationType {
	case ULITypeCGI, ULITypeSAI, ULITypeRAI:
		if len(u.PLMN) != 3 || len(u.LAC) != 2 || len(u.CellOrArea) != 2 {
			return nil, gtperr.ErrEncode
		}
		out = append(out, u.PLMN...)
		out = append(out, u.LAC...)
		out = append(out, u.CellOrArea...)
	default:
		out = append(out, u.Unknown...)
	}
	return out, nil
}
