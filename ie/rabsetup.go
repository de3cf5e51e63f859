package ie

import (
	"encoding/binary"
	"net"

	"gtpv1c/gtperr"
)

// RABSetupInfo carries the NSAPI and, when the RAB is already set up, the
// associated Data I TEID and RNC address. Unlike every other optional
// field in this catalogue, whose presence is driven by a sibling
// discriminator, RABSetupInfo's optionality is discovered from its own
// TLV's declared length (§4.5): a one-octet body means "NSAPI only, RAB
// not yet set up"; a longer body carries the TEID and RNC address too.
type RABSetupInfo struct {
	NSAPI      uint8
	TEIDDataI  uint32
	RNCAddress net.IP
	setUp      bool
}

func (r *RABSetupInfo) DecodeFrom(b []byte) error {
	if len(b) < 1 {
		return gtperr.ErrBufInvalid
	}
	r.NSAPI = b[0] & 0x0F
	if len(b) <= 1 {
		r.setUp = false
		return nil
	}
	if len(b) < 5 {
		return gtperr.ErrBufInvalid
	}
	r.TEIDDataI = binary.BigEndian.Uint32(b[1:5])
	r.RNCAddress = copyIP(b[5:])
	r.setUp = true
	return nil
}

func (r *RABSetupInfo) Encode() ([]byte, error) {
	if !r.setUp {
		return []byte{r.NSAPI & 0x0F}, nil
	}
	out := make([]byte, 5)
	out[0] = r.NSAPI & 0x0F
	binary.BigEndian.PutUint32(out[1:5], r.TEIDDataI)
	out = append(out, r.RNCAddress...)
	return out, nil
}

// SetUp reports whether the RAB has already been set up (TEID/RNC address
// present).
func (r *RABSetupInfo) SetUp() bool { return r.setUp }

// SetTunnel marks the RAB as set up with the given TEID and RNC address.
func (r *RABSetupInfo) SetTunnel(teid uint32, rnc net.IP) {
	r.TEIDDataI = teid
	r.RNCAddress = rnc
	r.setUp = true
}
