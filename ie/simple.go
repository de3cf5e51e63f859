package ie

import (
	"encoding/binary"
	"net"

	"gtpv1c/collab"
	"gtpv1c/gtperr"
)

// CauseReqDict names request cause values (Resp=0, Reject=0), TS 29.060
// §7.7.1.
var CauseReqDict = map[uint8]string{
	0: "Request IMSI",
	1: "Request IMEI",
	2: "Request IMSI and IMEI",
	3: "No identity needed",
	4: "MS Refuses",
	5: "MS is not GPRS Responding",
	6: "Reactivation Requested",
	7: "PDP address inactivity timer expires",
	8: "Network Failure",
	9: "QoS parameter mismatch",
}

// CauseRespDict names response-accepted cause values (Resp=1, Reject=0).
var CauseRespDict = map[uint8]string{
	0: "Request accepted",
	1: "New PDP type due to network preference",
	2: "New PDP type due to single address bearer only",
}

// CauseRespRejDict names response-rejected cause values (Resp=1,
// Reject=1).
var CauseRespRejDict = map[uint8]string{
	0:  "Non-existent",
	1:  "Invalid message format",
	2:  "IMSI/IMEI not known",
	3:  "MS is GPRS Detached",
	4:  "MS is not GPRS Responding",
	5:  "MS Refuses",
	6:  "Version not supported",
	7:  "No resources available",
	8:  "Service not supported",
	9:  "Mandatory IE incorrect",
	10: "Mandatory IE missing",
	11: "Optional IE incorrect",
	12: "System failure",
	13: "Roaming restriction",
	14: "P-TMSI Signature mismatch",
	15: "GPRS connection suspended",
	16: "Authentication failure",
	17: "User authentication failed",
	18: "Context not found",
	19: "All dynamic PDP addresses are occupied",
	20: "No memory is available",
	21: "Relocation failure",
	22: "Unknown mandatory extension header",
	23: "Semantic error in the TFT operation",
	24: "Syntactic error in the TFT operation",
	25: "Semantic errors in packet filter(s)",
	26: "Syntactic errors in packet filter(s)",
	27: "Missing or unknown APN",
	28: "Unknown PDP address or PDP type",
	29: "PDP context without TFT already activated",
	30: "APN access denied – no subscription",
	31: "APN Restriction type incompatibility with currently active PDP Contexts",
	32: "MS MBMS Capabilities Insufficient",
	33: "Invalid Correlation-ID",
	34: "MBMS Bearer Context Superseded",
	35: "Bearer Control Mode violation",
	36: "Collision with network initiated request",
	37: "APN Congestion",
	38: "Bearer handling not supported",
	39: "Target access restricted for the subscriber",
	40: "UE is temporarily not reachable due to power saving",
	41: "Relocation failure due to NAS message redirection",
}

// Cause carries the accept/reject outcome of a request: a 1-bit Resp
// flag, a 1-bit Reject flag, and a 6-bit Value, packed into a single
// octet MSB-first (TS 29.060 §7.7.1). The two flag bits select which of
// three value-to-name dictionaries Value is drawn from; Dict resolves
// that, matching pycrate's Cause._get_dict.
type Cause struct {
	Resp   bool
	Reject bool
	Value  uint8 // 6 bits
}

func (c *Cause) DecodeFrom(b []byte) error {
	if len(b) != 1 {
		return gtperr.ErrBufInvalid
	}
	c.Resp = b[0]&0x80 != 0
	c.Reject = b[0]&0x40 != 0
	c.Value = b[0] & 0x3F
	return nil
}

func (c *Cause) Encode() ([]byte, error) {
	v := c.Value & 0x3F
	if c.Resp {
		v |= 0x80
	}
	if c.Reject {
		v |= 0x40
	}
	return []byte{v}, nil
}

// Accepted reports whether this cause is a response-accepted value
// (Resp set, Reject clear).
func (c *Cause) Accepted() bool {
	return c.Resp && !c.Reject
}

// Rejected reports whether this cause is a response-rejected value
// (both Resp and Reject set).
func (c *Cause) Rejected() bool {
	return c.Resp && c.Reject
}

// Dict returns the value-to-name table selected by the Resp/Reject flag
// pair: CauseReqDict (0,0), CauseRespDict (1,0), or CauseRespRejDict
// (1,1). The (0,1) combination has no assigned meanings and returns nil.
func (c *Cause) Dict() map[uint8]string {
	switch {
	case !c.Resp && !c.Reject:
		return CauseReqDict
	case c.Resp && !c.Reject:
		return CauseRespDict
	case c.Resp && c.Reject:
		return CauseRespRejDict
	default:
		return nil
	}
}

// Name returns the human-readable name for Value in the dictionary Dict
// selects, or "" if Value has no entry there.
func (c *Cause) Name() string {
	return c.Dict()[c.Value]
}

// IMSI is the subscriber identity, carried as 8 octets of TBCD digits.
type IMSI struct {
	collab.BCD
}

func (i *IMSI) DecodeFrom(b []byte) error {
	if len(b) != 8 {
		return gtperr.ErrBufInvalid
	}
	return i.BCD.Decode(b)
}

func (i *IMSI) Encode() ([]byte, error) {
	out, err := i.BCD.Encode()
	if err != nil {
		return nil, err
	}
	if len(out) != 8 {
		padded := make([]byte, 8)
		copy(padded, out)
		for j := len(out); j < 8; j++ {
			padded[j] = 0xFF
		}
		return padded, nil
	}
	return out, nil
}

// RAI is the Routeing Area Identity: PLMN identity (3 octets, BCD-swapped
// MCC/MNC), location area code, and routeing area code.
type RAI struct {
	PLMN []byte
	LAC  uint16
	RAC  uint8
}

func (r *RAI) DecodeFrom(b []byte) error {
	if len(b) != 6 {
		return gtperr.ErrBufInvalid
	}
	r.PLMN = append([]byte(nil), b[0:3]...)
	r.LAC = binary.BigEndian.Uint16(b[3:5])
	r.RAC = b[5]
	return nil
}

func (r *RAI) Encode() ([]byte, error) {
	if len(r.PLMN) != 3 {
		return nil, gtperr.ErrEncode
	}
	out := make([]byte, 6)
	copy(out[0:3], r.PLMN)
	binary.BigEndian.PutUint16(out[3:5], r.LAC)
	out[5] = r.RAC
	return out, nil
}

// Recovery carries the restart counter used for path management.
type Recovery struct {
	RestartCounter uint8
}

func (r *Recovery) DecodeFrom(b []byte) error {
	if len(b) != 1 {
		return gtperr.ErrBufInvalid
	}
	r.RestartCounter = b[0]
	return nil
}

func (r *Recovery) Encode() ([]byte, error) {
	return []byte{r.RestartCounter}, nil
}

// SelectionMode indicates who chose the APN/subscription context.
type SelectionMode struct {
	Value uint8 // low 2 bits significant; upper 6 bits are spare, set to 1
}

func (s *SelectionMode) DecodeFrom(b []byte) error {
	if len(b) != 1 {
		return gtperr.ErrBufInvalid
	}
	s.Value = b[0] & 0x03
	return nil
}

func (s *SelectionMode) Encode() ([]byte, error) {
	return []byte{0xFC | (s.Value & 0x03)}, nil
}

// TEID is a bare 32-bit tunnel endpoint identifier, used for both the
// Data I and Control Plane TEID IEs.
type TEID struct {
	Value uint32
}

func (t *TEID) DecodeFrom(b []byte) error {
	if len(b) != 4 {
		return gtperr.ErrBufInvalid
	}
	t.Value = binary.BigEndian.Uint32(b)
	return nil
}

func (t *TEID) Encode() ([]byte, error) {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, t.Value)
	return out, nil
}

// TEIDDataII pairs an NSAPI with a secondary data-plane TEID, used during
// inter-SGSN routeing area updates.
type TEIDDataII struct {
	NSAPI uint8
	TEID  uint32
}

func (t *TEIDDataII) DecodeFrom(b []byte) error {
	if len(b) != 5 {
		return gtperr.ErrBufInvalid
	}
	t.NSAPI = b[0] & 0x0F
	t.TEID = binary.BigEndian.Uint32(b[1:5])
	return nil
}

func (t *TEIDDataII) Encode() ([]byte, error) {
	out := make([]byte, 5)
	out[0] = t.NSAPI & 0x0F
	binary.BigEndian.PutUint32(out[1:5], t.TEID)
	return out, nil
}

// NSAPI is the Network layer Service Access Point Identifier, the low 4
// bits of one octet, identifying a PDP context within a mobility context.
type NSAPI struct {
	Value uint8
}

func (n *NSAPI) DecodeFrom(b []byte) error {
	if len(b) != 1 {
		return gtperr.ErrBufInvalid
	}
	n.Value = b[0] & 0x0F
	return nil
}

func (n *NSAPI) Encode() ([]byte, error) {
	return []byte{n.Value & 0x0F}, nil
}

// EndUserAddress carries the PDP type organisation/number and, when
// present, the allocated PDP address (IPv4 or IPv6).
type EndUserAddress struct {
	PDPTypeOrg    uint8
	PDPTypeNumber uint8
	Address       net.IP
}

func (e *EndUserAddress) DecodeFrom(b []byte) error {
	if len(b) < 2 {
		return gtperr.ErrBufInvalid
	}
	e.PDPTypeOrg = b[0] & 0x0F
	e.PDPTypeNumber = b[1]
	switch len(b) - 2 {
	case 0:
		e.Address = nil
	case 4:
		e.Address = net.IP(append([]byte(nil), b[2:6]...))
	case 16:
		e.Address = net.IP(append([]byte(nil), b[2:18]...))
	default:
		return gtperr.ErrBufInvalid
	}
	return nil
}

func (e *EndUserAddress) Encode() ([]byte, error) {
	out := []byte{0xF0 | (e.PDPTypeOrg & 0x0F), e.PDPTypeNumber}
	if e.Address != nil {
		out = append(out, e.Address...)
	}
	return out, nil
}

// GSNAddress is a GSN's control-plane or user-plane IP address (IPv4 or
// IPv6, distinguished only by length).
type GSNAddress struct {
	Address net.IP
}

func (g *GSNAddress) DecodeFrom(b []byte) error {
	switch len(b) {
	case 4, 16:
		g.Address = net.IP(append([]byte(nil), b...))
		return nil
	default:
		return gtperr.ErrBufInvalid
	}
}

func (g *GSNAddress) Encode() ([]byte, error) {
	if len(g.Address) != 4 && len(g.Address) != 16 {
		return nil, gtperr.ErrEncode
	}
	return append([]byte(nil), g.Address...), nil
}

// MSISDN is the subscriber's ISDN number, TBCD digits preceded by a
// single address-type/numbering-plan octet.
type MSISDN struct {
	Prefix byte
	Number collab.BCD
}

func (m *MSISDN) DecodeFrom(b []byte) error {
	if len(b) < 1 {
		return gtperr.ErrBufInvalid
	}
	m.Prefix = b[0]
	return m.Number.Decode(b[1:])
}

func (m *MSISDN) Encode() ([]byte, error) {
	digits, err := m.Number.Encode()
	if err != nil {
		return nil, err
	}
	return append([]byte{m.Prefix}, digits...), nil
}

// IMEI carries the IMEI(SV) as TBCD digits, same nibble-swap rule as IMSI.
type IMEI struct {
	collab.BCD
}

func (i *IMEI) DecodeFrom(b []byte) error {
	return i.BCD.Decode(b)
}

func (i *IMEI) Encode() ([]byte, error) {
	return i.BCD.Encode()
}
