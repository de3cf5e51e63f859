package ie

import (
	"gtpv1c/bitfield"
	"gtpv1c/collab"
	"gtpv1c/gtperr"
)

// Security mode values selecting the authentication-vector variant
// carried by MMContext (TS 29.060 §7.7.28), matching pycrate's
// _SecMode_dict.
const (
	SecurityModeUMTSQuintupletsUsedCipher uint8 = 0
	SecurityModeGSMTriplets               uint8 = 1
	SecurityModeUMTSQuintuplets           uint8 = 2
	SecurityModeGSMQuintuplets            uint8 = 3
)

// tripletOctets is the fixed wire size of one GSM authentication triplet
// (RAND+SRES+Kc), the same width the catalogue gives the standalone
// Authentication Triplet IE (TypeAuthentTriplet, ie/catalogue.go).
const tripletOctets = 28

// MMContext carries the mobility-management security context transferred
// between SGSNs at handover (TS 29.060 §7.7.28). Byte 0 is a 5-bit spare
// field followed by the 3-bit CKSN; byte 1 opens with the 2-bit
// SecurityMode, whose remaining 6 bits are shared with the start of a
// security-mode-selected vector block — one of four layouts pycrate's
// MMContextUMTSQuintupletsUsedCipher/MMContextGSMTriplets/
// MMContextUMTSQuintuplets/MMContextGSMQuintuplets classes define
// (original_source/pycrate_mobile/TS29060_GTP.py:483-533). DRX parameter,
// MS network capability, an opaque container, and optional access
// restriction data follow the vector block, in that order
// (TS29060_GTP.py:536-553).
//
// The per-vector internal layout (individual quintuplet contents; the
// triplet's RAND/SRES/Kc split is well-known and fixed at 28 octets,
// matching TypeAuthentTriplet) is a 24.008/33.102 concern defined by
// classes pycrate imports from a module this port's retrieval pack does
// not carry; the vector block is modelled as an opaque collaborator
// sized by NumberOfVectors/VectorsLen, per §4.5/§6's "external codec
// collaborators" — the same treatment PDPContext gives its QoS profile
// blocks.
type MMContext struct {
	CKSN         uint8
	SecurityMode uint8

	NumberOfVectors uint8
	UsedCipher      uint8  // meaningful for every mode except SecurityModeUMTSQuintuplets
	CK              []byte // 16 octets, UMTS variants only
	IK              []byte // 16 octets, UMTS variants only
	Kc              []byte // 8 octets, GSM variants only
	Vectors         []byte // opaque triplet/quintuplet block

	DRXParameter        [2]byte
	MSNetworkCapability collab.Opaque
	Container           collab.Opaque
	AccessRestriction   collab.Opaque
}

// mmContextTree holds the bitfield nodes shared by Decode and Encode, so
// the wire layout is declared exactly once. Nodes are shared across the
// four SecurityMode branches; only the branch bitfield.Alt actually
// resolves touches them on a given Decode/Encode.
type mmContextTree struct {
	spare      *bitfield.UInt
	cksn       *bitfield.UInt
	secMode    *bitfield.UInt
	noVectors  *bitfield.UInt
	usedCipher *bitfield.UInt
	umtsSpare  *bitfield.UInt
	ck         *bitfield.Buf
	ik         *bitfield.Buf
	kc         *bitfield.Buf
	vectorsLen *bitfield.UInt
	vectors    *bitfield.Buf
	triplets   *bitfield.Buf
	drx        *bitfield.Buf
	root       *bitfield.Group
}

func newMMContextTree() *mmContextTree {
	n := &mmContextTree{}
	n.spare = bitfield.NewUInt("spare", 5, bitfield.WithValueFunc(func() uint64 { return 0x1F }))
	n.cksn = bitfield.NewUInt("cksn", 3)
	n.secMode = bitfield.NewUInt("securityMode", 2)

	n.noVectors = bitfield.NewUInt("noVectors", 3)
	n.usedCipher = bitfield.NewUInt("usedCipher", 3)
	n.umtsSpare = bitfield.NewUInt("spare3", 3, bitfield.WithValueFunc(func() uint64 { return 7 }))
	n.ck = bitfield.NewBuf("ck", 128)
	n.ik = bitfield.NewBuf("ik", 128)
	n.kc = bitfield.NewBuf("kc", 64)

	// VectorsLen (and the vector block itself) is present only when
	// NoVectors is nonzero (TS29060_GTP.py:503's "absent if NoVectors ==
	// 0"); its encoded value is the vector block's own byte length,
	// mirroring set_valauto(lambda: self['Quintuplets'].get_len()).
	hasVectors := func() bool { return n.noVectors.Value() != 0 }
	n.vectorsLen = bitfield.NewUInt("vectorsLen", 16,
		bitfield.WithTransFunc(func() bool { return !hasVectors() }),
		bitfield.WithValueFunc(func() uint64 { return uint64(len(n.vectors.Bytes())) }),
	)
	n.vectors = bitfield.NewBuf("vectors", 0,
		bitfield.WithLenFunc(func() int { return int(n.vectorsLen.Value()) * 8 }),
		bitfield.WithTransFunc(func() bool { return !hasVectors() }),
	)
	n.triplets = bitfield.NewBuf("triplets", 0,
		bitfield.WithLenFunc(func() int { return int(n.noVectors.Value()) * tripletOctets * 8 }),
	)

	umtsQCipher := bitfield.NewGroup("umtsQuintupletsUsedCipher", n.noVectors, n.usedCipher, n.ck, n.ik, n.vectorsLen, n.vectors)
	gsmTriplets := bitfield.NewGroup("gsmTriplets", n.noVectors, n.usedCipher, n.kc, n.triplets)
	umtsQ := bitfield.NewGroup("umtsQuintuplets", n.noVectors, n.umtsSpare, n.ck, n.ik, n.vectorsLen, n.vectors)
	gsmQ := bitfield.NewGroup("gsmQuintuplets", n.noVectors, n.usedCipher, n.kc, n.vectorsLen, n.vectors)

	alt := bitfield.NewAlt("secContext", func() int64 { return int64(n.secMode.Value()) }, map[int64]bitfield.Node{
		int64(SecurityModeUMTSQuintupletsUsedCipher): umtsQCipher,
		int64(SecurityModeGSMTriplets):               gsmTriplets,
		int64(SecurityModeUMTSQuintuplets):           umtsQ,
		int64(SecurityModeGSMQuintuplets):            gsmQ,
	}, nil)

	n.drx = bitfield.NewBuf("drx", 16)

	n.root = bitfield.NewGroup("mmcontext", n.spare, n.cksn, n.secMode, alt, n.drx)
	return n
}

func (m *MMContext) DecodeFrom(b []byte) error {
	if len(b) < 4 {
		return gtperr.ErrBufInvalid
	}
	n := newMMContextTree()
	c := bitfield.NewCursor(b)
	if err := n.root.Decode(c); err != nil {
		return err
	}

	m.CKSN = uint8(n.cksn.Value())
	m.SecurityMode = uint8(n.secMode.Value())
	m.NumberOfVectors = uint8(n.noVectors.Value())
	if m.SecurityMode != SecurityModeUMTSQuintuplets {
		m.UsedCipher = uint8(n.usedCipher.Value())
	}
	m.CK = n.ck.Bytes()
	m.IK = n.ik.Bytes()
	m.Kc = n.kc.Bytes()
	if m.SecurityMode == SecurityModeGSMTriplets {
		m.Vectors = n.triplets.Bytes()
	} else {
		m.Vectors = n.vectors.Bytes()
	}
	drx := n.drx.Bytes()
	m.DRXParameter[0], m.DRXParameter[1] = drx[0], drx[1]

	if !c.Aligned() {
		return gtperr.ErrBufInvalid
	}
	offset := c.BitPos() / 8

	if offset >= len(b) {
		return nil
	}
	raw, offset, err := readLenPrefixed(b, offset)
	if err != nil {
		return err
	}
	if err := m.MSNetworkCapability.Decode(raw); err != nil {
		return err
	}

	if offset >= len(b) {
		return nil
	}
	raw, offset, err = readLenPrefixed(b, offset)
	if err != nil {
		return err
	}
	if err := m.Container.Decode(raw); err != nil {
		return err
	}

	if offset >= len(b) {
		return nil
	}
	raw, _, err = readLenPrefixed(b, offset)
	if err != nil {
		return err
	}
	return m.AccessRestriction.Decode(raw)
}

func (m *MMContext) Encode() ([]byte, error) {
	n := newMMContextTree()
	n.cksn.Set(uint64(m.CKSN))
	n.secMode.Set(uint64(m.SecurityMode))
	n.noVectors.Set(uint64(m.NumberOfVectors))
	n.usedCipher.Set(uint64(m.UsedCipher))
	n.ck.Set(m.CK)
	n.ik.Set(m.IK)
	n.kc.Set(m.Kc)
	if m.SecurityMode == SecurityModeGSMTriplets {
		n.triplets.Set(m.Vectors)
	} else {
		n.vectors.Set(m.Vectors)
	}
	n.drx.Set(m.DRXParameter[:])

	w := bitfield.NewWriter()
	if err := n.root.Encode(w); err != nil {
		return nil, err
	}
	out, err := w.Bytes()
	if err != nil {
		return nil, err
	}

	msCap, err := m.MSNetworkCapability.Encode()
	if err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, msCap); err != nil {
		return nil, err
	}

	cont, err := m.Container.Encode()
	if err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, cont); err != nil {
		return nil, err
	}

	accessRestriction, err := m.AccessRestriction.Encode()
	if err != nil {
		return nil, err
	}
	if out, err = appendLenPrefixed(out, accessRestriction); err != nil {
		return nil, err
	}
	return out, nil
}
