package ie

import (
	"encoding/binary"

	"gtpv1c/bitfield"
	"gtpv1c/gtperr"
)

// Payload is what every IE's structured content implements: a symmetric
// codec over the payload bytes, framing already stripped.
type Payload interface {
	DecodeFrom(b []byte) error
	Encode() ([]byte, error)
}

// Raw is the fallback Payload for any IE the catalogue does not assign a
// structured type to: reserved, undefined, or simply not modelled here
// (§4.5, "reserved-and-undefined IE types").
type Raw struct {
	Bytes []byte
}

func (r *Raw) DecodeFrom(b []byte) error {
	r.Bytes = append([]byte(nil), b...)
	return nil
}

func (r *Raw) Encode() ([]byte, error) {
	return append([]byte(nil), r.Bytes...), nil
}

// IE is one decoded information element: its resolved type code and
// structured payload.
type IE struct {
	Type    Type
	Payload Payload
}

// PeekType reports the IE type code that begins the cursor's current
// position, honouring the 238 extended-type escape, without consuming any
// bytes. It is used by the message-template walk (§4.4) to decide whether
// the next bytes match the expected template entry.
func PeekType(c *bitfield.Cursor) (Type, error) {
	tag, err := c.PeekByte()
	if err != nil {
		return 0, err
	}
	if Type(tag) != ExtendedTypeEscape {
		return Type(tag), nil
	}
	b, err := c.PeekBytes(5)
	if err != nil {
		return 0, err
	}
	return Type(binary.BigEndian.Uint16(b[3:5])), nil
}

// Decode reads one complete IE (tag, length where applicable, payload)
// from the cursor and returns its resolved type and structured payload.
func Decode(c *bitfield.Cursor) (IE, error) {
	tag, err := c.PeekByte()
	if err != nil {
		return IE{}, err
	}

	if KindOf(tag) == KindTV {
		entry, ok := Lookup(Type(tag))
		if !ok {
			return IE{}, gtperr.ErrBufInvalid
		}
		if _, err := c.ReadBytes(1); err != nil {
			return IE{}, err
		}
		body, err := c.ReadBytes(entry.FixedOctets)
		if err != nil {
			return IE{}, err
		}
		return buildIE(Type(tag), entry, body)
	}

	if Type(tag) == ExtendedTypeEscape {
		header, err := c.ReadBytes(3)
		if err != nil {
			return IE{}, err
		}
		length := binary.BigEndian.Uint16(header[1:3])
		if length < 2 {
			return IE{}, gtperr.ErrBufInvalid
		}
		extHeader, err := c.ReadBytes(2)
		if err != nil {
			return IE{}, err
		}
		trueType := Type(binary.BigEndian.Uint16(extHeader))
		body, err := c.ReadBytes(int(length) - 2)
		if err != nil {
			return IE{}, err
		}
		entry, _ := Lookup(trueType)
		return buildIE(trueType, entry, body)
	}

	header, err := c.ReadBytes(3)
	if err != nil {
		return IE{}, err
	}
	length := binary.BigEndian.Uint16(header[1:3])
	body, err := c.ReadBytes(int(length))
	if err != nil {
		return IE{}, err
	}
	entry, _ := Lookup(Type(tag))
	return buildIE(Type(tag), entry, body)
}

func buildIE(t Type, entry CatalogueEntry, body []byte) (IE, error) {
	var payload Payload
	if entry.New != nil {
		payload = entry.New()
	} else {
		payload = &Raw{}
	}
	if err := payload.DecodeFrom(body); err != nil {
		return IE{}, err
	}
	return IE{Type: t, Payload: payload}, nil
}

// Encode serialises one IE (tag, length where applicable, payload) to w.
func Encode(w *bitfield.Writer, item IE) error {
	body, err := item.Payload.Encode()
	if err != nil {
		return err
	}

	entry, known := Lookup(item.Type)
	kind := KindTLV
	if item.Type <= 0xFF {
		kind = KindOf(uint8(item.Type))
	}
	if known {
		kind = entry.Kind
	}

	if kind == KindTV {
		if known && len(body) != entry.FixedOctets {
			return gtperr.ErrEncode
		}
		if err := w.WriteBits(uint64(item.Type), 8); err != nil {
			return err
		}
		return w.WriteBytes(body)
	}

	if item.Type > 0xFF {
		if err := w.WriteBits(uint64(ExtendedTypeEscape), 8); err != nil {
			return err
		}
		length := len(body) + 2
		if length > 0xFFFF {
			return gtperr.ErrEncode
		}
		if err := w.WriteBits(uint64(length), 16); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(item.Type), 16); err != nil {
			return err
		}
		return w.WriteBytes(body)
	}

	if err := w.WriteBits(uint64(item.Type), 8); err != nil {
		return err
	}
	if len(body) > 0xFFFF {
		return gtperr.ErrEncode
	}
	if err := w.WriteBits(uint64(len(body)), 16); err != nil {
		return err
	}
	return w.WriteBytes(body)
}
