package message

import (
	"github.com/hashicorp/go-multierror"

	"gtpv1c/bitfield"
	"gtpv1c/gtperr"
	"gtpv1c/ie"
)

// DecodeOptions controls per-call decode behaviour. It is always passed
// explicitly (never read from shared state, §5): Permissive relaxes
// mandatory-IE enforcement, accumulating every gap instead of failing
// fast.
type DecodeOptions struct {
	Permissive bool
}

// Message is a decoded GTPv1-C/GTP' IE sequence: the message type, its
// matched template entries by name, any anonymous trailing IEs, and (in
// permissive mode) the names of mandatory IEs that were not found.
type Message struct {
	Type     uint8
	Name     string
	Template Template

	IEs      []ie.IE
	ByName   map[string]ie.IE
	Trailing []ie.IE
	Missing  []string
}

// Decode walks tmpl against buf per the §4.4 tandem algorithm: mandatory
// IEs must appear in declared order (Private Extension excepted, which
// may repeat without advancing the template); missing mandatory IEs
// either fail the decode or, in permissive mode, are recorded in
// Missing; trailing bytes after template exhaustion become anonymous
// IEs.
func Decode(msgType uint8, name string, tmpl Template, buf []byte, opts DecodeOptions) (*Message, error) {
	m := &Message{Type: msgType, Name: name, Template: tmpl, ByName: make(map[string]ie.IE)}
	c := bitfield.NewCursor(buf)

	var merr *multierror.Error

	i := 0
	for i < len(tmpl) {
		entry := tmpl[i]
		matched := false
		if c.Remaining() >= 8 {
			if peeked, perr := ie.PeekType(c); perr == nil && peeked == entry.Type {
				matched = true
			}
		}
		if matched {
			item, err := ie.Decode(c)
			if err != nil {
				return nil, err
			}
			m.IEs = append(m.IEs, item)
			m.ByName[entry.Name] = item
			if entry.Type != ie.PrivateExtension {
				i++
			}
			continue
		}
		if entry.Mandatory {
			if !opts.Permissive {
				return nil, gtperr.ErrMandatoryIEMissing
			}
			m.Missing = append(m.Missing, entry.Name)
			merr = multierror.Append(merr, gtperr.ErrMandatoryIEMissing)
		}
		i++
	}

	for c.Remaining() >= 8 {
		item, err := ie.Decode(c)
		if err != nil {
			return nil, err
		}
		m.Trailing = append(m.Trailing, item)
	}

	if merr != nil {
		return m, merr.ErrorOrNil()
	}
	return m, nil
}

// Encode serialises the message's matched template IEs, in template
// order, followed by any anonymous trailing IEs.
func (m *Message) Encode() ([]byte, error) {
	w := bitfield.NewWriter()
	for _, entry := range m.Template {
		item, ok := m.ByName[entry.Name]
		if !ok {
			continue
		}
		if entry.Type == ie.PrivateExtension {
			continue // emitted from IEs/Trailing below to allow repetition
		}
		if err := ie.Encode(w, item); err != nil {
			return nil, err
		}
	}
	for _, item := range m.IEs {
		if item.Type == ie.PrivateExtension {
			if err := ie.Encode(w, item); err != nil {
				return nil, err
			}
		}
	}
	for _, item := range m.Trailing {
		if err := ie.Encode(w, item); err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}

// Set attaches or replaces a named IE for subsequent encoding.
func (m *Message) Set(name string, item ie.IE) {
	if m.ByName == nil {
		m.ByName = make(map[string]ie.IE)
	}
	m.ByName[name] = item
	m.IEs = append(m.IEs, item)
}

// Get returns the named IE and whether it was present.
func (m *Message) Get(name string) (ie.IE, bool) {
	item, ok := m.ByName[name]
	return item, ok
}
