// Package message implements the GTPv1-C/GTP' message catalogue: the
// per-message-type IE templates and the generic tandem decode/encode
// algorithm that walks a template against the wire IE sequence (§4.4).
//
// Grounded on the reference implementation's per-message _GEN tuples
// (pycrate_mobile/TS29060_GTP.py) for mandatory/optional marks, and on
// the teacher's decInformationElement loop in encoding/nas/nas.go for the
// peek-and-advance decode shape.
package message

import (
	"gtpv1c/ie"
)

// TemplateEntry is one declared position in a message's IE template.
type TemplateEntry struct {
	Type      ie.Type
	Name      string
	Mandatory bool
}

// Template is the ordered sequence of IEs a message type declares. An
// empty Template is valid: every wire IE for that message type decodes as
// an anonymous trailing IE (§4.4 step 6).
type Template []TemplateEntry

// M declares a mandatory template entry.
func M(t ie.Type, name string) TemplateEntry { return TemplateEntry{Type: t, Name: name, Mandatory: true} }

// O declares an optional template entry.
func O(t ie.Type, name string) TemplateEntry { return TemplateEntry{Type: t, Name: name, Mandatory: false} }
