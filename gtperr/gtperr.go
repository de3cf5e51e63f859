// Package gtperr defines the sentinel errors and status codes shared across
// the GTPv1-C codec.
package gtperr

import "errors"

// Sentinel errors returned by the binary-field engine, the IE layer, and the
// message decoder. Wrap these with fmt.Errorf("...: %w", ErrX) to attach
// context; callers should compare with errors.Is.
var (
	// ErrBufTooShort is returned when the input buffer ends before a
	// required field can be fully read.
	ErrBufTooShort = errors.New("gtp: buffer too short")

	// ErrTypeNotExist is returned when a message type code has no entry
	// in the dispatcher table in use.
	ErrTypeNotExist = errors.New("gtp: message type does not exist")

	// ErrBufInvalid covers any decode-time inconsistency that is not a
	// short buffer or a missing mandatory IE: a malformed length field,
	// or an unaligned or out-of-range read. An alternative selector with
	// no matching branch and no default is ErrInvalidAlternative instead.
	ErrBufInvalid = errors.New("gtp: buffer invalid")

	// ErrMandatoryIEMissing is returned when a template-declared
	// mandatory IE does not appear where expected.
	ErrMandatoryIEMissing = errors.New("gtp: mandatory information element missing")

	// ErrInvalidAlternative is returned by bitfield.Alt when the
	// discriminator selects a branch absent from both Branches and
	// Default.
	ErrInvalidAlternative = errors.New("gtp: no matching alternative branch")

	// ErrEncode covers encode-time invariant violations, such as a
	// field value that does not fit in its declared bit width.
	ErrEncode = errors.New("gtp: encode error")
)

// Status is a coarse outcome code for a top-level parse, distinct from the
// underlying error so callers can branch on outcome without string
// inspection or errors.Is chains.
type Status int

const (
	// StatusOK indicates a fully successful decode.
	StatusOK Status = iota

	// StatusBufTooShort indicates the buffer ended before the header or
	// a required field could be read.
	StatusBufTooShort

	// StatusTypeNotExist indicates the message type code has no entry
	// in the dispatcher table used.
	StatusTypeNotExist

	// StatusMandatoryIEMissing indicates the message decoded under
	// permissive rules after a mandatory IE was found missing; the
	// returned message carries whatever was readable.
	StatusMandatoryIEMissing

	// StatusBufInvalid indicates a decode failure that is not one of
	// the above, including a failed permissive retry.
	StatusBufInvalid
)

// String renders the status for logging.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBufTooShort:
		return "BufTooShort"
	case StatusTypeNotExist:
		return "TypeNotExist"
	case StatusMandatoryIEMissing:
		return "MandatoryIEMissing"
	case StatusBufInvalid:
		return "BufInvalid"
	default:
		return "Unknown"
	}
}
