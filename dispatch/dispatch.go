// Package dispatch resolves a message type code to a decoder and exposes
// the two top-level parsing entry points (ParseSGSN, ParseGGSN). The two
// dispatch tables are identical except for Update PDP Context
// Request/Response (type 18/19), where each side decodes the message
// shape the *other* side authored (§4.6), confirmed against the
// reference implementation's GTPDispatcherSGSN/GTPDispatcherGGSN tables.
package dispatch

import (
	"errors"

	"gtpv1c/gtperr"
	"gtpv1c/header"
	"gtpv1c/internal/gtplog"
	"gtpv1c/message"
	"gtpv1c/metrics"
)

var log = gtplog.With("dispatch")

// Side identifies which node originated a parse request: the dispatch
// table used to decode the message, not who sent the bytes.
type Side int

const (
	SideSGSN Side = iota
	SideGGSN
)

func (s Side) String() string {
	if s == SideSGSN {
		return "SGSN"
	}
	return "GGSN"
}

type tableEntry struct {
	name string
	tmpl message.Template
}

// baseTable holds every message type common to both sides.
var baseTable = func() map[uint8]tableEntry {
	t := make(map[uint8]tableEntry, len(message.Templates))
	for typ, tmpl := range message.Templates {
		t[typ] = tableEntry{name: message.Names[typ], tmpl: tmpl}
	}
	return t
}()

func buildSide(overrides map[uint8]tableEntry) map[uint8]tableEntry {
	t := make(map[uint8]tableEntry, len(baseTable)+len(overrides))
	for k, v := range baseTable {
		t[k] = v
	}
	for k, v := range overrides {
		t[k] = v
	}
	return t
}

// sgsnTable is used by ParseSGSN. Per §4.6, the SGSN-side dispatcher
// decodes the GGSN-authored Update PDP Context Request/Response shape
// (the variant a GGSN sends to an SGSN).
var sgsnTable = buildSide(map[uint8]tableEntry{
	message.TypeUpdatePDPContextRequest:  {name: "UpdatePDPContextRequest", tmpl: message.UpdatePDPContextRequestGGSN},
	message.TypeUpdatePDPContextResponse: {name: "UpdatePDPContextResponse", tmpl: message.UpdatePDPContextResponseGGSN},
})

// ggsnTable is used by ParseGGSN, decoding the SGSN-authored shape.
var ggsnTable = buildSide(map[uint8]tableEntry{
	message.TypeUpdatePDPContextRequest:  {name: "UpdatePDPContextRequest", tmpl: message.UpdatePDPContextRequestSGSN},
	message.TypeUpdatePDPContextResponse: {name: "UpdatePDPContextResponse", tmpl: message.UpdatePDPContextResponseSGSN},
})

// Result is the outcome of a top-level parse: the decoded header and
// message body (possibly partial), and a status code describing how
// complete the decode is.
type Result struct {
	Header  *header.Header
	Message *message.Message
	Status  gtperr.Status
}

// ParseSGSN decodes buf using the SGSN-side dispatch table.
func ParseSGSN(buf []byte, opts message.DecodeOptions) Result {
	return parse(SideSGSN, sgsnTable, buf, opts)
}

// ParseGGSN decodes buf using the GGSN-side dispatch table.
func ParseGGSN(buf []byte, opts message.DecodeOptions) Result {
	return parse(SideGGSN, ggsnTable, buf, opts)
}

func parse(side Side, table map[uint8]tableEntry, buf []byte, opts message.DecodeOptions) Result {
	metrics.DecodeAttempt(side.String())

	hdr, offset, err := header.Decode(buf)
	if err != nil {
		status := gtperr.StatusBufInvalid
		if errors.Is(err, gtperr.ErrBufTooShort) {
			status = gtperr.StatusBufTooShort
		}
		log.WithField("side", side.String()).WithError(err).Debug("header decode failed")
		metrics.DecodeStatus(side.String(), status.String())
		return Result{Status: status}
	}
	entryLog := log.WithField("side", side.String()).WithField("msg_type", hdr.MsgType)

	entry, ok := table[hdr.MsgType]
	if !ok {
		entryLog.Debug("message type not in dispatch table")
		metrics.DecodeStatus(side.String(), gtperr.StatusTypeNotExist.String())
		return Result{Header: hdr, Status: gtperr.StatusTypeNotExist}
	}

	// header.Decode guarantees offset <= int(hdr.Length)+8; guard anyway
	// so a future header.Decode bug degrades to BufInvalid, not a panic.
	end := int(hdr.Length) + 8
	if end < offset || end > len(buf) {
		entryLog.Warn("header offset inconsistent with declared length")
		metrics.DecodeStatus(side.String(), gtperr.StatusBufInvalid.String())
		return Result{Header: hdr, Status: gtperr.StatusBufInvalid}
	}
	payload := buf[offset:end]

	msg, err := message.Decode(hdr.MsgType, entry.name, entry.tmpl, payload, opts)
	if err == nil {
		entryLog.Debug("decoded")
		metrics.DecodeStatus(side.String(), gtperr.StatusOK.String())
		return Result{Header: hdr, Message: msg, Status: gtperr.StatusOK}
	}

	// A permissive decode returns the partial message together with a
	// multierror of ErrMandatoryIEMissing entries, one per gap.
	if !opts.Permissive {
		msg, err = message.Decode(hdr.MsgType, entry.name, entry.tmpl, payload, message.DecodeOptions{Permissive: true})
	}
	if msg != nil && len(msg.Missing) > 0 && errors.Is(err, gtperr.ErrMandatoryIEMissing) {
		entryLog.WithField("missing", msg.Missing).Warn("mandatory IE missing, decoded permissively")
		metrics.DecodeStatus(side.String(), gtperr.StatusMandatoryIEMissing.String())
		return Result{Header: hdr, Message: msg, Status: gtperr.StatusMandatoryIEMissing}
	}

	entryLog.WithError(err).Warn("decode failed")
	metrics.DecodeStatus(side.String(), gtperr.StatusBufInvalid.String())
	return Result{Header: hdr, Status: gtperr.StatusBufInvalid}
}
