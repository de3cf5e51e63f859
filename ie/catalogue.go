// Package ie implements the GTPv1-C/GTP' information-element layer: the
// Tag-Value and Tag-Length-Value framings, the type-code catalogue, and
// the structured payloads for the IEs complex enough to warrant one.
//
// Grounded on TS 29.060 §7.7's IE table as enumerated in the reference
// implementation (pycrate's GTPIEType_dict) and framed in the style of
// the teacher's IEI-peek-and-dispatch loop in encoding/nas/nas.go's
// decInformationElement.
package ie

// Kind distinguishes the two IE framings.
type Kind int

const (
	// KindTV is Tag-Value: a fixed-length payload, type codes 0-127.
	KindTV Kind = iota
	// KindTLV is Tag-Length-Value: a 16-bit length prefix, type codes
	// 128-255.
	KindTLV
)

// Type is an IE type code. Codes 0-127 are TV, 128-255 (and the 16-bit
// space reachable through the 238 extended-type escape) are TLV.
type Type uint16

// Extended-type escape tag, per TS 29.060 §7.7.1: a TLV whose 8-bit tag is
// 238 carries a 16-bit true type immediately after its length field, and
// the declared length includes those two escape octets.
const ExtendedTypeEscape Type = 238

// Private Extension may repeat within a message's IE sequence without
// advancing the decode template (§4.4).
const PrivateExtension Type = 255

// Well-known type codes, named for readability at call sites. Not
// exhaustive of the full 0-255 space: codes absent from this list but
// declared in Catalogue are still dispatched through catalogue metadata,
// and any TLV code absent from Catalogue decodes as an opaque Raw IE
// (§4.5, "reserved-and-undefined IE types").
const (
	TypeCause                Type = 1
	TypeIMSI                 Type = 2
	TypeRAI                  Type = 3
	TypeTLLI                 Type = 4
	TypePTMSI                Type = 5
	TypeReorderingRequired   Type = 8
	TypeAuthentTriplet       Type = 9
	TypeMAPCause             Type = 11
	TypePTMSISignature       Type = 12
	TypeMSValidated          Type = 13
	TypeRecovery             Type = 14
	TypeSelectionMode        Type = 15
	TypeTEIDDataI            Type = 16
	TypeTEIDCP               Type = 17
	TypeTEIDDataII           Type = 18
	TypeTeardownInd          Type = 19
	TypeNSAPI                Type = 20
	TypeRANAPCause           Type = 21
	TypeRABContext           Type = 22
	TypeRadioPrioritySMS     Type = 23
	TypeRadioPriority        Type = 24
	TypePacketFlowID         Type = 25
	TypeChargingCharacteristics Type = 26
	TypeTraceReference       Type = 27
	TypeTraceType            Type = 28
	TypeMSNotReachableReason Type = 29
	TypeChargingID           Type = 127
	TypeEndUserAddress       Type = 128
	TypeMMContext            Type = 129
	TypePDPContext           Type = 130
	TypeAPN                  Type = 131
	TypePCO                  Type = 132
	TypeGSNAddress           Type = 133
	TypeMSISDN               Type = 134
	TypeQoSProfile           Type = 135
	TypeAuthQuintuplet       Type = 136
	TypeTFT                  Type = 137
	TypeTargetIdentification Type = 138
	TypeUTRANTransparentContainer Type = 139
	TypeRABSetupInfo         Type = 140
	TypeExtHeaderTypeList    Type = 141
	TypeTriggerId            Type = 142
	TypeOMCIdentity          Type = 143
	TypeRANTransparentContainer Type = 144
	TypePDPContextPrioritization Type = 145
	TypeAdditionalRABSetupInfo Type = 146
	TypeSGSNNumber           Type = 147
	TypeCommonFlags          Type = 148
	TypeAPNRestriction       Type = 149
	TypeRadioPriorityLCS     Type = 150
	TypeRATType              Type = 151
	TypeULI                  Type = 152
	TypeMSTimeZone           Type = 153
	TypeIMEI                 Type = 154
	TypeCAMELChargingInfoContainer Type = 155
	TypeMBMSUEContext        Type = 156
	TypeTMGI                 Type = 157
	TypeRIMRoutingAddress    Type = 158
	TypeMBMSPCO              Type = 159
	TypeAdditionalTraceInfo  Type = 162
	TypeHopCounter           Type = 163
	TypeSelectedPLMNID       Type = 164
	TypeMBMSIPMulticastDistrib Type = 186
	TypeFQDN                 Type = 190
	TypeCommonFlagsExtended  Type = 193
	TypeUENetworkCapability  Type = 199
	TypeChargingGatewayAddress Type = 251
)

// CatalogueEntry describes one IE's framing and, for TV IEs, fixed length.
// New, when set, constructs the structured Payload used for this type;
// absent, Raw (an opaque buffer) is used.
type CatalogueEntry struct {
	Type        Type
	Name        string
	Kind        Kind
	FixedOctets int // TV only
	New         func() Payload
}

// Catalogue maps every known IE type code to its framing metadata. TLV
// codes not present here still decode successfully, as an opaque Raw IE
// (§4.5): the catalogue only needs an entry when a TV fixed length or a
// structured payload applies.
var Catalogue = map[Type]CatalogueEntry{
	TypeCause:              {TypeCause, "Cause", KindTV, 1, func() Payload { return &Cause{} }},
	TypeIMSI:               {TypeIMSI, "IMSI", KindTV, 8, func() Payload { return &IMSI{} }},
	TypeRAI:                {TypeRAI, "RoutingAreaIdentity", KindTV, 6, func() Payload { return &RAI{} }},
	TypeTLLI:                {TypeTLLI, "TLLI", KindTV, 4, nil},
	TypePTMSI:               {TypePTMSI, "PTMSI", KindTV, 4, nil},
	TypeReorderingRequired:  {TypeReorderingRequired, "ReorderingRequired", KindTV, 1, nil},
	TypeAuthentTriplet:      {TypeAuthentTriplet, "AuthenticationTriplet", KindTV, 28, nil},
	TypeMAPCause:            {TypeMAPCause, "MAPCause", KindTV, 1, nil},
	TypePTMSISignature:      {TypePTMSISignature, "PTMSISignature", KindTV, 3, nil},
	TypeMSValidated:         {TypeMSValidated, "MSValidated", KindTV, 1, nil},
	TypeRecovery:            {TypeRecovery, "Recovery", KindTV, 1, func() Payload { return &Recovery{} }},
	TypeSelectionMode:       {TypeSelectionMode, "SelectionMode", KindTV, 1, func() Payload { return &SelectionMode{} }},
	TypeTEIDDataI:           {TypeTEIDDataI, "TEIDDataI", KindTV, 4, func() Payload { return &TEID{} }},
	TypeTEIDCP:              {TypeTEIDCP, "TEIDControlPlane", KindTV, 4, func() Payload { return &TEID{} }},
	TypeTEIDDataII:          {TypeTEIDDataII, "TEIDDataII", KindTV, 5, func() Payload { return &TEIDDataII{} }},
	TypeTeardownInd:         {TypeTeardownInd, "TeardownInd", KindTV, 1, nil},
	TypeNSAPI:               {TypeNSAPI, "NSAPI", KindTV, 1, func() Payload { return &NSAPI{} }},
	TypeRANAPCause:          {TypeRANAPCause, "RANAPCause", KindTV, 1, nil},
	TypeRABContext:          {TypeRABContext, "RABContext", KindTV, 9, nil},
	TypeRadioPrioritySMS:    {TypeRadioPrioritySMS, "RadioPrioritySMS", KindTV, 1, nil},
	TypeRadioPriority:       {TypeRadioPriority, "RadioPriority", KindTV, 1, nil},
	TypePacketFlowID:        {TypePacketFlowID, "PacketFlowID", KindTV, 2, nil},
	TypeChargingCharacteristics: {TypeChargingCharacteristics, "ChargingCharacteristics", KindTV, 2, nil},
	TypeTraceReference:      {TypeTraceReference, "TraceReference", KindTV, 2, nil},
	TypeTraceType:           {TypeTraceType, "TraceType", KindTV, 2, nil},
	TypeMSNotReachableReason: {TypeMSNotReachableReason, "MSNotReachableReason", KindTV, 1, nil},
	TypeChargingID:          {TypeChargingID, "ChargingID", KindTV, 4, nil},

	TypeEndUserAddress:      {TypeEndUserAddress, "EndUserAddress", KindTLV, 0, func() Payload { return &EndUserAddress{} }},
	TypeMMContext:           {TypeMMContext, "MMContext", KindTLV, 0, func() Payload { return &MMContext{} }},
	TypePDPContext:          {TypePDPContext, "PDPContext", KindTLV, 0, func() Payload { return &PDPContext{} }},
	TypeAPN:                 {TypeAPN, "AccessPointName", KindTLV, 0, nil},
	TypePCO:                 {TypePCO, "ProtocolConfigOptions", KindTLV, 0, nil},
	TypeGSNAddress:          {TypeGSNAddress, "GSNAddress", KindTLV, 0, func() Payload { return &GSNAddress{} }},
	TypeMSISDN:              {TypeMSISDN, "MSISDN", KindTLV, 0, func() Payload { return &MSISDN{} }},
	TypeQoSProfile:          {TypeQoSProfile, "QoSProfile", KindTLV, 0, nil},
	TypeAuthQuintuplet:      {TypeAuthQuintuplet, "AuthenticationQuintuplet", KindTLV, 0, nil},
	TypeTFT:                 {TypeTFT, "TrafficFlowTemplate", KindTLV, 0, nil},
	TypeTargetIdentification: {TypeTargetIdentification, "TargetIdentification", KindTLV, 0, nil},
	TypeUTRANTransparentContainer: {TypeUTRANTransparentContainer, "UTRANTransparentContainer", KindTLV, 0, nil},
	TypeRABSetupInfo:        {TypeRABSetupInfo, "RABSetupInformation", KindTLV, 0, func() Payload { return &RABSetupInfo{} }},
	TypeExtHeaderTypeList:   {TypeExtHeaderTypeList, "ExtensionHeaderTypeList", KindTLV, 0, nil},
	TypeTriggerId:           {TypeTriggerId, "TriggerId", KindTLV, 0, nil},
	TypeOMCIdentity:         {TypeOMCIdentity, "OMCIdentity", KindTLV, 0, nil},
	TypeRANTransparentContainer: {TypeRANTransparentContainer, "RANTransparentContainer", KindTLV, 0, nil},
	TypePDPContextPrioritization: {TypePDPContextPrioritization, "PDPContextPrioritization", KindTLV, 0, nil},
	TypeAdditionalRABSetupInfo: {TypeAdditionalRABSetupInfo, "AdditionalRABSetupInformation", KindTLV, 0, nil},
	TypeSGSNNumber:          {TypeSGSNNumber, "SGSNNumber", KindTLV, 0, nil},
	TypeCommonFlags:         {TypeCommonFlags, "CommonFlags", KindTLV, 0, nil},
	TypeAPNRestriction:      {TypeAPNRestriction, "APNRestriction", KindTLV, 0, nil},
	TypeRadioPriorityLCS:    {TypeRadioPriorityLCS, "RadioPriorityLCS", KindTLV, 0, nil},
	TypeRATType:             {TypeRATType, "RATType", KindTLV, 0, nil},
	TypeULI:                 {TypeULI, "UserLocationInformation", KindTLV, 0, func() Payload { return &ULI{} }},
	TypeMSTimeZone:          {TypeMSTimeZone, "MSTimeZone", KindTLV, 0, nil},
	TypeIMEI:                {TypeIMEI, "IMEISV", KindTLV, 0, func() Payload { return &IMEI{} }},
	TypeCAMELChargingInfoContainer: {TypeCAMELChargingInfoContainer, "CAMELChargingInfoContainer", KindTLV, 0, nil},
	TypeMBMSUEContext:       {TypeMBMSUEContext, "MBMSUEContext", KindTLV, 0, nil},
	TypeTMGI:                {TypeTMGI, "TemporaryMobileGroupIdentity", KindTLV, 0, nil},
	TypeRIMRoutingAddress:   {TypeRIMRoutingAddress, "RIMRoutingAddress", KindTLV, 0, nil},
	TypeMBMSPCO:             {TypeMBMSPCO, "MBMSProtocolConfigOptions", KindTLV, 0, nil},
	TypeAdditionalTraceInfo: {TypeAdditionalTraceInfo, "AdditionalTraceInfo", KindTLV, 0, nil},
	TypeHopCounter:          {TypeHopCounter, "HopCounter", KindTLV, 0, nil},
	TypeSelectedPLMNID:      {TypeSelectedPLMNID, "SelectedPLMNID", KindTLV, 0, nil},
	TypeMBMSIPMulticastDistrib: {TypeMBMSIPMulticastDistrib, "MBMSIPMulticastDistribution", KindTLV, 0, func() Payload { return &MBMSIPMulticastDistrib{} }},
	TypeFQDN:                {TypeFQDN, "FQDN", KindTLV, 0, nil},
	TypeCommonFlagsExtended: {TypeCommonFlagsExtended, "ExtendedCommonFlags", KindTLV, 0, nil},
	TypeUENetworkCapability: {TypeUENetworkCapability, "UENetworkCapability", KindTLV, 0, nil},
	TypeChargingGatewayAddress: {TypeChargingGatewayAddress, "ChargingGatewayAddress", KindTLV, 0, nil},
	PrivateExtension:        {PrivateExtension, "PrivateExtension", KindTLV, 0, nil},
}

// Lookup returns the catalogue entry for t, and whether one was declared.
func Lookup(t Type) (CatalogueEntry, bool) {
	e, ok := Catalogue[t]
	return e, ok
}

// KindOf reports the framing a bare tag byte implies, independent of
// whether the type has a catalogue entry: 0-127 is TV, 128-255 is TLV.
func KindOf(tag uint8) Kind {
	if tag < 128 {
		return KindTV
	}
	return KindTLV
}
